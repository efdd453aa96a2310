package cylinder3d

import "github.com/go-gl/mathgl/mgl32"

// Stride is the number of floats per vertex in Interleave's output.
const Stride = 6

// Interleave flattens vs into [px, py, pz, nx, ny, nz, ...].
func Interleave(vs []Vertex) []float32 {
	out := make([]float32, 0, len(vs)*Stride)
	for _, v := range vs {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
	}
	return out
}

// Positions returns the vertex positions as a flat [x0, y0, z0, x1, ...] array.
func Positions(vs []Vertex) []float32 {
	return flatten(vs, func(v Vertex) mgl32.Vec3 { return v.Position })
}

// Normals returns the vertex normals as a flat [nx0, ny0, nz0, ...] array.
func Normals(vs []Vertex) []float32 {
	return flatten(vs, func(v Vertex) mgl32.Vec3 { return v.Normal })
}

func flatten(vs []Vertex, field func(Vertex) mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		f := field(v)
		out = append(out, f[:]...)
	}
	return out
}
