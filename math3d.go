package cylinder3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ringPoint returns the point at angle (radians) on a circle of the given
// radius in the XZ plane, lifted to height y.
func ringPoint(radius, angle, y float32) mgl32.Vec3 {
	return mgl32.Vec3{radius * math32.Cos(angle), y, radius * math32.Sin(angle)}
}

// scaleY scales the vertical component of p by k
func scaleY(p mgl32.Vec3, k float32) mgl32.Vec3 {
	return mgl32.Vec3{p.X(), p.Y() * k, p.Z()}
}

// radialNormal projects p onto the horizontal plane and normalizes it.
// A point on the Y axis has no horizontal direction and yields the zero vector.
func radialNormal(p mgl32.Vec3) mgl32.Vec3 {
	l := math32.Hypot(p.X(), p.Z())
	if l == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{p.X() / l, 0, p.Z() / l}
}
