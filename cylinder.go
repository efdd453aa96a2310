// Package cylinder3d generates the vertex rings of an inclined cylinder.
//
// The cylinder stands on the Y axis. Inclination is approximated by scaling
// the ring heights by cos(inclinationAngle) rather than by shearing the axis,
// so a 90° inclination flattens both rings onto the XZ plane.
package cylinder3d

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidArgument is returned (wrapped) for parameters that cannot produce
// a cylinder.
var ErrInvalidArgument = errors.New("invalid argument")

// Vertex is a position/normal pair in model space.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Params holds the generator inputs.
type Params struct {
	Radius float32 `toml:"radius"`
	Height float32 `toml:"height"`
	// InclinationAngle is in degrees.
	InclinationAngle float32 `toml:"inclination_angle"`
	NumSegments      int     `toml:"num_segments"`
}

// DefaultParams returns the parameters used by the demo command.
func DefaultParams() Params {
	return Params{
		Radius:           1.0,
		Height:           2.0,
		InclinationAngle: 45.0,
		NumSegments:      32,
	}
}

// MaxSegments is the largest accepted segment count. Beyond 2^24 a float32
// segment index is no longer exact and neighbouring angles collide.
const MaxSegments = 1 << 24

// Validate reports whether p can be generated. Only the segment count is
// constrained; any radius, height or angle is accepted.
func (p Params) Validate() error {
	if p.NumSegments < 1 {
		return fmt.Errorf("num_segments must be at least 1, got %d: %w", p.NumSegments, ErrInvalidArgument)
	}
	if p.NumSegments > MaxSegments {
		return fmt.Errorf("num_segments must be at most %d, got %d: %w", MaxSegments, p.NumSegments, ErrInvalidArgument)
	}
	return nil
}

// Generate is GenerateInclined driven by p.
func (p Params) Generate() ([]Vertex, error) {
	return GenerateInclined(p.Radius, p.Height, p.InclinationAngle, p.NumSegments)
}

// GenerateInclined returns 2*numSegments vertices, alternating top and bottom
// ring, in increasing angle starting at 0. Normals are horizontal and unit
// length; with radius 0 every vertex sits on the axis and its normal is the
// zero vector.
func GenerateInclined(radius, height, inclinationAngle float32, numSegments int) ([]Vertex, error) {
	if err := (Params{NumSegments: numSegments}).Validate(); err != nil {
		return nil, err
	}

	halfHeight := height * 0.5
	yTop := halfHeight
	yBottom := -halfHeight

	angleIncrement := 2 * math32.Pi / float32(numSegments)
	incline := math32.Cos(mgl32.DegToRad(inclinationAngle))

	vertices := make([]Vertex, 0, 2*numSegments)
	for i := 0; i < numSegments; i++ {
		angle := float32(i) * angleIncrement

		top := scaleY(ringPoint(radius, angle, yTop), incline)
		bottom := scaleY(ringPoint(radius, angle, yBottom), incline)

		vertices = append(vertices,
			Vertex{Position: top, Normal: radialNormal(top)},
			Vertex{Position: bottom, Normal: radialNormal(bottom)},
		)
	}

	return vertices, nil
}
