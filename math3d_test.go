package cylinder3d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRingPoint(t *testing.T) {
	tests := []struct {
		name   string
		radius float32
		angle  float32
		y      float32
		want   mgl32.Vec3
	}{
		{"origin angle", 2, 0, 1, mgl32.Vec3{2, 1, 0}},
		{"quarter turn", 2, math32.Pi / 2, -1, mgl32.Vec3{0, -1, 2}},
		{"half turn", 1, math32.Pi, 0, mgl32.Vec3{-1, 0, 0}},
		{"zero radius", 0, 1.3, 4, mgl32.Vec3{0, 4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ringPoint(tt.radius, tt.angle, tt.y)
			assertVecInDelta(t, tt.want, got, tol, "ringPoint()")
		})
	}
}

func TestScaleY(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, 1.5, 3}, scaleY(mgl32.Vec3{1, 3, 3}, 0.5))
	assert.Equal(t, mgl32.Vec3{1, 0, 3}, scaleY(mgl32.Vec3{1, 3, 3}, 0))
}

func TestRadialNormal(t *testing.T) {
	tests := []struct {
		name string
		p    mgl32.Vec3
		want mgl32.Vec3
	}{
		{"unit x", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{"drops height", mgl32.Vec3{3, 5, 4}, mgl32.Vec3{0.6, 0, 0.8}},
		{"negative", mgl32.Vec3{0, -2, -7}, mgl32.Vec3{0, 0, -1}},
		{"on axis", mgl32.Vec3{0, 9, 0}, mgl32.Vec3{}},
		{"huge", mgl32.Vec3{1e20, 1, 1e20}, mgl32.Vec3{0.70710677, 0, 0.70710677}},
		{"tiny", mgl32.Vec3{-1e-23, 1, 0}, mgl32.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := radialNormal(tt.p)
			assert.Equal(t, float32(0), got.Y())
			assertVecInDelta(t, tt.want, got, tol, "radialNormal()")
		})
	}
}

// assertVecInDelta compares each component of got against want with an
// absolute tolerance.
func assertVecInDelta(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], delta, msgAndArgs...) {
			t.Logf("got %v, want %v", got, want)
			return
		}
	}
}
