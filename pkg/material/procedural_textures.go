package material

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// CheckerTexture alternates between two color sources in a 3D checker pattern
type CheckerTexture struct {
	Even  ColorSource
	Odd   ColorSource
	Scale float64 // Checks per unit length
}

// NewCheckerTexture creates a 3D checker of two solid colors
func NewCheckerTexture(even, odd core.Vec3, scale float64) CheckerTexture {
	return CheckerTexture{Even: NewSolidColor(even), Odd: NewSolidColor(odd), Scale: scale}
}

// Evaluate picks the color by the sign of the product of sines along each axis
func (c CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// NewUVDebugTexture shows texture coordinates as colors: U in red, V in green
func NewUVDebugTexture() TextureFunc {
	return func(uv core.Vec2, point core.Vec3) core.Vec3 {
		return core.NewVec3(uv.X, uv.Y, 0)
	}
}
