package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a constant color
func NewDiffuseLight(emission core.Vec3) DiffuseLight {
	return DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emission ColorSource) DiffuseLight {
	return DiffuseLight{Emission: emission}
}

// Scatter never scatters; lights only emit
func (e DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the emission on the front face and black on the back face
func (e DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emission.Evaluate(uv, point)
}

func (e DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

func (DiffuseLight) isMaterial() {}

// NormalDebug shows the surface normal as emitted color. It never scatters.
type NormalDebug struct{}

// Scatter never scatters
func (NormalDebug) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the normal on front faces
func (NormalDebug) Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return hit.Normal
}

func (NormalDebug) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

func (NormalDebug) isMaterial() {}
