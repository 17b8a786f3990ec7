package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Isotropic scatters uniformly in all directions, for participating media
type Isotropic struct {
	noEmission
	Albedo core.Vec3
}

// NewIsotropic creates a new isotropic material
func NewIsotropic(albedo core.Vec3) Isotropic {
	return Isotropic{Albedo: albedo}
}

// Scatter continues the ray in a uniformly random direction
func (i Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	direction := core.SampleOnUnitSphere(sampler.Get2D())
	return ScatterRecord{
		Attenuation: i.Albedo,
		SpecularRay: core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF is zero: isotropic scattering is traced as a continuation ray
func (i Isotropic) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

func (Isotropic) isMaterial() {}
