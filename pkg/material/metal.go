package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	noEmission
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects the ray about the normal, perturbed by the fuzz
func (m Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	direction := reflected
	if m.Fuzzness > 0 {
		direction = direction.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness))
		// Fuzz can push the ray below the surface; absorb it
		if direction.Dot(hit.Normal) <= 0 {
			return ScatterRecord{}, false
		}
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		SpecularRay: core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF is zero: reflection is a delta distribution
func (m Metal) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

func (Metal) isMaterial() {}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
