package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Material decides how light leaves a surface.
//
// The set of materials is closed: Lambertian, Metal, Dielectric, DiffuseLight,
// Isotropic and NormalDebug. Materials are small values and are copied freely.
type Material interface {
	// Scatter returns how rayIn continues after hitting the surface, or false
	// if the ray is absorbed.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// Emitted returns the light emitted at the hit point
	Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3

	// ScatteringPDF returns the density of scattering into the direction of scattered.
	// It matches the distribution of the PDF returned by Scatter.
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64

	isMaterial()
}

// ScatterRecord is the result of a scatter query.
//
// Specular scattering carries a concrete continuation ray and a nil PDF.
// Diffuse scattering carries the PDF to draw the next direction from; the
// integrator may mix it with light sampling.
type ScatterRecord struct {
	Attenuation core.Vec3 // Color attenuation
	SpecularRay core.Ray  // Continuation ray, only meaningful when IsSpecular
	PDF         core.PDF  // Direction distribution, nil for specular scattering
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterRecord) IsSpecular() bool {
	return s.PDF == nil
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by materials that never emit light
type noEmission struct{}

func (noEmission) Emitted(rayIn core.Ray, hit *HitRecord, uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
