package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Hittable is anything a ray can be intersected with: primitives, lists and BVH nodes.
//
// Implementations are immutable after construction and safe to share between goroutines.
type Hittable interface {
	// Hit reports the closest intersection with t in the open interval (tMin, tMax).
	// hit is written only when Hit returns true.
	Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool

	// BoundingBox returns the extent over the time interval [time0, time1],
	// or false when the object has no box.
	BoundingBox(time0, time1 float64) (core.AABB, bool)

	// PDFValue is the density of sampling direction from origin toward this object
	PDFValue(origin, direction core.Vec3) float64

	// Random samples a direction from origin toward this object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// nonLight is embedded by hittables that are never sampled as lights
type nonLight struct{}

func (nonLight) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

func (nonLight) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// HittablePDF samples directions from a point toward a hittable, typically a light
type HittablePDF struct {
	Origin core.Vec3
	Object Hittable
}

// NewHittablePDF creates a PDF over directions from origin toward object
func NewHittablePDF(object Hittable, origin core.Vec3) HittablePDF {
	return HittablePDF{Origin: origin, Object: object}
}

// Value delegates to the object's PDFValue
func (p HittablePDF) Value(direction core.Vec3) float64 {
	return p.Object.PDFValue(p.Origin, direction)
}

// Generate delegates to the object's Random
func (p HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.Object.Random(p.Origin, sampler)
}
