package geometry

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Box is an axis-aligned box made of six rects sharing one material
type Box struct {
	nonLight
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates an axis-aligned box spanning min to max. It panics if min exceeds max on any axis.
func NewBox(min, max core.Vec3, material material.Material) *Box {
	if !core.NewAABB(min, max).IsValid() {
		panic(fmt.Sprintf("invalid box corners %v, %v", min, max))
	}

	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		FlipFace(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material)),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		FlipFace(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		FlipFace(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material)),
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit returns the closest hit among the six sides
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	return b.sides.Hit(ray, tMin, tMax, hit)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

// FlippedFace wraps a hittable and reverses which side counts as the front face
type FlippedFace struct {
	Object Hittable
}

// FlipFace wraps object so its hits report the opposite front face
func FlipFace(object Hittable) *FlippedFace {
	return &FlippedFace{Object: object}
}

// Hit delegates to the wrapped object and inverts FrontFace
func (f *FlippedFace) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !f.Object.Hit(ray, tMin, tMax, hit) {
		return false
	}
	hit.FrontFace = !hit.FrontFace
	return true
}

// BoundingBox delegates to the wrapped object
func (f *FlippedFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

// PDFValue delegates to the wrapped object
func (f *FlippedFace) PDFValue(origin, direction core.Vec3) float64 {
	return f.Object.PDFValue(origin, direction)
}

// Random delegates to the wrapped object
func (f *FlippedFace) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return f.Object.Random(origin, sampler)
}
