package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// HittableList is an unordered collection of hittables tested by linear scan
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	list.objects = append(list.objects, objects...)
	return list
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns the list members. The slice must not be modified.
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit returns the closest hit among all members
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	var temp material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.objects {
		if object.Hit(ray, tMin, closestSoFar, &temp) {
			hitAnything = true
			closestSoFar = temp.T
			*hit = temp
		}
	}

	return hitAnything
}

// BoundingBox folds the member boxes. It fails for an empty list or when any member has no box.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.objects) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, object := range l.objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = result.SurroundingBox(box)
		}
	}

	return result, true
}

// PDFValue returns the unweighted mean of the member densities
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.objects))
	sum := 0.0
	for _, object := range l.objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// Random samples a direction toward a uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return l.objects[core.SampleIndex(sampler.Get1D(), len(l.objects))].Random(origin, sampler)
}
