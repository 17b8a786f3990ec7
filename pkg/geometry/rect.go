package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Plane selects which axis-aligned plane a Rect lies in
type Plane int

const (
	PlaneXY Plane = iota // Rect spans X and Y at constant Z
	PlaneXZ              // Rect spans X and Z at constant Y
	PlaneYZ              // Rect spans Y and Z at constant X
)

// axes returns the two in-plane axes and the constant axis
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// String returns the plane name
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// rectPadding keeps the bounding box of a flat rect from having zero thickness
const rectPadding = 0.0001

// Rect is an axis-aligned rectangle [A0,A1]×[B0,B1] at K along the plane's constant axis.
// Its outward normal points along the positive constant axis.
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewRect creates an axis-aligned rectangle. It panics if an extent is inverted.
func NewRect(plane Plane, a0, a1, b0, b1, k float64, material material.Material) *Rect {
	if a0 > a1 || b0 > b1 {
		panic(fmt.Sprintf("invalid %s rect extents [%f,%f]x[%f,%f]", plane, a0, a1, b0, b1))
	}
	return &Rect{Plane: plane, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: material}
}

// NewXYRect creates a rect spanning X and Y at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Rect {
	return NewRect(PlaneXY, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rect spanning X and Z at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Rect {
	return NewRect(PlaneXZ, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rect spanning Y and Z at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Rect {
	return NewRect(PlaneYZ, y0, y1, z0, z1, k, material)
}

// Area returns the surface area of the rect
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// Hit tests if a ray intersects with the rect
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	a, b, k := r.Plane.axes()

	direction := ray.Direction.Axis(k)
	if direction == 0 {
		return false // parallel to the plane
	}

	t := (r.K - ray.Origin.Axis(k)) / direction
	if !(t > tMin && t < tMax) {
		return false
	}

	point := ray.At(t)
	pa := point.Axis(a)
	pb := point.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return false
	}

	hit.T = t
	hit.Point = point
	hit.UV = core.NewVec2((pa-r.A0)/(r.A1-r.A0), (pb-r.B0)/(r.B1-r.B0))
	hit.SetFaceNormal(ray, r.outwardNormal())
	hit.Material = r.Material

	return true
}

// BoundingBox returns the rect's box, padded along the constant axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	switch r.Plane {
	case PlaneXY:
		return core.NewAABB(
			core.NewVec3(r.A0, r.B0, r.K-rectPadding),
			core.NewVec3(r.A1, r.B1, r.K+rectPadding)), true
	case PlaneXZ:
		return core.NewAABB(
			core.NewVec3(r.A0, r.K-rectPadding, r.B0),
			core.NewVec3(r.A1, r.K+rectPadding, r.B1)), true
	default:
		return core.NewAABB(
			core.NewVec3(r.K-rectPadding, r.A0, r.B0),
			core.NewVec3(r.K+rectPadding, r.A1, r.B1)), true
	}
}

// PDFValue returns the solid-angle density of uniform area sampling:
// distance² / (|cos θ| · area)
func (r *Rect) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if !r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), &rec) {
		return 0
	}

	area := r.Area()
	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal)) / direction.Length()
	if cosine < 1e-8 || area <= 0 {
		return 0
	}

	return distanceSquared / (cosine * area)
}

// Random returns the vector from origin to a uniformly sampled point on the rect
func (r *Rect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	pa := r.A0 + sample.X*(r.A1-r.A0)
	pb := r.B0 + sample.Y*(r.B1-r.B0)

	var point core.Vec3
	switch r.Plane {
	case PlaneXY:
		point = core.NewVec3(pa, pb, r.K)
	case PlaneXZ:
		point = core.NewVec3(pa, r.K, pb)
	default:
		point = core.NewVec3(r.K, pa, pb)
	}
	return point.Subtract(origin)
}

func (r *Rect) outwardNormal() core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}
