package core

import "math"

// PDF is a direction distribution that can be sampled and evaluated.
// Value must be the density of the directions Generate produces.
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// CosinePDF samples directions cosine-weighted around a surface normal
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine-weighted PDF around normal
func NewCosinePDF(normal Vec3) CosinePDF {
	return CosinePDF{uvw: NewONB(normal)}
}

// Value returns cos(θ) / π, or 0 below the surface
func (p CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction in the hemisphere of the normal
func (p CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.uvw.Local(SampleCosineDirection(sampler.Get2D()))
}

// MixturePDF is an equal-weight mixture of two PDFs
type MixturePDF struct {
	First, Second PDF
}

// NewMixturePDF creates a 50/50 mixture of first and second
func NewMixturePDF(first, second PDF) MixturePDF {
	return MixturePDF{First: first, Second: second}
}

// Value returns the average of both densities
func (m MixturePDF) Value(direction Vec3) float64 {
	return 0.5*m.First.Value(direction) + 0.5*m.Second.Value(direction)
}

// Generate picks one of the PDFs with equal probability and samples it
func (m MixturePDF) Generate(sampler Sampler) Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.First.Generate(sampler)
	}
	return m.Second.Generate(sampler)
}
