package core

import (
	"math"
	"testing"
)

func TestCosinePDF_GeneratesInHemisphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(-1, 0, 0),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		pdf := NewCosinePDF(normal)
		for i := 0; i < 1000; i++ {
			direction := pdf.Generate(sampler)
			if direction.Dot(normal) < -1e-9 {
				t.Fatalf("direction %v below surface with normal %v", direction, normal)
			}
			if math.Abs(direction.Length()-1) > 1e-9 {
				t.Fatalf("expected unit direction, got length %f", direction.Length())
			}
		}
	}
}

func TestCosinePDF_IntegratesToOne(t *testing.T) {
	sampler := NewSeededSampler(3)
	pdf := NewCosinePDF(NewVec3(0, 1, 0))

	// Uniform sphere sampling has density 1/(4π); the estimator of ∫pdf is mean(pdf)·4π
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += pdf.Value(SampleOnUnitSphere(sampler.Get2D()))
	}
	integral := sum / n * 4 * math.Pi

	if math.Abs(integral-1) > 0.02 {
		t.Errorf("Expected cosine PDF to integrate to 1, got %f", integral)
	}
}

func TestMixturePDF_AveragesValues(t *testing.T) {
	up := NewCosinePDF(NewVec3(0, 1, 0))
	down := NewCosinePDF(NewVec3(0, -1, 0))
	mixture := NewMixturePDF(up, down)

	direction := NewVec3(0, 1, 0)
	expected := 0.5 * (1 / math.Pi)
	if got := mixture.Value(direction); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected %f, got %f", expected, got)
	}
}

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewSeededSampler(1)
	for i := 0; i < 1000; i++ {
		v := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestSamplePointInUnitSphere_Inside(t *testing.T) {
	sampler := NewSeededSampler(2)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1+1e-9 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}

func TestSampleCone_WithinCone(t *testing.T) {
	sampler := NewSeededSampler(5)
	axis := NewVec3(1, 2, 3).Normalize()
	cosMax := math.Cos(0.2)

	for i := 0; i < 1000; i++ {
		d := SampleCone(axis, cosMax, sampler.Get2D())
		if d.Dot(axis) < cosMax-1e-9 {
			t.Fatalf("Direction %v outside cone (cos=%f, max=%f)", d, d.Dot(axis), cosMax)
		}
	}
}

func TestSampleIndex(t *testing.T) {
	tests := []struct {
		u        float64
		n        int
		expected int
	}{
		{0, 3, 0},
		{0.34, 3, 1},
		{0.999999, 3, 2},
		{1, 3, 2},
		{0.5, 1, 0},
	}

	for _, tt := range tests {
		if got := SampleIndex(tt.u, tt.n); got != tt.expected {
			t.Errorf("SampleIndex(%f, %d) = %d, expected %d", tt.u, tt.n, got, tt.expected)
		}
	}
}

func TestONB_Orthonormal(t *testing.T) {
	for _, w := range []Vec3{NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0.3, -0.4, 0.5)} {
		basis := NewONB(w)
		const tolerance = 1e-9
		if math.Abs(basis.U.Dot(basis.V)) > tolerance ||
			math.Abs(basis.U.Dot(basis.W)) > tolerance ||
			math.Abs(basis.V.Dot(basis.W)) > tolerance {
			t.Errorf("Basis for %v is not orthogonal: %+v", w, basis)
		}
		if math.Abs(basis.U.Length()-1) > tolerance || math.Abs(basis.V.Length()-1) > tolerance {
			t.Errorf("Basis for %v is not normalized: %+v", w, basis)
		}
	}
}
