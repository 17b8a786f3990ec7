package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

func TestRect_Hit(t *testing.T) {
	tests := []struct {
		name           string
		rect           *Rect
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedUV     core.Vec2
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "xy rect from positive z",
			rect:           NewXYRect(-1, 1, -1, 1, 0, testMaterial),
			ray:            core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      2,
			expectedUV:     core.NewVec2(0.5, 0.5),
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "xy rect from negative z",
			rect:           NewXYRect(-1, 1, -1, 1, 0, testMaterial),
			ray:            core.NewRay(core.NewVec3(0.5, -0.5, -3), core.NewVec3(0, 0, 1)),
			shouldHit:      true,
			expectedT:      3,
			expectedUV:     core.NewVec2(0.75, 0.25),
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "xz rect from above",
			rect:           NewXZRect(0, 4, 0, 2, 1, testMaterial),
			ray:            core.NewRay(core.NewVec3(1, 5, 1), core.NewVec3(0, -2, 0)),
			shouldHit:      true,
			expectedT:      2,
			expectedUV:     core.NewVec2(0.25, 0.5),
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "yz rect from negative x",
			rect:           NewYZRect(0, 1, 0, 1, 3, testMaterial),
			ray:            core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			shouldHit:      true,
			expectedT:      3,
			expectedUV:     core.NewVec2(0.5, 0.5),
			expectedFront:  false,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
		{
			name:      "outside extents",
			rect:      NewXYRect(-1, 1, -1, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(2, 0, 2), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "parallel to plane",
			rect:      NewXYRect(-1, 1, -1, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "behind origin",
			rect:      NewXYRect(-1, 1, -1, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit material.HitRecord
			isHit := tt.rect.Hit(tt.ray, 0.001, math.Inf(1), &hit)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.UV.X-tt.expectedUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectedUV, hit.UV)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-12) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestRect_InvalidExtentsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for inverted extents")
		}
	}()
	NewXZRect(1, 0, 0, 1, 0, testMaterial)
}

func TestRect_BoundingBoxPadded(t *testing.T) {
	rect := NewXZRect(0, 2, -1, 1, 5, testMaterial)
	box, ok := rect.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected rect to be bounded")
	}

	if box.Min.X != 0 || box.Max.X != 2 || box.Min.Z != -1 || box.Max.Z != 1 {
		t.Errorf("Unexpected in-plane extent %v", box)
	}
	if !(box.Min.Y < 5 && box.Max.Y > 5) {
		t.Errorf("Expected padded extent around y=5, got [%f, %f]", box.Min.Y, box.Max.Y)
	}
}

func TestRect_LightSampling(t *testing.T) {
	sampler := core.NewSeededSampler(11)
	rect := NewXZRect(-1, 1, -1, 1, 2, testMaterial)
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 500; i++ {
		direction := rect.Random(origin, sampler)

		var hit material.HitRecord
		if !rect.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), &hit) {
			t.Fatalf("Sampled direction %v does not reach the rect", direction)
		}
		if math.Abs(hit.T-1) > 1e-9 {
			t.Fatalf("Expected sampled vector to end on the rect (t=1), got t=%f", hit.T)
		}
		if pdf := rect.PDFValue(origin, direction); pdf <= 0 {
			t.Fatalf("Expected positive PDF for sampled direction, got %f", pdf)
		}
	}

	// Straight up: distance 2, cosine 1, area 4
	if pdf := rect.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(pdf-1.0) > 1e-9 {
		t.Errorf("Expected PDF 1.0 straight up, got %f", pdf)
	}
	if pdf := rect.PDFValue(origin, core.NewVec3(0, -1, 0)); pdf != 0 {
		t.Errorf("Expected zero PDF away from the rect, got %f", pdf)
	}
}

func TestRect_PDFIntegratesOverSolidAngle(t *testing.T) {
	// Monte Carlo estimate of the solid angle via uniform sphere sampling
	// must agree with 1/pdf for a small, distant rect.
	sampler := core.NewSeededSampler(5)
	rect := NewXYRect(-0.5, 0.5, -0.5, 0.5, 10, testMaterial)
	origin := core.NewVec3(0, 0, 0)

	pdf := rect.PDFValue(origin, core.NewVec3(0, 0, 1))
	if pdf <= 0 {
		t.Fatalf("Expected positive PDF, got %f", pdf)
	}

	sum := 0.0
	const samples = 500
	for i := 0; i < samples; i++ {
		direction := rect.Random(origin, sampler)
		sum += 1 / rect.PDFValue(origin, direction)
	}
	solidAngle := sum / samples

	// Exact value for a square of side 1 at distance 10
	expected := 4 * math.Asin(0.25/(0.25+100))
	if math.Abs(solidAngle-expected)/expected > 0.01 {
		t.Errorf("Expected solid angle %f, got %f", expected, solidAngle)
	}
}

func TestPlane_String(t *testing.T) {
	if PlaneXY.String() != "xy" || PlaneXZ.String() != "xz" || PlaneYZ.String() != "yz" {
		t.Error("Unexpected plane names")
	}
	if Plane(7).String() != "Plane(7)" {
		t.Errorf("Unexpected name for unknown plane: %s", Plane(7).String())
	}
}
