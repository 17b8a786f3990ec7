package scene

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

func hitWorld(s *Scene, ray core.Ray) (material.HitRecord, bool) {
	var rec material.HitRecord
	hit := s.GetWorld().Hit(ray, 0.001, math.Inf(1), &rec)
	return rec, hit
}

func TestBuild_EmptyScene(t *testing.T) {
	s := &Scene{}
	err := s.Build(core.NewSeededSampler(1), core.NopLogger{})
	if !errors.Is(err, geometry.ErrEmptyBVH) {
		t.Errorf("Expected ErrEmptyBVH, got %v", err)
	}
}

func TestBuild_NoLights(t *testing.T) {
	s := NewNormalsScene()
	if err := s.Build(core.NewSeededSampler(1), core.NopLogger{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// A typed nil would make the integrator try to sample an empty light list
	if lights := s.GetLights(); lights != nil {
		t.Errorf("Expected nil lights interface, got %T", lights)
	}
	if s.GetWorld() == nil {
		t.Error("Expected a world after Build")
	}
}

func TestBuild_CornellLights(t *testing.T) {
	s := NewCornellScene()
	if err := s.Build(core.NewSeededSampler(1), core.NopLogger{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.Lights) != 2 {
		t.Fatalf("Expected the ceiling light and the glass sphere as lights, got %d", len(s.Lights))
	}

	lights := s.GetLights()
	if lights == nil {
		t.Fatal("Expected lights after Build")
	}

	// Straight up from the floor center passes through the ceiling light
	origin := core.NewVec3(278, 1, 280)
	if pdf := lights.PDFValue(origin, core.NewVec3(0, 1, 0)); pdf <= 0 {
		t.Errorf("Expected positive light PDF toward the ceiling light, got %f", pdf)
	}

	// The light faces down into the box
	ray := core.NewRay(origin, core.NewVec3(0, 1, 0))
	rec, hit := hitWorld(s, ray)
	if !hit {
		t.Fatal("Expected to hit the ceiling light")
	}
	if math.Abs(rec.Point.Y-554) > 1e-9 || !rec.FrontFace {
		t.Errorf("Expected front-face hit on the light at y=554, got point %v front=%t", rec.Point, rec.FrontFace)
	}
}

func TestBuild_BoxSpansShutterInterval(t *testing.T) {
	s := NewSpheresScene(core.NewSeededSampler(5))
	if err := s.Build(core.NewSeededSampler(1), core.NopLogger{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	worldBox, ok := s.GetWorld().BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected world bounding box")
	}
	for i, object := range s.Objects {
		box, ok := object.BoundingBox(0, 1)
		if !ok {
			t.Fatalf("Object %d has no bounding box", i)
		}
		if !worldBox.Contains(box) {
			t.Errorf("Object %d box %v outside world box %v", i, box, worldBox)
		}
	}
}

func TestSpheresScene_Reproducible(t *testing.T) {
	a := NewSpheresScene(core.NewSeededSampler(11))
	b := NewSpheresScene(core.NewSeededSampler(11))
	c := NewSpheresScene(core.NewSeededSampler(12))

	if len(a.Objects) != len(b.Objects) {
		t.Fatalf("Expected same object count for the same seed, got %d and %d", len(a.Objects), len(b.Objects))
	}
	for i := range a.Objects {
		boxA, _ := a.Objects[i].BoundingBox(0, 1)
		boxB, _ := b.Objects[i].BoundingBox(0, 1)
		if boxA != boxB {
			t.Fatalf("Object %d differs between scenes with the same seed", i)
		}
	}

	same := len(a.Objects) == len(c.Objects)
	if same {
		for i := range a.Objects {
			boxA, _ := a.Objects[i].BoundingBox(0, 1)
			boxC, _ := c.Objects[i].BoundingBox(0, 1)
			if boxA != boxC {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Expected a different seed to produce a different scene")
	}

	if a.CameraConfig.Time1 != 1 {
		t.Errorf("Expected shutter to close at 1, got %f", a.CameraConfig.Time1)
	}
}

func TestSphereGridScene(t *testing.T) {
	s := NewSphereGridScene(5)
	// 25 spheres, the floor and the sun
	if len(s.Objects) != 27 {
		t.Errorf("Expected 27 objects, got %d", len(s.Objects))
	}
	if len(s.Lights) != 1 {
		t.Errorf("Expected 1 light, got %d", len(s.Lights))
	}
}

func TestCameraOverrides(t *testing.T) {
	s := NewCornellScene(renderer.CameraConfig{Width: 32})
	width, height := s.GetCamera().ImageSize()
	if width != 32 || height != 32 {
		t.Errorf("Expected 32x32 image, got %dx%d", width, height)
	}
	if s.CameraConfig.VFov != 40 {
		t.Errorf("Expected default VFov to survive the override, got %f", s.CameraConfig.VFov)
	}
}

func TestOklchToRGB(t *testing.T) {
	tests := []struct {
		name     string
		l, c, h  float64
		expected core.Vec3
	}{
		{"white", 1, 0, 0, core.NewVec3(1, 1, 1)},
		{"black", 0, 0, 120, core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := oklchToRGB(tt.l, tt.c, tt.h)
			if got.Subtract(tt.expected).Length() > 1e-6 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	// Saturated colors stay in gamut
	for h := 0.0; h < 360; h += 30 {
		c := oklchToRGB(0.7, 0.4, h)
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 || c.Z < 0 || c.Z > 1 {
			t.Errorf("Hue %f produced out-of-range color %v", h, c)
		}
	}
}

func TestRenderCornellSmoke(t *testing.T) {
	s := NewCornellScene(renderer.CameraConfig{Width: 16})
	if err := s.Build(core.NewSeededSampler(1), core.NopLogger{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	config := s.SamplingConfig
	config.SamplesPerPixel = 2
	config.TileSize = 8
	config.NumWorkers = 2

	img, stats, err := renderer.NewRaytracer(s, config, core.NopLogger{}).Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalPixels != 256 {
		t.Errorf("Expected 256 pixels, got %d", stats.TotalPixels)
	}
	if lum := renderer.CalculateAverageLuminance(img); lum <= 0 {
		t.Errorf("Expected a lit image, got average luminance %f", lum)
	}
}
