package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtinScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtinScenes), len(scenes))
	}

	seen := make(map[string]bool)
	for i, info := range scenes {
		if i > 0 && scenes[i-1].ID >= info.ID {
			t.Errorf("Scenes not sorted by ID: %q before %q", scenes[i-1].ID, info.ID)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene ID %q", info.ID)
		}
		seen[info.ID] = true
		if info.DisplayName == "" || info.Description == "" {
			t.Errorf("Scene %q is missing metadata", info.ID)
		}
	}
}

func TestNew_AllBuiltinScenesBuild(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := New(info.ID, Options{GridSize: 4, Camera: renderer.CameraConfig{Width: 8}})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.GetCamera() == nil {
				t.Fatal("Expected a camera")
			}
			if err := s.Build(core.NewSeededSampler(1), core.NopLogger{}); err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if _, ok := s.GetWorld().BoundingBox(s.CameraConfig.Time0, s.CameraConfig.Time1); !ok {
				t.Error("Expected a bounded world")
			}
			if s.SamplingConfig.SamplesPerPixel <= 0 || s.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Expected positive sampling defaults, got %+v", s.SamplingConfig)
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("does-not-exist", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNew_TextureScene(t *testing.T) {
	t.Run("missing image", func(t *testing.T) {
		_, err := New("textures", Options{TexturePath: filepath.Join(t.TempDir(), "missing.png")})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("image texture", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "globe.png")
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
		file, err := os.Create(path)
		if err != nil {
			t.Fatalf("Failed to create image: %v", err)
		}
		if err := png.Encode(file, img); err != nil {
			t.Fatalf("Failed to encode image: %v", err)
		}
		file.Close()

		s, err := New("textures", Options{TexturePath: path})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(s.Objects) == 0 {
			t.Error("Expected scene objects")
		}
	})
}
