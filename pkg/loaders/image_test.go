package loaders

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
)

// writeTestPNG creates a 2x2 PNG with white, red, green and blue pixels
func writeTestPNG(t *testing.T) string {
	t.Helper()
	testFile := filepath.Join(t.TempDir(), "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close test file: %v", err)
	}

	return testFile
}

// TestLoadImageTexture creates a test PNG and verifies loading
func TestLoadImageTexture(t *testing.T) {
	texture, err := LoadImageTexture(writeTestPNG(t))
	if err != nil {
		t.Fatalf("LoadImageTexture failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", texture.Width, texture.Height)
	}
	if len(texture.Pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(texture.Pixels))
	}

	checkColor := func(name string, got, expected core.Vec3) {
		if got.Subtract(expected).Length() > 0.01 {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}

	// Row-major order
	checkColor("Top-left (white)", texture.Pixels[0], core.NewVec3(1, 1, 1))
	checkColor("Top-right (red)", texture.Pixels[1], core.NewVec3(1, 0, 0))
	checkColor("Bottom-left (green)", texture.Pixels[2], core.NewVec3(0, 1, 0))
	checkColor("Bottom-right (blue)", texture.Pixels[3], core.NewVec3(0, 0, 1))

	// V=1 is the top row of the image
	checkColor("UV top-right", texture.Evaluate(core.NewVec2(0.75, 0.75), core.Vec3{}), core.NewVec3(1, 0, 0))
	checkColor("UV bottom-left", texture.Evaluate(core.NewVec2(0.25, 0.25), core.Vec3{}), core.NewVec3(0, 1, 0))
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImageTexture(filepath.Join(t.TempDir(), "nonexistent.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadImageInvalidData(t *testing.T) {
	bogus := filepath.Join(t.TempDir(), "bogus.png")
	if err := os.WriteFile(bogus, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadImage(bogus); err == nil {
		t.Error("Expected decode error for invalid image data")
	}
}
