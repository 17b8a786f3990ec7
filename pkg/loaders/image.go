package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// LoadImage opens and decodes a PNG or JPEG image
func LoadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return img, nil
}

// LoadImageTexture loads a PNG or JPEG image as a texture with colors in [0, 1]
func LoadImageTexture(filename string) (material.ImageTexture, error) {
	img, err := LoadImage(filename)
	if err != nil {
		return material.ImageTexture{}, err
	}
	return material.NewImageTextureFromImage(img), nil
}
