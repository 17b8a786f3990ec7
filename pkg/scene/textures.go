package scene

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/loaders"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// NewTextureScene creates a scene demonstrating texture mapping on spheres, rectangles and a box.
// The center sphere uses the image at texturePath, or the UV debug texture when the path is empty.
func NewTextureScene(texturePath string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	config := renderer.CameraConfig{
		Center:      core.NewVec3(0, 2, 10),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 100
	samplingConfig.MaxDepth = 10
	samplingConfig.RussianRouletteMinBounces = 5

	s := &Scene{
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: samplingConfig,
	}
	s.newCamera(config, cameraOverrides)

	var globe material.ColorSource = material.NewUVDebugTexture()
	if texturePath != "" {
		texture, err := loaders.LoadImageTexture(texturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
		globe = texture
	}

	checker := material.NewTexturedLambertian(material.NewCheckerTexture(
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
		6,
	))
	brick := material.NewTexturedLambertian(material.NewCheckerTexture(
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
		12,
	))
	uvDebug := material.NewTexturedLambertian(material.NewUVDebugTexture())

	s.Objects = append(s.Objects,
		geometry.NewSphere(core.NewVec3(-3.5, 1, 0), 1.0, checker),
		geometry.NewSphere(core.NewVec3(0, 1.5, 0), 1.5, material.NewTexturedLambertian(globe)),
		geometry.NewBox(core.NewVec3(2.7, 0, -0.8), core.NewVec3(4.3, 1.6, 0.8), brick),
		geometry.NewXYRect(-6, -4.5, 0, 2, -1, uvDebug), // Standing panel behind the left sphere
		geometry.NewXZRect(-10, 10, -5, 10, 0, brick),   // Ground
	)

	s.AddSphereLight(core.NewVec3(0, 8, 5), 2.0, core.NewVec3(8, 8, 8))

	return s, nil
}
