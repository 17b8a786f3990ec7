package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box scene with axis-aligned walls and a ceiling light
func NewCornellScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	config := renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,  // Square aspect ratio for Cornell box
		VFov:        40.0, // Field of view
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 150
	samplingConfig.MaxDepth = 40
	samplingConfig.RussianRouletteMinBounces = 4

	s := &Scene{
		TopColor:       core.NewVec3(0.0, 0.0, 0.0), // Black background
		BottomColor:    core.NewVec3(0.0, 0.0, 0.0),
		SamplingConfig: samplingConfig,
	}
	s.newCamera(config, cameraOverrides)

	// Create materials
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	glass := material.NewDielectric(1.5)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	s.Objects = append(s.Objects,
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // Right wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // Left wall
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // Floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // Ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // Back wall
	)

	// Ceiling light faces down into the box
	s.AddRectLight(geometry.PlaneXZ, 213, 343, 227, 332, boxSize-1, core.NewVec3(15, 15, 15), true)

	// Tall aluminum box and a glass sphere on the floor
	s.Objects = append(s.Objects, geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), aluminum))

	// The glass sphere is sampled alongside the light to resolve its caustic
	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass)
	s.Objects = append(s.Objects, glassSphere)
	s.Lights = append(s.Lights, glassSphere)

	return s
}
