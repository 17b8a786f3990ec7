package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// NewLightRectScene creates a dark scene lit only by an emissive sphere and a rectangle
// standing behind a mirrored sphere
func NewLightRectScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	config := renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 200
	samplingConfig.MaxDepth = 50
	samplingConfig.RussianRouletteMinBounces = 8

	s := &Scene{
		TopColor:       core.NewVec3(0.0, 0.0, 0.0), // No sky light
		BottomColor:    core.NewVec3(0.0, 0.0, 0.0),
		SamplingConfig: samplingConfig,
	}
	s.newCamera(config, cameraOverrides)

	checker := material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 10)
	s.Objects = append(s.Objects,
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)),
	)

	s.AddSphereLight(core.NewVec3(0, 5, 0), 1, core.NewVec3(4, 3, 1))
	s.AddRectLight(geometry.PlaneXY, 3, 5, 1, 3, -2, core.NewVec3(4, 4, 4), false)

	return s
}
