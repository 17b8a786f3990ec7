package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// NewNormalsScene creates a debug scene that shades every surface by its normal.
// Nothing scatters, so a single bounce is enough.
func NewNormalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	config := renderer.CameraConfig{
		Center:      core.NewVec3(0, 1, 4),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 16
	samplingConfig.MaxDepth = 2
	samplingConfig.RussianRouletteMinBounces = 0

	s := &Scene{
		TopColor:       core.NewVec3(0.0, 0.0, 0.0),
		BottomColor:    core.NewVec3(0.0, 0.0, 0.0),
		SamplingConfig: samplingConfig,
	}
	s.newCamera(config, cameraOverrides)

	normals := material.NormalDebug{}
	s.Objects = append(s.Objects,
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, normals),
		geometry.NewSphere(core.NewVec3(-1.2, 0.4, -1.2), 0.4, normals),
		geometry.NewBox(core.NewVec3(0.8, 0, -1.6), core.NewVec3(1.6, 0.8, -0.8), normals),
		geometry.NewXZRect(-5, 5, -5, 5, 0, normals),
	)

	return s
}
