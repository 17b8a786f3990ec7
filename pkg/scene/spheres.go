package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// NewSpheresScene creates the random spheres scene: a checkered ground, three large spheres
// and a grid of small spheres with randomly chosen materials, some of them moving.
// The sampler drives every random choice so the scene is reproducible for a seed.
func NewSpheresScene(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) *Scene {
	config := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		Time0:         0.0, // Shutter interval for the moving spheres
		Time1:         1.0,
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 100
	samplingConfig.MaxDepth = 50
	samplingConfig.RussianRouletteMinBounces = 20 // Need a lot of bounces for glass

	sky := core.NewVec3(0.7, 0.8, 1.0)
	s := &Scene{
		TopColor:       sky,
		BottomColor:    sky,
		SamplingConfig: samplingConfig,
	}
	s.newCamera(config, cameraOverrides)

	// Ground is a huge checkered sphere
	checker := material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 10)
	s.Objects = append(s.Objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	uvDebug := material.NewTexturedLambertian(material.NewUVDebugTexture())
	avoid := core.NewVec3(4, 0.2, 0)

	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			chooseMat := sampler.Get1D()
			jitter := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*jitter.X, 0.2, float64(b)+0.9*jitter.Y)

			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.7:
				// Diffuse, bouncing upward during the shutter interval
				albedo := randomColor(sampler).MultiplyVec(randomColor(sampler))
				center1 := center.Add(core.NewVec3(0, 0.3*sampler.Get1D(), 0))
				s.Objects = append(s.Objects, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.8:
				s.Objects = append(s.Objects, geometry.NewSphere(center, 0.2, uvDebug))
			case chooseMat < 0.95:
				albedo := randomColor(sampler).Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				fuzz := 0.5 * sampler.Get1D()
				s.Objects = append(s.Objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Objects = append(s.Objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	marble := material.NewCheckerTexture(core.NewVec3(0.9, 0.9, 0.85), core.NewVec3(0.3, 0.3, 0.35), 25)
	s.Objects = append(s.Objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewTexturedLambertian(marble)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)),
	)

	// Small warm light between the large spheres
	s.AddSphereLight(core.NewVec3(-4, 0.5, 2), 0.5, core.NewVec3(2, 2, 1))

	return s
}

func randomColor(sampler core.Sampler) core.Vec3 {
	return core.NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D())
}
