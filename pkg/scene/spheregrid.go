package scene

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1].
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cone responses
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	rgb := core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	)
	return rgb.Clamp(0, 1)
}

// DefaultSphereGridSize is the number of spheres along each side of the grid
const DefaultSphereGridSize = 20

// NewSphereGridScene creates a gridSize x gridSize grid of spheres on a gray floor.
// Hue varies along X and chroma along Z. Large grids stress the BVH.
func NewSphereGridScene(gridSize int, cameraOverrides ...renderer.CameraConfig) *Scene {
	if gridSize < 2 {
		gridSize = 2
	}

	config := renderer.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),    // Farther back and slightly above the grid
		LookAt:      core.NewVec3(4.5, 0.8, 4.5), // Center of the grid
		Up:          core.NewVec3(0, 1, 0),
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.02, // Small depth of field for some focus variation
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 100
	samplingConfig.MaxDepth = 40
	samplingConfig.RussianRouletteMinBounces = 12 // Moderate bounces for metallic reflections

	s := &Scene{
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
		SamplingConfig: samplingConfig,
	}
	s.newCamera(config, cameraOverrides)

	// Bright sun-like light high and to the side
	s.AddSphereLight(core.NewVec3(20, 25, 20), 8, core.NewVec3(12.0, 11.5, 10.0))

	s.Objects = append(s.Objects, geometry.NewXZRect(-50, 60, -50, 60, 0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// Fit the grid in a 9x9 area regardless of its size
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			// Every seventh sphere is diffuse, the rest are slightly rough metal
			var mat material.Material
			if (i*gridSize+j)%7 == 0 {
				mat = material.NewLambertian(color)
			} else {
				roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
				mat = material.NewMetal(color, roughness)
			}

			s.Objects = append(s.Objects, geometry.NewSphere(position, sphereRadius, mat))
		}
	}

	return s
}
