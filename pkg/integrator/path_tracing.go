package integrator

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Config controls path termination
type Config struct {
	MaxDepth                  int // Maximum ray bounce depth
	RussianRouletteMinBounces int // Bounces before Russian roulette may terminate a path (0 disables it)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:                  50,
		RussianRouletteMinBounces: 10,
	}
}

// PathTracingIntegrator implements unidirectional path tracing.
// Diffuse bounces sample a 50/50 mixture of the scene's lights and the material's own PDF.
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, scene, sampler, pt.config.MaxDepth, core.NewVec3(1, 1, 1))
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int, throughput core.Vec3) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	shouldTerminate, rrCompensation := pt.applyRussianRoulette(depth, throughput, sampler)
	if shouldTerminate {
		return core.Vec3{}
	}

	var hit material.HitRecord
	if !scene.GetWorld().Hit(ray, 0.001, math.Inf(1), &hit) {
		return pt.backgroundGradient(ray, scene).Multiply(rrCompensation)
	}

	colorEmitted := hit.Material.Emitted(ray, &hit, hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, &hit, sampler)
	if !didScatter {
		return colorEmitted.Multiply(rrCompensation)
	}

	var colorScattered core.Vec3
	if scatter.IsSpecular() {
		colorScattered = pt.calculateSpecularColor(scatter, scene, sampler, depth, throughput)
	} else {
		colorScattered = pt.calculateDiffuseColor(ray, scatter, &hit, scene, sampler, depth, throughput)
	}

	return colorEmitted.Add(colorScattered).Multiply(rrCompensation)
}

// calculateSpecularColor follows the single deterministic continuation ray
func (pt *PathTracingIntegrator) calculateSpecularColor(scatter material.ScatterRecord, scene Scene, sampler core.Sampler, depth int, throughput core.Vec3) core.Vec3 {
	newThroughput := throughput.MultiplyVec(scatter.Attenuation)
	return scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.SpecularRay, scene, sampler, depth-1, newThroughput))
}

// calculateDiffuseColor importance samples the next direction and weights the
// incoming light by scattering PDF over sampling PDF
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, scatter material.ScatterRecord, hit *material.HitRecord, scene Scene, sampler core.Sampler, depth int, throughput core.Vec3) core.Vec3 {
	pdf := scatter.PDF
	if lights := scene.GetLights(); lights != nil {
		pdf = core.NewMixturePDF(geometry.NewHittablePDF(lights, hit.Point), scatter.PDF)
	}

	direction := pdf.Generate(sampler)
	pdfValue := pdf.Value(direction)
	if !(pdfValue > 0) {
		return core.Vec3{}
	}

	scattered := core.NewRayAtTime(hit.Point, direction, ray.Time)
	weight := hit.Material.ScatteringPDF(ray, hit, scattered) / pdfValue
	if weight <= 0 {
		return core.Vec3{}
	}

	newThroughput := throughput.MultiplyVec(scatter.Attenuation).Multiply(weight)
	incomingLight := pt.rayColor(scattered, scene, sampler, depth-1, newThroughput)
	return scatter.Attenuation.Multiply(weight).MultiplyVec(incomingLight)
}

// applyRussianRoulette determines if a ray should be terminated and returns the compensation factor
func (pt *PathTracingIntegrator) applyRussianRoulette(depth int, throughput core.Vec3, sampler core.Sampler) (bool, float64) {
	currentBounce := pt.config.MaxDepth - depth
	if pt.config.RussianRouletteMinBounces <= 0 || currentBounce < pt.config.RussianRouletteMinBounces {
		return false, 1.0
	}

	// survivalProb between 0.5 and 0.95 limits compensation to between 1.05x and 2.0x
	survivalProb := math.Min(0.95, math.Max(0.5, throughput.Luminance()))

	if sampler.Get1D() > survivalProb {
		return true, 0.0
	}

	return false, 1.0 / survivalProb
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
