package scene

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Objects        []geometry.Hittable // Objects in the scene, lights included
	Lights         []geometry.Hittable // Objects sampled directly by the integrator
	TopColor       core.Vec3           // Background color straight up
	BottomColor    core.Vec3           // Background color straight down
	SamplingConfig renderer.SamplingConfig
	World          *geometry.BVHNode // Acceleration structure built by Build

	lights geometry.Hittable
}

// Build creates the BVH over the scene objects for the camera's shutter interval.
// It must be called before rendering.
func (s *Scene) Build(sampler core.Sampler, logger core.Logger) error {
	world, err := geometry.NewBVHNode(s.Objects, s.CameraConfig.Time0, s.CameraConfig.Time1, sampler)
	if err != nil {
		return fmt.Errorf("failed to build BVH: %w", err)
	}
	s.World = world

	stats := world.Stats()
	logger.Printf("BVH: %d objects, %d nodes, max depth %d, avg depth %.1f\n",
		stats.Objects, stats.TotalNodes, stats.MaxDepth, stats.AvgDepth)

	// Keep a nil interface when there is nothing to sample so the integrator
	// falls back to material sampling
	s.lights = nil
	if len(s.Lights) > 0 {
		s.lights = geometry.NewHittableList(s.Lights...)
	}

	return nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the BVH built over the scene objects
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetLights returns the objects to sample directly, or nil when there are none
func (s *Scene) GetLights() geometry.Hittable {
	return s.lights
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// AddSphereLight adds an emissive sphere that is also sampled as a light
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) *geometry.Sphere {
	light := geometry.NewSphere(center, radius, material.NewDiffuseLight(emission))
	s.Objects = append(s.Objects, light)
	s.Lights = append(s.Lights, light)
	return light
}

// AddRectLight adds an emissive axis-aligned rectangle that is also sampled as a light.
// The rectangle faces the positive axis of its plane unless flipped.
func (s *Scene) AddRectLight(plane geometry.Plane, a0, a1, b0, b1, k float64, emission core.Vec3, flipped bool) {
	var light geometry.Hittable = geometry.NewRect(plane, a0, a1, b0, b1, k, material.NewDiffuseLight(emission))
	if flipped {
		light = geometry.FlipFace(light)
	}
	s.Objects = append(s.Objects, light)
	s.Lights = append(s.Lights, light)
}

// newCamera merges the overrides into config and creates the camera
func (s *Scene) newCamera(config renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) {
	if len(cameraOverrides) > 0 {
		config = renderer.MergeCameraConfig(config, cameraOverrides[0])
	}
	s.CameraConfig = config
	s.Camera = renderer.NewCamera(config)
}
