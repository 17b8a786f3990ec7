package integrator

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
)

// Scene is the view of a scene an integrator needs.
// Defined here rather than in the scene package to avoid circular imports.
type Scene interface {
	// GetWorld returns the hittable holding every object, usually a BVH
	GetWorld() geometry.Hittable

	// GetLights returns the hittable sampled for direct lighting, or nil
	GetLights() geometry.Hittable

	// GetBackgroundColors returns the sky gradient seen by rays that escape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}
