package renderer

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Aspect ratio (width/height)
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens aperture diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focus plane (0 = distance to LookAt)
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays for rendering with optional defocus blur and motion blur
type Camera struct {
	config     CameraConfig
	width      int
	height     int
	center     core.Vec3
	upperLeft  core.Vec3 // Top-left corner of the viewport
	deltaU     core.Vec3 // Offset from one pixel to the next horizontally
	deltaV     core.Vec3 // Offset from one pixel to the next vertically (downward)
	u, v, w    core.Vec3 // Camera frame
	lensRadius float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(1, config.Width)
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 1.0
	}
	height := max(1, int(float64(width)/aspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	// Camera frame
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport dimensions on the focus plane
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	deltaU := viewportU.Multiply(1.0 / float64(width))
	deltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	return &Camera{
		config:     config,
		width:      width,
		height:     height,
		center:     config.Center,
		upperLeft:  upperLeft,
		deltaU:     deltaU,
		deltaV:     deltaV,
		u:          u,
		v:          v,
		w:          w,
		lensRadius: config.Aperture / 2,
	}
}

// ImageSize returns the image dimensions in pixels
func (c *Camera) ImageSize() (width, height int) {
	return c.width, c.height
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay generates a jittered ray through pixel (i, j), where (0, 0) is the top-left pixel.
// The ray time is uniform in the shutter interval.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	pixelSample := c.upperLeft.
		Add(c.deltaU.Multiply(float64(i) + jitter.X)).
		Add(c.deltaV.Multiply(float64(j) + jitter.Y))

	origin := c.center
	if c.lensRadius > 0 {
		lens := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(lens.X)).Add(c.v.Multiply(lens.Y))
	}

	time := c.config.Time0
	if c.config.Time1 > c.config.Time0 {
		time += sampler.Get1D() * (c.config.Time1 - c.config.Time0)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), time)
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.Aperture > 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance > 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.Time1 > override.Time0 {
		result.Time0 = override.Time0
		result.Time1 = override.Time1
	}

	return result
}
