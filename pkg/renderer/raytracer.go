package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel           int   // Number of rays per pixel
	MaxDepth                  int   // Maximum ray bounce depth
	RussianRouletteMinBounces int   // Bounces before Russian roulette (0 disables it)
	TileSize                  int   // Size of each tile in pixels
	NumWorkers                int   // Number of parallel workers (0 = use CPU count)
	Seed                      int64 // Base seed for the per-tile samplers
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel:           100,
		MaxDepth:                  50,
		RussianRouletteMinBounces: 10,
		TileSize:                  32,
		NumWorkers:                0,
		Seed:                      42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
}

// Raytracer renders a scene into an image using a pool of tile workers
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the scene. The image size comes from the scene's camera.
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	width, height := scene.GetCamera().ImageSize()
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		integrator: integrator.NewPathTracingIntegrator(integrator.Config{
			MaxDepth:                  config.MaxDepth,
			RussianRouletteMinBounces: config.RussianRouletteMinBounces,
		}),
		logger: logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render renders the whole image in parallel tiles.
// Each tile draws from its own seeded sampler, so the output does not depend on
// the number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()

	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize, rt.config.Seed)
	pixelStats := make([][]PixelStats, rt.height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, rt.width)
	}

	pool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (%d tiles, %d workers)...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, PixelStats: pixelStats})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var firstErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
			}
			continue
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	if firstErr != nil {
		return nil, stats, firstErr
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}

	stats.finalize()
	stats.Duration = time.Since(start)
	if stats.DiscardedSamples > 0 {
		rt.logger.Printf("Discarded %d non-finite samples\n", stats.DiscardedSamples)
	}

	return img, stats, nil
}

// RenderBounds renders pixels within bounds into pixelStats using sampler
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) RenderStats {
	camera := rt.scene.GetCamera()
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Tiles:       1,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				ray := camera.GetRay(i, j, sampler)
				sampleColor := rt.integrator.RayColor(ray, rt.scene, sampler)
				if !sampleColor.IsFinite() {
					stats.DiscardedSamples++
					continue
				}
				ps.AddSample(sampleColor)
				stats.TotalSamples++
			}
		}
	}

	return stats
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first so negative components never reach the square root
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
