package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

// options holds the parsed command line flags
type options struct {
	sceneType string
	width     int
	samples   int
	maxDepth  int
	workers   int
	tileSize  int
	seed      int64
	texture   string
	gridSize  int
	outputDir string
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneType, "scene", "spheres", "Scene to render (see -help for the list)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.samples, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.maxDepth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = logical CPU count)")
	flag.IntVar(&opts.tileSize, "tile", 0, "Tile size in pixels (0 = default)")
	flag.Int64Var(&opts.seed, "seed", 42, "Seed for scene generation, BVH axes and pixel sampling")
	flag.StringVar(&opts.texture, "texture", "", "PNG or JPEG image for the textures scene")
	flag.IntVar(&opts.gridSize, "grid", 0, "Spheres per side for the sphere-grid scene (0 = default)")
	flag.StringVar(&opts.outputDir, "output", "output", "Directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	logger := renderer.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("BVH Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

func run(ctx context.Context, opts options, logger core.Logger) error {
	logHostInfo(logger)

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}

	buildStart := time.Now()
	if err := selectedScene.Build(core.NewSeededSampler(opts.seed), logger); err != nil {
		return fmt.Errorf("failed to build scene %s: %w", opts.sceneType, err)
	}
	logger.Printf("Scene %s built in %v (%d objects, %d lights)\n",
		opts.sceneType, time.Since(buildStart), len(selectedScene.Objects), len(selectedScene.Lights))

	config := samplingConfig(selectedScene.SamplingConfig, opts)
	raytracer := renderer.NewRaytracer(selectedScene, config, logger)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Samples per pixel: %.1f (%d discarded)\n", stats.AverageSamples, stats.DiscardedSamples)
	logger.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(img))

	filename, err := saveImage(img, filepath.Join(opts.outputDir, opts.sceneType), time.Now())
	if err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the requested scene with the command line overrides applied
func createScene(opts options) (*scene.Scene, error) {
	return scene.New(opts.sceneType, scene.Options{
		Sampler:     core.NewSeededSampler(opts.seed),
		TexturePath: opts.texture,
		GridSize:    opts.gridSize,
		Camera:      renderer.CameraConfig{Width: opts.width},
	})
}

// samplingConfig applies the command line overrides to the scene's sampling defaults
func samplingConfig(base renderer.SamplingConfig, opts options) renderer.SamplingConfig {
	config := base
	if opts.samples > 0 {
		config.SamplesPerPixel = opts.samples
	}
	if opts.maxDepth > 0 {
		config.MaxDepth = opts.maxDepth
	}
	if opts.tileSize > 0 {
		config.TileSize = opts.tileSize
	}
	config.NumWorkers = opts.workers
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaultWorkers()
	}
	config.Seed = opts.seed
	return config
}

// defaultWorkers returns the logical CPU count, or 0 to let the renderer decide
func defaultWorkers() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return 0
	}
	return count
}

// logHostInfo reports the CPU and memory of the machine doing the render
func logHostInfo(logger core.Logger) {
	cpuInfo, err := cpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		logger.Printf("CPU information unavailable: %v\n", err)
	} else {
		logger.Printf("CPU: %s (%.2f GHz)\n", cpuInfo[0].ModelName, cpuInfo[0].Mhz/1000)
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Printf("Memory information unavailable: %v\n", err)
		return
	}
	logger.Printf("Memory: %d MB total, %d MB available\n", memInfo.Total/(1024*1024), memInfo.Available/(1024*1024))
}

// saveImage writes img as a timestamped PNG under dir and returns the file name
func saveImage(img image.Image, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("failed to save PNG: %w", err)
	}
	return filename, nil
}
