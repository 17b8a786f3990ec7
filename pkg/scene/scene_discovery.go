package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for a scene ID that is not built in
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string
	Description string
}

// Options carries the inputs some built-in scenes need
type Options struct {
	Sampler     core.Sampler          // Random choices for generated scenes
	TexturePath string                // Image for the texture scene (empty = UV debug)
	GridSize    int                   // Sphere grid size (0 = default)
	Camera      renderer.CameraConfig // Camera overrides; zero fields keep scene defaults
}

type builtinScene struct {
	info   SceneInfo
	create func(opts Options) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{ID: "spheres", DisplayName: "Random Spheres", Description: "Random small spheres around three large ones, with motion blur and defocus"},
		create: func(opts Options) (*Scene, error) {
			return NewSpheresScene(opts.Sampler, opts.Camera), nil
		},
	},
	{
		info: SceneInfo{ID: "cornell-box", DisplayName: "Cornell Box", Description: "Cornell box with an aluminum block and a glass sphere"},
		create: func(opts Options) (*Scene, error) {
			return NewCornellScene(opts.Camera), nil
		},
	},
	{
		info: SceneInfo{ID: "light-rect", DisplayName: "Area Lights", Description: "Mirror sphere lit by an emissive sphere and rectangle in the dark"},
		create: func(opts Options) (*Scene, error) {
			return NewLightRectScene(opts.Camera), nil
		},
	},
	{
		info: SceneInfo{ID: "textures", DisplayName: "Textures", Description: "Checker, UV debug and image textures on spheres, rectangles and a box"},
		create: func(opts Options) (*Scene, error) {
			return NewTextureScene(opts.TexturePath, opts.Camera)
		},
	},
	{
		info: SceneInfo{ID: "sphere-grid", DisplayName: "Sphere Grid", Description: "Grid of rainbow-colored metallic spheres"},
		create: func(opts Options) (*Scene, error) {
			gridSize := opts.GridSize
			if gridSize <= 0 {
				gridSize = DefaultSphereGridSize
			}
			return NewSphereGridScene(gridSize, opts.Camera), nil
		},
	},
	{
		info: SceneInfo{ID: "normals", DisplayName: "Surface Normals", Description: "Debug view shading surfaces by their normals"},
		create: func(opts Options) (*Scene, error) {
			return NewNormalsScene(opts.Camera), nil
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// New creates the built-in scene with the given ID. The scene still needs Build before rendering.
func New(id string, opts Options) (*Scene, error) {
	if opts.Sampler == nil {
		opts.Sampler = core.NewSeededSampler(42)
	}

	for _, b := range builtinScenes {
		if b.info.ID == id {
			s, err := b.create(opts)
			if err != nil {
				return nil, fmt.Errorf("scene %s: %w", id, err)
			}
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}
