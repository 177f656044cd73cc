package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxshade/voxshade/render"
	"github.com/voxshade/voxshade/shading"
	"github.com/voxshade/voxshade/softrender"
	"github.com/voxshade/voxshade/world"
)

const (
	shadowHalfExtent = 48
	shadowDepthRange = 128
)

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	variantName := flag.String("variant", "scene", "shading program: triangle, lit, shadow_array, shadow_single or scene")
	seed := flag.Uint("seed", uint(world.DefaultSeed), "terrain seed")
	fontPath := flag.String("font", "", "TTF font for the debug HUD (empty disables the HUD)")
	texturePath := flag.String("texture", "", "PNG material texture (empty uses a flat gray layer)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	variant, err := parseVariant(*variantName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	log := render.NewDefaultLogger("voxshade", *debug)

	renderer, err := render.NewRenderer(render.Config{
		Width:    *width,
		Height:   *height,
		Title:    "voxshade",
		Variant:  variant,
		FontPath: *fontPath,
		Log:      log,
	})
	if err != nil {
		log.Errorf("renderer init: %v", err)
		os.Exit(1)
	}
	defer renderer.Destroy()

	assets := render.NewAssetServer(log)
	material, err := loadMaterial(assets, *texturePath)
	if err != nil {
		log.Errorf("material: %v", err)
		os.Exit(1)
	}
	renderer.SetMaterial(material, shading.FilterNearest)

	quadCount := 0
	if variant == shading.VariantTriangle {
		vertices, indices := triangleMesh()
		renderer.SetMesh(vertices, indices, []shading.Instance{
			shading.InstanceFromMatrix(mgl32.Ident4(), 0),
		})
	} else {
		generator := world.NewGenerator(uint32(*seed))
		neighborhood := generator.GenerateNeighborhood(0, 0, 0)
		quads := world.NaiveQuads(neighborhood)
		quadCount = len(quads)
		log.Infof("meshed center chunk: %d quads", quadCount)

		vertices, indices := softrender.UnitQuad(mgl32.Vec3{1, 1, 1})
		renderer.SetMesh(vertices, indices, world.InstancesFromQuads(quads))
	}

	camera := render.NewFlyingCamera(mgl32.Vec3{16, 28, 52})

	// Direction toward the sun; the shadow pass looks along its negation.
	sunDirection := mgl32.Vec3{0.4, 0.8, 0.3}.Normalize()
	sceneCenter := mgl32.Vec3{16, 16, 16}

	globals := shading.Globals{
		AmbientLight:              mgl32.Vec3{0.25, 0.25, 0.3},
		DirectionalLight:          mgl32.Vec3{0.9, 0.85, 0.7},
		DirectionalLightDirection: sunDirection,
		FogColor:                  mgl32.Vec3{0.1, 0.2, 0.4},
		FogB:                      0.003,
	}

	for !renderer.ShouldClose() {
		input := renderer.ReadInput(&globals)
		camera.Update(input.Camera, input.Dt)

		projection := render.ReverseZPerspective(60, renderer.AspectRatio(), 0.1)
		globals.WorldToClip = projection.Mul4(camera.ViewMatrix())
		globals.CameraPosition = camera.Position
		globals.ShadowMapProjection = render.SunProjection(
			sceneCenter, sunDirection.Mul(-1), shadowHalfExtent, shadowDepthRange)

		err := renderer.RenderFrame(&globals, render.HudStats{
			QuadCount:      quadCount,
			CameraPosition: camera.Position,
			CameraForward:  camera.Forward(),
		})
		if err != nil {
			log.Errorf("frame: %v", err)
			os.Exit(1)
		}
	}
}

func parseVariant(name string) (shading.Variant, error) {
	for _, v := range shading.Variants() {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", name)
}

// loadMaterial builds the texture array for material layer 0: a PNG when
// one is given, otherwise flat stone gray.
func loadMaterial(assets *render.AssetServer, path string) (*shading.TextureArray, error) {
	const layerSize = 16
	var id render.AssetId
	if path != "" {
		var err error
		id, err = assets.LoadTexturePNG(path, layerSize)
		if err != nil {
			return nil, err
		}
	} else {
		id = assets.SolidColorTexture(layerSize, 140, 140, 145, 255)
	}
	return assets.BuildTextureArray([]render.AssetId{id})
}

// triangleMesh is the first program's hardcoded geometry: one triangle
// with red, green and blue corners.
func triangleMesh() ([]shading.Vertex, []uint32) {
	vertices := []shading.Vertex{
		{Position: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0.5, 0}},
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}},
	}
	return vertices, []uint32{0, 1, 2}
}
