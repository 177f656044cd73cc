package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	xdraw "golang.org/x/image/draw"

	"github.com/voxshade/voxshade/shading"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// MeshAsset is an indexed triangle mesh in the shading vertex format.
type MeshAsset struct {
	Vertices []shading.Vertex
	Indices  []uint32
}

// TextureAsset is an RGBA8 image ready for upload as one array layer.
type TextureAsset struct {
	Pixels []uint8
	Width  int
	Height int
}

// AssetServer loads and caches meshes and texture layers.
type AssetServer struct {
	log      Logger
	meshes   map[AssetId]*MeshAsset
	textures map[AssetId]*TextureAsset
}

func NewAssetServer(log Logger) *AssetServer {
	if log == nil {
		log = NewNopLogger()
	}
	return &AssetServer{
		log:      log,
		meshes:   make(map[AssetId]*MeshAsset),
		textures: make(map[AssetId]*TextureAsset),
	}
}

func (s *AssetServer) Mesh(id AssetId) *MeshAsset       { return s.meshes[id] }
func (s *AssetServer) Texture(id AssetId) *TextureAsset { return s.textures[id] }

// AddMesh registers an in-memory mesh.
func (s *AssetServer) AddMesh(vertices []shading.Vertex, indices []uint32) AssetId {
	id := makeAssetId()
	s.meshes[id] = &MeshAsset{Vertices: vertices, Indices: indices}
	return id
}

// LoadTexturePNG decodes a PNG and resizes it to the material layer
// size so every layer fits the same texture array.
func (s *AssetServer) LoadTexturePNG(filename string, layerSize int) (AssetId, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("open texture %s: %w", filename, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode texture %s: %w", filename, err)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, layerSize, layerSize))
	xdraw.CatmullRom.Scale(rgba, rgba.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	id := makeAssetId()
	s.textures[id] = &TextureAsset{
		Pixels: rgba.Pix,
		Width:  layerSize,
		Height: layerSize,
	}
	s.log.Debugf("loaded texture %s as %s (%dx%d)", filename, id, layerSize, layerSize)
	return id, nil
}

// LoadMeshGLTF reads the first primitive of the first mesh in a glTF
// document. Missing color attributes default to white, missing UVs to
// zero.
func (s *AssetServer) LoadMeshGLTF(filename string) (AssetId, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return "", fmt.Errorf("open gltf %s: %w", filename, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return "", fmt.Errorf("gltf %s has no mesh primitives", filename)
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return "", fmt.Errorf("gltf %s has no positions", filename)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return "", fmt.Errorf("gltf %s positions: %w", filename, err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return "", fmt.Errorf("gltf %s normals: %w", filename, err)
		}
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return "", fmt.Errorf("gltf %s uvs: %w", filename, err)
		}
	}

	vertices := make([]shading.Vertex, len(positions))
	for i, p := range positions {
		v := shading.Vertex{
			Position: mgl32.Vec3{p[0], p[1], p[2]},
			Color:    mgl32.Vec3{1, 1, 1},
		}
		if normals != nil {
			v.Normal = mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]}
		}
		if uvs != nil {
			v.UV = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
		vertices[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return "", fmt.Errorf("gltf %s indices: %w", filename, err)
		}
	} else {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	id := makeAssetId()
	s.meshes[id] = &MeshAsset{Vertices: vertices, Indices: indices}
	s.log.Debugf("loaded mesh %s as %s (%d vertices, %d indices)", filename, id, len(vertices), len(indices))
	return id, nil
}

// BuildTextureArray assembles texture layers into a CPU texture array
// usable by both the soft renderer and the GPU upload path. Layers must
// all share the layer size.
func (s *AssetServer) BuildTextureArray(layers []AssetId) (*shading.TextureArray, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("texture array needs at least one layer")
	}
	first := s.textures[layers[0]]
	if first == nil {
		return nil, fmt.Errorf("unknown texture %s", layers[0])
	}
	arr := shading.NewTextureArray(first.Width, first.Height, len(layers))
	for layer, id := range layers {
		tex := s.textures[id]
		if tex == nil {
			return nil, fmt.Errorf("unknown texture %s", id)
		}
		if tex.Width != first.Width || tex.Height != first.Height {
			return nil, fmt.Errorf("texture %s is %dx%d, want %dx%d", id, tex.Width, tex.Height, first.Width, first.Height)
		}
		for y := 0; y < tex.Height; y++ {
			for x := 0; x < tex.Width; x++ {
				i := (y*tex.Width + x) * 4
				arr.SetTexel(x, y, layer, mgl32.Vec4{
					float32(tex.Pixels[i]) / 255,
					float32(tex.Pixels[i+1]) / 255,
					float32(tex.Pixels[i+2]) / 255,
					float32(tex.Pixels[i+3]) / 255,
				})
			}
		}
	}
	return arr, nil
}

// SolidColorTexture creates a single-color layer, handy as a fallback
// material.
func (s *AssetServer) SolidColorTexture(size int, r, g, b, a uint8) AssetId {
	pixels := make([]uint8, size*size*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = r, g, b, a
	}
	id := makeAssetId()
	s.textures[id] = &TextureAsset{Pixels: pixels, Width: size, Height: size}
	return id
}
