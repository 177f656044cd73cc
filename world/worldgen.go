package world

// DefaultSeed is the world seed used when none is configured.
const DefaultSeed uint32 = 0xDEADBEEF

const (
	heightNoiseLayers = 3
	heightNoiseScale  = 1.0 / 32.0

	// Terrain surface stays within [baseHeight-heightAmplitude,
	// baseHeight+heightAmplitude] in world Y.
	baseHeight      = 12.0
	heightAmplitude = 8.0
)

// Generator produces chunk contents from a height field.
type Generator struct {
	noise *FractalNoise
}

// NewGenerator creates a terrain generator for a seed.
func NewGenerator(seed uint32) *Generator {
	return &Generator{
		noise: NewFractalNoise(seed, heightNoiseLayers, heightNoiseScale),
	}
}

// HeightAt returns the terrain surface height in world coordinates.
func (g *Generator) HeightAt(worldX, worldZ int) float64 {
	return baseHeight + heightAmplitude*g.noise.Get(float64(worldX), float64(worldZ))
}

// Generate fills a chunk at the given chunk position. Blocks at or below
// the height field become stone, everything above stays air.
func (g *Generator) Generate(chunkX, chunkY, chunkZ int) Blocks {
	blocks := NewBlocks()
	for z := 0; z < ChunkSize; z++ {
		worldZ := chunkZ*ChunkSize + z
		for x := 0; x < ChunkSize; x++ {
			worldX := chunkX*ChunkSize + x
			height := g.HeightAt(worldX, worldZ)
			for y := 0; y < ChunkSize; y++ {
				worldY := chunkY*ChunkSize + y
				if float64(worldY) <= height {
					blocks.Set(x, y, z, BlockStone)
				}
			}
		}
	}
	return blocks
}

// GenerateNeighborhood fills the chunk at the given position together
// with its 26 neighbors, ready for meshing.
func (g *Generator) GenerateNeighborhood(chunkX, chunkY, chunkZ int) *Neighborhood {
	n := &Neighborhood{}
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n.PutChunk(dx, dy, dz, g.Generate(chunkX+dx, chunkY+dy, chunkZ+dz))
			}
		}
	}
	return n
}
