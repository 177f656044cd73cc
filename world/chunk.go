package world

// ChunkSize is the edge length of a cubic chunk in blocks.
const ChunkSize = 32

// Blocks is the voxel payload of one chunk, laid out x-major then y then z.
type Blocks []Block

// NewBlocks allocates an all-air chunk.
func NewBlocks() Blocks {
	return make(Blocks, ChunkSize*ChunkSize*ChunkSize)
}

func blockIndex(x, y, z int) int {
	return x + y*ChunkSize + z*ChunkSize*ChunkSize
}

// At returns the block at chunk-local coordinates. Coordinates must be
// in [0, ChunkSize).
func (b Blocks) At(x, y, z int) Block {
	return b[blockIndex(x, y, z)]
}

// Set stores a block at chunk-local coordinates.
func (b Blocks) Set(x, y, z int, block Block) {
	b[blockIndex(x, y, z)] = block
}

// Neighborhood is a chunk plus its 26 neighbors, letting the mesher look
// across chunk borders without stitching. Missing neighbors are nil.
type Neighborhood struct {
	chunks [27]Blocks
}

func neighborhoodIndex(x, y, z int) int {
	return (x + 1) + 3*(y+1) + 9*(z+1)
}

// PutChunk stores a chunk at neighborhood offset pos, each component in
// {-1, 0, 1}.
func (n *Neighborhood) PutChunk(x, y, z int, blocks Blocks) {
	n.chunks[neighborhoodIndex(x, y, z)] = blocks
}

// Chunk returns the chunk at neighborhood offset pos, or nil.
func (n *Neighborhood) Chunk(x, y, z int) Blocks {
	return n.chunks[neighborhoodIndex(x, y, z)]
}

// Middle returns the center chunk.
func (n *Neighborhood) Middle() Blocks {
	return n.Chunk(0, 0, 0)
}

func neighborhoodAxis(c int) int {
	if c < 0 {
		return 0
	}
	if c < ChunkSize {
		return 1
	}
	return 2
}

// BlockAt resolves coordinates relative to the center chunk, reaching
// into neighbors for out-of-range components. The second result is false
// when the covering chunk is absent.
func (n *Neighborhood) BlockAt(x, y, z int) (Block, bool) {
	xn, yn, zn := neighborhoodAxis(x), neighborhoodAxis(y), neighborhoodAxis(z)
	chunk := n.chunks[xn+3*yn+9*zn]
	if chunk == nil {
		return BlockAir, false
	}
	xl := ((x % ChunkSize) + ChunkSize) % ChunkSize
	yl := ((y % ChunkSize) + ChunkSize) % ChunkSize
	zl := ((z % ChunkSize) + ChunkSize) % ChunkSize
	return chunk.At(xl, yl, zl), true
}

// SolidAt reports whether a known, non-transparent block covers the
// position. Missing chunks count as not solid.
func (n *Neighborhood) SolidAt(x, y, z int) bool {
	block, ok := n.BlockAt(x, y, z)
	return ok && !block.Transparent()
}
