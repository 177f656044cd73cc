// Package world holds the voxel data model: blocks, chunks, procedural
// generation, and the mesher that turns chunk neighborhoods into quads
// for the renderer.
package world

// Block is a voxel material.
type Block uint8

const (
	BlockAir Block = iota
	BlockStone
)

// Transparent reports whether light passes through the block. Transparent
// blocks never emit faces and never occlude neighbors.
func (b Block) Transparent() bool {
	return b == BlockAir
}

// MaterialIndex is the texture array layer used for the block's faces.
// Air has no faces and no material.
func (b Block) MaterialIndex() uint32 {
	switch b {
	case BlockStone:
		return 0
	default:
		return 0
	}
}

func (b Block) String() string {
	switch b {
	case BlockAir:
		return "air"
	case BlockStone:
		return "stone"
	default:
		return "unknown"
	}
}
