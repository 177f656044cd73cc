package world

// Quad is one visible block face. Width and height are in blocks and are
// always at least 1. AmbientOcclusion holds the four corner occlusion
// levels, column-wise starting at the corner with the smallest in-plane
// coordinates.
type Quad struct {
	Block  Block
	Normal Normal
	Width  uint32
	Height uint32
	Pos    [3]int
	// Levels 0 (open) through 4 (fully enclosed).
	AmbientOcclusion [4]uint8
}

// NaiveQuads emits one unit quad per visible block face of the center
// chunk. A face is visible when the block in front of it is transparent.
func NaiveQuads(n *Neighborhood) []Quad {
	var quads []Quad
	for z := 0; z < ChunkSize; z++ {
		for y := 0; y < ChunkSize; y++ {
			for x := 0; x < ChunkSize; x++ {
				quads = appendBlockQuads(quads, n, x, y, z)
			}
		}
	}
	return quads
}

func appendBlockQuads(quads []Quad, n *Neighborhood, x, y, z int) []Quad {
	block, ok := n.BlockAt(x, y, z)
	if !ok || block.Transparent() {
		return quads
	}
	for _, normal := range Normals {
		d := normal.UnitDirection()
		other, _ := n.BlockAt(x+d[0], y+d[1], z+d[2])
		if !other.Transparent() {
			continue
		}
		quad := Quad{
			Block:  block,
			Normal: normal,
			Width:  1,
			Height: 1,
			Pos:    [3]int{x, y, z},
		}
		for corner := 0; corner < 4; corner++ {
			quad.AmbientOcclusion[corner] = cornerOcclusion(n, quad.Pos, normal, corner)
		}
		quads = append(quads, quad)
	}
	return quads
}

// cornerOcclusion grades a quad corner by the solid blocks adjacent to it
// one layer out from the face: 4 when both edge neighbors are solid
// (the corner block no longer matters), 3 or 2 for a single edge neighbor
// with or without the corner block, 1 for the corner block alone, 0 when
// the corner is open.
func cornerOcclusion(n *Neighborhood, pos [3]int, normal Normal, corner int) uint8 {
	a0, a1 := normal.PerpendicularAxes()
	d := normal.UnitDirection()
	base := [3]int{pos[0] + d[0], pos[1] + d[1], pos[2] + d[2]}

	s0 := 1
	if corner == 0 || corner == 1 {
		s0 = -1
	}
	s1 := 1
	if corner == 0 || corner == 2 {
		s1 = -1
	}
	o0 := a0.UnitDirection()
	o1 := a1.UnitDirection()

	solid := func(dx, dy, dz int) bool {
		return n.SolidAt(base[0]+dx, base[1]+dy, base[2]+dz)
	}
	left := solid(o0[0]*s0, o0[1]*s0, o0[2]*s0)
	right := solid(o1[0]*s1, o1[1]*s1, o1[2]*s1)
	cornerSolid := solid(o0[0]*s0+o1[0]*s1, o0[1]*s0+o1[1]*s1, o0[2]*s0+o1[2]*s1)

	switch {
	case left && right:
		return 4
	case left || right:
		if cornerSolid {
			return 3
		}
		return 2
	case cornerSolid:
		return 1
	default:
		return 0
	}
}
