package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackBlockFaceLayout(t *testing.T) {
	q := Quad{
		Width:  32,
		Height: 1,
		Pos:    [3]int{31, 31, 31},
		Normal: NormalNegZ,
	}
	data := PackBlockFace(q)

	assert.Equal(t, uint32(31), data&0x1f, "width field")
	assert.Equal(t, uint32(0), (data>>faceHeightShift)&0x1f, "height field")
	assert.Equal(t, uint32(31), (data>>faceXShift)&0x3f, "x field")
	assert.Equal(t, uint32(31), (data>>faceYShift)&0x3f, "y field")
	assert.Equal(t, uint32(31), (data>>faceZShift)&0x3f, "z field")
	assert.Equal(t, uint32(NormalNegZ), (data>>faceNormalShift)&0x7, "normal field")
}

func TestPackBlockFaceRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		quad Quad
	}{
		{"unit at origin", Quad{Width: 1, Height: 1, Normal: NormalPosX}},
		{"full span", Quad{Width: 32, Height: 32, Pos: [3]int{31, 31, 31}, Normal: NormalNegZ}},
		{"mixed", Quad{Width: 7, Height: 3, Pos: [3]int{1, 16, 30}, Normal: NormalNegY}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnpackBlockFace(PackBlockFace(tt.quad))
			assert.Equal(t, tt.quad.Width, got.Width)
			assert.Equal(t, tt.quad.Height, got.Height)
			assert.Equal(t, tt.quad.Pos, got.Pos)
			assert.Equal(t, tt.quad.Normal, got.Normal)
		})
	}
}

func TestPackBlockFaceDistinctNormals(t *testing.T) {
	seen := map[uint32]bool{}
	for _, n := range Normals {
		data := PackBlockFace(Quad{Width: 1, Height: 1, Normal: n})
		assert.False(t, seen[data], "normal %s collides", n)
		seen[data] = true
	}
}
