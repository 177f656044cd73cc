package world

// Compact block-face encoding, one face in four bytes:
//
//	bits  0-4   width - 1
//	bits  5-9   height - 1
//	bits 10-15  x in chunk
//	bits 16-21  y in chunk
//	bits 22-27  z in chunk
//	bits 28-30  face direction
//
// Width and height span 1-32, which fits five bits once shifted down by
// one; the impossible value 0 is reclaimed.
const (
	faceHeightShift = 5
	faceXShift      = 10
	faceYShift      = 16
	faceZShift      = 22
	faceNormalShift = 28
)

// PackBlockFace encodes a quad into the compact face format. The quad's
// position components must be chunk-local.
func PackBlockFace(q Quad) uint32 {
	var data uint32
	data |= q.Width - 1
	data |= (q.Height - 1) << faceHeightShift
	data |= uint32(q.Pos[0]) << faceXShift
	data |= uint32(q.Pos[1]) << faceYShift
	data |= uint32(q.Pos[2]) << faceZShift
	data |= uint32(q.Normal) << faceNormalShift
	return data
}

// UnpackBlockFace decodes the compact face format back into a quad.
// Block and occlusion corners are not part of the encoding.
func UnpackBlockFace(data uint32) Quad {
	return Quad{
		Width:  (data & 0x1f) + 1,
		Height: ((data >> faceHeightShift) & 0x1f) + 1,
		Pos: [3]int{
			int((data >> faceXShift) & 0x3f),
			int((data >> faceYShift) & 0x3f),
			int((data >> faceZShift) & 0x3f),
		},
		Normal: Normal((data >> faceNormalShift) & 0x7),
	}
}
