package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizePlan(t *testing.T) {
	tests := []struct {
		name         string
		curW, curH   int
		newW, newH   int
		wantW, wantH int
		wantChanged  bool
	}{
		{"grown", 1280, 720, 1920, 1080, 1920, 1080, true},
		{"shrunk", 1280, 720, 640, 480, 640, 480, true},
		{"one axis", 1280, 720, 1280, 800, 1280, 800, true},
		{"unchanged", 1280, 720, 1280, 720, 1280, 720, false},
		{"minimized keeps old size", 1280, 720, 0, 0, 1280, 720, false},
		{"zero height keeps old size", 1280, 720, 1280, 0, 1280, 720, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, changed := resizePlan(tt.curW, tt.curH, tt.newW, tt.newH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}
