// Package softrender is the CPU rendering backend. It rasterizes stitching
// scenes in software, deterministically and without any GPU requirement, and
// is the reference implementation the OpenGL backend is expected to match.
package softrender

import (
	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

// texture is a CPU render target. Texels are stored as full Vec4 values with
// the channels beyond the format masked to zero (alpha to one) on upload,
// matching what a GPU readback of a narrow float format produces.
type texture struct {
	size     int
	format   render.TextureFormat
	texels   []math.Vec4
	released bool
}

func (t *texture) Size() int                    { return t.size }
func (t *texture) Format() render.TextureFormat { return t.format }

func (t *texture) Release() {
	t.texels = nil
	t.released = true
}

// maskChannels zeroes the components the texture format does not carry.
func (t *texture) maskChannels(v math.Vec4) math.Vec4 {
	switch t.format.Channels() {
	case 1:
		return math.Vec4{X: v.X, W: 1}
	case 2:
		return math.Vec4{X: v.X, Y: v.Y, W: 1}
	default:
		return v
	}
}
