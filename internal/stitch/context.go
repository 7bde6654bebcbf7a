package stitch

import (
	"fmt"

	"github.com/Faultbox/lightbake/internal/render"
)

// Context owns the two ping-pong render targets for one stitching job. Both
// textures always have the same size and format; the job swaps which one is
// "current" by reference, never by copying texel data.
type Context struct {
	backend render.Backend
	size    int
	ping    render.Texture
	pong    render.Texture
}

// InitializeContext allocates the ping-pong render targets for a lightmap of
// the given edge size and channel count. Invalid channel counts and
// non-positive sizes are programming errors and panic; allocation failure is
// returned and aborts the job before any stitching happens.
func InitializeContext(backend render.Backend, lightmapSize, numChannels int) (*Context, error) {
	if lightmapSize <= 0 {
		panic(fmt.Sprintf("stitch: invalid lightmap size %d", lightmapSize))
	}
	format := render.FormatForChannels(numChannels)

	ping, err := backend.CreateTexture(lightmapSize, format)
	if err != nil {
		return nil, fmt.Errorf("allocating ping texture: %w", err)
	}
	pong, err := backend.CreateTexture(lightmapSize, format)
	if err != nil {
		ping.Release()
		return nil, fmt.Errorf("allocating pong texture: %w", err)
	}

	return &Context{
		backend: backend,
		size:    lightmapSize,
		ping:    ping,
		pong:    pong,
	}, nil
}

// Size returns the lightmap edge size in texels.
func (c *Context) Size() int {
	return c.size
}

// Release frees both render targets. Safe to call more than once.
func (c *Context) Release() {
	if c.ping != nil {
		c.ping.Release()
		c.ping = nil
	}
	if c.pong != nil {
		c.pong.Release()
		c.pong = nil
	}
}
