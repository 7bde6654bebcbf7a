package glrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lightbake/internal/render"
)

// texture is a GL float texture with its own framebuffer object so it can be
// used as a render target.
type texture struct {
	id     uint32
	fbo    uint32
	size   int
	format render.TextureFormat
}

func (t *texture) Size() int                    { return t.size }
func (t *texture) Format() render.TextureFormat { return t.format }

// Release deletes the GL texture and framebuffer.
func (t *texture) Release() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// glInternalFormat maps a texture format to its GL storage format.
func glInternalFormat(format render.TextureFormat) (int32, error) {
	switch format {
	case render.FormatR32F:
		return gl.R32F, nil
	case render.FormatRG32F:
		return gl.RG32F, nil
	case render.FormatRGBA32F:
		return gl.RGBA32F, nil
	default:
		return 0, fmt.Errorf("glrender: invalid texture format %v", format)
	}
}

// newTexture allocates a single-mip render-target texture of the given size.
func newTexture(size int, format render.TextureFormat) (*texture, error) {
	internalFormat, err := glInternalFormat(format)
	if err != nil {
		return nil, err
	}

	t := &texture{size: size, format: format}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(size), int32(size), 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.id, 0)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		t.Release()
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return nil, fmt.Errorf("glrender: framebuffer incomplete: 0x%x", status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}
