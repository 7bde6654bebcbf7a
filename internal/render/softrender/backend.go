package softrender

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

var errReleased = errors.New("softrender: backend released")

// Backend implements render.Backend on the CPU.
type Backend struct {
	released bool
	inFrame  bool
}

// New creates a software rendering backend. It is immediately ready; there is
// no device to initialize.
func New() *Backend {
	return &Backend{}
}

// CreateTexture allocates a square render target with all texels zeroed.
func (b *Backend) CreateTexture(size int, format render.TextureFormat) (render.Texture, error) {
	if b.released {
		return nil, errReleased
	}
	if size <= 0 {
		return nil, fmt.Errorf("softrender: invalid texture size %d", size)
	}
	if format.Channels() == 0 {
		return nil, fmt.Errorf("softrender: invalid texture format %v", format)
	}
	return &texture{
		size:   size,
		format: format,
		texels: make([]math.Vec4, size*size),
	}, nil
}

// UploadTexture replaces the texture contents, masking channels the format
// does not carry.
func (b *Backend) UploadTexture(tex render.Texture, data []math.Vec4) error {
	t, err := b.target(tex)
	if err != nil {
		return err
	}
	if len(data) != t.size*t.size {
		return fmt.Errorf("softrender: upload size %d does not match texture %dx%d", len(data), t.size, t.size)
	}
	for i, v := range data {
		t.texels[i] = t.maskChannels(v)
	}
	return nil
}

// ReadTexture copies the full texture contents into data.
func (b *Backend) ReadTexture(tex render.Texture, data []math.Vec4) error {
	t, err := b.target(tex)
	if err != nil {
		return err
	}
	if len(data) != t.size*t.size {
		return fmt.Errorf("softrender: read size %d does not match texture %dx%d", len(data), t.size, t.size)
	}
	copy(data, t.texels)
	return nil
}

// BeginFrame opens a rendering frame. It fails once the backend is released,
// which is the software analogue of a lost device.
func (b *Backend) BeginFrame() error {
	if b.released {
		return errReleased
	}
	b.inFrame = true
	return nil
}

// EndFrame closes the current rendering frame.
func (b *Backend) EndFrame() {
	b.inFrame = false
}

// RenderView executes the view's render path into its target texture.
func (b *Backend) RenderView(view *render.View) error {
	if b.released {
		return errReleased
	}
	if !b.inFrame {
		return errors.New("softrender: RenderView outside frame")
	}
	target, err := b.target(view.Target)
	if err != nil {
		return err
	}

	for _, pass := range view.Viewport.RenderPath.Passes {
		switch pass.Kind {
		case render.PassClear:
			clearColor := target.maskChannels(pass.ClearColor)
			for i := range target.texels {
				target.texels[i] = clearColor
			}
		case render.PassScene:
			for _, node := range view.Viewport.Scene.Nodes() {
				if err := b.drawNode(target, view.Viewport.Scene.Camera, node); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Release frees all backend resources.
func (b *Backend) Release() {
	b.released = true
	b.inFrame = false
}

// target checks that tex is a live texture of this backend.
func (b *Backend) target(tex render.Texture) (*texture, error) {
	if b.released {
		return nil, errReleased
	}
	t, ok := tex.(*texture)
	if !ok {
		return nil, fmt.Errorf("softrender: foreign texture %T", tex)
	}
	if t.released {
		return nil, errors.New("softrender: texture released")
	}
	return t, nil
}
