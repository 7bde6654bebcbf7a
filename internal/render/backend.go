package render

import "github.com/Faultbox/lightbake/pkg/math"

// Backend is the narrow rendering interface the stitcher drives: texture
// allocation, full-texture upload/readback, frame bracketing, and executing
// one view at a time. Implementations are not safe for concurrent use; the
// caller serializes jobs.
type Backend interface {
	// CreateTexture allocates a square single-mip render-target texture.
	CreateTexture(size int, format TextureFormat) (Texture, error)

	// UploadTexture replaces the full contents of the texture. data holds one
	// Vec4 per texel, row-major with row 0 at V = 0; channels beyond the
	// texture format are discarded.
	UploadTexture(tex Texture, data []math.Vec4) error

	// ReadTexture reads the full contents of the texture into data, one Vec4
	// per texel in the same layout UploadTexture consumes. Channels beyond
	// the texture format read back as zero (alpha as one).
	ReadTexture(tex Texture, data []math.Vec4) error

	// BeginFrame opens a rendering frame. It fails when the device is lost or
	// the backend has been released; no rendering may happen outside a frame.
	BeginFrame() error

	// EndFrame closes the current rendering frame.
	EndFrame()

	// RenderView executes the view's render path into its target texture.
	RenderView(view *View) error

	// Release frees all backend resources. The backend is unusable afterwards.
	Release()
}
