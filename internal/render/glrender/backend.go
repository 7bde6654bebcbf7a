// Package glrender is the OpenGL rendering backend. It drives the stitching
// passes through go-gl using a hidden SDL window for a headless GL context.
package glrender

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lightbake/internal/logger"
	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

// Backend implements render.Backend on OpenGL 4.1 core.
type Backend struct {
	window    *sdl.Window
	glContext sdl.GLContext
	program   uint32

	locMVP       int32
	locDiffColor int32
	locTexture   int32

	// Vertex state cached per model; models are immutable.
	vaos map[*render.Model]uint32
	vbos map[*render.Model]uint32

	released bool
	inFrame  bool
}

// New creates an OpenGL backend with a hidden window and a current context.
func New() (*Backend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	window, err := sdl.CreateWindow("lightbake", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		64, 64, sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating hidden window: %w", err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating GL context: %w", err)
	}
	if err := window.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("making GL context current: %w", err)
	}

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL stitching backend initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	b := &Backend{
		window:    window,
		glContext: glContext,
		vaos:      make(map[*render.Model]uint32),
		vbos:      make(map[*render.Model]uint32),
	}

	b.program, err = compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("compiling stitch shaders: %w", err)
	}
	b.locMVP = gl.GetUniformLocation(b.program, gl.Str("uMVP\x00"))
	b.locDiffColor = gl.GetUniformLocation(b.program, gl.Str("uDiffColor\x00"))
	b.locTexture = gl.GetUniformLocation(b.program, gl.Str("uTexture\x00"))

	return b, nil
}

// CreateTexture allocates a square single-mip float render target.
func (b *Backend) CreateTexture(size int, format render.TextureFormat) (render.Texture, error) {
	if b.released {
		return nil, errors.New("glrender: backend released")
	}
	if size <= 0 {
		return nil, fmt.Errorf("glrender: invalid texture size %d", size)
	}
	return newTexture(size, format)
}

// UploadTexture replaces the full texture contents. Rows are flipped because
// OpenGL stores the image with the origin at the bottom-left.
func (b *Backend) UploadTexture(tex render.Texture, data []math.Vec4) error {
	t, err := b.target(tex)
	if err != nil {
		return err
	}
	if len(data) != t.size*t.size {
		return fmt.Errorf("glrender: upload size %d does not match texture %dx%d", len(data), t.size, t.size)
	}

	flipped := flipRows(data, t.size)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.size), int32(t.size),
		gl.RGBA, gl.FLOAT, unsafe.Pointer(&flipped[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// ReadTexture reads the full texture contents, undoing the row flip applied
// on upload. Channels the format does not carry read back as zero (alpha one).
func (b *Backend) ReadTexture(tex render.Texture, data []math.Vec4) error {
	t, err := b.target(tex)
	if err != nil {
		return err
	}
	if len(data) != t.size*t.size {
		return fmt.Errorf("glrender: read size %d does not match texture %dx%d", len(data), t.size, t.size)
	}

	scratch := make([]math.Vec4, len(data))
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.ReadPixels(0, 0, int32(t.size), int32(t.size), gl.RGBA, gl.FLOAT, unsafe.Pointer(&scratch[0]))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	copy(data, flipRows(scratch, t.size))
	return nil
}

// BeginFrame opens a rendering frame, verifying the context is still alive.
func (b *Backend) BeginFrame() error {
	if b.released {
		return errors.New("glrender: backend released")
	}
	if err := b.window.GLMakeCurrent(b.glContext); err != nil {
		return fmt.Errorf("glrender: device not ready: %w", err)
	}
	b.inFrame = true
	return nil
}

// EndFrame closes the current rendering frame and flushes GL work.
func (b *Backend) EndFrame() {
	if !b.inFrame {
		return
	}
	gl.Flush()
	b.inFrame = false
}

// RenderView executes the view's render path into its target texture.
func (b *Backend) RenderView(view *render.View) error {
	if b.released {
		return errors.New("glrender: backend released")
	}
	if !b.inFrame {
		return errors.New("glrender: RenderView outside frame")
	}
	target, err := b.target(view.Target)
	if err != nil {
		return err
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, target.fbo)
	gl.Viewport(0, 0, int32(target.size), int32(target.size))
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	for _, pass := range view.Viewport.RenderPath.Passes {
		switch pass.Kind {
		case render.PassClear:
			c := pass.ClearColor
			gl.ClearColor(c.X, c.Y, c.Z, c.W)
			gl.Clear(gl.COLOR_BUFFER_BIT)
		case render.PassScene:
			for _, node := range view.Viewport.Scene.Nodes() {
				if err := b.drawNode(view.Viewport.Scene.Camera, node); err != nil {
					gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
					return err
				}
			}
		}
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// drawNode issues one draw call for the node's model and material.
func (b *Backend) drawNode(camera render.Camera, node *render.Node) error {
	model := node.Model
	if model.VertexCount == 0 {
		return nil
	}
	input, err := b.target(node.Material.Texture)
	if err != nil {
		return err
	}

	gl.UseProgram(b.program)

	mvp := camera.ViewProjection().Mul(node.Transform())
	gl.UniformMatrix4fv(b.locMVP, 1, false, mvp.Ptr())

	diff := node.Material.DiffColor
	gl.Uniform4f(b.locDiffColor, diff.X, diff.Y, diff.Z, diff.W)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, input.id)
	gl.Uniform1i(b.locTexture, 0)

	filter := int32(gl.NEAREST)
	if node.Material.Technique.Filter == render.FilterBilinear {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)

	switch node.Material.Technique.Blend {
	case render.BlendConstantAlpha:
		gl.Enable(gl.BLEND)
		gl.BlendColor(1, 1, 1, diff.W)
		gl.BlendFunc(gl.CONSTANT_ALPHA, gl.ONE_MINUS_CONSTANT_ALPHA)
	default:
		gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(b.modelVAO(model))

	mode := uint32(gl.TRIANGLES)
	if model.Topology == render.TopologyLineList {
		mode = gl.LINES
	}
	gl.DrawArrays(mode, 0, int32(model.VertexCount))

	gl.BindVertexArray(0)
	return nil
}

// modelVAO returns the cached vertex state for the model, creating it on
// first use.
func (b *Backend) modelVAO(model *render.Model) uint32 {
	if vao, ok := b.vaos[model]; ok {
		return vao
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.Vertices)*4, unsafe.Pointer(&model.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(render.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	b.vaos[model] = vao
	b.vbos[model] = vbo
	return vao
}

// Release frees all GL resources, the context and the hidden window.
func (b *Backend) Release() {
	if b.released {
		return
	}
	b.released = true

	for _, vao := range b.vaos {
		gl.DeleteVertexArrays(1, &vao)
	}
	for _, vbo := range b.vbos {
		gl.DeleteBuffers(1, &vbo)
	}
	b.vaos = nil
	b.vbos = nil

	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
	if b.glContext != nil {
		sdl.GLDeleteContext(b.glContext)
		b.glContext = nil
	}
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
	sdl.Quit()
}

// target checks that tex is a live texture of this backend.
func (b *Backend) target(tex render.Texture) (*texture, error) {
	t, ok := tex.(*texture)
	if !ok {
		return nil, fmt.Errorf("glrender: foreign texture %T", tex)
	}
	if t.id == 0 {
		return nil, errors.New("glrender: texture released")
	}
	return t, nil
}

// flipRows returns data with its rows in reverse vertical order.
func flipRows(data []math.Vec4, size int) []math.Vec4 {
	flipped := make([]math.Vec4, len(data))
	for row := 0; row < size; row++ {
		copy(flipped[row*size:(row+1)*size], data[(size-1-row)*size:(size-row)*size])
	}
	return flipped
}
