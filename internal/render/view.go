package render

// Viewport selects what to render: a scene (with its camera) and the render
// path to execute it through.
type Viewport struct {
	Scene      *Scene
	RenderPath *RenderPath
}

// View binds a viewport to one output render target. The target is fixed at
// construction time; ping-pong rendering swaps which view is executed, not
// what a view is bound to.
type View struct {
	Viewport *Viewport
	Target   Texture
}
