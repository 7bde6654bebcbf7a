package stitch

import (
	"fmt"

	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

// buildStitchingScene assembles the offscreen scene for one ping-pong
// direction: a full-screen background quad that copies inputTexture forward,
// and the seam lines drawn on top, each sampling the neighboring chart's
// texel from the same input and blending it over the seam.
func buildStitchingScene(settings Settings, inputTexture render.Texture, seamsModel *render.Model) (*render.Scene, error) {
	backgroundTech, err := render.ResolveTechnique(settings.BackgroundTechnique)
	if err != nil {
		return nil, fmt.Errorf("resolving background technique: %w", err)
	}
	seamsTech, err := render.ResolveTechnique(settings.SeamsTechnique)
	if err != nil {
		return nil, fmt.Errorf("resolving seams technique: %w", err)
	}
	quad, err := render.ResolveModel(settings.BackgroundModel)
	if err != nil {
		return nil, fmt.Errorf("resolving background model: %w", err)
	}

	scene := &render.Scene{
		// Orthographic top-down camera framing [-1,1]x[-1,1]; the clip range
		// covers both draw layers.
		Camera: render.Camera{OrthoSize: 1, NearClip: -1, FarClip: 1},
	}

	scene.AddNode(&render.Node{
		Name:  "Background",
		Model: quad,
		Material: &render.Material{
			Technique:   backgroundTech,
			Texture:     inputTexture,
			DiffColor:   math.Vec4{X: 1, Y: 1, Z: 1, W: 1},
			RenderOrder: 0,
		},
	})

	scene.AddNode(&render.Node{
		Name:  "Seams",
		Model: seamsModel,
		Material: &render.Material{
			Technique:   seamsTech,
			Texture:     inputTexture,
			DiffColor:   math.Vec4{X: 1, Y: 1, Z: 1, W: settings.BlendFactor},
			RenderOrder: 1,
		},
		// Seam vertices live in [0,1] UV space; map them onto the camera's
		// [-1,1] frame.
		Position: math.Vec2{X: -1, Y: -1},
		Scale:    math.Vec2{X: 2, Y: 2},
	})

	return scene, nil
}

// buildStitchingView binds a stitching scene to its output render target.
func buildStitchingView(scene *render.Scene, renderPath *render.RenderPath, outputTexture render.Texture) *render.View {
	return &render.View{
		Viewport: &render.Viewport{
			Scene:      scene,
			RenderPath: renderPath,
		},
		Target: outputTexture,
	}
}
