package render

import "github.com/Faultbox/lightbake/pkg/math"

// Material binds a technique, a source texture and a diffuse color to a
// drawable. DiffColor RGB modulates the sampled color; DiffColor W is the
// blend constant for BlendConstantAlpha techniques.
type Material struct {
	Technique   Technique
	Texture     Texture
	DiffColor   math.Vec4
	RenderOrder int
}
