package render

import "fmt"

// BlendMode selects how a fragment is combined with the render target.
type BlendMode int

const (
	// BlendReplace overwrites the destination texel.
	BlendReplace BlendMode = iota
	// BlendConstantAlpha interpolates all four channels of the destination
	// toward the fragment by the material's diffuse alpha. The alpha acts as
	// a blend constant, not as a channel multiplier, so non-color data in the
	// fourth channel blends the same way as color.
	BlendConstantAlpha
)

// FilterMode selects how the bound texture is sampled.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterBilinear
)

// Technique is a named, immutable rendering configuration: how fragments
// sample the bound texture and how they are blended into the target.
type Technique struct {
	Name   string
	Blend  BlendMode
	Filter FilterMode
}

// builtinTechniques is the read-only table of techniques resolvable by name.
var builtinTechniques = map[string]Technique{
	// Copies the input buffer forward unmodified.
	"Stitch/Background": {
		Name:   "Stitch/Background",
		Blend:  BlendReplace,
		Filter: FilterNearest,
	},
	// Fetches the neighboring chart's texel and alpha-blends it over the seam.
	"Stitch/SeamBlend": {
		Name:   "Stitch/SeamBlend",
		Blend:  BlendConstantAlpha,
		Filter: FilterBilinear,
	},
}

// ResolveTechnique returns the built-in technique with the given name.
func ResolveTechnique(name string) (Technique, error) {
	tech, ok := builtinTechniques[name]
	if !ok {
		return Technique{}, fmt.Errorf("render: unknown technique %q", name)
	}
	return tech, nil
}
