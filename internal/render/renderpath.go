package render

import (
	"fmt"

	"github.com/Faultbox/lightbake/pkg/math"
)

// PassKind identifies a render path pass.
type PassKind int

const (
	// PassClear fills the target with a constant color.
	PassClear PassKind = iota
	// PassScene draws the viewport's scene nodes in render order.
	PassScene
)

// Pass is one step of a render path.
type Pass struct {
	Kind       PassKind
	ClearColor math.Vec4
}

// RenderPath is a named, immutable sequence of passes producing one image.
type RenderPath struct {
	Name   string
	Passes []Pass
}

// builtinRenderPaths is the read-only table of render paths resolvable by name.
var builtinRenderPaths = map[string]*RenderPath{
	"Stitch/Forward": {
		Name: "Stitch/Forward",
		Passes: []Pass{
			{Kind: PassClear},
			{Kind: PassScene},
		},
	},
}

// LoadRenderPath returns the named render path configuration.
func LoadRenderPath(name string) (*RenderPath, error) {
	path, ok := builtinRenderPaths[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown render path %q", name)
	}
	return path, nil
}
