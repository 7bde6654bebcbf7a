package render

import (
	"fmt"

	"github.com/Faultbox/lightbake/pkg/math"
)

// Topology selects how a model's vertices are assembled into primitives.
type Topology int

const (
	TopologyTriangleList Topology = iota
	TopologyLineList
)

// VertexStride is the number of floats per vertex: position (x, elevation
// marker, z) followed by texture coordinates (u, v).
const VertexStride = 5

// BoundingBox is an axis-aligned bounding volume.
type BoundingBox struct {
	Min, Max math.Vec3
}

// UnitBounds returns the unit-cube bounding box used by geometry drawn in
// normalized projection space rather than world space.
func UnitBounds() BoundingBox {
	return BoundingBox{
		Min: math.Vec3{X: -1, Y: -1, Z: -1},
		Max: math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Model is an immutable renderable geometry: one interleaved vertex buffer
// with an explicit draw range. A zero VertexCount is a valid empty draw.
type Model struct {
	Vertices    []float32 // interleaved, VertexStride floats per vertex
	Topology    Topology
	VertexCount int
	Bounds      BoundingBox
}

// quadModel is the full-screen background quad: two triangles covering
// [-1,1]x[-1,1] on the XZ plane. V is flipped so data row 0 of the sampled
// texture lands on the top of the render target.
var quadModel = Model{
	Vertices: []float32{
		-1, 0, -1, 0, 1,
		1, 0, -1, 1, 1,
		1, 0, 1, 1, 0,
		-1, 0, -1, 0, 1,
		1, 0, 1, 1, 0,
		-1, 0, 1, 0, 0,
	},
	Topology:    TopologyTriangleList,
	VertexCount: 6,
	Bounds:      UnitBounds(),
}

// builtinModels is the read-only table of models resolvable by name.
var builtinModels = map[string]*Model{
	"Stitch/Quad": &quadModel,
}

// ResolveModel returns the built-in model with the given name.
func ResolveModel(name string) (*Model, error) {
	model, ok := builtinModels[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown model %q", name)
	}
	return model, nil
}
