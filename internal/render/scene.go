package render

import (
	gomath "math"
	"sort"

	"github.com/Faultbox/lightbake/pkg/math"
)

// Camera is an orthographic camera looking straight down at the XZ plane.
type Camera struct {
	OrthoSize float32 // half-extent of the square view volume
	NearClip  float32
	FarClip   float32
}

// ViewProjection returns the combined view-projection matrix. The top-down
// view brings the XZ plane into clip XY with +Z mapping to +Y (up).
func (c Camera) ViewProjection() math.Mat4 {
	proj := math.Ortho(-c.OrthoSize, c.OrthoSize, -c.OrthoSize, c.OrthoSize, c.NearClip, c.FarClip)
	view := math.RotateX(-gomath.Pi / 2)
	return proj.Mul(view)
}

// Node places a model and material in the scene with a 2D transform on the
// XZ plane.
type Node struct {
	Name     string
	Model    *Model
	Material *Material
	Position math.Vec2 // XZ translation
	Scale    math.Vec2 // XZ scale; zero value means identity
}

// Transform returns the node's model matrix.
func (n *Node) Transform() math.Mat4 {
	sx, sz := n.Scale.X, n.Scale.Y
	if sx == 0 && sz == 0 {
		sx, sz = 1, 1
	}
	return math.Translate(n.Position.X, 0, n.Position.Y).Mul(math.Scale(sx, 1, sz))
}

// Scene is an ordered set of nodes under a single camera.
type Scene struct {
	Camera Camera
	nodes  []*Node
}

// AddNode appends a node to the scene.
func (s *Scene) AddNode(node *Node) {
	s.nodes = append(s.nodes, node)
}

// Nodes returns the scene's nodes sorted by material render order. The sort
// is stable so nodes with equal order draw in insertion order.
func (s *Scene) Nodes() []*Node {
	sorted := make([]*Node, len(s.nodes))
	copy(sorted, s.nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Material.RenderOrder < sorted[j].Material.RenderOrder
	})
	return sorted
}
