// Package stitch blends lightmap texels across UV-chart seams. Charts are
// baked independently, so texels on either side of a chart boundary disagree;
// stitching renders the seams repeatedly over the lightmap, each pass pulling
// the two sides closer together until the discontinuity is invisible.
package stitch

import (
	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

// Seam is one matched pair of UV edges on the boundary between two lightmap
// charts. Positions holds the edge on the chart being corrected,
// OtherPositions the same surface edge as mapped on the neighboring chart.
type Seam struct {
	Positions      [2]math.Vec2
	OtherPositions [2]math.Vec2
}

// SeamVector is an ordered sequence of detected seams.
type SeamVector []Seam

// CreateSeamsModel builds the renderable line-list geometry for the seams:
// one vertex per seam endpoint, five floats each — own-side X, a zero
// elevation marker, own-side Y flipped for the render target, then the
// other side's UV. An empty seam vector produces a valid zero-draw model.
func CreateSeamsModel(seams SeamVector) *render.Model {
	vertices := make([]float32, 0, len(seams)*2*render.VertexStride)
	for _, seam := range seams {
		for i := 0; i < 2; i++ {
			vertices = append(vertices,
				seam.Positions[i].X,
				0,
				1-seam.Positions[i].Y,
				seam.OtherPositions[i].X,
				seam.OtherPositions[i].Y,
			)
		}
	}

	return &render.Model{
		Vertices:    vertices,
		Topology:    render.TopologyLineList,
		VertexCount: len(seams) * 2,
		Bounds:      render.UnitBounds(),
	}
}
