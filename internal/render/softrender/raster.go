package softrender

import (
	"fmt"

	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

// projected is a model vertex carried into render-target pixel space.
type projected struct {
	x, y float32 // pixel coordinates, origin top-left
	u, v float32
}

// drawNode projects the node's vertices through the camera and node transform
// and rasterizes the resulting primitives into the target.
func (b *Backend) drawNode(target *texture, camera render.Camera, node *render.Node) error {
	model := node.Model
	if model.VertexCount == 0 {
		return nil
	}
	input, err := b.target(node.Material.Texture)
	if err != nil {
		return err
	}

	mvp := camera.ViewProjection().Mul(node.Transform())
	size := float32(target.size)

	verts := make([]projected, model.VertexCount)
	for i := 0; i < model.VertexCount; i++ {
		base := i * render.VertexStride
		clip := mvp.MulVec4(math.Vec4{
			X: model.Vertices[base],
			Y: model.Vertices[base+1],
			Z: model.Vertices[base+2],
			W: 1,
		})
		verts[i] = projected{
			x: (clip.X*0.5 + 0.5) * size,
			y: (0.5 - clip.Y*0.5) * size, // clip Y up, pixel rows top-down
			u: model.Vertices[base+3],
			v: model.Vertices[base+4],
		}
	}

	switch model.Topology {
	case render.TopologyTriangleList:
		for i := 0; i+2 < model.VertexCount; i += 3 {
			b.rasterizeTriangle(target, input, node.Material, verts[i], verts[i+1], verts[i+2])
		}
	case render.TopologyLineList:
		for i := 0; i+1 < model.VertexCount; i += 2 {
			b.rasterizeLine(target, input, node.Material, verts[i], verts[i+1])
		}
	default:
		return fmt.Errorf("softrender: unknown topology %d", model.Topology)
	}
	return nil
}

// rasterizeTriangle fills pixels whose centers lie inside the triangle,
// interpolating UVs barycentrically. Edge tests are inclusive so adjacent
// triangles sharing an edge leave no gaps.
func (b *Backend) rasterizeTriangle(target, input *texture, mat *render.Material, p0, p1, p2 projected) {
	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}
	sign := float32(1)
	if area < 0 {
		sign = -1
		area = -area
	}

	minX := clampi(floori(min3(p0.x, p1.x, p2.x)), 0, target.size-1)
	maxX := clampi(floori(max3(p0.x, p1.x, p2.x)), 0, target.size-1)
	minY := clampi(floori(min3(p0.y, p1.y, p2.y)), 0, target.size-1)
	maxY := clampi(floori(max3(p0.y, p1.y, p2.y)), 0, target.size-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			c := projected{x: float32(px) + 0.5, y: float32(py) + 0.5}
			w0 := edge(p1, p2, c) * sign
			w1 := edge(p2, p0, c) * sign
			w2 := edge(p0, p1, c) * sign
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			u := (w0*p0.u + w1*p1.u + w2*p2.u) / area
			v := (w0*p0.v + w1*p1.v + w2*p2.v) / area
			b.shade(target, input, mat, px, py, u, v)
		}
	}
}

// rasterizeLine walks the segment one pixel per step along the dominant axis.
// UVs are evaluated at the pixel center projected onto the segment, matching
// GPU attribute interpolation.
func (b *Backend) rasterizeLine(target, input *texture, mat *render.Material, a, c projected) {
	dx := c.x - a.x
	dy := c.y - a.y

	steps := int(max2(abs(dx), abs(dy)) + 0.5)
	if steps < 1 {
		steps = 1
	}

	lastX, lastY := -1, -1
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		px := clampi(floori(a.x+dx*t), 0, target.size-1)
		py := clampi(floori(a.y+dy*t), 0, target.size-1)
		if px == lastX && py == lastY {
			continue
		}
		lastX, lastY = px, py

		// Re-derive t from the pixel center on the dominant axis.
		tc := t
		if abs(dx) >= abs(dy) {
			if dx != 0 {
				tc = (float32(px) + 0.5 - a.x) / dx
			}
		} else if dy != 0 {
			tc = (float32(py) + 0.5 - a.y) / dy
		}
		tc = clampf(tc, 0, 1)

		u := a.u + (c.u-a.u)*tc
		v := a.v + (c.v-a.v)*tc
		b.shade(target, input, mat, px, py, u, v)
	}
}

// shade samples the material's texture and blends the fragment into the target.
func (b *Backend) shade(target, input *texture, mat *render.Material, px, py int, u, v float32) {
	src := sample(input, u, v, mat.Technique.Filter)
	diff := mat.DiffColor
	src.X *= diff.X
	src.Y *= diff.Y
	src.Z *= diff.Z

	idx := py*target.size + px
	switch mat.Technique.Blend {
	case render.BlendConstantAlpha:
		target.texels[idx] = target.texels[idx].Lerp(src, diff.W)
	default:
		target.texels[idx] = src
	}
}

// edge returns twice the signed area of the triangle (a, b, c).
func edge(a, b, c projected) float32 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func max2(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
