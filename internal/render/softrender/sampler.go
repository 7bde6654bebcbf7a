package softrender

import (
	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

// sample reads the texture at (u, v) with the technique's filter mode.
// Coordinates outside [0,1] clamp to the edge texels.
func sample(tex *texture, u, v float32, filter render.FilterMode) math.Vec4 {
	if filter == render.FilterBilinear {
		return sampleBilinear(tex, u, v)
	}
	return sampleNearest(tex, u, v)
}

// sampleNearest returns the texel whose footprint contains (u, v).
func sampleNearest(tex *texture, u, v float32) math.Vec4 {
	x := clampi(int(u*float32(tex.size)), 0, tex.size-1)
	y := clampi(int(v*float32(tex.size)), 0, tex.size-1)
	return tex.texels[y*tex.size+x]
}

// sampleBilinear filters between the four texels around (u, v) using the
// texel-center convention, clamping at the edges.
func sampleBilinear(tex *texture, u, v float32) math.Vec4 {
	fx := u*float32(tex.size) - 0.5
	fy := v*float32(tex.size) - 0.5

	x0 := floori(fx)
	y0 := floori(fy)
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	x1 := clampi(x0+1, 0, tex.size-1)
	y1 := clampi(y0+1, 0, tex.size-1)
	x0 = clampi(x0, 0, tex.size-1)
	y0 = clampi(y0, 0, tex.size-1)

	top := tex.texels[y0*tex.size+x0].Lerp(tex.texels[y0*tex.size+x1], dx)
	bottom := tex.texels[y1*tex.size+x0].Lerp(tex.texels[y1*tex.size+x1], dx)
	return top.Lerp(bottom, dy)
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floori(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}
