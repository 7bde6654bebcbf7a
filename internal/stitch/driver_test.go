package stitch

import (
	"testing"

	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/internal/render/softrender"
	"github.com/Faultbox/lightbake/pkg/math"
)

// horizontalSeam matches the top texel row against the bottom one: texels
// with v=0 sample their counterpart at v=1.
func horizontalSeam() SeamVector {
	return SeamVector{{
		Positions:      [2]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}},
		OtherPositions: [2]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}},
	}}
}

// gradientBuffer fills one Vec4 per texel with values unique per position.
func gradientBuffer(size int) []math.Vec4 {
	buf := make([]math.Vec4, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			buf[y*size+x] = math.Vec4{
				X: float32(x),
				Y: float32(y),
				Z: float32(x * y),
				W: 1,
			}
		}
	}
	return buf
}

func testSettings(iterations int, blend float32) Settings {
	s := DefaultSettings()
	s.NumIterations = iterations
	s.BlendFactor = blend
	return s
}

func nearVec(a, b math.Vec4) bool {
	d := a.Sub(b)
	const eps = 1e-5
	abs := func(f float32) float32 {
		if f < 0 {
			return -f
		}
		return f
	}
	return abs(d.X) < eps && abs(d.Y) < eps && abs(d.Z) < eps && abs(d.W) < eps
}

func TestStitchZeroIterationsPassThrough(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	ctx, err := InitializeContext(backend, 4, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	buf := gradientBuffer(4)
	want := make([]math.Vec4, len(buf))
	copy(want, buf)

	if err := Stitch(backend, ctx, buf, testSettings(0, 0.5), CreateSeamsModel(horizontalSeam())); err != nil {
		t.Fatalf("Stitch: %v", err)
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("texel %d: expected %v unchanged, got %v", i, want[i], buf[i])
		}
	}
}

func TestStitchSeamBlendsTowardOtherSide(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	const size = 4
	ctx, err := InitializeContext(backend, size, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	buf := gradientBuffer(size)
	original := make([]math.Vec4, len(buf))
	copy(original, buf)

	if err := Stitch(backend, ctx, buf, testSettings(1, 0.5), CreateSeamsModel(horizontalSeam())); err != nil {
		t.Fatalf("Stitch: %v", err)
	}

	// The seam row moves halfway toward the bottom row it was matched with.
	for x := 0; x < size; x++ {
		want := original[x].Lerp(original[3*size+x], 0.5)
		if !nearVec(buf[x], want) {
			t.Errorf("seam texel %d: expected %v, got %v", x, want, buf[x])
		}
	}
	// Rows away from the seam are copied through untouched.
	for y := 1; y < size; y++ {
		for x := 0; x < size; x++ {
			i := y*size + x
			if !nearVec(buf[i], original[i]) {
				t.Errorf("off-seam texel (%d,%d): expected %v, got %v", x, y, original[i], buf[i])
			}
		}
	}
}

func TestStitchEmptySeamsCopiesThrough(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	ctx, err := InitializeContext(backend, 4, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	buf := gradientBuffer(4)
	want := make([]math.Vec4, len(buf))
	copy(want, buf)

	if err := Stitch(backend, ctx, buf, testSettings(3, 0.5), CreateSeamsModel(nil)); err != nil {
		t.Fatalf("Stitch: %v", err)
	}
	for i := range want {
		if !nearVec(buf[i], want[i]) {
			t.Errorf("texel %d: expected %v, got %v", i, want[i], buf[i])
		}
	}
}

// TestStitchConvergence checks that more iterations pull the seam row
// monotonically closer to the matched row.
func TestStitchConvergence(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	const size = 4
	ctx, err := InitializeContext(backend, size, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	seams := CreateSeamsModel(horizontalSeam())
	prevGap := float32(3) // initial Y distance between row 0 and row 3
	for _, iterations := range []int{1, 2, 3, 4} {
		buf := gradientBuffer(size)
		if err := Stitch(backend, ctx, buf, testSettings(iterations, 0.5), seams); err != nil {
			t.Fatalf("Stitch(%d iterations): %v", iterations, err)
		}
		gap := 3 - buf[0].Y
		if gap < 0 {
			gap = -gap
		}
		if gap >= prevGap {
			t.Errorf("%d iterations: seam gap %g did not shrink below %g", iterations, gap, prevGap)
		}
		prevGap = gap
	}
}

// TestStitchTwoSidedSeamEqualizes matches the top and bottom rows against
// each other; both must meet in the middle and then hold steady.
func TestStitchTwoSidedSeamEqualizes(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	const size = 4
	ctx, err := InitializeContext(backend, size, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	seams := SeamVector{
		{
			Positions:      [2]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}},
			OtherPositions: [2]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}},
		},
		{
			Positions:      [2]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}},
			OtherPositions: [2]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}},
		},
	}
	model := CreateSeamsModel(seams)

	for _, iterations := range []int{1, 3} {
		buf := gradientBuffer(size)
		if err := Stitch(backend, ctx, buf, testSettings(iterations, 0.5), model); err != nil {
			t.Fatalf("Stitch(%d iterations): %v", iterations, err)
		}
		for x := 0; x < size; x++ {
			top, bottom := buf[x], buf[3*size+x]
			if !nearVec(top, bottom) {
				t.Errorf("%d iterations, column %d: sides did not meet, top %v bottom %v", iterations, x, top, bottom)
			}
			if !nearf(top.Y, 1.5) {
				t.Errorf("%d iterations, column %d: expected midpoint Y 1.5, got %g", iterations, x, top.Y)
			}
		}
	}
}

func TestStitchSizeOneStable(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	ctx, err := InitializeContext(backend, 1, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	buf := []math.Vec4{{X: 0.25, Y: 0.5, Z: 0.75, W: 1}}
	want := buf[0]
	if err := Stitch(backend, ctx, buf, testSettings(3, 0.5), CreateSeamsModel(horizontalSeam())); err != nil {
		t.Fatalf("Stitch: %v", err)
	}
	if !nearVec(buf[0], want) {
		t.Errorf("single texel must be stable, expected %v, got %v", want, buf[0])
	}
}

// trackingBackend records which textures each backend call touches, to make
// the ping-pong role swap observable.
type trackingBackend struct {
	render.Backend
	uploaded []render.Texture
	rendered []render.Texture
	read     []render.Texture
}

func (b *trackingBackend) UploadTexture(tex render.Texture, data []math.Vec4) error {
	b.uploaded = append(b.uploaded, tex)
	return b.Backend.UploadTexture(tex, data)
}

func (b *trackingBackend) RenderView(view *render.View) error {
	b.rendered = append(b.rendered, view.Target)
	return b.Backend.RenderView(view)
}

func (b *trackingBackend) ReadTexture(tex render.Texture, data []math.Vec4) error {
	b.read = append(b.read, tex)
	return b.Backend.ReadTexture(tex, data)
}

func TestStitchPingPongRoleSwap(t *testing.T) {
	soft := softrender.New()
	defer soft.Release()
	backend := &trackingBackend{Backend: soft}

	ctx, err := InitializeContext(backend, 4, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	seams := CreateSeamsModel(horizontalSeam())

	tests := []struct {
		iterations int
		rendered   []render.Texture
		final      render.Texture
	}{
		{0, nil, ctx.pong},
		{1, []render.Texture{ctx.ping}, ctx.ping},
		{2, []render.Texture{ctx.ping, ctx.pong}, ctx.pong},
		{3, []render.Texture{ctx.ping, ctx.pong, ctx.ping}, ctx.ping},
	}
	for _, tc := range tests {
		backend.uploaded = nil
		backend.rendered = nil
		backend.read = nil

		buf := gradientBuffer(4)
		if err := Stitch(backend, ctx, buf, testSettings(tc.iterations, 0.5), seams); err != nil {
			t.Fatalf("Stitch(%d iterations): %v", tc.iterations, err)
		}

		if len(backend.uploaded) != 1 || backend.uploaded[0] != ctx.pong {
			t.Errorf("%d iterations: upload must target the initial current texture", tc.iterations)
		}
		if len(backend.rendered) != len(tc.rendered) {
			t.Fatalf("%d iterations: expected %d renders, got %d", tc.iterations, len(tc.rendered), len(backend.rendered))
		}
		for i, want := range tc.rendered {
			if backend.rendered[i] != want {
				t.Errorf("%d iterations: render %d targeted the wrong texture", tc.iterations, i)
			}
		}
		if len(backend.read) != 1 || backend.read[0] != tc.final {
			t.Errorf("%d iterations: readback must come from the last written texture", tc.iterations)
		}
	}
}

func TestStitchBackendUnavailable(t *testing.T) {
	backend := softrender.New()
	ctx, err := InitializeContext(backend, 4, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	backend.Release()

	buf := gradientBuffer(4)
	want := make([]math.Vec4, len(buf))
	copy(want, buf)

	if err := Stitch(backend, ctx, buf, testSettings(1, 0.5), CreateSeamsModel(horizontalSeam())); err == nil {
		t.Fatal("expected error when the backend cannot begin a frame")
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("texel %d modified on aborted job: %v became %v", i, want[i], buf[i])
		}
	}
}

func TestStitchBufferLengthPanics(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	ctx, err := InitializeContext(backend, 4, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched buffer length")
		}
	}()
	Stitch(backend, ctx, make([]math.Vec4, 15), testSettings(1, 0.5), CreateSeamsModel(nil))
}

func TestStitchNegativeIterationsPanics(t *testing.T) {
	backend := softrender.New()
	defer backend.Release()
	ctx, err := InitializeContext(backend, 4, 4)
	if err != nil {
		t.Fatalf("InitializeContext: %v", err)
	}
	defer ctx.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative iteration count")
		}
	}()
	Stitch(backend, ctx, gradientBuffer(4), testSettings(-1, 0.5), CreateSeamsModel(nil))
}

func nearf(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-5
}
