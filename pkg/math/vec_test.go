package math

import "testing"

func TestVec2Ops(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}

	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add: expected {4 6}, got %v", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 2}) {
		t.Errorf("Sub: expected {2 2}, got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale: expected {2 4}, got %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot: expected 11, got %f", got)
	}
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Length: expected 5, got %f", got)
	}
	if got := (Vec2{0, 0}).Distance(Vec2{0, 3}); got != 3 {
		t.Errorf("Distance: expected 3, got %f", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{2, 4}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0): expected %v, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1): expected %v, got %v", b, got)
	}
	if got := a.Lerp(b, 0.5); got != (Vec2{1, 2}) {
		t.Errorf("Lerp(0.5): expected {1 2}, got %v", got)
	}
}

func TestVec4Lerp(t *testing.T) {
	a := Vec4{0, 0, 0, 0}
	b := Vec4{1, 2, 3, 4}

	if got := a.Lerp(b, 0.5); got != (Vec4{0.5, 1, 1.5, 2}) {
		t.Errorf("Lerp(0.5): expected {0.5 1 1.5 2}, got %v", got)
	}
	if got := b.Lerp(a, 1); got != a {
		t.Errorf("Lerp(1): expected %v, got %v", a, got)
	}
}

func TestVec4Arithmetic(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{4, 3, 2, 1}

	if got := a.Add(b); got != (Vec4{5, 5, 5, 5}) {
		t.Errorf("Add: expected {5 5 5 5}, got %v", got)
	}
	if got := a.Sub(b); got != (Vec4{-3, -1, 1, 3}) {
		t.Errorf("Sub: expected {-3 -1 1 3}, got %v", got)
	}
	if got := a.Scale(0.5); got != (Vec4{0.5, 1, 1.5, 2}) {
		t.Errorf("Scale: expected {0.5 1 1.5 2}, got %v", got)
	}
}
