package arcade

import (
	"image"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Contains ---

func TestRectContains_Inside(t *testing.T) {
	outer := Rect{X: 10, Y: 10, Width: 100, Height: 100}
	if !outer.Contains(Rect{X: 20, Y: 20, Width: 50, Height: 50}) {
		t.Error("interior rect not contained")
	}
}

func TestRectContains_SharedEdges(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 64, Height: 64}
	if !outer.Contains(outer) {
		t.Error("rect does not contain itself")
	}
	if !outer.Contains(Rect{X: 32, Y: 32, Width: 32, Height: 32}) {
		t.Error("corner-touching rect not contained")
	}
}

func TestRectContains_Outside(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 64, Height: 64}
	cases := []Rect{
		{X: 32, Y: 32, Width: 64, Height: 64}, // spills right and bottom
		{X: -1, Y: 0, Width: 10, Height: 10},  // spills left
		{X: 0, Y: 60, Width: 10, Height: 10},  // spills bottom
		{X: 100, Y: 100, Width: 1, Height: 1}, // fully outside
	}
	for _, c := range cases {
		if outer.Contains(c) {
			t.Errorf("rect %+v reported contained in %+v", c, outer)
		}
	}
}

// --- Overlaps ---

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Overlaps(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects reported disjoint")
	}
	if a.Overlaps(Rect{X: 20, Y: 0, Width: 10, Height: 10}) {
		t.Error("disjoint rects reported overlapping")
	}
	// Sharing only an edge is not an overlap.
	if a.Overlaps(Rect{X: 10, Y: 0, Width: 10, Height: 10}) {
		t.Error("edge-adjacent rects reported overlapping")
	}
}

// --- MoveInside ---

func TestRectMoveInside_AlreadyInside(t *testing.T) {
	parent := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	r := Rect{X: 10, Y: 20, Width: 30, Height: 30}
	moved, ok := r.MoveInside(parent)
	if !ok {
		t.Fatal("MoveInside failed for rect already inside")
	}
	if moved != r {
		t.Errorf("moved = %+v, want unchanged %+v", moved, r)
	}
}

func TestRectMoveInside_ClampsEachSide(t *testing.T) {
	parent := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	moved, ok := Rect{X: -20, Y: 50, Width: 30, Height: 30}.MoveInside(parent)
	if !ok || moved.X != 0 {
		t.Errorf("left clamp: moved = %+v, ok = %v", moved, ok)
	}

	moved, ok = Rect{X: 90, Y: 50, Width: 30, Height: 30}.MoveInside(parent)
	if !ok || moved.X != 70 {
		t.Errorf("right clamp: moved = %+v, ok = %v", moved, ok)
	}

	moved, ok = Rect{X: 50, Y: -5, Width: 30, Height: 30}.MoveInside(parent)
	if !ok || moved.Y != 0 {
		t.Errorf("top clamp: moved = %+v, ok = %v", moved, ok)
	}

	moved, ok = Rect{X: 50, Y: 95, Width: 30, Height: 30}.MoveInside(parent)
	if !ok || moved.Y != 70 {
		t.Errorf("bottom clamp: moved = %+v, ok = %v", moved, ok)
	}
}

func TestRectMoveInside_TooLarge(t *testing.T) {
	parent := Rect{X: 0, Y: 0, Width: 50, Height: 50}
	if _, ok := (Rect{Width: 60, Height: 10}).MoveInside(parent); ok {
		t.Error("MoveInside succeeded for rect wider than parent")
	}
	if _, ok := (Rect{Width: 10, Height: 60}).MoveInside(parent); ok {
		t.Error("MoveInside succeeded for rect taller than parent")
	}
}

// --- ImageRect ---

func TestRectImageRect_Truncates(t *testing.T) {
	r := Rect{X: 1.9, Y: 2.9, Width: 10.7, Height: 20.2}
	got := r.ImageRect()
	want := image.Rect(1, 2, 11, 22)
	if got != want {
		t.Errorf("ImageRect = %v, want %v", got, want)
	}
}

func TestRectImageRect_NegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative width")
		}
	}()
	_ = Rect{Width: -1, Height: 10}.ImageRect()
}
