package vgcore

import "testing"

func TestScissorUnboundedByDefault(t *testing.T) {
	var s Scissor
	if !s.Unbounded() {
		t.Error("zero-value Scissor should be Unbounded")
	}
	if !s.Contains(Pt(1e9, -1e9)) {
		t.Error("an unbounded scissor must contain every point")
	}
}

func TestScissorIntersectScissorFirstPush(t *testing.T) {
	var s Scissor
	got := s.IntersectScissor(Identity(), 10, 10, 20, 20)
	if got.Unbounded() {
		t.Fatal("first pushed rect should make the scissor bounded")
	}
	if got.Extent != ([2]float64{10, 10}) {
		t.Errorf("Extent = %v, want {10 10}", got.Extent)
	}
	if !got.Contains(Pt(20, 20)) {
		t.Error("center of the pushed rect should be contained")
	}
	if got.Contains(Pt(0, 0)) {
		t.Error("origin, outside the pushed rect, should not be contained")
	}
}

func TestScissorIntersectScissorNarrows(t *testing.T) {
	var s Scissor
	s = s.IntersectScissor(Identity(), 0, 0, 100, 100)
	// push a smaller rect nested inside the first
	s = s.IntersectScissor(Identity(), 25, 25, 20, 20)

	if s.Contains(Pt(90, 90)) {
		t.Error("point inside the first rect but outside the narrower second rect should not be contained")
	}
	if !s.Contains(Pt(35, 35)) {
		t.Error("point inside both rects should be contained")
	}
}

func TestScissorIntersectScissorDisjointCollapsesToEmpty(t *testing.T) {
	var s Scissor
	s = s.IntersectScissor(Identity(), 0, 0, 10, 10)
	s = s.IntersectScissor(Identity(), 1000, 1000, 10, 10)

	if !s.Empty() {
		t.Errorf("disjoint rects should collapse to the Empty sentinel, got Extent %v", s.Extent)
	}
	if s.Unbounded() {
		t.Error("an Empty scissor must not report Unbounded: it clips everything, not nothing")
	}
	if s.Contains(Pt(5, 5)) || s.Contains(Pt(1005, 1005)) {
		t.Error("a collapsed (empty) scissor should contain no point")
	}
}

func TestScissorBoundsUnbounded(t *testing.T) {
	var s Scissor
	if got := s.Bounds(); got != (Rect{}) {
		t.Errorf("Bounds() of unbounded scissor = %+v, want zero Rect", got)
	}
}

func TestScissorBoundsAxisAligned(t *testing.T) {
	var s Scissor
	s = s.IntersectScissor(Identity(), 0, 0, 20, 10)
	b := s.Bounds()
	if b.Min != (Point{0, 0}) || b.Max != (Point{20, 10}) {
		t.Errorf("Bounds() = %+v, want Min{0 0} Max{20 10}", b)
	}
}
