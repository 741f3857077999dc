package vgcore

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != (Point{4, 6}) {
		t.Errorf("Add = %v, want {4 6}", got)
	}
	if got := p.Sub(q); got != (Point{2, 2}) {
		t.Errorf("Sub = %v, want {2 2}", got)
	}
	if got := p.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Dot(q); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := p.Cross(q); got != (3*2 - 4*1) {
		t.Errorf("Cross = %v, want %v", got, 3*2-4*1)
	}
}

func TestPointNormalize(t *testing.T) {
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
	n := Pt(3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Normalize length = %v, want 1", n.Length())
	}
}

func TestPointRotate(t *testing.T) {
	p := Pt(1, 0)
	got := p.Rotate(math.Pi / 2)
	if !got.ApproxEqual(Pt(0, 1), 1e-9) {
		t.Errorf("Rotate(pi/2) = %v, want {0 1}", got)
	}
}

func TestPointPerp(t *testing.T) {
	p := Pt(1, 0)
	if got := p.Perp(); got != (Point{0, 1}) {
		t.Errorf("Perp = %v, want {0 1}", got)
	}
}

func TestRectIntersectAndUnion(t *testing.T) {
	a := NewRect(Pt(0, 0), Pt(10, 10))
	b := NewRect(Pt(5, 5), Pt(15, 15))

	inter := a.Intersect(b)
	if inter.IsEmpty() {
		t.Fatal("expected overlapping rects to intersect")
	}
	if inter.Min != (Point{5, 5}) || inter.Max != (Point{10, 10}) {
		t.Errorf("Intersect = %+v, want Min{5 5} Max{10 10}", inter)
	}

	union := a.Union(b)
	if union.Min != (Point{0, 0}) || union.Max != (Point{15, 15}) {
		t.Errorf("Union = %+v, want Min{0 0} Max{15 15}", union)
	}

	disjoint := NewRect(Pt(100, 100), Pt(110, 110))
	if !a.Intersect(disjoint).IsEmpty() {
		t.Error("expected disjoint rects to produce an empty intersection")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10))
	if !r.Contains(Pt(5, 5)) {
		t.Error("expected rect to contain interior point")
	}
	if r.Contains(Pt(20, 20)) {
		t.Error("expected rect to not contain far-outside point")
	}
}

func TestQuadBezEval(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	if got := q.Eval(0); got != q.P0 {
		t.Errorf("Eval(0) = %v, want start point", got)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Errorf("Eval(1) = %v, want end point", got)
	}
	mid := q.Eval(0.5)
	if mid.Y <= 0 {
		t.Errorf("Eval(0.5).Y = %v, want > 0 (curve bulges upward)", mid.Y)
	}
}

func TestQuadBezBoundingBox(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	bbox := q.BoundingBox()
	if bbox.Max.Y <= 0 {
		t.Errorf("bounding box should account for the curve's peak, Max.Y = %v", bbox.Max.Y)
	}
}

func TestQuadBezRaiseMatchesEval(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	c := q.Raise()
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		qp := q.Eval(tt)
		cp := c.Eval(tt)
		if !qp.ApproxEqual(cp, 1e-9) {
			t.Errorf("at t=%v: quad=%v cubic=%v, want equal", tt, qp, cp)
		}
	}
}

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0))
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want start", got)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want end", got)
	}
}

func TestCubicBezNormalIsUnitAndPerpendicular(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0))
	n := c.Normal(0.5)
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Normal length = %v, want 1", n.Length())
	}
	tan := c.Tangent(0.5)
	if math.Abs(n.Dot(tan)) > 1e-6 {
		t.Errorf("Normal not perpendicular to tangent: dot = %v", n.Dot(tan))
	}
}

func TestVec2Perp(t *testing.T) {
	v := V2(1, 0)
	if got := v.Perp(); got != (Vec2{0, 1}) {
		t.Errorf("Perp = %v, want {0 1}", got)
	}
}
