package flatten

import (
	"math"
	"testing"
)

func TestLineAppendsEndpointWithTangent(t *testing.T) {
	out := Line(nil, Point{0, 0}, Point{10, 0})
	if len(out) != 1 {
		t.Fatalf("Line appended %d vertices, want 1", len(out))
	}
	if out[0].Point != (Point{10, 0}) {
		t.Errorf("Point = %v, want {10 0}", out[0].Point)
	}
	if out[0].Tangent != (Point{1, 0}) {
		t.Errorf("Tangent = %v, want unit +x", out[0].Tangent)
	}
}

func TestQuadFlattenEndpointsMatchControlPoints(t *testing.T) {
	p0 := Point{0, 0}
	p1 := Point{5, 10}
	p2 := Point{10, 0}
	out := Quad(nil, p0, p1, p2, 0.01)

	if len(out) == 0 {
		t.Fatal("Quad produced no vertices")
	}
	last := out[len(out)-1]
	if last.Point != p2 {
		t.Errorf("last vertex = %v, want curve endpoint %v", last.Point, p2)
	}
}

func TestQuadFlattenFinerAtTighterTolerance(t *testing.T) {
	p0 := Point{0, 0}
	p1 := Point{5, 10}
	p2 := Point{10, 0}
	coarse := Quad(nil, p0, p1, p2, 1.0)
	fine := Quad(nil, p0, p1, p2, 0.01)
	if len(fine) < len(coarse) {
		t.Errorf("tighter tolerance produced fewer vertices (%d) than coarser (%d)", len(fine), len(coarse))
	}
}

func TestQuadFlattenStraightLineNeedsNoSubdivision(t *testing.T) {
	// control point exactly on the line: zero deviation, one segment suffices
	out := Quad(nil, Point{0, 0}, Point{5, 0}, Point{10, 0}, 0.01)
	if len(out) != 1 {
		t.Errorf("flattening a degenerate straight quad produced %d vertices, want 1", len(out))
	}
}

func TestCubicFlattenEndpointMatches(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0}
	out := Cubic(nil, p0, p1, p2, p3, 0.01)
	if len(out) == 0 {
		t.Fatal("Cubic produced no vertices")
	}
	if last := out[len(out)-1]; last.Point != p3 {
		t.Errorf("last vertex = %v, want curve endpoint %v", last.Point, p3)
	}
}

func TestCubicFlattenRecursionTerminates(t *testing.T) {
	// a pathological, highly oscillating configuration must still terminate
	// via the depth cap rather than recursing forever.
	p0 := Point{0, 0}
	p1 := Point{1e6, -1e6}
	p2 := Point{-1e6, 1e6}
	p3 := Point{0, 0.0001}
	out := Cubic(nil, p0, p1, p2, p3, 0.01)
	if len(out) == 0 {
		t.Fatal("expected at least one vertex even for a pathological curve")
	}
}

func TestFlattenContourRectangleIsClosedAndSolid(t *testing.T) {
	contour := Contour{
		Verbs: []Verb{
			MoveTo{Point: Point{0, 0}},
			LineTo{Point: Point{10, 0}},
			LineTo{Point: Point{10, 10}},
			LineTo{Point: Point{0, 10}},
			ClosePath{},
		},
		Solid: true,
	}
	subs := FlattenContours([]Contour{contour}, DefaultTolerance)
	if len(subs) != 1 {
		t.Fatalf("FlattenContours returned %d subpaths, want 1", len(subs))
	}
	sub := subs[0]
	if !sub.Closed {
		t.Error("expected Closed true for a path ending in ClosePath")
	}
	if !sub.Solid {
		t.Error("expected Solid true, Contour.Solid was true")
	}
	if len(sub.Vertices) < 4 {
		t.Errorf("expected at least 4 vertices for a flattened rectangle, got %d", len(sub.Vertices))
	}
}

func TestFlattenContourOpenPathIsNotClosed(t *testing.T) {
	contour := Contour{
		Verbs: []Verb{
			MoveTo{Point: Point{0, 0}},
			LineTo{Point: Point{10, 0}},
		},
	}
	subs := FlattenContours([]Contour{contour}, DefaultTolerance)
	if subs[0].Closed {
		t.Error("expected Closed false for a path with no ClosePath verb")
	}
}

func TestFlattenContourHoleIsNotSolid(t *testing.T) {
	contour := Contour{
		Verbs: []Verb{MoveTo{Point: Point{0, 0}}, LineTo{Point: Point{1, 1}}, ClosePath{}},
		Solid: false,
	}
	subs := FlattenContours([]Contour{contour}, DefaultTolerance)
	if subs[0].Solid {
		t.Error("expected Solid false to be preserved from the Contour")
	}
}

func TestDistanceToLineDegenerateSegment(t *testing.T) {
	// a <-> b collapse to one point: distance falls back to point distance
	d := distanceToLine(Point{3, 4}, Point{0, 0}, Point{0, 0})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("distanceToLine with degenerate segment = %v, want 5", d)
	}
}
