package vgcore

import "math"

// Path queries: signed area, winding number, point containment, bounding
// box, arc length and subpath reversal. These operate directly on path
// verbs (not a flattened approximation) except where noted, trading a
// little extra math for correctness independent of tessellation tolerance.

// Area returns the signed area enclosed by the path using the shoelace
// formula extended to curves via Green's theorem. Positive for clockwise
// subpaths, negative for counter-clockwise. Open subpaths contribute their
// segments without a closing edge.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point

	for _, v := range p.verbs {
		switch e := v.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case ClosePath:
			area += lineArea(current, start)
			current = start
		}
	}
	return area
}

func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + p1.X*(-p0.Y+p2.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6.0
}

func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Winding returns the winding number of pt relative to the path using ray
// casting with a rightward horizontal ray. Zero means outside under the
// nonzero rule; Contains applies the rule, EvenOddContains the other.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point

	for _, v := range p.verbs {
		switch e := v.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case QuadTo:
			winding += quadWinding(current, e.Control, e.Point, pt)
			current = e.Point
		case CubicTo:
			winding += cubicWinding(current, e.Control1, e.Control2, e.Point, pt)
			current = e.Point
		case ClosePath:
			winding += lineWinding(current, start, pt)
			current = start
		}
	}
	return winding
}

func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

func quadWinding(p0, p1, p2, pt Point) int {
	minY := math.Min(math.Min(p0.Y, p1.Y), p2.Y)
	maxY := math.Max(math.Max(p0.Y, p1.Y), p2.Y)
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	maxX := math.Max(math.Max(p0.X, p1.X), p2.X)
	if pt.X > maxX {
		return 0
	}
	var winding int
	flattenQuadWindingRecursive(NewQuadBez(p0, p1, p2), pt, 0.1, &winding)
	return winding
}

func flattenQuadWindingRecursive(q QuadBez, pt Point, tolerance float64, winding *int) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Sub(mid).Length() <= tolerance {
		*winding += lineWinding(q.P0, q.P2, pt)
		return
	}
	q1, q2 := q.Subdivide()
	flattenQuadWindingRecursive(q1, pt, tolerance, winding)
	flattenQuadWindingRecursive(q2, pt, tolerance, winding)
}

func cubicWinding(p0, p1, p2, p3, pt Point) int {
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	if pt.X > maxX {
		return 0
	}
	var winding int
	flattenCubicWindingRecursive(NewCubicBez(p0, p1, p2, p3), pt, 0.1, &winding)
	return winding
}

func flattenCubicWindingRecursive(c CubicBez, pt Point, tolerance float64, winding *int) {
	if cubicFlatness(c) <= tolerance {
		*winding += lineWinding(c.P0, c.P3, pt)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubicWindingRecursive(c1, pt, tolerance, winding)
	flattenCubicWindingRecursive(c2, pt, tolerance, winding)
}

func cubicFlatness(c CubicBez) float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// Contains tests pt against the path using the nonzero winding rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// EvenOddContains tests pt against the path using the even-odd rule.
func (p *Path) EvenOddContains(pt Point) bool {
	return p.Winding(pt)%2 != 0
}

// BoundingBox returns the tight axis-aligned bounding box of the path,
// accounting for curve extrema rather than just control points.
func (p *Path) BoundingBox() Rect {
	if len(p.verbs) == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	var current Point

	for _, v := range p.verbs {
		switch e := v.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case QuadTo:
			bbox = bbox.Union(NewQuadBez(current, e.Control, e.Point).BoundingBox())
			current = e.Point
		case CubicTo:
			bbox = bbox.Union(NewCubicBez(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		case ClosePath:
		}
	}

	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return bbox
}

func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}

// Length returns the total arc length of the path, approximated to within
// accuracy by adaptive control-polygon subdivision.
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 0.001
	}

	var length float64
	var current Point

	for _, v := range p.verbs {
		switch e := v.(type) {
		case MoveTo:
			current = e.Point
		case LineTo:
			length += current.Distance(e.Point)
			current = e.Point
		case QuadTo:
			length += quadLengthRecursive(NewQuadBez(current, e.Control, e.Point), accuracy*accuracy)
			current = e.Point
		case CubicTo:
			length += cubicLengthRecursive(NewCubicBez(current, e.Control1, e.Control2, e.Point), accuracy*accuracy)
			current = e.Point
		case ClosePath:
		}
	}
	return length
}

func quadLengthRecursive(q QuadBez, accuracySq float64) float64 {
	chord := q.P0.Distance(q.P2)
	polygon := q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
	diff := polygon - chord
	if diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}
	q1, q2 := q.Subdivide()
	return quadLengthRecursive(q1, accuracySq) + quadLengthRecursive(q2, accuracySq)
}

func cubicLengthRecursive(c CubicBez, accuracySq float64) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	diff := polygon - chord
	if diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}
	c1, c2 := c.Subdivide()
	return cubicLengthRecursive(c1, accuracySq) + cubicLengthRecursive(c2, accuracySq)
}

// pathRun is one MoveTo...[Close] run of verbs, used by Reversed.
type pathRun struct {
	verbs  []PathVerb
	closed bool
}

// Reversed returns a new path with every subpath's direction reversed. A
// caller building a path from externally authored contours (e.g. font
// outlines or imported vector data of unknown winding) can use this to
// normalize orientation before filling with FillRuleNonZero, without
// needing to know the source format's winding convention up front.
func (p *Path) Reversed() *Path {
	if len(p.verbs) == 0 {
		return NewPath()
	}

	var runs []pathRun
	var cur pathRun
	for _, v := range p.verbs {
		switch v.(type) {
		case MoveTo:
			if len(cur.verbs) > 0 {
				runs = append(runs, cur)
			}
			cur = pathRun{verbs: []PathVerb{v}}
		case ClosePath:
			cur.closed = true
			runs = append(runs, cur)
			cur = pathRun{}
		default:
			cur.verbs = append(cur.verbs, v)
		}
	}
	if len(cur.verbs) > 0 {
		runs = append(runs, cur)
	}

	result := NewPath()
	for _, run := range runs {
		reverseRun(run, result)
	}
	return result
}

func reverseRun(run pathRun, result *Path) {
	if len(run.verbs) == 0 {
		return
	}

	end := runEndpoint(run)
	result.MoveTo(end.X, end.Y)

	for i := len(run.verbs) - 1; i >= 0; i-- {
		prev := runStartOf(run, i)
		switch e := run.verbs[i].(type) {
		case MoveTo:
			continue
		case LineTo:
			result.LineTo(prev.X, prev.Y)
		case QuadTo:
			result.QuadraticTo(e.Control.X, e.Control.Y, prev.X, prev.Y)
		case CubicTo:
			result.CubicTo(e.Control2.X, e.Control2.Y, e.Control1.X, e.Control1.Y, prev.X, prev.Y)
		}
	}

	if run.closed {
		result.Close()
	}
}

func runEndpoint(run pathRun) Point {
	for i := len(run.verbs) - 1; i >= 0; i-- {
		if pt, ok := verbEndpoint(run.verbs[i]); ok {
			return pt
		}
	}
	return Point{}
}

func runStartOf(run pathRun, i int) Point {
	if i == 0 {
		if pt, ok := verbEndpoint(run.verbs[0]); ok {
			return pt
		}
		return Point{}
	}
	if pt, ok := verbEndpoint(run.verbs[i-1]); ok {
		return pt
	}
	return Point{}
}

func verbEndpoint(v PathVerb) (Point, bool) {
	switch e := v.(type) {
	case MoveTo:
		return e.Point, true
	case LineTo:
		return e.Point, true
	case QuadTo:
		return e.Point, true
	case CubicTo:
		return e.Point, true
	}
	return Point{}, false
}
