// Package flatten adaptively subdivides path curves into line segments
// suitable for tessellation, following the recursive flatness-test
// approach the teacher module uses in its internal/path package.
package flatten

import "math"

// Point is a local 2D point copy, avoiding an import cycle back to vgcore.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point  { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point  { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
func (p Point) length() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) distance(q Point) float64 { return p.sub(q).length() }

// DefaultTolerance is the maximum perpendicular distance, in the units the
// points are supplied in, a flattened chord may deviate from its curve.
// Canvas converts this by Transform.ScaleFactor into device-space
// tolerance before flattening so zoomed-in curves still look smooth.
const DefaultTolerance = 0.25

// Vertex is one point along a flattened polyline plus the curve's unit
// tangent there. internal/tess reads it to orient stroke end caps; fill
// fringes derive their normals from neighboring points instead.
type Vertex struct {
	Point   Point
	Tangent Point // unit vector, direction of travel
}

func unitTangent(from, to Point) Point {
	d := to.sub(from)
	l := d.length()
	if l < 1e-12 {
		return Point{1, 0}
	}
	return Point{d.X / l, d.Y / l}
}

// Line appends a straight segment's endpoint.
func Line(out []Vertex, from, to Point) []Vertex {
	return append(out, Vertex{Point: to, Tangent: unitTangent(from, to)})
}

// Quad adaptively flattens a quadratic Bezier (p0 is the already-emitted
// current point) and appends its vertices, p2 included.
func Quad(out []Vertex, p0, p1, p2 Point, tolerance float64) []Vertex {
	return quadRec(out, p0, p1, p2, tolerance, 0)
}

// maxSubdivisionDepth bounds adaptive subdivision so a degenerate or
// numerically pathological curve (control points nearly collinear at
// every scale) cannot recurse indefinitely; 10 levels already yields
// 2^10 segments, far finer than any tolerance this package is called
// with in practice.
const maxSubdivisionDepth = 10

func quadRec(out []Vertex, p0, p1, p2 Point, tolerance float64, depth int) []Vertex {
	if depth >= maxSubdivisionDepth || distanceToLine(p1, p0, p2) < tolerance {
		return append(out, Vertex{Point: p2, Tangent: quadTangent(p0, p1, p2, 1)})
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	mid := q0.lerp(q1, 0.5)
	out = quadRec(out, p0, q0, mid, tolerance, depth+1)
	return quadRec(out, mid, q1, p2, tolerance, depth+1)
}

func quadTangent(p0, p1, p2 Point, t float64) Point {
	// derivative of a quadratic Bezier: 2(1-t)(p1-p0) + 2t(p2-p1)
	a := p1.sub(p0).mul(2 * (1 - t))
	b := p2.sub(p1).mul(2 * t)
	d := Point{a.X + b.X, a.Y + b.Y}
	l := d.length()
	if l < 1e-12 {
		return unitTangent(p0, p2)
	}
	return Point{d.X / l, d.Y / l}
}

// Cubic adaptively flattens a cubic Bezier and appends its vertices, p3
// included.
func Cubic(out []Vertex, p0, p1, p2, p3 Point, tolerance float64) []Vertex {
	return cubicRec(out, p0, p1, p2, p3, tolerance, 0)
}

func cubicRec(out []Vertex, p0, p1, p2, p3 Point, tolerance float64, depth int) []Vertex {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)
	if depth >= maxSubdivisionDepth || dist < tolerance {
		return append(out, Vertex{Point: p3, Tangent: cubicTangent(p0, p1, p2, p3, 1)})
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)
	out = cubicRec(out, p0, q0, r0, s, tolerance, depth+1)
	return cubicRec(out, s, r1, q2, p3, tolerance, depth+1)
}

func cubicTangent(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := p1.sub(p0).mul(3 * mt * mt)
	b := p2.sub(p1).mul(6 * mt * t)
	c := p3.sub(p2).mul(3 * t * t)
	d := Point{a.X + b.X + c.X, a.Y + b.Y + c.Y}
	l := d.length()
	if l < 1e-12 {
		return unitTangent(p0, p3)
	}
	return Point{d.X / l, d.Y / l}
}

func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.distance(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / (abLen * abLen)
	if t < 0 {
		return p.distance(a)
	}
	if t > 1 {
		return p.distance(b)
	}
	closest := a.add(ab.mul(t))
	return p.distance(closest)
}

// Subpath is one flattened, closed-or-open contour of a path, ready for
// internal/tess to fan-triangulate or offset-expand.
type Subpath struct {
	Vertices []Vertex
	Closed   bool
	// Solid is false for subpaths tagged vgcore.HoleWinding: the
	// tessellator subtracts rather than adds their winding contribution.
	Solid bool
}

// Verb is this package's own copy of vgcore's path-verb model (mirroring
// the teacher's internal/path.PathElement / internal/stroke.PathElement,
// both commented "internal copy to avoid import cycle"): vgcore.Path
// cannot be referenced here without vgcore importing this package back.
type Verb interface{ isVerb() }

type MoveTo struct{ Point Point }
type LineTo struct{ Point Point }
type QuadTo struct{ Control, Point Point }
type CubicTo struct{ Control1, Control2, Point Point }
type ClosePath struct{}

func (MoveTo) isVerb()    {}
func (LineTo) isVerb()    {}
func (QuadTo) isVerb()    {}
func (CubicTo) isVerb()   {}
func (ClosePath) isVerb() {}

// Contour groups the verbs belonging to one subpath plus its tagged
// solidity, matching vgcore.Path's per-subpath Solidity model.
type Contour struct {
	Verbs []Verb
	Solid bool
}

// FlattenContours flattens each contour independently at the given
// tolerance (already converted to device space by the caller via
// Transform.ScaleFactor).
func FlattenContours(contours []Contour, tolerance float64) []Subpath {
	out := make([]Subpath, 0, len(contours))
	for _, c := range contours {
		out = append(out, flattenContour(c, tolerance))
	}
	return out
}

func flattenContour(c Contour, tolerance float64) Subpath {
	var verts []Vertex
	var current, start Point
	closed := false

	for _, v := range c.Verbs {
		switch e := v.(type) {
		case MoveTo:
			current = e.Point
			start = current
			verts = append(verts, Vertex{Point: current, Tangent: Point{1, 0}})
		case LineTo:
			verts = Line(verts, current, e.Point)
			current = e.Point
		case QuadTo:
			verts = Quad(verts, current, e.Control, e.Point, tolerance)
			current = e.Point
		case CubicTo:
			verts = Cubic(verts, current, e.Control1, e.Control2, e.Point, tolerance)
			current = e.Point
		case ClosePath:
			if current != start {
				verts = Line(verts, current, start)
				current = start
			}
			closed = true
		}
	}

	return Subpath{Vertices: verts, Closed: closed, Solid: c.Solid}
}
