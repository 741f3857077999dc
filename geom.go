package vgcore

import (
	"math"
	"sort"
)

// Point represents a 2D position in local path space.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) Div(s float64) Point { return Point{X: p.X / s, Y: p.Y / s} }
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }
func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Lerp interpolates between p and q; t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Perp returns the vector rotated 90 degrees counter-clockwise, used to
// build the outward-facing normal fringe geometry needs.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// ApproxEqual reports whether p and q differ by less than epsilon in each axis.
func (p Point) ApproxEqual(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// Vec2 represents a 2D displacement or direction, distinct from Point's
// notion of a position. The two share representation but Transform treats
// them differently: points translate, vectors do not.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns the vector rotated 90 degrees counter-clockwise. Stroke
// expansion uses this to push an edge outward by half the line width.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

func (v Vec2) Atan2() float64 { return math.Atan2(v.Y, v.X) }

func (v Vec2) ToPoint() Point     { return Point(v) }
func PointToVec2(p Point) Vec2    { return Vec2(p) }

// Rect is an axis-aligned bounding box, Min inclusive at the top-left,
// Max inclusive at the bottom-right.
type Rect struct {
	Min, Max Point
}

func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Intersect returns the overlap of r and other. If the two do not overlap
// the result has Width()/Height() <= 0; callers checking scissor visibility
// must test IsEmpty rather than relying on zero-value Rect.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}
}

func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

func NewLine(p0, p1 Point) Line { return Line{P0: p0, P1: p1} }

func (l Line) Eval(t float64) Point { return l.P0.Lerp(l.P1, t) }
func (l Line) Start() Point         { return l.P0 }
func (l Line) End() Point           { return l.P1 }
func (l Line) BoundingBox() Rect    { return NewRect(l.P0, l.P1) }
func (l Line) Length() float64      { return l.P0.Distance(l.P1) }
func (l Line) Midpoint() Point      { return l.Eval(0.5) }
func (l Line) Reversed() Line       { return Line{P0: l.P1, P1: l.P0} }

// QuadBez is a quadratic Bezier curve: P0 start, P1 control, P2 end.
type QuadBez struct {
	P0, P1, P2 Point
}

func NewQuadBez(p0, p1, p2 Point) QuadBez { return QuadBez{P0: p0, P1: p1, P2: p2} }

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

// Subdivide splits the curve at t=0.5 into two halves.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	m0, m1 := q.P0.Lerp(q.P1, 0.5), q.P1.Lerp(q.P2, 0.5)
	mid := m0.Lerp(m1, 0.5)
	return QuadBez{P0: q.P0, P1: m0, P2: mid}, QuadBez{P0: mid, P1: m1, P2: q.P2}
}

// Extrema returns the interior t values where the curve's derivative
// crosses zero on either axis, used to build a tight bounding box.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := Point{X: d1.X - d0.X, Y: d1.Y - d0.Y}

	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		p := q.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// Raise produces the exact cubic representation of this quadratic, used
// by the flattener so only one subdivision path needs to exist.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: Point{X: q.P0.X + (2.0/3.0)*(q.P1.X-q.P0.X), Y: q.P0.Y + (2.0/3.0)*(q.P1.Y-q.P0.Y)},
		P2: Point{X: q.P2.X + (2.0/3.0)*(q.P1.X-q.P2.X), Y: q.P2.Y + (2.0/3.0)*(q.P1.Y-q.P2.Y)},
		P3: q.P2,
	}
}

// CubicBez is a cubic Bezier curve: P0 start, P1/P2 control, P3 end.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Subdivide splits the curve at t=0.5 into two halves.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	a, b, d := c.P0.Lerp(c.P1, 0.5), c.P1.Lerp(c.P2, 0.5), c.P2.Lerp(c.P3, 0.5)
	ab, bd := a.Lerp(b, 0.5), b.Lerp(d, 0.5)
	mid := ab.Lerp(bd, 0.5)
	return CubicBez{P0: c.P0, P1: a, P2: ab, P3: mid}, CubicBez{P0: mid, P1: bd, P2: d, P3: c.P3}
}

func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	cx := d0.X
	result = append(result, SolveQuadraticInUnitInterval(ax, bx, cx)...)

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	cy := d0.Y
	result = append(result, SolveQuadraticInUnitInterval(ay, by, cy)...)

	sort.Float64s(result)
	return result
}

func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// Deriv returns the derivative curve, a quadratic giving tangent direction.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: Point{X: 3 * (c.P1.X - c.P0.X), Y: 3 * (c.P1.Y - c.P0.Y)},
		P1: Point{X: 3 * (c.P2.X - c.P1.X), Y: 3 * (c.P2.Y - c.P1.Y)},
		P2: Point{X: 3 * (c.P3.X - c.P2.X), Y: 3 * (c.P3.Y - c.P2.Y)},
	}
}

func (c CubicBez) Tangent(t float64) Vec2 {
	p := c.Deriv().Eval(t)
	return Vec2(p)
}

// Normal returns the unit normal (perpendicular to the tangent) at t,
// the direction the AA fringe and stroke offset geometry expand along.
func (c CubicBez) Normal(t float64) Vec2 {
	return c.Tangent(t).Perp().Normalize()
}
