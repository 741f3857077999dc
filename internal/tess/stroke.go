package tess

import (
	"math"

	"github.com/femtovg/femtovg-go/internal/flatten"
	"github.com/femtovg/femtovg-go/render"
)

// LineCap mirrors vgcore.LineCap; kept as a local copy for the same
// leaf-package reason FillRule is.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin mirrors vgcore.LineJoin.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle parameterizes stroke tessellation.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Stroke expands sub, a flattened (already-device-space) subpath, into a
// filled triangle strip approximating an offset outline, following the
// forward/backward offset-path construction the teacher's
// internal/stroke.StrokeExpander uses, but emitting triangles directly
// instead of building an intermediate fill path: each consecutive pair of
// centerline vertices becomes one quad (two triangles) between their
// left and right offsets, joins insert extra triangles at interior
// vertices, and caps close the two open ends. fringeOn adds a zero-
// coverage outer ring on both sides of the stroke body, the same
// technique Fill's fringe uses.
func Stroke(sub flatten.Subpath, style StrokeStyle, fringeOn bool) []render.Vertex {
	pts := sub.Vertices
	n := len(pts)
	if n < 2 {
		return nil
	}
	halfW := style.Width / 2

	left := make([]point2, n)
	right := make([]point2, n)
	for i := range pts {
		nrm := vertexNormal(pts, i, sub.Closed)
		left[i] = point2{pts[i].Point.X + nrm.X*halfW, pts[i].Point.Y + nrm.Y*halfW}
		right[i] = point2{pts[i].Point.X - nrm.X*halfW, pts[i].Point.Y - nrm.Y*halfW}
	}

	segCount := n - 1
	if sub.Closed {
		segCount = n
	}

	verts := make([]render.Vertex, 0, segCount*6)
	for i := 0; i < segCount; i++ {
		j := (i + 1) % n
		verts = append(verts, quadTriangles(left[i], right[i], left[j], right[j])...)
		verts = append(verts, joinTriangles(pts, left, right, j, style)...)
	}

	if !sub.Closed {
		verts = append(verts, capTriangles(toPoint2(pts[0].Point), left[0], right[0], toPoint2(pts[0].Tangent), style.Cap, true)...)
		last := n - 1
		verts = append(verts, capTriangles(toPoint2(pts[last].Point), left[last], right[last], toPoint2(pts[last].Tangent), style.Cap, false)...)
	}

	if fringeOn {
		verts = append(verts, strokeFringe(left, right, sub.Closed)...)
	}
	return verts
}

func quadTriangles(la, ra, lb, rb point2) []render.Vertex {
	va := render.Vertex{X: float32(la.X), Y: float32(la.Y), U: 1, V: 1}
	vra := render.Vertex{X: float32(ra.X), Y: float32(ra.Y), U: 1, V: 1}
	vb := render.Vertex{X: float32(lb.X), Y: float32(lb.Y), U: 1, V: 1}
	vrb := render.Vertex{X: float32(rb.X), Y: float32(rb.Y), U: 1, V: 1}
	return []render.Vertex{va, vra, vb, vb, vra, vrb}
}

// vertexNormal returns the outward (leftward) unit normal at vertex i,
// averaging the two adjacent segment normals for interior vertices so
// the offset strip doesn't gap; open-subpath endpoints use their single
// adjacent segment's normal.
func vertexNormal(pts []flatten.Vertex, i int, closed bool) point2 {
	n := len(pts)
	var prevTan, nextTan point2
	hasPrev, hasNext := false, false

	if i > 0 {
		prevTan = point2{pts[i].Point.X - pts[i-1].Point.X, pts[i].Point.Y - pts[i-1].Point.Y}
		hasPrev = true
	} else if closed {
		prevTan = point2{pts[0].Point.X - pts[n-1].Point.X, pts[0].Point.Y - pts[n-1].Point.Y}
		hasPrev = true
	}
	if i < n-1 {
		nextTan = point2{pts[i+1].Point.X - pts[i].Point.X, pts[i+1].Point.Y - pts[i].Point.Y}
		hasNext = true
	} else if closed {
		nextTan = point2{pts[0].Point.X - pts[i].Point.X, pts[0].Point.Y - pts[i].Point.Y}
		hasNext = true
	}

	var n1, n2 point2
	if hasPrev {
		n1 = normalize(point2{-prevTan.Y, prevTan.X})
	}
	if hasNext {
		n2 = normalize(point2{-nextTan.Y, nextTan.X})
	}
	switch {
	case hasPrev && hasNext:
		return normalize(point2{n1.X + n2.X, n1.Y + n2.Y})
	case hasPrev:
		return n1
	default:
		return n2
	}
}

// joinTriangles fills the wedge gap a miter/round/bevel join leaves
// between the two segments meeting at centerline vertex j. Miter joins
// extend to a sharp point clamped by MiterLimit, falling back to bevel
// past the limit, matching the teacher expander's miterLimitSq test.
// Bevel directly connects the two offset vertices with one triangle; round
// fans a semicircle between them the same way capTriangles does for an
// open endpoint.
func joinTriangles(pts []flatten.Vertex, left, right []point2, j int, style StrokeStyle) []render.Vertex {
	n := len(pts)
	prev := (j - 1 + n) % n
	center := pts[j].Point

	switch style.Join {
	case JoinBevel:
		return []render.Vertex{
			{X: float32(center.X), Y: float32(center.Y), U: 1, V: 1},
			{X: float32(left[prev].X), Y: float32(left[prev].Y), U: 1, V: 1},
			{X: float32(left[j].X), Y: float32(left[j].Y), U: 1, V: 1},
		}
	case JoinRound:
		const segments = 6
		a0 := math.Atan2(left[prev].Y-center.Y, left[prev].X-center.X)
		a1 := math.Atan2(left[j].Y-center.Y, left[j].X-center.X)
		radius := style.Width / 2
		var verts []render.Vertex
		step := angleDelta(a0, a1, false) / segments
		cur := point2{center.X + radius*math.Cos(a0), center.Y + radius*math.Sin(a0)}
		for i := 1; i <= segments; i++ {
			a := a0 + step*float64(i)
			next := point2{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)}
			verts = append(verts,
				render.Vertex{X: float32(center.X), Y: float32(center.Y), U: 1, V: 1},
				render.Vertex{X: float32(cur.X), Y: float32(cur.Y), U: 1, V: 1},
				render.Vertex{X: float32(next.X), Y: float32(next.Y), U: 1, V: 1},
			)
			cur = next
		}
		return verts
	}

	v1 := point2{left[prev].X - center.X, left[prev].Y - center.Y}
	v2 := point2{left[j].X - center.X, left[j].Y - center.Y}
	bisector := normalize(point2{v1.X + v2.X, v1.Y + v2.Y})
	cosHalf := v1.X*bisector.X + v1.Y*bisector.Y
	if cosHalf < 1e-6 {
		return nil
	}
	miterLen := style.Width / 2 / cosHalf
	if miterLen/(style.Width/2) > style.MiterLimit {
		// exceeds limit: emit the same single triangle a bevel join does
		return []render.Vertex{
			{X: float32(center.X), Y: float32(center.Y), U: 1, V: 1},
			{X: float32(left[prev].X), Y: float32(left[prev].Y), U: 1, V: 1},
			{X: float32(left[j].X), Y: float32(left[j].Y), U: 1, V: 1},
		}
	}
	tip := point2{center.X + bisector.X*miterLen, center.Y + bisector.Y*miterLen}
	return []render.Vertex{
		{X: float32(center.X), Y: float32(center.Y), U: 1, V: 1},
		{X: float32(left[prev].X), Y: float32(left[prev].Y), U: 1, V: 1},
		{X: float32(tip.X), Y: float32(tip.Y), U: 1, V: 1},
		{X: float32(center.X), Y: float32(center.Y), U: 1, V: 1},
		{X: float32(tip.X), Y: float32(tip.Y), U: 1, V: 1},
		{X: float32(left[j].X), Y: float32(left[j].Y), U: 1, V: 1},
	}
}

// capTriangles closes an open subpath end. Butt caps need no geometry
// (the quad's own edge is the cap); square caps extend a half-width
// rectangle along the tangent; round caps fan a semicircle, matching the
// teacher expander's arcSegment approach but directly as triangles
// instead of cubic-Bezier path elements.
func capTriangles(center point2, left, right point2, tangent point2, cap LineCap, start bool) []render.Vertex {
	c := center
	tan := tangent
	if start {
		tan = point2{-tan.X, -tan.Y}
	}
	switch cap {
	case CapSquare:
		ext := point2{left.X - c.X, left.Y - c.Y}
		halfW := math.Hypot(ext.X, ext.Y)
		outL := point2{left.X + tan.X*halfW, left.Y + tan.Y*halfW}
		outR := point2{right.X + tan.X*halfW, right.Y + tan.Y*halfW}
		return []render.Vertex{
			{X: float32(left.X), Y: float32(left.Y), U: 1, V: 1},
			{X: float32(right.X), Y: float32(right.Y), U: 1, V: 1},
			{X: float32(outL.X), Y: float32(outL.Y), U: 1, V: 1},
			{X: float32(outL.X), Y: float32(outL.Y), U: 1, V: 1},
			{X: float32(right.X), Y: float32(right.Y), U: 1, V: 1},
			{X: float32(outR.X), Y: float32(outR.Y), U: 1, V: 1},
		}
	case CapRound:
		const segments = 8
		a0 := math.Atan2(left.Y-c.Y, left.X-c.X)
		a1 := math.Atan2(right.Y-c.Y, right.X-c.X)
		if start {
			a0, a1 = a1, a0
		}
		radius := math.Hypot(left.X-c.X, left.Y-c.Y)
		var verts []render.Vertex
		step := angleDelta(a0, a1, start) / segments
		// A half-turn sweep is ambiguous in sign; sweep through the side
		// the cap faces (along tan) rather than back over the stroke body.
		if mid := a0 + step*segments/2; math.Cos(mid)*tan.X+math.Sin(mid)*tan.Y < 0 {
			step = -step
		}
		prev := point2{c.X + radius*math.Cos(a0), c.Y + radius*math.Sin(a0)}
		for i := 1; i <= segments; i++ {
			a := a0 + step*float64(i)
			cur := point2{c.X + radius*math.Cos(a), c.Y + radius*math.Sin(a)}
			verts = append(verts,
				render.Vertex{X: float32(c.X), Y: float32(c.Y), U: 1, V: 1},
				render.Vertex{X: float32(prev.X), Y: float32(prev.Y), U: 1, V: 1},
				render.Vertex{X: float32(cur.X), Y: float32(cur.Y), U: 1, V: 1},
			)
			prev = cur
		}
		return verts
	default:
		return nil
	}
}

func angleDelta(a0, a1 float64, start bool) float64 {
	d := a1 - a0
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	if start {
		return -d
	}
	return d
}

func toPoint2(p flatten.Point) point2 { return point2{p.X, p.Y} }

// strokeFringe appends zero-coverage quads just outside the stroke's left
// and right offset polylines, the stroke analogue of fill's fringeRing.
func strokeFringe(left, right []point2, closed bool) []render.Vertex {
	n := len(left)
	segs := n - 1
	if closed {
		segs = n
	}
	const aa = FringeWidth
	var verts []render.Vertex
	for i := 0; i < segs; i++ {
		j := (i + 1) % n
		for s, side := range [][2]point2{{left[i], left[j]}, {right[i], right[j]}} {
			a, b := side[0], side[1]
			dir := normalize(point2{b.X - a.X, b.Y - a.Y})
			nrm := point2{-dir.Y, dir.X}
			if s == 1 {
				// the right polyline's outside is the opposite normal
				nrm = point2{dir.Y, -dir.X}
			}
			outA := point2{a.X + nrm.X*aa, a.Y + nrm.Y*aa}
			outB := point2{b.X + nrm.X*aa, b.Y + nrm.Y*aa}
			verts = append(verts,
				render.Vertex{X: float32(a.X), Y: float32(a.Y), U: 1, V: 1},
				render.Vertex{X: float32(b.X), Y: float32(b.Y), U: 1, V: 1},
				render.Vertex{X: float32(outA.X), Y: float32(outA.Y), U: 0, V: 0},
				render.Vertex{X: float32(outA.X), Y: float32(outA.Y), U: 0, V: 0},
				render.Vertex{X: float32(b.X), Y: float32(b.Y), U: 1, V: 1},
				render.Vertex{X: float32(outB.X), Y: float32(outB.Y), U: 0, V: 0},
			)
		}
	}
	return verts
}
