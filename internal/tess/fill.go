// Package tess tessellates flattened subpaths into the triangle lists and
// stencil passes a render.Renderer executes, implementing convex
// fan-plus-fringe tessellation for single-subpath convex fills and
// stencil-then-cover tessellation for everything else (concave shapes,
// multiple subpaths, holes), following the algorithm the teacher's
// internal/gpu convex/stencil renderers describe in their doc comments
// but expressed as CPU-side geometry generation instead of GPU shader
// passes — this package hands the Renderer plain triangle lists and a
// StencilOp tag, and the Renderer decides how its backend executes them.
package tess

import (
	"math"

	"github.com/femtovg/femtovg-go/internal/flatten"
	"github.com/femtovg/femtovg-go/render"
)

// FringeWidth is the antialiasing fringe's width in device pixels,
// matching NanoVG-lineage renderers' fixed 1px coverage ramp.
const FringeWidth = 1.0

// FillRule mirrors vgcore.FillRule without importing it (this package, by
// convention, stays a leaf with no dependency back on the public API
// package).
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// FillResult is everything a Canvas needs to turn a tessellated fill into
// one or more render.DrawCall values. Convex results carry exactly one
// Cover pass (StencilNone) already fringed; concave results carry a
// Stencil pass followed by a Cover pass, per stencil-then-cover.
type FillResult struct {
	Stencil []render.Vertex // nil for the convex fast path
	Cover   []render.Vertex
	Convex  bool
}

// Fill tessellates subs (already flattened, in device space) into a
// FillResult. fringeOn controls whether a coverage-ramped border is
// appended around the shape's boundary.
func Fill(subs []flatten.Subpath, rule FillRule, fringeOn bool) FillResult {
	if isConvex(subs) {
		return FillResult{Cover: convexFan(subs[0], fringeOn), Convex: true}
	}
	return FillResult{
		Stencil: stencilFan(subs),
		Cover:   coverQuad(boundsOf(subs), subs, fringeOn),
		Convex:  false,
	}
}

// isConvex reports whether subs is a single, solid, convex contour — the
// only shape the fast path handles; multiple subpaths (holes, compound
// glyphs) always fall back to stencil-then-cover.
func isConvex(subs []flatten.Subpath) bool {
	if len(subs) != 1 || !subs[0].Solid {
		return false
	}
	pts := subs[0].Vertices
	if len(pts) < 3 {
		return false
	}
	sign := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i].Point
		b := pts[(i+1)%n].Point
		c := pts[(i+2)%n].Point
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if math.Abs(cross) < 1e-9 {
			continue
		}
		s := 1.0
		if cross < 0 {
			s = -1.0
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// convexFan triangulates a single convex contour as a fan from its first
// vertex, then appends a fringe ring of degenerate triangles whose outer
// vertices carry UV {0,0} (zero coverage) and inner vertices carry UV
// {1,1} (full coverage); the fragment shader interpolates between them to
// produce the antialiased edge. When fringeOn is false the shape is
// filled hard-edged with no fringe geometry.
func convexFan(sub flatten.Subpath, fringeOn bool) []render.Vertex {
	pts := sub.Vertices
	n := len(pts)
	if n < 3 {
		return nil
	}

	verts := make([]render.Vertex, 0, (n-2)*3)
	p0 := pts[0].Point
	for i := 1; i < n-1; i++ {
		p1 := pts[i].Point
		p2 := pts[i+1].Point
		verts = append(verts,
			render.Vertex{X: float32(p0.X), Y: float32(p0.Y), U: 1, V: 1},
			render.Vertex{X: float32(p1.X), Y: float32(p1.Y), U: 1, V: 1},
			render.Vertex{X: float32(p2.X), Y: float32(p2.Y), U: 1, V: 1},
		)
	}

	if fringeOn {
		verts = append(verts, fringeRing(pts, FringeWidth)...)
	}
	return verts
}

// fringeRing builds the antialiasing border as a strip of quads (two
// triangles each) between the contour and its outward-offset copy.
func fringeRing(pts []flatten.Vertex, width float64) []render.Vertex {
	n := len(pts)
	if n < 3 {
		return nil
	}
	out := make([]render.Vertex, 0, n*6)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		na := outwardNormal(pts, i)
		nb := outwardNormal(pts, (i+1)%n)

		innerA := render.Vertex{X: float32(a.Point.X), Y: float32(a.Point.Y), U: 1, V: 1}
		innerB := render.Vertex{X: float32(b.Point.X), Y: float32(b.Point.Y), U: 1, V: 1}
		outerA := render.Vertex{
			X: float32(a.Point.X + na.X*width), Y: float32(a.Point.Y + na.Y*width), U: 0, V: 0,
		}
		outerB := render.Vertex{
			X: float32(b.Point.X + nb.X*width), Y: float32(b.Point.Y + nb.Y*width), U: 0, V: 0,
		}

		out = append(out, innerA, innerB, outerA, outerB, outerA, innerB)
	}
	return out
}

type point2 struct{ X, Y float64 }

// outwardNormal averages the outward-facing normals of the two edges
// meeting at vertex i, matching the teacher stroke expander's join-normal
// construction adapted to a closed fill boundary instead of an open
// stroke centerline.
func outwardNormal(pts []flatten.Vertex, i int) point2 {
	n := len(pts)
	prev := pts[(i-1+n)%n].Point
	cur := pts[i].Point
	next := pts[(i+1)%n].Point

	e1 := point2{cur.X - prev.X, cur.Y - prev.Y}
	e2 := point2{next.X - cur.X, next.Y - cur.Y}
	n1 := normalize(point2{e1.Y, -e1.X})
	n2 := normalize(point2{e2.Y, -e2.X})
	avg := point2{n1.X + n2.X, n1.Y + n2.Y}
	return normalize(avg)
}

func normalize(v point2) point2 {
	l := math.Hypot(v.X, v.Y)
	if l < 1e-9 {
		return point2{}
	}
	return point2{v.X / l, v.Y / l}
}

// stencilFan emits, for every subpath, a triangle fan from an arbitrary
// anchor point (the subpath's first vertex); the Renderer's stencil pass
// increments on front-facing triangles and decrements on back-facing
// ones so overlapping/nested subpaths accumulate a correct winding
// number, with HoleWinding subpaths contributing their fan in reverse
// orientation so their winding subtracts instead of adds.
func stencilFan(subs []flatten.Subpath) []render.Vertex {
	var verts []render.Vertex
	for _, sub := range subs {
		pts := sub.Vertices
		n := len(pts)
		if n < 3 {
			continue
		}
		p0 := pts[0].Point
		for i := 1; i < n-1; i++ {
			p1 := pts[i].Point
			p2 := pts[i+1].Point
			if !sub.Solid {
				p1, p2 = p2, p1
			}
			verts = append(verts,
				render.Vertex{X: float32(p0.X), Y: float32(p0.Y)},
				render.Vertex{X: float32(p1.X), Y: float32(p1.Y)},
				render.Vertex{X: float32(p2.X), Y: float32(p2.Y)},
			)
		}
	}
	return verts
}

// coverQuad builds the cover pass: two triangles spanning the shape's
// bounding box (tested against the stencil buffer the Renderer just
// wrote), plus a fringe ring around every subpath's boundary so the
// silhouette the stencil test produces still gets an antialiased edge.
func coverQuad(bbox bounds, subs []flatten.Subpath, fringeOn bool) []render.Vertex {
	verts := []render.Vertex{
		{X: float32(bbox.minX), Y: float32(bbox.minY), U: 1, V: 1},
		{X: float32(bbox.maxX), Y: float32(bbox.minY), U: 1, V: 1},
		{X: float32(bbox.maxX), Y: float32(bbox.maxY), U: 1, V: 1},
		{X: float32(bbox.minX), Y: float32(bbox.minY), U: 1, V: 1},
		{X: float32(bbox.maxX), Y: float32(bbox.maxY), U: 1, V: 1},
		{X: float32(bbox.minX), Y: float32(bbox.maxY), U: 1, V: 1},
	}
	if fringeOn {
		for _, sub := range subs {
			verts = append(verts, fringeRing(sub.Vertices, FringeWidth)...)
		}
	}
	return verts
}

type bounds struct{ minX, minY, maxX, maxY float64 }

func boundsOf(subs []flatten.Subpath) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, sub := range subs {
		for _, v := range sub.Vertices {
			b.minX = math.Min(b.minX, v.Point.X)
			b.minY = math.Min(b.minY, v.Point.Y)
			b.maxX = math.Max(b.maxX, v.Point.X)
			b.maxY = math.Max(b.maxY, v.Point.Y)
		}
	}
	return b
}
