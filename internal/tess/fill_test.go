package tess

import (
	"testing"

	"github.com/femtovg/femtovg-go/internal/flatten"
)

func square(solid bool) flatten.Subpath {
	return flatten.Subpath{
		Solid:  solid,
		Closed: true,
		Vertices: []flatten.Vertex{
			{Point: flatten.Point{X: 0, Y: 0}},
			{Point: flatten.Point{X: 10, Y: 0}},
			{Point: flatten.Point{X: 10, Y: 10}},
			{Point: flatten.Point{X: 0, Y: 10}},
		},
	}
}

func lShape(solid bool) flatten.Subpath {
	// a concave "L" hexagon
	return flatten.Subpath{
		Solid:  solid,
		Closed: true,
		Vertices: []flatten.Vertex{
			{Point: flatten.Point{X: 0, Y: 0}},
			{Point: flatten.Point{X: 10, Y: 0}},
			{Point: flatten.Point{X: 10, Y: 5}},
			{Point: flatten.Point{X: 5, Y: 5}},
			{Point: flatten.Point{X: 5, Y: 10}},
			{Point: flatten.Point{X: 0, Y: 10}},
		},
	}
}

func TestFillConvexSquareTakesFastPath(t *testing.T) {
	result := Fill([]flatten.Subpath{square(true)}, FillRuleNonZero, true)
	if !result.Convex {
		t.Fatal("a single solid square should take the convex fast path")
	}
	if result.Stencil != nil {
		t.Error("convex fast path should carry no Stencil pass")
	}
	if len(result.Cover) == 0 {
		t.Error("expected Cover vertices for the fan triangulation")
	}
	// two fan triangles (6 verts) plus a 4-edge fringe ring (6 verts each)
	wantMin := 6 + 4*6
	if len(result.Cover) < wantMin {
		t.Errorf("Cover has %d vertices, want at least %d (fan + fringe)", len(result.Cover), wantMin)
	}
}

func TestFillConvexWithoutFringe(t *testing.T) {
	result := Fill([]flatten.Subpath{square(true)}, FillRuleNonZero, false)
	if len(result.Cover) != 6 {
		t.Errorf("fringe-disabled convex square Cover has %d vertices, want 6 (two fan triangles)", len(result.Cover))
	}
}

func TestFillConcaveUsesStencilThenCover(t *testing.T) {
	result := Fill([]flatten.Subpath{lShape(true)}, FillRuleNonZero, true)
	if result.Convex {
		t.Fatal("an L-shaped hexagon is concave and must not take the convex fast path")
	}
	if len(result.Stencil) == 0 {
		t.Error("expected a non-empty Stencil pass for a concave fill")
	}
	if len(result.Cover) == 0 {
		t.Error("expected a non-empty Cover pass for a concave fill")
	}
}

func TestFillMultipleSubpathsAlwaysConcavePath(t *testing.T) {
	outer := square(true)
	hole := flatten.Subpath{
		Solid:  false,
		Closed: true,
		Vertices: []flatten.Vertex{
			{Point: flatten.Point{X: 2, Y: 2}},
			{Point: flatten.Point{X: 8, Y: 2}},
			{Point: flatten.Point{X: 8, Y: 8}},
			{Point: flatten.Point{X: 2, Y: 8}},
		},
	}
	result := Fill([]flatten.Subpath{outer, hole}, FillRuleNonZero, true)
	if result.Convex {
		t.Error("multiple subpaths (outer + hole) must use stencil-then-cover, not the convex path")
	}
	// 2 subpaths * 2 triangles each (fan from quad) = 4 triangles = 12 verts
	if len(result.Stencil) != 12 {
		t.Errorf("Stencil has %d vertices, want 12 (2 quads fanned into 2 triangles each)", len(result.Stencil))
	}
}

func TestFillHoleStencilWindingIsReversed(t *testing.T) {
	hole := square(false)
	result := Fill([]flatten.Subpath{hole}, FillRuleNonZero, false)
	// a single subpath that's a hole still isn't eligible for the convex
	// path (isConvex requires Solid), so it goes through stencilFan.
	if result.Convex {
		t.Fatal("a hole-only single subpath must not take the convex fast path")
	}
	// a solid square goes through the convex path in Fill and has no
	// stencil pass, so build its stencil fan directly for comparison.
	solidStencil := stencilFan([]flatten.Subpath{square(true)})
	// stencilFan reverses p1/p2 for non-solid subpaths: the two fan
	// triangles' vertex order should differ between solid and hole.
	if len(result.Stencil) != len(solidStencil) {
		t.Fatalf("expected same vertex count for solid vs hole fan, got %d vs %d", len(solidStencil), len(result.Stencil))
	}
	same := true
	for i := range result.Stencil {
		if result.Stencil[i] != solidStencil[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected hole subpath's stencil fan to have reversed winding versus solid")
	}
}

func TestIsConvexRejectsTooFewVertices(t *testing.T) {
	degenerate := flatten.Subpath{Solid: true, Vertices: []flatten.Vertex{
		{Point: flatten.Point{X: 0, Y: 0}},
		{Point: flatten.Point{X: 1, Y: 1}},
	}}
	if isConvex([]flatten.Subpath{degenerate}) {
		t.Error("a 2-point subpath should not be reported convex")
	}
}
