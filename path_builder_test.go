package vgcore

import "testing"

func countVerbs(p *Path) int { return len(p.Verbs()) }

func TestBuildPathFluentChaining(t *testing.T) {
	p := BuildPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close().Build()
	if countVerbs(p) != 4 {
		t.Fatalf("len(Verbs()) = %d, want 4 (MoveTo, LineTo, LineTo, ClosePath)", countVerbs(p))
	}
}

func TestPathBuilderRectProducesFourLinesAndClose(t *testing.T) {
	p := BuildPath().Rect(0, 0, 10, 10).Build()
	verbs := p.Verbs()
	if len(verbs) != 5 {
		t.Fatalf("Rect() produced %d verbs, want 5 (MoveTo + 3 LineTo + Close)", len(verbs))
	}
	if _, ok := verbs[len(verbs)-1].(ClosePath); !ok {
		t.Error("Rect() should end with ClosePath")
	}
}

func TestPathBuilderRoundRectClampsRadius(t *testing.T) {
	// radius larger than half the smaller dimension should not panic and
	// should still produce a closed path.
	p := BuildPath().RoundRect(0, 0, 10, 4, 100).Build()
	verbs := p.Verbs()
	if _, ok := verbs[len(verbs)-1].(ClosePath); !ok {
		t.Error("RoundRect() should end with ClosePath even with an oversized radius")
	}
}

func TestPathBuilderPolygonRejectsFewerThanThreeSides(t *testing.T) {
	p := BuildPath().Polygon(0, 0, 10, 2).Build()
	if countVerbs(p) != 0 {
		t.Errorf("Polygon(sides=2) produced %d verbs, want 0 (rejected)", countVerbs(p))
	}
}

func TestPathBuilderPolygonProducesNSidesPlusClose(t *testing.T) {
	p := BuildPath().Polygon(0, 0, 10, 5).Build()
	// 1 MoveTo + 4 LineTo + 1 Close = 6
	if countVerbs(p) != 6 {
		t.Errorf("Polygon(sides=5) produced %d verbs, want 6", countVerbs(p))
	}
}

func TestPathBuilderStarRejectsFewerThanThreePoints(t *testing.T) {
	p := BuildPath().Star(0, 0, 10, 5, 2).Build()
	if countVerbs(p) != 0 {
		t.Errorf("Star(points=2) produced %d verbs, want 0 (rejected)", countVerbs(p))
	}
}

func TestPathBuilderStarProducesDoublePointsPlusClose(t *testing.T) {
	p := BuildPath().Star(0, 0, 10, 5, 5).Build()
	// 1 MoveTo + 9 LineTo + 1 Close = 11
	if countVerbs(p) != 11 {
		t.Errorf("Star(points=5) produced %d verbs, want 11", countVerbs(p))
	}
}

func TestPathBuilderBuildAndPathAreAliases(t *testing.T) {
	b := BuildPath().MoveTo(1, 1)
	if b.Build() != b.Path() {
		t.Error("Build() and Path() should return the same underlying *Path")
	}
}

func TestPathBuilderCircleIsEllipseWithEqualRadii(t *testing.T) {
	p := BuildPath().Circle(0, 0, 5).Build()
	if countVerbs(p) != 6 {
		t.Fatalf("Circle() produced %d verbs, want 6 (MoveTo + 4 CubicTo + Close)", countVerbs(p))
	}
}
