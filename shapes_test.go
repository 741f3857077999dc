package vgcore

import "testing"

func TestDrawRegularPolygonAddsNSidesPlusClose(t *testing.T) {
	cv := NewCanvas(16, 16)
	cv.DrawRegularPolygon(6, 0, 0, 5, 0)
	// 1 MoveTo + 5 LineTo + 1 ClosePath = 7
	if got := countVerbs(cv.path); got != 7 {
		t.Errorf("DrawRegularPolygon(6) produced %d verbs, want 7", got)
	}
}

func TestDrawRegularPolygonFirstVertexAtRotationZero(t *testing.T) {
	cv := NewCanvas(16, 16)
	cv.DrawRegularPolygon(4, 10, 10, 5, 0)
	x, y := cv.path.Verbs()[0].(MoveTo).Point.X, cv.path.Verbs()[0].(MoveTo).Point.Y
	if x < 14.999 || x > 15.001 || y < 9.999 || y > 10.001 {
		t.Errorf("first vertex = (%v, %v), want approximately (15, 10)", x, y)
	}
}
