package vgcore

import "math"

// Scissor is an oriented rectangular clip: Transform places the rectangle
// in world space and Extent gives its half-width/half-height measured in
// the rectangle's own local space, matching the teacher's
// internal/clip.ClipStack rectangle representation. Path-based (non-
// rectangular) scissoring is out of scope; Canvas only ever pushes
// rectangles here.
type Scissor struct {
	Transform Transform
	// Extent holds half-width/half-height. The zero value {0,0} means
	// unbounded (no clip pushed yet); any negative component marks the
	// Empty sentinel produced by intersecting disjoint rectangles. A real
	// pushed rectangle always has both components strictly positive.
	Extent [2]float64
}

// emptyExtent marks a scissor whose intersection collapsed to nothing: a
// negative Extent component can never arise from a real rectangle (w, h
// are always >= 0), so it is free to use as the empty sentinel distinct
// from the zero-value {0,0} Unbounded default.
var emptyExtent = [2]float64{-1, -1}

// Unbounded reports whether the scissor imposes no clip at all. A scissor
// whose intersection is empty (Extent negative) is NOT unbounded: it
// clips everything, the opposite of no clip.
func (s Scissor) Unbounded() bool {
	return s.Extent[0] == 0 && s.Extent[1] == 0
}

// Empty reports whether s is the result of intersecting two disjoint
// rectangles: it clips away every point, including ones an unbounded
// scissor would pass through.
func (s Scissor) Empty() bool {
	return s.Extent[0] < 0 || s.Extent[1] < 0
}

// IntersectScissor computes the intersection of s with a new axis-aligned
// rectangle (x, y, w, h) expressed in the CURRENT local coordinate space
// (i.e. after ctm has already been applied conceptually — ctm is the
// transform in effect when the new rectangle was specified). The result
// is expressed in that same local space, matching the teacher's
// clip.ClipStack.PushRect behavior of folding each new rectangle into the
// stack's running local frame rather than re-deriving a world-space
// union. This resolves spec's open question on whether intersection
// happens in local or world space: local space, because a scissor chain
// is built incrementally under a changing CTM and each Save/Restore level
// must be able to undo exactly the rectangle it pushed.
func (s Scissor) IntersectScissor(ctm Transform, x, y, w, h float64) Scissor {
	rectToWorld := ctm.Translate(x+w/2, y+h/2)
	halfW, halfH := w/2, h/2

	if s.Unbounded() {
		return Scissor{Transform: rectToWorld, Extent: [2]float64{halfW, halfH}}
	}

	// Transform the new rectangle's center and half-extents into the
	// existing scissor's local space, then intersect axis-aligned there.
	toExisting := s.Transform.Invert().Multiply(rectToWorld)
	cx, cy := toExisting.C, toExisting.F
	sx := math.Hypot(toExisting.A, toExisting.D) * halfW
	sy := math.Hypot(toExisting.B, toExisting.E) * halfH

	minX := math.Max(-s.Extent[0], cx-sx)
	maxX := math.Min(s.Extent[0], cx+sx)
	minY := math.Max(-s.Extent[1], cy-sy)
	maxY := math.Min(s.Extent[1], cy+sy)

	if maxX < minX || maxY < minY {
		// Disjoint rectangles: the running scissor and the new rect share
		// no area at all. Collapse to the empty sentinel rather than a
		// {0,0} Extent, which Unbounded would misread as "no clip".
		return Scissor{Transform: s.Transform, Extent: emptyExtent}
	}

	newCx := (minX + maxX) / 2
	newCy := (minY + maxY) / 2
	newHalfW := (maxX - minX) / 2
	newHalfH := (maxY - minY) / 2

	return Scissor{
		Transform: s.Transform.Translate(newCx, newCy),
		Extent:    [2]float64{newHalfW, newHalfH},
	}
}

// Contains reports whether world-space point pt falls inside the scissor.
func (s Scissor) Contains(pt Point) bool {
	if s.Empty() {
		return false
	}
	if s.Unbounded() {
		return true
	}
	local := s.Transform.Invert().TransformPoint(pt)
	return local.X >= -s.Extent[0] && local.X <= s.Extent[0] &&
		local.Y >= -s.Extent[1] && local.Y <= s.Extent[1]
}

// Bounds returns the world-space axis-aligned bounding rectangle of the
// (possibly rotated) scissor rectangle, used by the Renderer to set a
// conservative hardware scissor-test rect before the shader-level oriented
// test narrows it further.
func (s Scissor) Bounds() Rect {
	if s.Unbounded() {
		return Rect{}
	}
	if s.Empty() {
		// A zero-area rect at the scissor's own origin, not Rect{}: Rect{}
		// is already the Unbounded sentinel above, and reusing it here
		// would let an empty scissor's hardware-scissor bound be mistaken
		// for "no bound at all" further down the Renderer pipeline.
		origin := s.Transform.TransformPoint(Point{})
		return NewRect(origin, origin)
	}
	corners := [4]Point{
		{X: -s.Extent[0], Y: -s.Extent[1]},
		{X: s.Extent[0], Y: -s.Extent[1]},
		{X: s.Extent[0], Y: s.Extent[1]},
		{X: -s.Extent[0], Y: s.Extent[1]},
	}
	bbox := NewRect(s.Transform.TransformPoint(corners[0]), s.Transform.TransformPoint(corners[0]))
	for _, c := range corners[1:] {
		p := s.Transform.TransformPoint(c)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}
