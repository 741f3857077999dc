package vgcore

import (
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// GlyphID is a font-specific glyph index, not a Unicode code point.
type GlyphID uint32

// Glyph is one shaped, positioned glyph ready for tessellation. Canvas
// never shapes text itself; a TextShaper produces these from a run of
// text and Canvas fills/strokes Outline the same way it would any other
// Path, so glyph rendering gets antialiasing and paint support for free.
type Glyph struct {
	ID      GlyphID
	Cluster int

	// Pos is the glyph's pen position at shaping time, in 26.6 fixed
	// point, matching the precision font rasterizers conventionally use
	// so hinting-sensitive layout doesn't drift under float64 rounding.
	Pos fixed.Point26_6
	// Advance is the horizontal distance to the next glyph's pen
	// position.
	Advance fixed.Int26_6

	// Outline is the glyph's filled shape in font-design-space units
	// already scaled to the requested size and translated to Pos; nil
	// for glyphs with no visible outline (space, control characters).
	Outline *Path
}

// TextShaper converts a run of text at the given style into positioned
// glyph outlines. Font loading, HarfBuzz-style shaping, and glyph-atlas
// caching all live outside this module: implementations are expected to
// wrap a shaping library such as go-text/typesetting, returning outlines
// already converted to vgcore Paths.
type TextShaper interface {
	Shape(text string, params FontParams) ([]Glyph, error)
}

// NormalizeTextWidth folds fullwidth and halfwidth code points (common in
// CJK input) to their canonical narrow/wide form before shaping, so a
// TextShaper's cluster-to-glyph mapping is not thrown off by a presentation
// variant it doesn't separately recognize. Canvas applies this to every
// string it hands to a TextShaper; callers bypassing Canvas's text helpers
// should do the same.
func NormalizeTextWidth(s string) string {
	return width.Fold.String(s)
}

// noopShaper is the default TextShaper a Canvas starts with when no
// WithTextShaper option is supplied: every run shapes to zero glyphs
// rather than panicking, so FillText draws nothing and returns
// ErrFontNoGlyphsFound until a real shaper is installed.
type noopShaper struct{}

func (noopShaper) Shape(text string, params FontParams) ([]Glyph, error) {
	return nil, nil
}
