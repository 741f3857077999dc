package vgcore

import "math"

// PaintKind discriminates the variant a Paint record holds. Unlike the
// teacher's CPU-sampled Brush hierarchy (one Go interface implementation
// per gradient kind, each computing ColorAt(x, y) on the CPU), Paint is a
// single flat, tagged record: every variant is a two-color (inner/outer)
// gradient or solid fill parameterized by a transform, matching what
// FragUniforms can actually carry to a GPU fragment shader. Multi-stop
// gradients are intentionally out of scope — see DESIGN.md.
type PaintKind int

const (
	PaintSolidColor PaintKind = iota
	PaintLinearGradient
	PaintRadialGradient
	PaintBoxGradient
	PaintConicGradient
	PaintImagePattern
	PaintFilteredImage
)

// Paint is the complete description of how a fill or stroke is colored.
// InverseTransform maps world space into the paint's own local space
// (stored pre-inverted, matching the teacher's pattern of inverting once
// at Paint construction rather than once per vertex at render time).
type Paint struct {
	Kind PaintKind

	InnerColor Color
	OuterColor Color

	// Extent is the paint's local half-width/half-height (box gradients),
	// full width/height (image patterns) or radius pair (radial:
	// {innerRadius, outerRadius}).
	Extent [2]float64
	Radius float64
	// Feather is the distance, in local units, over which Inner fades to
	// Outer at the gradient boundary.
	Feather float64

	InverseTransform Transform

	Image      ImageID
	ImageFlags ImageFlags
	// ImageAlpha multiplies an ImagePattern/FilteredImage's sampled alpha,
	// letting Canvas.SetGlobalAlpha-independent per-paint fading compose
	// with an image fill.
	ImageAlpha float64

	// BlurDirX, BlurDirY and BlurSigma are only meaningful when Kind is
	// PaintFilteredImage: they select the single-pass separable Gaussian
	// blur direction (a unit vector in local space) and standard
	// deviation. Two FilteredImage paints, one per axis, compose a full
	// 2D blur the same way the teacher's internal/filter.BlurFilter runs
	// a horizontal pass then a vertical one.
	BlurDirX, BlurDirY float64
	BlurSigma          float64
}

// SolidPaint returns a flat-color paint.
func SolidPaint(c Color) Paint {
	return Paint{Kind: PaintSolidColor, InnerColor: c, OuterColor: c, ImageAlpha: 1}
}

// LinearGradientPaint returns a gradient that varies along the line from
// start to end, inner color at start fading to outer color at end.
func LinearGradientPaint(start, end Point, inner, outer Color) Paint {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length < 1e-6 {
		length = 1e-6
		dx, dy = 0, 1
	}
	// Build a transform whose local +x axis runs from start to end; the
	// shader evaluates the gradient as a 1D ramp along local x.
	ux, uy := dx/length, dy/length
	toWorld := Transform{A: ux, B: -uy, C: start.X, D: uy, E: ux, F: start.Y}
	return Paint{
		Kind:             PaintLinearGradient,
		InnerColor:       inner,
		OuterColor:       outer,
		Extent:           [2]float64{length, length},
		Feather:          math.Max(length, 1e-6),
		InverseTransform: toWorld.Invert(),
		ImageAlpha:       1,
	}
}

// RadialGradientPaint returns a gradient radiating from center, inner
// color inside innerRadius fading to outer color at outerRadius.
func RadialGradientPaint(center Point, innerRadius, outerRadius float64, inner, outer Color) Paint {
	r := math.Max(outerRadius, 1e-6)
	toWorld := TranslateTransform(center.X, center.Y)
	return Paint{
		Kind:             PaintRadialGradient,
		InnerColor:       inner,
		OuterColor:       outer,
		Extent:           [2]float64{innerRadius, outerRadius},
		Radius:           r,
		Feather:          math.Max(outerRadius-innerRadius, 1e-6),
		InverseTransform: toWorld.Invert(),
		ImageAlpha:       1,
	}
}

// BoxGradientPaint returns a gradient filling a rounded rectangle: solid
// inner color within the rect shrunk by feather, fading to outer color at
// its edge. Mirrors NanoVG's nvgBoxGradient, used for drop-shadow-style
// fills.
func BoxGradientPaint(rect Rect, radius, feather float64, inner, outer Color) Paint {
	cx := (rect.Min.X + rect.Max.X) / 2
	cy := (rect.Min.Y + rect.Max.Y) / 2
	toWorld := TranslateTransform(cx, cy)
	return Paint{
		Kind:             PaintBoxGradient,
		InnerColor:       inner,
		OuterColor:       outer,
		Extent:           [2]float64{rect.Width() / 2, rect.Height() / 2},
		Radius:           radius,
		Feather:          math.Max(feather, 1e-6),
		InverseTransform: toWorld.Invert(),
		ImageAlpha:       1,
	}
}

// ConicGradientPaint returns a gradient sweeping angularly around center
// from inner color at angle 0 to outer color at angle 2*pi, wrapping back
// to inner. angleOffset rotates where the sweep starts.
func ConicGradientPaint(center Point, angleOffset float64, inner, outer Color) Paint {
	toWorld := TranslateTransform(center.X, center.Y).Rotate(angleOffset)
	return Paint{
		Kind:             PaintConicGradient,
		InnerColor:       inner,
		OuterColor:       outer,
		InverseTransform: toWorld.Invert(),
		ImageAlpha:       1,
	}
}

// ImagePatternPaint returns a paint that samples image id, placed by
// toWorld and sized extentW x extentH in local units, modulated by alpha.
func ImagePatternPaint(toWorld Transform, extentW, extentH float64, id ImageID, flags ImageFlags, alpha float64) Paint {
	return Paint{
		Kind:             PaintImagePattern,
		InnerColor:       White,
		OuterColor:       White,
		Extent:           [2]float64{extentW, extentH},
		InverseTransform: toWorld.Invert(),
		Image:            id,
		ImageFlags:       flags,
		ImageAlpha:       alpha,
	}
}

// FilteredImagePaint returns an ImagePattern-like paint additionally
// routed through the FilterImage shader variant, sampling id through a
// single-pass separable Gaussian blur along unit direction (dirX, dirY)
// with standard deviation sigma (used by Canvas.DrawBlurredImage's two
// orthogonal passes).
func FilteredImagePaint(toWorld Transform, extentW, extentH float64, id ImageID, alpha, dirX, dirY, sigma float64) Paint {
	p := ImagePatternPaint(toWorld, extentW, extentH, id, ImageFlagsNone, alpha)
	p.Kind = PaintFilteredImage
	p.BlurDirX = dirX
	p.BlurDirY = dirY
	p.BlurSigma = sigma
	return p
}

// shaderType returns the FragUniforms shader variant this paint selects
// when it carries no image (solid/gradient) versus when it does.
func (p Paint) shaderType() ShaderType {
	switch p.Kind {
	case PaintSolidColor:
		return ShaderFillColor
	case PaintLinearGradient, PaintRadialGradient, PaintBoxGradient:
		return ShaderFillGradient
	case PaintConicGradient:
		return ShaderFillGradientConic
	case PaintImagePattern:
		return ShaderFillImage
	case PaintFilteredImage:
		return ShaderFilterImage
	default:
		return ShaderFillColor
	}
}
