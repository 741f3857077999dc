package vgcore

import "github.com/femtovg/femtovg-go/render"

// Option configures a Canvas during creation via the functional-options
// pattern.
//
// Example:
//
//	cv := vgcore.NewCanvas(800, 600, vgcore.WithRenderer(myRenderer))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	renderer              render.Renderer
	tessellationTolerance float64
	stateStackLimit       int
	textShaper            TextShaper
}

const (
	defaultTessellationTolerance = 0.25
	defaultStateStackLimit       = 32
)

func defaultOptions() canvasOptions {
	return canvasOptions{
		tessellationTolerance: defaultTessellationTolerance,
		stateStackLimit:       defaultStateStackLimit,
	}
}

// WithRenderer injects the Renderer a Canvas submits batched DrawCalls
// to. If omitted, Canvas still records commands but EndFrame returns
// ErrRenderTargetError since there is nowhere to send them.
func WithRenderer(r render.Renderer) Option {
	return func(o *canvasOptions) {
		o.renderer = r
	}
}

// WithTessellationTolerance sets the base flattening tolerance. Canvas
// divides it by the current transform's scale factor and flattens the
// device-space outline so that no polyline point deviates from its curve
// by more than the result. Smaller values produce smoother curves at the
// cost of more vertices. Values <= 0 are ignored and the default of 0.25 is kept.
func WithTessellationTolerance(tolerance float64) Option {
	return func(o *canvasOptions) {
		if tolerance > 0 {
			o.tessellationTolerance = tolerance
		}
	}
}

// WithStateStackLimit overrides the maximum Save/Restore nesting depth.
// Values <= 0 are ignored and the default of 32 is kept.
func WithStateStackLimit(limit int) Option {
	return func(o *canvasOptions) {
		if limit > 0 {
			o.stateStackLimit = limit
		}
	}
}

// WithTextShaper injects the collaborator Canvas consults for glyph runs.
// Without one, FillText fails with ErrFontNoGlyphsFound since vgcore
// performs no shaping of its own.
func WithTextShaper(s TextShaper) Option {
	return func(o *canvasOptions) {
		o.textShaper = s
	}
}
