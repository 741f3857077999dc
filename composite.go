package vgcore

// BlendFactor names one GPU blend-equation factor. The Renderer maps these
// onto its backend's native blend-factor enum (e.g. glBlendFunc / wgpu
// BlendFactor) when it executes a DrawCommand's CompositeOperation.
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// BlendState is the four-factor blend equation a CompositeOperation maps
// to: (srcRGB, dstRGB) blend the color channels, (srcAlpha, dstAlpha)
// blend the alpha channel, both via simple addition of factor*operand.
type BlendState struct {
	SrcRGB, DstRGB     BlendFactor
	SrcAlpha, DstAlpha BlendFactor
}

// CompositeOperation selects one of the eleven compositing operators this
// library supports: ten Porter-Duff operators plus the non-Porter-Duff
// Lighter mode. Custom blend equations are out of scope; every value here maps
// to a fixed BlendState.
type CompositeOperation int

const (
	CompositeSourceOver CompositeOperation = iota
	CompositeSourceIn
	CompositeSourceOut
	CompositeAtop
	CompositeDestinationOver
	CompositeDestinationIn
	CompositeDestinationOut
	CompositeDestinationAtop
	CompositeLighter
	CompositeCopy
	CompositeXor
)

// BlendState returns the fixed four-factor blend equation for op. Inputs
// are assumed premultiplied, matching the rest of the tessellator/renderer
// pipeline's color convention.
func (op CompositeOperation) BlendState() BlendState {
	switch op {
	case CompositeSourceOver:
		return BlendState{BlendOne, BlendOneMinusSrcAlpha, BlendOne, BlendOneMinusSrcAlpha}
	case CompositeSourceIn:
		return BlendState{BlendDstAlpha, BlendZero, BlendDstAlpha, BlendZero}
	case CompositeSourceOut:
		return BlendState{BlendOneMinusDstAlpha, BlendZero, BlendOneMinusDstAlpha, BlendZero}
	case CompositeAtop:
		return BlendState{BlendDstAlpha, BlendOneMinusSrcAlpha, BlendDstAlpha, BlendOneMinusSrcAlpha}
	case CompositeDestinationOver:
		return BlendState{BlendOneMinusDstAlpha, BlendOne, BlendOneMinusDstAlpha, BlendOne}
	case CompositeDestinationIn:
		return BlendState{BlendZero, BlendSrcAlpha, BlendZero, BlendSrcAlpha}
	case CompositeDestinationOut:
		return BlendState{BlendZero, BlendOneMinusSrcAlpha, BlendZero, BlendOneMinusSrcAlpha}
	case CompositeDestinationAtop:
		return BlendState{BlendOneMinusDstAlpha, BlendSrcAlpha, BlendOneMinusDstAlpha, BlendSrcAlpha}
	case CompositeLighter:
		return BlendState{BlendOne, BlendOne, BlendOne, BlendOne}
	case CompositeCopy:
		return BlendState{BlendOne, BlendZero, BlendOne, BlendZero}
	case CompositeXor:
		return BlendState{BlendOneMinusDstAlpha, BlendOneMinusSrcAlpha, BlendOneMinusDstAlpha, BlendOneMinusSrcAlpha}
	default:
		return BlendState{BlendOne, BlendOneMinusSrcAlpha, BlendOne, BlendOneMinusSrcAlpha}
	}
}

// Blend applies op to a single premultiplied src/dst color pair in CPU
// space, for callers working directly in terms of vgcore.Color rather than
// a Renderer's own wire types (e.g. tests asserting expected pixel values
// against render/software's output). render/software itself cannot call
// this: it is a leaf package that never imports vgcore, so it carries its
// own copy of the same four-factor resolution over its local BlendFactor
// and [4]float32 representation instead. RGB and alpha channels resolve
// their factors independently, per BlendState.
func (op CompositeOperation) Blend(src, dst Color) Color {
	bs := op.BlendState()
	sRGB := rgbFactor(bs.SrcRGB, src, dst)
	dRGB := rgbFactor(bs.DstRGB, src, dst)
	sA := alphaFactor(bs.SrcAlpha, src, dst)
	dA := alphaFactor(bs.DstAlpha, src, dst)
	return Color{
		R: sRGB*src.R + dRGB*dst.R,
		G: sRGB*src.G + dRGB*dst.G,
		B: sRGB*src.B + dRGB*dst.B,
		A: sA*src.A + dA*dst.A,
	}
}

// rgbFactor resolves a blend factor to a scalar multiplier for the RGB
// channels. Per-channel factors (BlendSrcColor/BlendDstColor) are not
// meaningful without a specific channel already selected, so this software
// path treats them via their alpha, matching how premultiplied-alpha
// Porter-Duff compositing is usually expressed.
func rgbFactor(f BlendFactor, src, dst Color) float64 {
	return alphaFactor(f, src, dst)
}

func alphaFactor(f BlendFactor, src, dst Color) float64 {
	switch f {
	case BlendZero:
		return 0
	case BlendOne:
		return 1
	case BlendSrcColor, BlendSrcAlpha:
		return src.A
	case BlendOneMinusSrcColor, BlendOneMinusSrcAlpha:
		return 1 - src.A
	case BlendDstColor, BlendDstAlpha:
		return dst.A
	case BlendOneMinusDstColor, BlendOneMinusDstAlpha:
		return 1 - dst.A
	default:
		return 0
	}
}
