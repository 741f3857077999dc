package vgcore

import (
	"math"

	"github.com/femtovg/femtovg-go/internal/flatten"
	"github.com/femtovg/femtovg-go/internal/tess"
	"github.com/femtovg/femtovg-go/render"
)

// contoursFromPath flattens p's verbs into internal/flatten's own verb
// model, applying xf to every point first so tessellation always happens
// in device space regardless of the Path's own local coordinates — the
// same reason Canvas converts TessellationTolerance by xf.ScaleFactor
// before calling this.
func contoursFromPath(p *Path, xf Transform) []flatten.Contour {
	verbs := p.Verbs()
	var contours []flatten.Contour
	var current []flatten.Verb
	subpathIndex := -1

	flush := func() {
		if current != nil {
			solid := p.SubpathSolidity(subpathIndex) == SolidWinding
			contours = append(contours, flatten.Contour{Verbs: current, Solid: solid})
		}
	}

	for _, v := range verbs {
		switch e := v.(type) {
		case MoveTo:
			flush()
			subpathIndex++
			current = []flatten.Verb{flatten.MoveTo{Point: toFlattenPoint(xf.TransformPoint(e.Point))}}
		case LineTo:
			current = append(current, flatten.LineTo{Point: toFlattenPoint(xf.TransformPoint(e.Point))})
		case QuadTo:
			current = append(current, flatten.QuadTo{
				Control: toFlattenPoint(xf.TransformPoint(e.Control)),
				Point:   toFlattenPoint(xf.TransformPoint(e.Point)),
			})
		case CubicTo:
			current = append(current, flatten.CubicTo{
				Control1: toFlattenPoint(xf.TransformPoint(e.Control1)),
				Control2: toFlattenPoint(xf.TransformPoint(e.Control2)),
				Point:    toFlattenPoint(xf.TransformPoint(e.Point)),
			})
		case ClosePath:
			current = append(current, flatten.ClosePath{})
		}
	}
	flush()
	return contours
}

func toFlattenPoint(p Point) flatten.Point { return flatten.Point{X: p.X, Y: p.Y} }

// deviceTolerance converts a local-space flattening tolerance to device
// space via xf's geometric scale factor, so a curve under a 3x zoom
// transform is flattened three times finer and stays visually smooth.
func deviceTolerance(tolerance float64, xf Transform) float64 {
	scale := xf.ScaleFactor()
	if scale < 1e-6 {
		scale = 1e-6
	}
	return tolerance / scale
}

// uniformsForPaint builds the wire Uniforms block for one draw call from
// a Paint, the scissor in effect, and the state's GlobalAlpha. Channel
// order matches FragUniforms: alpha is folded into both colors here so
// the Renderer never needs a separate alpha uniform.
func uniformsForPaint(paint Paint, scissor Scissor, globalAlpha float64) render.Uniforms {
	var u render.Uniforms

	alpha := globalAlpha
	if paint.Kind == PaintImagePattern || paint.Kind == PaintFilteredImage {
		alpha *= paint.ImageAlpha
	}
	inner := premultipliedWithAlpha(paint.InnerColor, alpha)
	outer := premultipliedWithAlpha(paint.OuterColor, alpha)
	u.InnerColor = inner
	u.OuterColor = outer

	writeMat3(&u.PaintMat, paint.InverseTransform)
	if scissor.Unbounded() {
		u.ScissorExtAndScale = [4]float32{1e6, 1e6, 1, 1}
	} else {
		writeMat3(&u.ScissorMat, scissor.Transform.Invert())
		u.ScissorExtAndScale = [4]float32{
			float32(scissor.Extent[0]), float32(scissor.Extent[1]), 1, 1,
		}
	}

	u.PaintExtentRadiusFeather = [4]float32{
		float32(paint.Extent[0]), float32(paint.Extent[1]), float32(paint.Radius), float32(paint.Feather),
	}
	u.StrokeParams[3] = float32(paint.shaderType())

	if paint.Kind == PaintFilteredImage {
		u.GlyphParams = [4]float32{
			0, float32(paint.BlurDirX), float32(paint.BlurDirY), float32(paint.BlurSigma),
		}
		u.BlurCoeff[0] = float32(blurNormCoeff(paint.BlurSigma))
	}
	return u
}

// blurNormCoeff returns the scalar that normalizes a discrete separable
// Gaussian kernel of the given sigma so its taps sum to 1, matching the
// teacher's internal/filter.GaussianKernel normalization. The Renderer
// only receives this single coefficient (not the full kernel array), so
// it is computed once here, CPU-side, rather than re-derived per pixel;
// a shader trusts BlurCoeff exactly as given, the same way a GPU shader
// trusts any other uniform.
func blurNormCoeff(sigma float64) float64 {
	if sigma < 1e-6 {
		sigma = 1e-6
	}
	radius := int(math.Ceil(sigma * 3))
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		sum += math.Exp(-float64(i*i) / (2 * sigma * sigma))
	}
	if sum < 1e-12 {
		sum = 1e-12
	}
	return 1 / sum
}

func premultipliedWithAlpha(c Color, alpha float64) [4]float32 {
	pm := c.Premultiply()
	return [4]float32{
		float32(pm.R * alpha), float32(pm.G * alpha), float32(pm.B * alpha), float32(pm.A * alpha),
	}
}

func writeMat3(dst *[3][4]float32, t Transform) {
	dst[0] = [4]float32{float32(t.A), float32(t.B), 0, 0}
	dst[1] = [4]float32{float32(t.C), float32(t.D), 0, 0}
	dst[2] = [4]float32{float32(t.E), float32(t.F), 0, 1}
}

// blendStateFor translates a CompositeOperation into the render package's
// own BlendState type.
func blendStateFor(op CompositeOperation) render.BlendState {
	bs := op.BlendState()
	return render.BlendState{
		SrcRGB:   render.BlendFactor(bs.SrcRGB),
		DstRGB:   render.BlendFactor(bs.DstRGB),
		SrcAlpha: render.BlendFactor(bs.SrcAlpha),
		DstAlpha: render.BlendFactor(bs.DstAlpha),
	}
}

func tessFillRule(r FillRule) tess.FillRule {
	if r == FillRuleEvenOdd {
		return tess.FillRuleEvenOdd
	}
	return tess.FillRuleNonZero
}

func tessLineCap(c LineCap) tess.LineCap {
	switch c {
	case CapRound:
		return tess.CapRound
	case CapSquare:
		return tess.CapSquare
	default:
		return tess.CapButt
	}
}

func tessLineJoin(j LineJoin) tess.LineJoin {
	switch j {
	case JoinRound:
		return tess.JoinRound
	case JoinBevel:
		return tess.JoinBevel
	default:
		return tess.JoinMiter
	}
}
