package vgcore

// ShaderType selects the fragment shader variant a FragUniforms block
// parameterizes. The integer values are wire-exact: a Renderer backend
// uploads this as a uniform and its shader switches on it directly, so
// reordering these constants is a breaking change across the Renderer
// boundary.
type ShaderType int32

const (
	ShaderFillGradient ShaderType = iota
	ShaderFillImage
	ShaderStencil
	ShaderFillImageGradient
	ShaderFilterImage
	ShaderFillColor
	ShaderTextureCopyUnclipped
	ShaderFillColorUnclipped
	ShaderFillGradientConic
	ShaderFillImageGradientConic
)

// FragUniforms is the wire-exact shader parameter block layout a DrawCall
// carries to the Renderer as render.Uniforms: 14 vec4 rows (56 float32s), matching the
// layout NanoVG-lineage GLSL fragment shaders expect. Field order is
// load-bearing; a Renderer implementation indexes this layout by row
// offset, not by field name, so fields must never be reordered, only
// appended-to-the-end (which would itself be a wire-format bump).
type FragUniforms struct {
	// ScissorMat is the inverse scissor-to-world transform, rows 0-2.
	ScissorMat [3][4]float32
	// PaintMat is the inverse paint-to-world transform, rows 3-5.
	PaintMat [3][4]float32
	// InnerColor is the paint's inner (or solid) color, row 6.
	InnerColor [4]float32
	// OuterColor is the paint's outer color (ignored for solid fills), row 7.
	OuterColor [4]float32
	// ScissorExtAndScale packs {extentX, extentY, scaleX, scaleY}, row 8.
	ScissorExtAndScale [4]float32
	// PaintExtentRadiusFeather packs {extentX, extentY, radius, feather}, row 9.
	PaintExtentRadiusFeather [4]float32
	// StrokeParams packs {strokeMult, strokeThreshold, texType, shaderType}, row 10.
	StrokeParams [4]float32
	// GlyphParams packs {glyphTexType, blurDirX, blurDirY, blurSigma}, row 11.
	GlyphParams [4]float32
	// BlurCoeff packs the separable Gaussian kernel's normalization
	// coefficient plus three reserved slots, row 12.
	BlurCoeff [4]float32
	// Reserved keeps the block at 14 rows for future wire additions
	// without shifting any existing offset, row 13.
	Reserved [4]float32
}

// ShaderTypeOf returns the ShaderType a FragUniforms block was built for,
// read back from its packed StrokeParams row.
func (u FragUniforms) ShaderTypeOf() ShaderType {
	return ShaderType(int32(u.StrokeParams[3]))
}
