// Package render defines the backend-neutral boundary internal/batch
// records commands against. A Renderer owns GPU (or CPU) resources —
// textures and whatever pipeline state its backend needs — and executes
// batched draw calls against them; it never sees a Path, a Paint, or a
// Canvas. This mirrors the teacher's render.Renderer/DeviceHandle split:
// the public drawing API and the thing that actually rasterizes are
// different packages connected only by small, backend-agnostic structs.
package render

import "errors"

// ErrUnknownTexture is returned by UpdateTexture/DeleteTexture when called
// with a TextureID the Renderer never issued or already deleted.
var ErrUnknownTexture = errors.New("render: unknown texture id")

// TextureFormat selects the pixel layout a texture stores.
type TextureFormat int

const (
	// FormatRGBA8 is four unsigned bytes per texel, used for images and
	// the default render target.
	FormatRGBA8 TextureFormat = iota
	// FormatAlpha8 is one unsigned byte per texel, a single alpha
	// channel (for example a glyph atlas).
	FormatAlpha8
)

// TextureFlags mirrors vgcore.ImageFlags at the backend boundary; it is a
// separate type (rather than an import of vgcore) so this package stays
// free of a dependency on the public API package.
type TextureFlags uint32

const TextureFlagsNone TextureFlags = 0

const (
	TextureGenerateMipmaps TextureFlags = 1 << iota
	TextureRepeatX
	TextureRepeatY
	TextureFlipY
	TexturePremultiplied
	TextureNearest
)

// TextureID identifies a backend-resident texture. It is distinct from
// vgcore.ImageID: ImageID is the generation-checked handle the public API
// hands to callers, TextureID is whatever a specific Renderer uses
// internally (an OpenGL texture name, a wgpu TextureView index, a slice
// index into a software atlas). Canvas maintains the mapping between the
// two.
type TextureID int

// InvalidTexture is returned by a Renderer when a texture operation
// fails; it is never a valid argument to UpdateTexture/DeleteTexture.
const InvalidTexture TextureID = -1

// Vertex is one tessellated vertex: position plus U, the antialiasing
// coverage (1 on the shape's body, 0 on the outer edge of its fringe)
// that a Renderer interpolates and multiplies into the fragment's alpha.
// Image coordinates come from Uniforms.PaintMat, not from U/V.
type Vertex struct {
	X, Y float32
	U, V float32
}

// CommandKind discriminates a DrawCall's variant, following the same flat
// tagged-struct convention vgcore.Paint uses for its own variants rather
// than one Go type per command: most of this package's consumers already
// switch on StencilOp to dispatch CommandDraw's own sub-behavior, so a
// second tag alongside it (instead of a sum type) keeps the whole command
// stream a single []DrawCall internal/batch can merge as one slice.
type CommandKind int

const (
	// CommandDraw submits Vertices as triangles, StencilOp-discriminated
	// as today. This is the zero value, so every existing call site that
	// builds a DrawCall{...} literal without mentioning Kind is already a
	// CommandDraw.
	CommandDraw CommandKind = iota
	// CommandClearRect clears a rectangle of the current render target to
	// ClearRect.Color; it carries no vertices.
	CommandClearRect
	// CommandSetRenderTarget redirects subsequent commands at Target; it
	// carries no vertices either.
	CommandSetRenderTarget
)

// ClearRectParams is a CommandClearRect DrawCall's payload.
type ClearRectParams struct {
	X, Y, W, H int
	Color      [4]float32
}

// RenderTarget selects where a Renderer directs draws: the screen, or a
// texture previously returned by CreateTexture. It is a flat struct
// rather than a sealed interface for the same reason as CommandKind:
// InvalidTexture can never name a real texture, so it doubles as the
// Screen tag without a separate bool field.
type RenderTarget struct {
	Texture TextureID
}

// ScreenTarget directs draws at the default render surface.
var ScreenTarget = RenderTarget{Texture: InvalidTexture}

// ImageTarget directs draws at an offscreen texture.
func ImageTarget(id TextureID) RenderTarget { return RenderTarget{Texture: id} }

// IsScreen reports whether t names the screen rather than a texture.
func (t RenderTarget) IsScreen() bool { return t.Texture == InvalidTexture }

// DrawCall is one GPU draw submitted within a Render call: a uniform
// block, a vertex range, and the fixed-function blend state to composite
// it with. internal/batch is responsible for merging adjacent compatible
// DrawCalls before they ever reach a Renderer.
type DrawCall struct {
	Kind CommandKind

	Uniforms Uniforms
	Texture  TextureID

	// Vertices is this call's own vertex slice; a software Renderer reads
	// it directly; a GPU Renderer uploads it (or a merged superset across
	// several calls) to a vertex buffer and issues a draw with an
	// offset/count pair instead.
	Vertices []Vertex

	Blend BlendState

	// StencilOp selects the fixed-function stencil behavior this call
	// needs. Concave fills are recorded as two DrawCalls in sequence:
	// StencilIncrDecr writes the winding into the stencil buffer without
	// touching color, then StencilNonZero/StencilEvenOdd covers the
	// bounding quad, testing and clearing the stencil it just wrote.
	// Only meaningful when Kind == CommandDraw.
	StencilOp StencilOp

	// ClearRect holds CommandClearRect's payload; zero otherwise.
	ClearRect ClearRectParams
	// Target holds CommandSetRenderTarget's payload; zero otherwise.
	Target RenderTarget
}

// StencilOp selects a DrawCall's fixed-function stencil-buffer behavior,
// implementing stencil-then-cover tessellation for concave fills.
type StencilOp int

const (
	// StencilNone performs no stencil test or write: convex fills,
	// strokes, and fringes all composite directly.
	StencilNone StencilOp = iota
	// StencilIncrDecr is the first pass of a concave fill: increments the
	// stencil on front-facing triangles and decrements on back-facing
	// ones, accumulating a signed winding number per pixel. Writes no
	// color.
	StencilIncrDecr
	// StencilNonZero is the cover pass for a nonzero-rule fill: draws
	// color wherever the accumulated stencil is nonzero, then clears the
	// stencil back to zero.
	StencilNonZero
	// StencilEvenOdd is the cover pass for an even-odd-rule fill: draws
	// color wherever the accumulated stencil is odd, then clears it.
	StencilEvenOdd
)

// BlendFactor mirrors vgcore.BlendFactor at the backend boundary, for the
// same reason TextureFlags does: this package must not import vgcore.
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

// BlendState is the four-factor blend equation a DrawCall composites
// with; Canvas derives it from vgcore.CompositeOperation.
type BlendState struct {
	SrcRGB, DstRGB     BlendFactor
	SrcAlpha, DstAlpha BlendFactor
}

// Uniforms is the wire-exact 14-vec4-row shader parameter block, the
// render-package twin of vgcore.FragUniforms. Canvas fills it in directly
// from a Paint and the current Scissor when it records a draw; keeping the
// two as separate types (rather than a shared import) is what lets render
// stay dependency free of vgcore.
type Uniforms struct {
	ScissorMat               [3][4]float32
	PaintMat                 [3][4]float32
	InnerColor               [4]float32
	OuterColor               [4]float32
	ScissorExtAndScale       [4]float32
	PaintExtentRadiusFeather [4]float32
	StrokeParams             [4]float32
	GlyphParams              [4]float32
	BlurCoeff                [4]float32
	Reserved                 [4]float32
}

// Viewport is the target's size and device pixel ratio, set once per
// frame via Renderer.SetViewport before any Render calls.
type Viewport struct {
	Width, Height int
	DevicePixelRatio float64
}

// Renderer executes batched draw calls against backend-owned resources.
// Implementations are NOT required to be safe for concurrent use; a
// Canvas drives exactly one Renderer from a single goroutine per frame,
// matching the teacher's render.Renderer thread-safety contract.
type Renderer interface {
	// CreateTexture allocates a backend texture of the given format and
	// dimensions, optionally seeded with pixel data (nil leaves it
	// uninitialized). Returns InvalidTexture and an error on failure.
	CreateTexture(format TextureFormat, width, height int, flags TextureFlags, pixels []byte) (TextureID, error)

	// UpdateTexture overwrites a rectangular region of an existing
	// texture. pixels must hold exactly w*h texels in the texture's
	// format.
	UpdateTexture(id TextureID, x, y, w, h int, pixels []byte) error

	// DeleteTexture releases a texture. Using id afterward is undefined;
	// callers are expected to have already invalidated any ImageID
	// referencing it.
	DeleteTexture(id TextureID) error

	// SetViewport establishes the target's dimensions for subsequent
	// Render calls, until the next SetViewport. It also resets the active
	// render target to the screen.
	SetViewport(vp Viewport) error

	// SetRenderTarget redirects subsequent CommandDraw/CommandClearRect
	// calls at target (the screen, or a texture from CreateTexture) until
	// the next SetRenderTarget. A Renderer also executes a DrawCall whose
	// Kind is CommandSetRenderTarget as this call, so a render-target
	// switch mid-frame can be expressed inside the very command stream
	// Render consumes, not just as an out-of-band setup step.
	SetRenderTarget(target RenderTarget) error

	// TextureSize reports a previously created texture's dimensions.
	TextureSize(id TextureID) (width, height int, err error)

	// Render executes calls in order against the current render target.
	// Calls are expected to already be batched (DrawCall.Vertices need
	// not be individually tiny); a Renderer is free to further coalesce
	// adjacent calls sharing Blend and Texture.
	Render(calls []DrawCall) error

	// ReadPixels reads back a rectangular region of the current render
	// target as tightly packed FormatRGBA8 bytes, used by render/software
	// and by tests asserting pixel-level properties.
	ReadPixels(x, y, w, h int) ([]byte, error)

	// Flush ensures all submitted Render calls have completed. CPU
	// backends typically no-op; GPU backends submit command buffers and
	// wait.
	Flush() error
}
