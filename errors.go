package vgcore

import "errors"

// Sentinel errors returned by Canvas and its collaborators. Recording-time
// validation errors (state stack overflow, frame lifecycle misuse) surface
// immediately from the call that triggered them without corrupting the
// recorded command list. Renderer errors surface at EndFrame but leave the
// Canvas usable for the next frame. Degenerate tessellator input (zero-area
// fill, zero-length stroke) silently produces no geometry rather than
// erroring.
var (
	ErrImageIDNotFound        = errors.New("vgcore: image id not found")
	ErrImageLoadError         = errors.New("vgcore: image load error")
	ErrImageUpdateOutOfBounds = errors.New("vgcore: image update out of bounds")
	ErrFontInfoExtractionError = errors.New("vgcore: font info extraction error")
	ErrFontNoGlyphsFound      = errors.New("vgcore: font produced no glyphs")
	ErrShaderCompileError     = errors.New("vgcore: shader compile error")
	ErrShaderLinkError        = errors.New("vgcore: shader link error")
	ErrRenderTargetError      = errors.New("vgcore: render target error")
	ErrUnsupportedImageFormat = errors.New("vgcore: unsupported image format")
	ErrStateStackOverflow     = errors.New("vgcore: state stack overflow")
	ErrStateStackUnderflow    = errors.New("vgcore: state stack underflow (no-op)")
	ErrFrameNotStarted        = errors.New("vgcore: BeginFrame not called")
	ErrFrameAlreadyEnded      = errors.New("vgcore: recording after EndFrame")
	ErrNotRenderTarget        = errors.New("vgcore: image was not created with ImageRenderTarget")
)

// GeneralError wraps a message that does not warrant its own sentinel,
// following the teacher's backend error packages' fallback-error shape.
type GeneralError struct{ Msg string }

func (e *GeneralError) Error() string { return "vgcore: " + e.Msg }
