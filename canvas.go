package vgcore

import (
	"golang.org/x/image/math/fixed"

	"github.com/femtovg/femtovg-go/internal/batch"
	"github.com/femtovg/femtovg-go/internal/flatten"
	"github.com/femtovg/femtovg-go/internal/tess"
	"github.com/femtovg/femtovg-go/render"
)

// Canvas is the library's drawing façade: it owns the current Path, the
// Save/Restore state stack, an image registry, and the recorder that
// batches tessellated geometry for the injected Renderer. It generalizes
// the teacher's Context the same way everywhere else in this module
// generalizes gg's concrete Matrix/Brush/Pixmap pipeline: the shape of
// the API (NewContext, Push/Pop, Fill/Stroke, transform helpers) stays,
// the CPU-only implementation underneath it does not.
type Canvas struct {
	width, height int

	path   *Path
	states *StateStack
	images *ImageRegistry

	renderer   render.Renderer
	recorder   *batch.Recorder
	textShaper TextShaper

	textureOf map[ImageID]render.TextureID

	tessellationTolerance float64

	// activeTarget is whatever SetRenderTarget last selected, tracked so
	// DrawBlurredImage's internal passes can restore it once they're done
	// borrowing the scratch target.
	activeTarget render.RenderTarget
	// blurScratch is the lazily created offscreen image DrawBlurredImage
	// ping-pongs its horizontal pass through; it is resized (recreated)
	// whenever a larger source image is blurred.
	blurScratch ImageID

	frameStarted bool
	frameEnded   bool
}

// NewCanvas creates a Canvas targeting a width x height device surface.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	shaper := o.textShaper
	if shaper == nil {
		shaper = noopShaper{}
	}
	return &Canvas{
		width:                 width,
		height:                height,
		path:                  NewPath(),
		states:                NewStateStack(o.stateStackLimit),
		images:                NewImageRegistry(),
		renderer:              o.renderer,
		recorder:              batch.NewRecorder(),
		textShaper:            shaper,
		textureOf:             make(map[ImageID]render.TextureID),
		tessellationTolerance: o.tessellationTolerance,
		activeTarget:          render.ScreenTarget,
		frameEnded:            true, // BeginFrame must be called before drawing
	}
}

// Width returns the canvas's device-pixel width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas's device-pixel height.
func (c *Canvas) Height() int { return c.height }

// state returns the current top-of-stack state.
func (c *Canvas) state() *State { return c.states.Top() }

// BeginFrame resets the state stack, path, and recorder for a new frame
// and establishes the Renderer's viewport. devicePixelRatio is passed on
// to the Renderer in that viewport; it does not change the tessellation
// tolerance.
func (c *Canvas) BeginFrame(devicePixelRatio float64) error {
	c.states.Reset()
	c.path.Clear()
	c.recorder.Reset()
	c.frameStarted = true
	c.frameEnded = false
	c.activeTarget = render.ScreenTarget

	if c.renderer != nil {
		if devicePixelRatio <= 0 {
			devicePixelRatio = 1
		}
		return c.renderer.SetViewport(render.Viewport{
			Width: c.width, Height: c.height, DevicePixelRatio: devicePixelRatio,
		})
	}
	return nil
}

// EndFrame submits the frame's batched draw calls to the Renderer and
// marks the frame closed; further drawing calls return
// ErrFrameAlreadyEnded until the next BeginFrame.
func (c *Canvas) EndFrame() error {
	if !c.frameStarted || c.frameEnded {
		return ErrFrameNotStarted
	}
	c.frameEnded = true
	if c.renderer == nil {
		return ErrRenderTargetError
	}
	if err := c.renderer.Render(c.recorder.Calls()); err != nil {
		Logger().Warn("renderer Render failed", "error", err)
		return err
	}
	return c.renderer.Flush()
}

func (c *Canvas) checkRecording() error {
	if !c.frameStarted {
		return ErrFrameNotStarted
	}
	if c.frameEnded {
		return ErrFrameAlreadyEnded
	}
	return nil
}

// Resize changes the canvas's device-pixel dimensions, taking effect on
// the next BeginFrame.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
}

// --- path recording -------------------------------------------------

func (c *Canvas) BeginPath() { c.path.Clear() }

func (c *Canvas) MoveTo(x, y float64)              { c.path.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64)              { c.path.LineTo(x, y) }
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) { c.path.QuadraticTo(cx, cy, x, y) }
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (c *Canvas) ClosePath()                   { c.path.Close() }
func (c *Canvas) Rectangle(x, y, w, h float64) { c.path.Rectangle(x, y, w, h) }
func (c *Canvas) Circle(cx, cy, r float64)     { c.path.Circle(cx, cy, r) }
func (c *Canvas) Ellipse(cx, cy, rx, ry float64) { c.path.Ellipse(cx, cy, rx, ry) }
func (c *Canvas) Arc(cx, cy, r, a1, a2 float64)  { c.path.Arc(cx, cy, r, a1, a2) }
func (c *Canvas) RoundedRectangle(x, y, w, h, r float64) {
	c.path.RoundedRectangle(x, y, w, h, r)
}
func (c *Canvas) SetSolidity(s Solidity) { c.path.SetSolidity(s) }

// GetCurrentPoint returns the path's current point, matching the
// teacher's Context.GetCurrentPoint signature.
func (c *Canvas) GetCurrentPoint() (x, y float64, ok bool) {
	if !c.path.HasCurrentPoint() {
		return 0, 0, false
	}
	p := c.path.CurrentPoint()
	return p.X, p.Y, true
}

// --- transform --------------------------------------------------------

func (c *Canvas) ResetTransform()          { c.state().Transform = Identity() }
func (c *Canvas) Translate(x, y float64)   { c.state().Transform = c.state().Transform.Translate(x, y) }
func (c *Canvas) Scale(x, y float64)       { c.state().Transform = c.state().Transform.Scale(x, y) }
func (c *Canvas) Rotate(angle float64)     { c.state().Transform = c.state().Transform.Rotate(angle) }
func (c *Canvas) SetTransform(t Transform) { c.state().Transform = t }
func (c *Canvas) GetTransform() Transform  { return c.state().Transform }

// TransformPoint maps a local-space point through the current transform.
func (c *Canvas) TransformPoint(x, y float64) (float64, float64) {
	p := c.state().Transform.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// --- save/restore -------------------------------------------------------

func (c *Canvas) Save() error    { return c.states.Push() }
func (c *Canvas) Restore() error { return c.states.Pop() }

// --- paint / style setters ----------------------------------------------

func (c *Canvas) SetFillPaint(p Paint)                        { c.state().FillPaint = p }
func (c *Canvas) SetStrokePaint(p Paint)                      { c.state().StrokePaint = p }
func (c *Canvas) SetFillColor(col Color)                      { c.state().FillPaint = SolidPaint(col) }
func (c *Canvas) SetStrokeColor(col Color)                    { c.state().StrokePaint = SolidPaint(col) }
func (c *Canvas) SetStrokeWidth(w float64)                    { c.state().StrokeWidth = w }
func (c *Canvas) SetLineCap(cap LineCap)                      { c.state().LineCap = cap }
func (c *Canvas) SetLineJoin(join LineJoin)                   { c.state().LineJoin = join }
func (c *Canvas) SetMiterLimit(limit float64)                 { c.state().MiterLimit = limit }
func (c *Canvas) SetFillRule(rule FillRule)                   { c.state().FillRule = rule }
func (c *Canvas) SetGlobalAlpha(a float64)                    { c.state().GlobalAlpha = a }
func (c *Canvas) SetCompositeOperation(op CompositeOperation) { c.state().Composite = op }
func (c *Canvas) SetShapeAntiAlias(on bool)                   { c.state().ShapeAA = on }
func (c *Canvas) SetFontParams(p FontParams)                  { c.state().FontParams = p }

// SetScissor replaces the current scissor with a new rectangle expressed
// in the current local coordinate space, intersected with whatever
// scissor was already in effect.
func (c *Canvas) SetScissor(x, y, w, h float64) {
	st := c.state()
	st.Scissor = st.Scissor.IntersectScissor(st.Transform, x, y, w, h)
}

// ResetScissor removes any clip, restoring the unbounded default.
func (c *Canvas) ResetScissor() { c.state().Scissor = Scissor{} }

// --- images ---------------------------------------------------------

// CreateImage registers a new image of the given dimensions with the
// Renderer and returns its handle.
func (c *Canvas) CreateImage(width, height int, flags ImageFlags, pixels []byte) (ImageID, error) {
	if c.renderer == nil {
		return ImageID{}, ErrRenderTargetError
	}
	texID, err := c.renderer.CreateTexture(render.FormatRGBA8, width, height, render.TextureFlags(flags), pixels)
	if err != nil {
		return ImageID{}, ErrImageLoadError
	}
	id := c.images.Create(width, height, flags)
	c.textureOf[id] = texID
	return id, nil
}

// UpdateImage overwrites a rectangular region of an existing image.
func (c *Canvas) UpdateImage(id ImageID, x, y, w, h int, pixels []byte) error {
	texID, ok := c.textureOf[id]
	if !ok {
		return ErrImageIDNotFound
	}
	if _, _, _, ok := c.images.Lookup(id); !ok {
		return ErrImageIDNotFound
	}
	if c.renderer == nil {
		return ErrRenderTargetError
	}
	return c.renderer.UpdateTexture(texID, x, y, w, h, pixels)
}

// DeleteImage releases an image handle and its backing texture.
func (c *Canvas) DeleteImage(id ImageID) error {
	texID, ok := c.textureOf[id]
	if !ok {
		return ErrImageIDNotFound
	}
	delete(c.textureOf, id)
	if err := c.images.Delete(id); err != nil {
		return err
	}
	if c.renderer != nil {
		return c.renderer.DeleteTexture(texID)
	}
	return nil
}

// ImageSize returns a live image's dimensions.
func (c *Canvas) ImageSize(id ImageID) (width, height int, err error) {
	w, h, _, ok := c.images.Lookup(id)
	if !ok {
		return 0, 0, ErrImageIDNotFound
	}
	return w, h, nil
}

// SetRenderTarget redirects subsequent drawing at an offscreen image
// created with the ImageRenderTarget flag, or back at the screen when id
// is the zero ImageID. The switch is recorded into the current frame's
// command stream (as a CommandSetRenderTarget DrawCall) rather than
// applied immediately, so draws already recorded against the previous
// target are unaffected.
func (c *Canvas) SetRenderTarget(id ImageID) error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	if !id.IsValid() {
		c.setActiveTarget(render.ScreenTarget)
		return nil
	}
	_, _, flags, ok := c.images.Lookup(id)
	if !ok {
		return ErrImageIDNotFound
	}
	if flags&ImageRenderTarget == 0 {
		return ErrNotRenderTarget
	}
	texID, ok := c.textureOf[id]
	if !ok {
		return ErrImageIDNotFound
	}
	c.setActiveTarget(render.ImageTarget(texID))
	return nil
}

func (c *Canvas) setActiveTarget(t render.RenderTarget) {
	c.activeTarget = t
	c.recorder.Record(render.DrawCall{Kind: render.CommandSetRenderTarget, Target: t})
}

// scratchTarget returns c.blurScratch, an ImageRenderTarget-flagged image
// sized exactly w x h, creating it on first use or recreating it if a
// previous blur left it a different size.
func (c *Canvas) scratchTarget(w, h int) (ImageID, error) {
	if c.blurScratch.IsValid() {
		sw, sh, _, ok := c.images.Lookup(c.blurScratch)
		if ok && sw == w && sh == h {
			return c.blurScratch, nil
		}
		c.DeleteImage(c.blurScratch)
		c.blurScratch = ImageID{}
	}
	id, err := c.CreateImage(w, h, ImageRenderTarget, nil)
	if err != nil {
		return ImageID{}, err
	}
	c.blurScratch = id
	return id, nil
}

// DrawBlurredImage draws src, blurred by a separable Gaussian
// with standard deviation sigma, into the rectangle toWorld places at
// size extentW x extentH. It runs two passes — horizontal then vertical —
// ping-ponging through an internally managed scratch render target sized
// to src, restoring whatever render target was active before the call
// once the vertical pass lands on it.
func (c *Canvas) DrawBlurredImage(toWorld Transform, extentW, extentH float64, src ImageID, sigma float64) error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	w, h, _, ok := c.images.Lookup(src)
	if !ok {
		return ErrImageIDNotFound
	}
	scratch, err := c.scratchTarget(w, h)
	if err != nil {
		return err
	}

	st := c.state()
	restore := c.activeTarget

	if err := c.SetRenderTarget(scratch); err != nil {
		return err
	}
	c.recorder.Record(render.DrawCall{
		Kind:      render.CommandClearRect,
		ClearRect: render.ClearRectParams{W: w, H: h},
	})
	hPaint := FilteredImagePaint(Identity(), float64(w), float64(h), src, 1, 1, 0, sigma)
	hQuad := NewPath()
	hQuad.Rectangle(0, 0, float64(w), float64(h))
	hQuad.Seal()
	if err := c.recordFill(hQuad, hPaint, Identity(), FillRuleNonZero, Scissor{}, 1, CompositeSourceOver, false); err != nil {
		return err
	}

	c.setActiveTarget(restore)
	vPaint := FilteredImagePaint(toWorld, extentW, extentH, scratch, 1, 0, 1, sigma)
	vQuad := NewPath()
	vQuad.Rectangle(0, 0, extentW, extentH)
	vQuad.Seal()
	return c.recordFill(vQuad, vPaint, toWorld, FillRuleNonZero, st.Scissor, st.GlobalAlpha, st.Composite, st.ShapeAA)
}

// DrawImage draws image id into the rectangle (x, y, w, h), expressed in
// the current local coordinate space the same way Canvas.Rectangle is,
// so the image is placed and sized by the current transform exactly like
// any other filled shape.
func (c *Canvas) DrawImage(id ImageID, x, y, w, h float64) error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	if _, _, _, ok := c.images.Lookup(id); !ok {
		return ErrImageIDNotFound
	}
	st := c.state()
	toWorld := st.Transform.Translate(x, y)
	paint := ImagePatternPaint(toWorld, w, h, id, ImageFlagsNone, 1)

	quad := NewPath()
	quad.Rectangle(x, y, w, h)
	quad.Seal()
	return c.recordFill(quad, paint, st.Transform, FillRuleNonZero, st.Scissor, st.GlobalAlpha, st.Composite, st.ShapeAA)
}

// ContainsPoint reports whether (x, y), in p's own local coordinate
// space, falls inside p under rule.
func (c *Canvas) ContainsPoint(p *Path, x, y float64, rule FillRule) bool {
	pt := Pt(x, y)
	if rule == FillRuleEvenOdd {
		return p.EvenOddContains(pt)
	}
	return p.Contains(pt)
}

// --- text -------------------------------------------------------------

// FillText shapes text via the configured TextShaper and fills each
// glyph outline with the current fill paint, positioned with its origin
// at (x, y).
func (c *Canvas) FillText(text string, x, y float64) error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	glyphs, err := c.textShaper.Shape(NormalizeTextWidth(text), c.state().FontParams)
	if err != nil {
		return err
	}
	if len(glyphs) == 0 {
		return ErrFontNoGlyphsFound
	}
	for _, g := range glyphs {
		if g.Outline == nil {
			continue
		}
		offset := TranslateTransform(x+fixed26_6ToFloat(g.Pos.X), y+fixed26_6ToFloat(g.Pos.Y))
		glyph := g.Outline.Transform(offset)
		glyph.Seal()
		if err := c.fillPath(glyph); err != nil {
			return err
		}
	}
	return nil
}

func fixed26_6ToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// --- drawing ----------------------------------------------------------

// Fill fills the current path with the current fill paint and clears it.
func (c *Canvas) Fill() error {
	err := c.FillPreserve()
	c.path.Clear()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Canvas) FillPreserve() error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	return c.fillPath(c.path)
}

// FillPath fills an externally built path (e.g. one assembled once via
// BuildPath and reused across frames) without disturbing Canvas's own
// current path. A sealed path keeps its flattened form in its own cache
// across calls; an unsealed path is cloned and flattened afresh on every
// call. Tessellation itself runs on every call.
func (c *Canvas) FillPath(p *Path) error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	return c.fillPath(p)
}

func (c *Canvas) fillPath(p *Path) error {
	st := c.state()
	return c.recordFill(p, st.FillPaint, st.Transform, st.FillRule, st.Scissor, st.GlobalAlpha, st.Composite, st.ShapeAA)
}

// recordFill tessellates p under xf and records the resulting fill,
// taking every input that would otherwise be read off the current State
// as an explicit parameter. fillPath is the common case, reading them
// from state; DrawImage and DrawBlurredImage's internal blur passes are
// the other callers, which need geometry placed by a transform other
// than the canvas's own current one (the scratch target's own pixel
// grid, or a caller-supplied absolute placement).
func (c *Canvas) recordFill(p *Path, paint Paint, xf Transform, rule FillRule, scissor Scissor, globalAlpha float64, composite CompositeOperation, shapeAA bool) error {
	if !p.Sealed() {
		p = p.Clone()
		p.Seal()
	}

	tolerance := deviceTolerance(c.tessellationTolerance, xf)
	contours := contoursFromPath(p, xf)
	if len(contours) == 0 {
		return nil
	}

	var subs []flatten.Subpath
	if cached, ok := p.FlatCache(tolerance); ok {
		subs = cached.([]flatten.Subpath)
	} else {
		subs = flatten.FlattenContours(contours, tolerance)
		p.SetFlatCache(tolerance, subs)
	}

	result := tess.Fill(subs, tessFillRule(rule), shapeAA)
	uniforms := uniformsForPaint(paint, scissor, globalAlpha)
	blend := blendStateFor(composite)
	texID := c.textureFor(paint)

	if result.Stencil != nil {
		c.recorder.Record(render.DrawCall{
			Uniforms:  uniforms,
			Texture:   texID,
			Vertices:  result.Stencil,
			Blend:     blend,
			StencilOp: render.StencilIncrDecr,
		})
		op := render.StencilNonZero
		if rule == FillRuleEvenOdd {
			op = render.StencilEvenOdd
		}
		c.recorder.Record(render.DrawCall{
			Uniforms:  uniforms,
			Texture:   texID,
			Vertices:  result.Cover,
			Blend:     blend,
			StencilOp: op,
		})
		return nil
	}

	c.recorder.Record(render.DrawCall{
		Uniforms: uniforms,
		Texture:  texID,
		Vertices: result.Cover,
		Blend:    blend,
	})
	return nil
}

// Stroke strokes the current path with the current stroke paint and
// clears it.
func (c *Canvas) Stroke() error {
	err := c.StrokePreserve()
	c.path.Clear()
	return err
}

// StrokePreserve strokes the current path without clearing it.
func (c *Canvas) StrokePreserve() error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	return c.strokePath(c.path)
}

// StrokePath strokes an externally built path, the Stroke-side counterpart
// to FillPath.
func (c *Canvas) StrokePath(p *Path) error {
	if err := c.checkRecording(); err != nil {
		return err
	}
	return c.strokePath(p)
}

func (c *Canvas) strokePath(p *Path) error {
	st := c.state()
	if !p.Sealed() {
		p = p.Clone()
		p.Seal()
	}

	tolerance := deviceTolerance(c.tessellationTolerance, st.Transform)
	contours := contoursFromPath(p, st.Transform)
	if len(contours) == 0 {
		return nil
	}

	var subs []flatten.Subpath
	if cached, ok := p.FlatCache(tolerance); ok {
		subs = cached.([]flatten.Subpath)
	} else {
		subs = flatten.FlattenContours(contours, tolerance)
		p.SetFlatCache(tolerance, subs)
	}

	style := tess.StrokeStyle{
		Width:      st.StrokeWidth * st.Transform.ScaleFactor(),
		Cap:        tessLineCap(st.LineCap),
		Join:       tessLineJoin(st.LineJoin),
		MiterLimit: st.MiterLimit,
	}

	uniforms := uniformsForPaint(st.StrokePaint, st.Scissor, st.GlobalAlpha)
	blend := blendStateFor(st.Composite)
	texID := c.textureFor(st.StrokePaint)

	var verts []render.Vertex
	for _, sub := range subs {
		verts = append(verts, tess.Stroke(sub, style, st.ShapeAA)...)
	}
	if len(verts) == 0 {
		return nil
	}

	c.recorder.Record(render.DrawCall{
		Uniforms: uniforms,
		Texture:  texID,
		Vertices: verts,
		Blend:    blend,
	})
	return nil
}

// Snapshot reads back the current render target into a Pixmap, e.g. for
// saving a frame to disk via Pixmap.SavePNG or for pixel-level test
// assertions against render/software's reference renderer.
func (c *Canvas) Snapshot() (*Pixmap, error) {
	if c.renderer == nil {
		return nil, ErrRenderTargetError
	}
	pixels, err := c.renderer.ReadPixels(0, 0, c.width, c.height)
	if err != nil {
		return nil, err
	}
	pm := NewPixmap(c.width, c.height)
	copy(pm.Data(), pixels)
	return pm, nil
}

func (c *Canvas) textureFor(p Paint) render.TextureID {
	if p.Kind != PaintImagePattern && p.Kind != PaintFilteredImage {
		return render.InvalidTexture
	}
	if id, ok := c.textureOf[p.Image]; ok {
		return id
	}
	return render.InvalidTexture
}
