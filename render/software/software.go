// Package software implements render.Renderer entirely on the CPU,
// serving as the reference backend: every testable property SPEC_FULL.md
// describes at the pixel level is checked against this renderer rather
// than a hardware GPU, the way the teacher's SoftwareRenderer backs its
// own test suite before any GPU backend is wired in.
package software

import (
	"math"

	"github.com/femtovg/femtovg-go/render"
)

// shaderFilterImage mirrors vgcore.ShaderFilterImage's wire position (4):
// this package never imports vgcore, so the value is independently kept
// in sync here rather than shared by import, the same convention the
// TextureFlags/BlendFactor mirrors at the top of render/renderer.go use.
const shaderFilterImage = 4

// Renderer is a CPU triangle rasterizer implementing render.Renderer. It
// keeps one RGBA8 color buffer and one signed stencil buffer for each of
// the screen and any texture currently bound as a render target; width,
// height, color and stencil always describe whichever of those is
// presently active, so every existing rasterize method operates on them
// unchanged regardless of which target SetRenderTarget last selected.
type Renderer struct {
	width, height int
	color         []byte  // RGBA8, width*height*4, of the active target
	stencil       []int16 // width*height, of the active target

	screenWidth, screenHeight int
	screenColor               []byte
	screenStencil             []int16

	// target is render.InvalidTexture while the screen is active.
	target render.TextureID

	textures map[render.TextureID]*texture
	nextID   render.TextureID
}

type texture struct {
	format        render.TextureFormat
	width, height int
	pixels        []byte

	// stencil is allocated lazily, only once this texture is first bound
	// as a render target: a plain sampled image never pays for a stencil
	// buffer it will never use.
	stencil []int16
}

// New creates a software renderer with no viewport set; call SetViewport
// before the first Render.
func New() *Renderer {
	return &Renderer{textures: make(map[render.TextureID]*texture), target: render.InvalidTexture}
}

var _ render.Renderer = (*Renderer)(nil)

func (r *Renderer) CreateTexture(format render.TextureFormat, width, height int, flags render.TextureFlags, pixels []byte) (render.TextureID, error) {
	id := r.nextID
	r.nextID++
	bpp := bytesPerTexel(format)
	buf := make([]byte, width*height*bpp)
	if pixels != nil {
		copy(buf, pixels)
	}
	r.textures[id] = &texture{format: format, width: width, height: height, pixels: buf}
	return id, nil
}

func (r *Renderer) UpdateTexture(id render.TextureID, x, y, w, h int, pixels []byte) error {
	t, ok := r.textures[id]
	if !ok {
		return render.ErrUnknownTexture
	}
	bpp := bytesPerTexel(t.format)
	for row := 0; row < h; row++ {
		srcOff := row * w * bpp
		dstOff := ((y+row)*t.width + x) * bpp
		copy(t.pixels[dstOff:dstOff+w*bpp], pixels[srcOff:srcOff+w*bpp])
	}
	return nil
}

func (r *Renderer) DeleteTexture(id render.TextureID) error {
	if _, ok := r.textures[id]; !ok {
		return render.ErrUnknownTexture
	}
	delete(r.textures, id)
	if r.target == id {
		r.target = render.InvalidTexture
		r.width, r.height, r.color, r.stencil = r.screenWidth, r.screenHeight, r.screenColor, r.screenStencil
	}
	return nil
}

// SetViewport (re)allocates the screen buffers and makes the screen the
// active render target, matching the Renderer interface's documented
// reset-to-screen behavior.
func (r *Renderer) SetViewport(vp render.Viewport) error {
	r.screenWidth, r.screenHeight = vp.Width, vp.Height
	r.screenColor = make([]byte, vp.Width*vp.Height*4)
	r.screenStencil = make([]int16, vp.Width*vp.Height)
	r.target = render.InvalidTexture
	r.width, r.height, r.color, r.stencil = r.screenWidth, r.screenHeight, r.screenColor, r.screenStencil
	return nil
}

// SetRenderTarget redirects the active color/stencil buffers at target,
// lazily allocating a texture's stencil buffer the first time it is ever
// bound as a target.
func (r *Renderer) SetRenderTarget(target render.RenderTarget) error {
	if target.IsScreen() {
		r.target = render.InvalidTexture
		r.width, r.height, r.color, r.stencil = r.screenWidth, r.screenHeight, r.screenColor, r.screenStencil
		return nil
	}
	t, ok := r.textures[target.Texture]
	if !ok {
		return render.ErrUnknownTexture
	}
	if t.stencil == nil {
		t.stencil = make([]int16, t.width*t.height)
	}
	r.target = target.Texture
	r.width, r.height, r.color, r.stencil = t.width, t.height, t.pixels, t.stencil
	return nil
}

func (r *Renderer) TextureSize(id render.TextureID) (int, int, error) {
	t, ok := r.textures[id]
	if !ok {
		return 0, 0, render.ErrUnknownTexture
	}
	return t.width, t.height, nil
}

func (r *Renderer) Render(calls []render.DrawCall) error {
	for _, call := range calls {
		switch call.Kind {
		case render.CommandClearRect:
			r.clearRect(call.ClearRect)
			continue
		case render.CommandSetRenderTarget:
			if err := r.SetRenderTarget(call.Target); err != nil {
				return err
			}
			continue
		}

		switch call.StencilOp {
		case render.StencilIncrDecr:
			r.rasterizeStencil(call.Vertices)
		case render.StencilNonZero:
			r.rasterizeCover(call, func(s int16) bool { return s != 0 })
			r.clearStencil()
		case render.StencilEvenOdd:
			r.rasterizeCover(call, func(s int16) bool { return s%2 != 0 })
			r.clearStencil()
		default:
			r.rasterizeColor(call)
		}
	}
	return nil
}

// clearRect fills a rectangle of the active target's color buffer,
// clamped to its bounds; it never touches the stencil buffer, matching a
// real clear-color op leaving stencil state untouched.
func (r *Renderer) clearRect(cr render.ClearRectParams) {
	x0, y0 := cr.X, cr.Y
	x1, y1 := cr.X+cr.W, cr.Y+cr.H
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > r.width {
		x1 = r.width
	}
	if y1 > r.height {
		y1 = r.height
	}
	rb := byte(clamp01(float64(cr.Color[0])) * 255)
	gb := byte(clamp01(float64(cr.Color[1])) * 255)
	bb := byte(clamp01(float64(cr.Color[2])) * 255)
	ab := byte(clamp01(float64(cr.Color[3])) * 255)
	for y := y0; y < y1; y++ {
		row := y * r.width
		for x := x0; x < x1; x++ {
			idx := (row + x) * 4
			r.color[idx], r.color[idx+1], r.color[idx+2], r.color[idx+3] = rb, gb, bb, ab
		}
	}
}

func (r *Renderer) ReadPixels(x, y, w, h int) ([]byte, error) {
	out := make([]byte, w*h*4)
	for row := 0; row < h; row++ {
		srcOff := ((y+row)*r.width + x) * 4
		dstOff := row * w * 4
		copy(out[dstOff:dstOff+w*4], r.color[srcOff:srcOff+w*4])
	}
	return out, nil
}

func (r *Renderer) Flush() error { return nil }

func bytesPerTexel(f render.TextureFormat) int {
	if f == render.FormatAlpha8 {
		return 1
	}
	return 4
}

func (r *Renderer) clearStencil() {
	for i := range r.stencil {
		r.stencil[i] = 0
	}
}

// rasterizeStencil accumulates signed winding into the stencil buffer
// without touching color: front-facing triangles (positive area)
// increment, back-facing ones decrement, implementing the first pass of
// stencil-then-cover.
func (r *Renderer) rasterizeStencil(verts []render.Vertex) {
	for i := 0; i+2 < len(verts); i += 3 {
		a, b, c := verts[i], verts[i+1], verts[i+2]
		delta := int16(1)
		if signedArea(a, b, c) < 0 {
			delta = -1
		}
		r.scan(a, b, c, func(x, y int, _, _, _ float64) {
			idx := y*r.width + x
			if idx >= 0 && idx < len(r.stencil) {
				r.stencil[idx] += delta
			}
		})
	}
}

// rasterizeCover draws call's color wherever test(stencil) holds, the
// second pass of stencil-then-cover.
func (r *Renderer) rasterizeCover(call render.DrawCall, test func(int16) bool) {
	innerColor := call.Uniforms.InnerColor
	for i := 0; i+2 < len(call.Vertices); i += 3 {
		a, b, c := call.Vertices[i], call.Vertices[i+1], call.Vertices[i+2]
		r.scan(a, b, c, func(x, y int, ua, ub, uc float64) {
			idx := y*r.width + x
			if idx < 0 || idx >= len(r.stencil) || !test(r.stencil[idx]) {
				return
			}
			cov := ua*float64(a.U) + ub*float64(b.U) + uc*float64(c.U)
			r.blendPixel(x, y, innerColor, cov, call.Blend)
		})
	}
}

func (r *Renderer) rasterizeColor(call render.DrawCall) {
	if call.Uniforms.StrokeParams[3] == shaderFilterImage {
		if tex, ok := r.textures[call.Texture]; ok {
			r.rasterizeBlur(call, tex)
			return
		}
	}

	innerColor := call.Uniforms.InnerColor
	outerColor := call.Uniforms.OuterColor
	for i := 0; i+2 < len(call.Vertices); i += 3 {
		a, b, c := call.Vertices[i], call.Vertices[i+1], call.Vertices[i+2]
		r.scan(a, b, c, func(x, y int, ua, ub, uc float64) {
			cov := ua*float64(a.U) + ub*float64(b.U) + uc*float64(c.U)
			col := lerpColor(outerColor, innerColor, cov)
			r.blendPixel(x, y, col, 1, call.Blend)
		})
	}
}

// rasterizeBlur samples tex along the single axis packed into
// Uniforms.GlyphParams (blurDirX, blurDirY, blurSigma), weighting each tap
// by the analytic Gaussian formula normalized by Uniforms.BlurCoeff[0].
// It derives each fragment's position in tex's texel space from its
// device-space pixel center through the inverse paint transform packed
// into Uniforms.PaintMat, the same way a real fragment shader derives
// image coordinates from gl_FragCoord rather than from a vertex UV.
func (r *Renderer) rasterizeBlur(call render.DrawCall, tex *texture) {
	u := call.Uniforms
	extentW := math.Max(float64(u.PaintExtentRadiusFeather[0]), 1e-6)
	extentH := math.Max(float64(u.PaintExtentRadiusFeather[1]), 1e-6)
	dirX := float64(u.GlyphParams[1])
	dirY := float64(u.GlyphParams[2])
	sigma := math.Max(float64(u.GlyphParams[3]), 1e-6)
	normCoeff := float64(u.BlurCoeff[0])
	radius := int(math.Ceil(sigma * 3))

	// One local-space step equal to exactly one source texel along the
	// (axis-aligned) blur direction, regardless of how extentW/extentH
	// differ from tex's own dimensions under a scaled destination quad.
	stepX := dirX * extentW / float64(tex.width)
	stepY := dirY * extentH / float64(tex.height)
	tint := u.InnerColor

	for i := 0; i+2 < len(call.Vertices); i += 3 {
		a, b, c := call.Vertices[i], call.Vertices[i+1], call.Vertices[i+2]
		r.scan(a, b, c, func(x, y int, _, _, _ float64) {
			px, py := float64(x)+0.5, float64(y)+0.5
			lx, ly := paintLocalCoord(u, px, py)

			var sum [4]float64
			for t := -radius; t <= radius; t++ {
				w := normCoeff * math.Exp(-float64(t*t)/(2*sigma*sigma))
				tapLX := lx + float64(t)*stepX
				tapLY := ly + float64(t)*stepY
				tx := tapLX / extentW * float64(tex.width)
				ty := tapLY / extentH * float64(tex.height)
				s := sampleNearest(tex, tx, ty)
				for k := range sum {
					sum[k] += w * float64(s[k])
				}
			}
			col := [4]float32{
				float32(sum[0]) * tint[0],
				float32(sum[1]) * tint[1],
				float32(sum[2]) * tint[2],
				float32(sum[3]) * tint[3],
			}
			r.blendPixel(x, y, col, 1, call.Blend)
		})
	}
}

// paintLocalCoord unpacks Uniforms.PaintMat back into the Transform fields
// writeMat3 packed them from (A,B / C,D / E,F across its three rows) and
// applies the resulting affine map to a device-space point, yielding the
// paint's local-space coordinate at that pixel.
func paintLocalCoord(u render.Uniforms, px, py float64) (lx, ly float64) {
	mA, mB := float64(u.PaintMat[0][0]), float64(u.PaintMat[0][1])
	mC, mD := float64(u.PaintMat[1][0]), float64(u.PaintMat[1][1])
	mE, mF := float64(u.PaintMat[2][0]), float64(u.PaintMat[2][1])
	lx = mA*px + mB*py + mC
	ly = mD*px + mE*py + mF
	return lx, ly
}

// sampleNearest reads tex at the texel nearest (tx, ty), clamping to the
// texture's edge rather than wrapping: Blur never needs repeat sampling.
// Texel i spans [i, i+1), so its center sits at i+0.5.
func sampleNearest(tex *texture, tx, ty float64) [4]float32 {
	x := int(math.Floor(tx))
	y := int(math.Floor(ty))
	if x < 0 {
		x = 0
	} else if x >= tex.width {
		x = tex.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= tex.height {
		y = tex.height - 1
	}
	idx := (y*tex.width + x) * 4
	if idx < 0 || idx+3 >= len(tex.pixels) {
		return [4]float32{}
	}
	return [4]float32{
		float32(tex.pixels[idx]) / 255,
		float32(tex.pixels[idx+1]) / 255,
		float32(tex.pixels[idx+2]) / 255,
		float32(tex.pixels[idx+3]) / 255,
	}
}

func lerpColor(from, to [4]float32, t float64) [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = from[i] + float32(t)*(to[i]-from[i])
	}
	return out
}

func (r *Renderer) blendPixel(x, y int, src [4]float32, coverage float64, blend render.BlendState) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	idx := (y*r.width + x) * 4
	dst := [4]float64{
		float64(r.color[idx]) / 255, float64(r.color[idx+1]) / 255,
		float64(r.color[idx+2]) / 255, float64(r.color[idx+3]) / 255,
	}
	s := [4]float64{float64(src[0]), float64(src[1]), float64(src[2]), float64(src[3]) * coverage}

	sFactor := blendFactor(blend.SrcAlpha, s[3], dst[3])
	dFactor := blendFactor(blend.DstAlpha, s[3], dst[3])
	for i := 0; i < 4; i++ {
		v := sFactor*s[i] + dFactor*dst[i]
		r.color[idx+i] = byte(clamp01(v) * 255)
	}
}

func blendFactor(f render.BlendFactor, srcA, dstA float64) float64 {
	switch f {
	case render.BlendZero:
		return 0
	case render.BlendOne:
		return 1
	case render.BlendSrcAlpha, render.BlendSrcColor:
		return srcA
	case render.BlendOneMinusSrcAlpha, render.BlendOneMinusSrcColor:
		return 1 - srcA
	case render.BlendDstAlpha, render.BlendDstColor:
		return dstA
	case render.BlendOneMinusDstAlpha, render.BlendOneMinusDstColor:
		return 1 - dstA
	default:
		return 0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func signedArea(a, b, c render.Vertex) float64 {
	return float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
}

// scan rasterizes triangle a,b,c via a bounding-box barycentric scan,
// invoking fn for every covered pixel center with the three barycentric
// weights (used to interpolate vertex U as a coverage multiplier).
func (r *Renderer) scan(a, b, c render.Vertex, fn func(x, y int, wa, wb, wc float64)) {
	minX := int(math.Floor(math.Min(float64(a.X), math.Min(float64(b.X), float64(c.X)))))
	maxX := int(math.Ceil(math.Max(float64(a.X), math.Max(float64(b.X), float64(c.X)))))
	minY := int(math.Floor(math.Min(float64(a.Y), math.Min(float64(b.Y), float64(c.Y)))))
	maxY := int(math.Ceil(math.Max(float64(a.Y), math.Max(float64(b.Y), float64(c.Y)))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > r.width {
		maxX = r.width
	}
	if maxY > r.height {
		maxY = r.height
	}

	area := signedArea(a, b, c)
	if area == 0 {
		return
	}

	for y := minY; y < maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			fn(x, y, w0, w1, w2)
		}
	}
}

func edge(a, b render.Vertex, px, py float64) float64 {
	return float64(b.X-a.X)*(py-float64(a.Y)) - float64(b.Y-a.Y)*(px-float64(a.X))
}
