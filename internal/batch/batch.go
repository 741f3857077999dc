// Package batch records render.DrawCall values for one frame and merges
// adjacent compatible ones before handing the list to a render.Renderer,
// following the teacher's recording package's approach of capturing typed
// commands instead of rasterizing immediately — here the "commands" are
// already-tessellated DrawCalls rather than path operations, since batch
// sits below internal/tess rather than above it.
package batch

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/femtovg/femtovg-go/render"
)

// Recorder accumulates a frame's DrawCalls and merges what it safely can.
// It is not safe for concurrent use; Canvas owns exactly one Recorder per
// frame.
type Recorder struct {
	calls []render.DrawCall

	// uniformCache deduplicates identical Uniforms blocks by content
	// hash: many consecutive draws share a paint (the same fill color
	// used for several shapes in a row). Every recorded call is hashed.
	uniformCache map[uint64]render.Uniforms
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{uniformCache: make(map[uint64]render.Uniforms)}
}

// Record appends call, merging it into the previous call if they share
// Texture, Blend, and StencilOp (both StencilNone) and an identical
// Uniforms block — the common case of several consecutive solid-color
// fills — so the Renderer sees one draw instead of many tiny ones.
func (r *Recorder) Record(call render.DrawCall) {
	call.Uniforms = r.intern(call.Uniforms)

	if n := len(r.calls); n > 0 {
		prev := &r.calls[n-1]
		if mergeable(*prev, call) {
			prev.Vertices = append(prev.Vertices, call.Vertices...)
			return
		}
	}
	r.calls = append(r.calls, call)
}

// intern returns the cached Uniforms value bit-identical to u, storing u
// itself the first time its hash is seen. mergeable still compares the
// full Uniforms values, not their hashes.
func (r *Recorder) intern(u render.Uniforms) render.Uniforms {
	h := hashUniforms(u)
	if cached, ok := r.uniformCache[h]; ok && cached == u {
		return cached
	}
	r.uniformCache[h] = u
	return u
}

// mergeable reports whether b can be folded into a by concatenating
// vertices. Only CommandDraw calls with StencilOp none are ever merge
// candidates: CommandClearRect/CommandSetRenderTarget carry no vertices
// to concatenate and must run in their recorded order, and a
// stencil-then-cover sequence's ordering is load-bearing and must never
// be coalesced across its own stencil/cover passes.
//
// This merges both fill-originated and stroke-originated triangle draws
// alike, not only one literal "Triangles" sub-kind: both are plain
// StencilNone CommandDraw calls, and the same Texture/Blend/Uniforms
// equality check that makes merging fills safe makes merging strokes (or
// a fill followed by a stroke) equally safe, so the stricter fill-only
// rule would just leave mergeable pairs unmerged for no correctness gain.
func mergeable(a, b render.DrawCall) bool {
	return a.Kind == render.CommandDraw && b.Kind == render.CommandDraw &&
		a.StencilOp == render.StencilNone &&
		b.StencilOp == render.StencilNone &&
		a.Texture == b.Texture &&
		a.Blend == b.Blend &&
		a.Uniforms == b.Uniforms
}

// Calls returns the recorded (and merged) draw calls, in submission order.
func (r *Recorder) Calls() []render.DrawCall { return r.calls }

// Reset discards all recorded calls, called by Canvas.BeginFrame.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	for k := range r.uniformCache {
		delete(r.uniformCache, k)
	}
}

func hashUniforms(u render.Uniforms) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	write := func(f float32) {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		h.Write(buf[:])
	}
	for _, row := range u.ScissorMat {
		for _, f := range row {
			write(f)
		}
	}
	for _, row := range u.PaintMat {
		for _, f := range row {
			write(f)
		}
	}
	for _, f := range u.InnerColor {
		write(f)
	}
	for _, f := range u.OuterColor {
		write(f)
	}
	for _, f := range u.ScissorExtAndScale {
		write(f)
	}
	for _, f := range u.PaintExtentRadiusFeather {
		write(f)
	}
	for _, f := range u.StrokeParams {
		write(f)
	}
	for _, f := range u.GlyphParams {
		write(f)
	}
	for _, f := range u.BlurCoeff {
		write(f)
	}
	return h.Sum64()
}
