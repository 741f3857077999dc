// Package vgcore implements the antialiased path tessellation core of a
// NanoVG-lineage 2D vector drawing library: path recording, adaptive curve
// flattening, fill/stroke tessellation with coverage-based antialiasing,
// paint/scissor/state management and a backend-neutral GPU command
// recorder. It does not open a window, acquire a GPU context, shape text,
// decode images, or implement a concrete rendering backend — those are
// supplied by the caller through the Renderer and TextShaper interfaces.
//
// # Quick start
//
//	cv := vgcore.NewCanvas(512, 512, vgcore.WithRenderer(myRenderer))
//	cv.BeginFrame(1.0)
//	cv.BeginPath()
//	cv.Circle(256, 256, 100)
//	cv.SetFillColor(vgcore.RGB(1, 0, 0))
//	cv.Fill()
//	cv.EndFrame()
//
// # Architecture
//
//   - Path recorder: Path, PathVerb variants, Solidity (this file's package)
//   - Flattener: internal/flatten, adaptive cubic subdivision to Subpath
//   - Tessellator: internal/tess, fill (convex fan / concave stencil-then-
//     cover) and stroke (offset outline with joins and caps)
//   - Command recorder/batcher: internal/batch, render.DrawCall + merging
//   - Renderer: render.Renderer, the sole backend abstraction point
//   - Reference backend: render/software, a CPU rasterizer used by tests
//
// # Coordinate system
//
//   - Origin (0, 0) at the top-left
//   - X increases right, Y increases down
//   - Angles in radians, 0 pointing right, increasing clockwise (matching
//     the Y-down convention)
//
// # Antialiasing
//
// Edges are antialiased by a coverage fringe rather than MSAA: each filled
// or stroked shape gets an extra ~1 device-pixel-wide band of geometry
// whose per-vertex alpha fades from 1 to 0, computed once by the
// tessellator and evaluated by the fragment shader at render time.
package vgcore
