package vgcore

// ImageID is an opaque, generational handle to a texture owned by a
// Renderer. A stale handle (one whose generation no longer matches the
// slot's current occupant, typically because the image was deleted and
// the slot reused) fails lookup with ErrImageIDNotFound instead of
// silently aliasing whatever image now lives in that slot.
type ImageID struct {
	index      uint32
	generation uint32
}

// invalidImageID is the zero value, never issued by ImageRegistry.Create.
var invalidImageID = ImageID{}

// IsValid reports whether id could have been issued by a registry; it does
// not guarantee the image is still alive (use a registry lookup for that).
func (id ImageID) IsValid() bool { return id != invalidImageID }

// ImageFlags controls how an image is uploaded and sampled.
type ImageFlags uint32

const ImageFlagsNone ImageFlags = 0

const (
	// ImageGenerateMipmaps requests mipmap generation on upload.
	ImageGenerateMipmaps ImageFlags = 1 << iota
	// ImageRepeatX tiles the image horizontally past its edge.
	ImageRepeatX
	// ImageRepeatY tiles the image vertically past its edge.
	ImageRepeatY
	// ImageFlipY stores the image with its first row at the bottom,
	// matching OpenGL's texture coordinate convention.
	ImageFlipY
	// ImagePremultiplied indicates the source pixels are already
	// alpha-premultiplied, so the Renderer must not premultiply again.
	ImagePremultiplied
	// ImageNearest selects nearest-neighbor sampling instead of the
	// Renderer's default (typically bilinear).
	ImageNearest
	// ImageRenderTarget marks an image as eligible to be bound as an
	// offscreen Canvas.SetRenderTarget destination. Images created without
	// it can still be sampled as a paint source but are never accepted as
	// a render target, so a plain image never silently pays for a
	// render-target-sized stencil buffer it will never need.
	ImageRenderTarget
)

// imageSlot tracks one registry entry; generation increments every time
// the slot is freed so ImageIDs minted before the free become stale.
type imageSlot struct {
	generation uint32
	occupied   bool
	width      int
	height     int
	flags      ImageFlags
}

// ImageRegistry assigns and validates ImageID handles. Canvas owns one
// instance for its whole lifetime; the Renderer is the actual texture owner —
// the registry only tracks which handles are currently live so Canvas can
// reject stale ones before they ever reach the Renderer.
type ImageRegistry struct {
	slots []imageSlot
	free  []uint32
}

// NewImageRegistry creates an empty registry.
func NewImageRegistry() *ImageRegistry {
	return &ImageRegistry{}
}

// Create allocates a new handle for an image of the given dimensions.
func (r *ImageRegistry) Create(width, height int, flags ImageFlags) ImageID {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		slot := &r.slots[idx]
		slot.occupied = true
		slot.width, slot.height, slot.flags = width, height, flags
		return ImageID{index: idx, generation: slot.generation}
	}

	idx := uint32(len(r.slots))
	r.slots = append(r.slots, imageSlot{
		generation: 1,
		occupied:   true,
		width:      width,
		height:     height,
		flags:      flags,
	})
	return ImageID{index: idx, generation: 1}
}

// Lookup validates id and returns its dimensions and flags. ok is false if
// id is stale or was never issued.
func (r *ImageRegistry) Lookup(id ImageID) (width, height int, flags ImageFlags, ok bool) {
	if int(id.index) >= len(r.slots) {
		return 0, 0, 0, false
	}
	slot := r.slots[id.index]
	if !slot.occupied || slot.generation != id.generation {
		return 0, 0, 0, false
	}
	return slot.width, slot.height, slot.flags, true
}

// Delete frees id's slot for reuse, bumping its generation so any
// outstanding copies of id become stale.
func (r *ImageRegistry) Delete(id ImageID) error {
	if int(id.index) >= len(r.slots) {
		return ErrImageIDNotFound
	}
	slot := &r.slots[id.index]
	if !slot.occupied || slot.generation != id.generation {
		return ErrImageIDNotFound
	}
	slot.occupied = false
	slot.generation++
	r.free = append(r.free, id.index)
	return nil
}

// Update records new dimensions for an existing, still-live image; it
// does not change the generation.
func (r *ImageRegistry) Update(id ImageID, width, height int) error {
	if int(id.index) >= len(r.slots) {
		return ErrImageIDNotFound
	}
	slot := &r.slots[id.index]
	if !slot.occupied || slot.generation != id.generation {
		return ErrImageIDNotFound
	}
	slot.width, slot.height = width, height
	return nil
}
