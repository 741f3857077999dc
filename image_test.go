package vgcore

import "testing"

func TestImageRegistryCreateAndLookup(t *testing.T) {
	r := NewImageRegistry()
	id := r.Create(100, 50, ImageFlagsNone)
	if !id.IsValid() {
		t.Fatal("Create should return a valid ImageID")
	}

	w, h, flags, ok := r.Lookup(id)
	if !ok {
		t.Fatal("Lookup of a just-created id should succeed")
	}
	if w != 100 || h != 50 || flags != ImageFlagsNone {
		t.Errorf("Lookup = (%d, %d, %v), want (100, 50, ImageFlagsNone)", w, h, flags)
	}
}

func TestImageRegistryLookupUnknownID(t *testing.T) {
	r := NewImageRegistry()
	_, _, _, ok := r.Lookup(ImageID{index: 99, generation: 1})
	if ok {
		t.Error("Lookup of a never-issued id should fail")
	}
}

func TestImageRegistryDeleteInvalidatesGeneration(t *testing.T) {
	r := NewImageRegistry()
	id := r.Create(10, 10, ImageFlagsNone)

	if err := r.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, _, _, ok := r.Lookup(id); ok {
		t.Error("Lookup after Delete should fail")
	}
	if err := r.Delete(id); err != ErrImageIDNotFound {
		t.Errorf("double Delete() = %v, want ErrImageIDNotFound", err)
	}
}

func TestImageRegistrySlotReuseBumpsGeneration(t *testing.T) {
	r := NewImageRegistry()
	first := r.Create(10, 10, ImageFlagsNone)
	if err := r.Delete(first); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	second := r.Create(20, 20, ImageFlagsNone)
	if second.index != first.index {
		t.Fatalf("expected the freed slot to be reused, got index %d want %d", second.index, first.index)
	}
	if second.generation == first.generation {
		t.Error("reused slot must have a bumped generation so the stale handle cannot alias it")
	}

	// the old (stale) handle must not resolve to the new image
	if _, _, _, ok := r.Lookup(first); ok {
		t.Error("stale handle from before slot reuse should fail Lookup")
	}
	w, h, _, ok := r.Lookup(second)
	if !ok || w != 20 || h != 20 {
		t.Errorf("Lookup(second) = (%d, %d, ok=%v), want (20, 20, true)", w, h, ok)
	}
}

func TestImageRegistryUpdateDimensions(t *testing.T) {
	r := NewImageRegistry()
	id := r.Create(10, 10, ImageFlagsNone)
	if err := r.Update(id, 40, 40); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	w, h, _, ok := r.Lookup(id)
	if !ok || w != 40 || h != 40 {
		t.Errorf("Lookup after Update = (%d, %d, %v), want (40, 40, true)", w, h, ok)
	}
}

func TestInvalidImageIDIsNotValid(t *testing.T) {
	var id ImageID
	if id.IsValid() {
		t.Error("zero-value ImageID should not be IsValid")
	}
}
