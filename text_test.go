package vgcore

import "testing"

func TestNoopShaperReturnsNoGlyphsNoError(t *testing.T) {
	glyphs, err := (noopShaper{}).Shape("hello", FontParams{Size: 16})
	if err != nil {
		t.Fatalf("noopShaper.Shape() error = %v, want nil", err)
	}
	if glyphs != nil {
		t.Errorf("noopShaper.Shape() = %v, want nil", glyphs)
	}
}

func TestNormalizeTextWidthFoldsFullwidthDigits(t *testing.T) {
	// U+FF11 FULLWIDTH DIGIT ONE folds to ASCII '1'
	got := NormalizeTextWidth("１")
	if got != "1" {
		t.Errorf("NormalizeTextWidth(fullwidth 1) = %q, want %q", got, "1")
	}
}

func TestNormalizeTextWidthLeavesASCIIUnchanged(t *testing.T) {
	if got := NormalizeTextWidth("hello"); got != "hello" {
		t.Errorf("NormalizeTextWidth(%q) = %q, want unchanged", "hello", got)
	}
}
