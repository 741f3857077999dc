package vgcore

import "testing"

func TestPixmapSetGetPixelRoundTrip(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 2, Red)
	got := pm.GetPixel(1, 2)
	if got.R != 1 || got.G != 0 || got.B != 0 || got.A != 1 {
		t.Errorf("GetPixel(1,2) = %+v, want Red", got)
	}
}

func TestPixmapGetPixelOutOfBoundsReturnsTransparent(t *testing.T) {
	pm := NewPixmap(2, 2)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("GetPixel out of bounds = %+v, want Transparent", got)
	}
	if got := pm.GetPixel(5, 5); got != Transparent {
		t.Errorf("GetPixel out of bounds = %+v, want Transparent", got)
	}
}

func TestPixmapSetPixelOutOfBoundsIsNoop(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(-1, 0, Red) // should not panic
	pm.SetPixel(10, 10, Red)
}

func TestPixmapClearFillsEveryPixel(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); got != Blue {
				t.Fatalf("GetPixel(%d,%d) = %+v, want Blue", x, y, got)
			}
		}
	}
}

func TestPixmapFillSpanShortAndLong(t *testing.T) {
	pm := NewPixmap(32, 1)
	pm.FillSpan(0, 5, 0, Green)
	pm.FillSpan(5, 32, 0, Green)
	for x := 0; x < 32; x++ {
		if got := pm.GetPixel(x, 0); got != Green {
			t.Fatalf("GetPixel(%d,0) = %+v, want Green", x, got)
		}
	}
}

func TestPixmapFillSpanOutOfRangeRowIsNoop(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.FillSpan(0, 4, 10, Red) // row 10 doesn't exist; should not panic
}

func TestPixmapFillSpanEmptyRangeIsNoop(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.FillSpan(2, 2, 0, Red)
	if got := pm.GetPixel(2, 0); got != Transparent {
		t.Error("FillSpan with x1 == x2 should do nothing")
	}
}

func TestPixmapFillSpanBlendOpaqueDelegatesToFillSpan(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.FillSpanBlend(0, 4, 0, RGBA(1, 0, 0, 1))
	if got := pm.GetPixel(0, 0); got.R != 1 || got.A != 1 {
		t.Errorf("FillSpanBlend with opaque color = %+v, want fully opaque red", got)
	}
}

func TestPixmapFillSpanBlendPartialAlphaBlendsOverExistingContent(t *testing.T) {
	pm := NewPixmap(20, 1)
	pm.Clear(White)
	pm.FillSpanBlend(0, 20, 0, RGBA(0, 0, 0, 0.5))
	got := pm.GetPixel(10, 0)
	// half-alpha black over white should land roughly mid-gray
	if got.R > 0.6 || got.R < 0.3 {
		t.Errorf("GetPixel(10,0).R after 50%% black blend over white = %v, want roughly mid-gray", got.R)
	}
}

func TestPixmapWidthHeight(t *testing.T) {
	pm := NewPixmap(7, 9)
	if pm.Width() != 7 || pm.Height() != 9 {
		t.Errorf("Width/Height = %d/%d, want 7/9", pm.Width(), pm.Height())
	}
}

func TestPixmapToImagePreservesPixels(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, Red)
	img := pm.ToImage()
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("ToImage pixel (0,0) = (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(1, 1, Green)
	img := pm.ToImage()
	reconstructed := FromImage(img)
	got := reconstructed.GetPixel(1, 1)
	if got.G < 0.99 {
		t.Errorf("FromImage round-trip pixel (1,1) = %+v, want green preserved", got)
	}
}

func TestPixmapBoundsAndColorModel(t *testing.T) {
	pm := NewPixmap(5, 6)
	b := pm.Bounds()
	if b.Dx() != 5 || b.Dy() != 6 {
		t.Errorf("Bounds() = %v, want a 5x6 rectangle", b)
	}
	if pm.ColorModel() == nil {
		t.Error("ColorModel() should not be nil")
	}
}
