package vgcore

import (
	"math"
	"testing"
)

func approxColor(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestHexShortForms(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#fff", RGBA(1, 1, 1, 1)},
		{"#000", RGBA(0, 0, 0, 1)},
		{"f00", RGBA(1, 0, 0, 1)},
		{"#0f08", RGBA(0, 1, 0, 8.0*17/255)},
	}
	for _, tt := range tests {
		got := Hex(tt.hex)
		if !approxColor(got, tt.want, 1e-6) {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestHexLongForms(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#ff0000", RGBA(1, 0, 0, 1)},
		{"#00ff00ff", RGBA(0, 1, 0, 1)},
		{"#0000ff80", RGBA(0, 0, 1, float64(0x80)/255)},
	}
	for _, tt := range tests {
		got := Hex(tt.hex)
		if !approxColor(got, tt.want, 1e-6) {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestHexInvalidLength(t *testing.T) {
	got := Hex("#12345")
	want := Color{R: 0, G: 0, B: 0, A: 1}
	if got != want {
		t.Errorf("Hex of malformed string = %+v, want opaque black %+v", got, want)
	}
}

func TestPremultiplyUnpremultiplyRoundTrip(t *testing.T) {
	c := RGBA(0.8, 0.4, 0.2, 0.5)
	pm := c.Premultiply()
	back := pm.Unpremultiply()
	if !approxColor(back, c, 1e-9) {
		t.Errorf("premultiply/unpremultiply round trip = %+v, want %+v", back, c)
	}
}

func TestUnpremultiplyZeroAlpha(t *testing.T) {
	c := Color{R: 1, G: 1, B: 1, A: 0}
	got := c.Unpremultiply()
	if got != (Color{}) {
		t.Errorf("Unpremultiply of zero-alpha color = %+v, want zero color (avoid div by zero)", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := RGBA(0, 0, 0, 0)
	b := RGBA(1, 1, 1, 1)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if !approxColor(mid, RGBA(0.5, 0.5, 0.5, 0.5), 1e-9) {
		t.Errorf("Lerp(t=0.5) = %+v, want {0.5 0.5 0.5 0.5}", mid)
	}
}

func TestFromColorToColorRoundTrip(t *testing.T) {
	c := RGBA(0.25, 0.5, 0.75, 1)
	std := c.ToColor()
	back := FromColor(std)
	if !approxColor(back, c, 1.0/255) {
		t.Errorf("ToColor/FromColor round trip = %+v, want approximately %+v", back, c)
	}
}

func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		name       string
		h, s, l    float64
		want       Color
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 120, 1, 0.5, Green},
		{"blue", 240, 1, 0.5, Blue},
	}
	for _, tt := range tests {
		got := HSL(tt.h, tt.s, tt.l)
		if !approxColor(got, tt.want, 1e-6) {
			t.Errorf("%s: HSL(%v,%v,%v) = %+v, want %+v", tt.name, tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestHSLWrapsNegativeHue(t *testing.T) {
	a := HSL(-360, 1, 0.5)
	b := HSL(0, 1, 0.5)
	if !approxColor(a, b, 1e-9) {
		t.Errorf("HSL(-360,...) = %+v, want same as HSL(0,...) = %+v", a, b)
	}
}
