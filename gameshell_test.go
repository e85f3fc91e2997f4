package gameshell

import (
	"image/color"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
		{"same rect", Rect{10, 10, 100, 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersects(tt.other)
			if got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{0, 0, 50, 50}
	if got := r.Center(); got != (Vec2{25, 25}) {
		t.Errorf("Center() = %v, want {25 25}", got)
	}
	if got := r.Size(); got != (Vec2{50, 50}) {
		t.Errorf("Size() = %v, want {50 50}", got)
	}
}

// --- Color ---

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"black", ColorBlack, color.RGBA{0, 0, 0, 255}},
		{"half white", ColorWhite.WithAlpha(0.5), color.RGBA{128, 128, 128, 128}},
		{"transparent", ColorRed600.WithAlpha(0), color.RGBA{}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.ToRGBA(); got != tt.want {
				t.Errorf("ToRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	got := RGB(0x37, 0x41, 0x51).ToRGBA()
	want := color.RGBA{0x37, 0x41, 0x51, 0xff}
	if got != want {
		t.Errorf("RGB round trip = %v, want %v", got, want)
	}
}
