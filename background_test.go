package gameshell

import "testing"

func TestBackgroundUVTransform(t *testing.T) {
	tests := []struct {
		name     string
		camX     float64
		camY     float64
		zoom     float64
		parallax float64
		screen   Vec2
		want     Vec2
	}{
		{"origin center", 0, 0, 1, 1, Vec2{400, 300}, Vec2{0, 0}},
		{"origin corner", 0, 0, 1, 1, Vec2{0, 0}, Vec2{-400, -300}},
		{"pinned to world", 100, 40, 1, 1, Vec2{400, 300}, Vec2{100, 40}},
		{"half parallax", 100, 40, 1, 0.5, Vec2{400, 300}, Vec2{50, 20}},
		{"pinned to screen", 100, 40, 1, 0, Vec2{400, 300}, Vec2{0, 0}},
		{"zoomed", 0, 0, 2, 1, Vec2{0, 0}, Vec2{-200, -150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(Rect{Width: 800, Height: 600})
			cam.X, cam.Y, cam.Zoom = tt.camX, tt.camY, tt.zoom
			bg := NewBackground(nil, tt.parallax)

			u, v := transformPoint(bg.UVTransform(cam), tt.screen.X, tt.screen.Y)
			if !approxEqual(u, tt.want.X, epsilon) || !approxEqual(v, tt.want.Y, epsilon) {
				t.Errorf("uv(%v) = (%f,%f), want %v", tt.screen, u, v, tt.want)
			}
		})
	}
}

func TestBackgroundScrollsWithCamera(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	bg := NewBackground(nil, DefaultParallax)

	u0, _ := transformPoint(bg.UVTransform(cam), 0, 0)
	cam.X += 64
	u1, _ := transformPoint(bg.UVTransform(cam), 0, 0)
	if !approxEqual(u1-u0, 64*DefaultParallax, epsilon) {
		t.Errorf("texture scrolled by %f, want %f", u1-u0, 64*DefaultParallax)
	}
}

func TestNewCheckerTexture(t *testing.T) {
	img := NewCheckerTexture(8, ColorGray700, ColorGray800)
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("texture size = %dx%d, want 16x16", b.Dx(), b.Dy())
	}
}
