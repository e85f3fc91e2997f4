package gameshell

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeStyle describes how a rectangle is filled and outlined.
type ShapeStyle struct {
	Fill      Color
	Border    Color
	Thickness float64
	// Layer orders shapes; lower layers are drawn first.
	Layer int
}

// DrawRectangle draws the world-space rectangle r through cam. The border is
// drawn inside the rectangle bounds and scales with the camera zoom.
func DrawRectangle(dst *ebiten.Image, cam *Camera, r Rect, style ShapeStyle) {
	s := cam.WorldRectToScreen(r)
	vector.DrawFilledRect(dst, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height),
		style.Fill.ToRGBA(), true)

	t := style.Thickness * cam.Zoom
	if t <= 0 {
		return
	}
	half := t / 2
	vector.StrokeRect(dst,
		float32(s.X+half), float32(s.Y+half),
		float32(s.Width-t), float32(s.Height-t),
		float32(t), style.Border.ToRGBA(), true)
}
