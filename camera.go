package gameshell

import "math"

// Camera centers the view on a world position. Zoom scales around the
// viewport center.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	cachedKey     cameraKey
	cached        bool
}

type cameraKey struct {
	x, y, zoom float64
	viewport   Rect
}

// NewCamera creates a Camera at the origin with zoom 1.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1.0, Viewport: viewport}
}

// CenterOn moves the camera so that p is at the viewport center.
func (c *Camera) CenterOn(p Vec2) {
	c.X, c.Y = p.X, p.Y
}

// viewMatrixAt returns the view matrix the camera would have if it were
// centered on (x, y).
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-x, -y)
// where cx, cy = viewport center.
func (c *Camera) viewMatrixAt(x, y float64) [6]float64 {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom
	return [6]float64{z, 0, 0, z, cx - z*x, cy - z*y}
}

// ViewMatrix returns the world-to-screen matrix, recomputing it only when the
// camera moved since the last call.
func (c *Camera) ViewMatrix() [6]float64 {
	key := cameraKey{c.X, c.Y, c.Zoom, c.Viewport}
	if c.cached && key == c.cachedKey {
		return c.viewMatrix
	}
	c.cachedKey = key
	c.cached = true
	c.viewMatrix = c.viewMatrixAt(c.X, c.Y)
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.ViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.ViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the world-space rectangle covered by the viewport.
func (c *Camera) VisibleBounds() Rect {
	x0, y0 := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	x1, y1 := c.ScreenToWorld(c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Rect{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// WorldRectToScreen maps a world rectangle to screen space.
func (c *Camera) WorldRectToScreen(r Rect) Rect {
	x, y := c.WorldToScreen(r.X, r.Y)
	return Rect{X: x, Y: y, Width: r.Width * c.Zoom, Height: r.Height * c.Zoom}
}
