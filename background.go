package gameshell

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultParallax makes the background scroll at half the camera speed.
const DefaultParallax = 0.5

// Background is an endlessly tiled texture behind the world. It is drawn as a
// single screen-sized quad whose texture coordinates come from the inverse
// camera transform, with repeat addressing doing the tiling.
type Background struct {
	Texture *ebiten.Image
	// Parallax scales how far the texture scrolls relative to the camera.
	// 1 pins it to the world, 0 pins it to the screen.
	Parallax float64

	vertices [4]ebiten.Vertex
	indices  [6]uint16
}

// NewBackground creates a background that tiles tex.
func NewBackground(tex *ebiten.Image, parallax float64) *Background {
	return &Background{
		Texture:  tex,
		Parallax: parallax,
		indices:  [6]uint16{0, 1, 2, 1, 3, 2},
	}
}

// NewCheckerTexture builds a two-color checkerboard with square cells of the
// given size. The image is unmanaged so repeat addressing samples the whole
// texture.
func NewCheckerTexture(cell int, a, b Color) *ebiten.Image {
	img := ebiten.NewImageWithOptions(image.Rect(0, 0, cell*2, cell*2), &ebiten.NewImageOptions{
		Unmanaged: true,
	})
	img.Fill(a.ToRGBA())
	ca := b.ToRGBA()
	img.SubImage(image.Rect(cell, 0, cell*2, cell)).(*ebiten.Image).Fill(ca)
	img.SubImage(image.Rect(0, cell, cell, cell*2)).(*ebiten.Image).Fill(ca)
	return img
}

// UVTransform returns the matrix mapping screen coordinates to texture
// coordinates for the given camera. It is the inverse of the view matrix of
// a camera moved by Parallax times the real camera offset.
func (bg *Background) UVTransform(cam *Camera) [6]float64 {
	return invertAffine(cam.viewMatrixAt(cam.X*bg.Parallax, cam.Y*bg.Parallax))
}

// Draw covers the camera viewport of dst with the background.
func (bg *Background) Draw(dst *ebiten.Image, cam *Camera) {
	if bg.Texture == nil {
		return
	}
	uv := bg.UVTransform(cam)
	vp := cam.Viewport
	corners := [4][2]float64{
		{vp.X, vp.Y},
		{vp.X + vp.Width, vp.Y},
		{vp.X, vp.Y + vp.Height},
		{vp.X + vp.Width, vp.Y + vp.Height},
	}
	for i, p := range corners {
		u, v := transformPoint(uv, p[0], p[1])
		bg.vertices[i] = ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   float32(u),
			SrcY:   float32(v),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	var op ebiten.DrawTrianglesOptions
	op.Address = ebiten.AddressRepeat
	dst.DrawTriangles(bg.vertices[:], bg.indices[:], bg.Texture, &op)
}
