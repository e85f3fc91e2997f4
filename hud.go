package gameshell

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	hudFontSize    = 24
	bannerFontSize = 32
	bannerDuration = 1.5 // seconds
	bannerY        = 48
)

// hudOrigin is where the FPS line is drawn.
var hudOrigin = Vec2{10, 10}

// HUD draws the screen-space overlay: the FPS line and a fading banner
// announcing window mode changes.
type HUD struct {
	face       *text.GoTextFace
	bannerFace *text.GoTextFace

	banner      string
	bannerAlpha float64
	bannerTween *gween.Tween
}

// NewHUD loads the monospace overlay font.
func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &HUD{
		face:       &text.GoTextFace{Source: src, Size: hudFontSize},
		bannerFace: &text.GoTextFace{Source: src, Size: bannerFontSize},
	}, nil
}

// FPSText formats the FPS line.
func FPSText(fps *FPSCounter) string {
	return fmt.Sprintf("FPS: %d -- Dropped: %d", fps.FramesPerSecond, fps.DroppedFrames)
}

// ShowBanner displays msg and fades it out. A new banner replaces the
// current one.
func (h *HUD) ShowBanner(msg string) {
	h.banner = msg
	h.bannerAlpha = 1
	h.bannerTween = gween.New(1, 0, bannerDuration, ease.InQuad)
}

// Banner returns the current banner text and its opacity.
func (h *HUD) Banner() (string, float64) {
	return h.banner, h.bannerAlpha
}

// Update advances the banner fade by dt seconds.
func (h *HUD) Update(dt float64) {
	if h.bannerTween == nil {
		return
	}
	alpha, done := h.bannerTween.Update(float32(dt))
	h.bannerAlpha = float64(alpha)
	if done {
		h.banner = ""
		h.bannerAlpha = 0
		h.bannerTween = nil
	}
}

// Draw renders the overlay onto dst in screen space.
func (h *HUD) Draw(dst *ebiten.Image, fps *FPSCounter) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudOrigin.X, hudOrigin.Y)
	op.ColorScale.ScaleWithColor(ColorWhite.ToRGBA())
	text.Draw(dst, FPSText(fps), h.face, op)

	if h.banner == "" || h.bannerAlpha <= 0 {
		return
	}
	w, _ := text.Measure(h.banner, h.bannerFace, 0)
	op = &text.DrawOptions{}
	op.GeoM.Translate((float64(dst.Bounds().Dx())-w)/2, bannerY)
	op.ColorScale.ScaleWithColor(ColorWhite.ToRGBA())
	op.ColorScale.ScaleAlpha(float32(h.bannerAlpha))
	text.Draw(dst, h.banner, h.bannerFace, op)
}
