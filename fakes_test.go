package gameshell

import "github.com/hajimehoshi/ebiten/v2"

// fakeWindow records the state a real window would end up in. While
// fullscreen, Position and Size report the monitor like a real window.
type fakeWindow struct {
	x, y, w, h         int
	fullscreen         bool
	undecorated        bool
	monitorW, monitorH int
}

func newFakeWindow(x, y, w, h int) *fakeWindow {
	return &fakeWindow{x: x, y: y, w: w, h: h, monitorW: 1920, monitorH: 1080}
}

func (f *fakeWindow) Position() (int, int) {
	if f.fullscreen {
		return 0, 0
	}
	return f.x, f.y
}

func (f *fakeWindow) Size() (int, int) {
	if f.fullscreen {
		return f.monitorW, f.monitorH
	}
	return f.w, f.h
}

func (f *fakeWindow) SetPosition(x, y int) { f.x, f.y = x, y }
func (f *fakeWindow) SetSize(w, h int) { f.w, f.h = w, h }
func (f *fakeWindow) SetFullscreen(fullscreen bool) { f.fullscreen = fullscreen }
func (f *fakeWindow) SetDecorated(decorated bool) { f.undecorated = !decorated }
func (f *fakeWindow) MonitorSize() (int, int) { return f.monitorW, f.monitorH }

func (f *fakeWindow) geometry() WindowGeometry {
	return WindowGeometry{X: f.x, Y: f.y, Width: f.w, Height: f.h}
}

// fakeInput is a scriptable InputSource. Pressing a key marks it held and
// just pressed; endFrame clears the just-pressed edges.
type fakeInput struct {
	keys     map[ebiten.Key]bool
	keyEdges map[ebiten.Key]bool
	pad      map[ebiten.StandardGamepadButton]bool
	padEdges map[ebiten.StandardGamepadButton]bool
	axes     map[ebiten.StandardGamepadAxis]float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:     map[ebiten.Key]bool{},
		keyEdges: map[ebiten.Key]bool{},
		pad:      map[ebiten.StandardGamepadButton]bool{},
		padEdges: map[ebiten.StandardGamepadButton]bool{},
		axes:     map[ebiten.StandardGamepadAxis]float64{},
	}
}

func (f *fakeInput) press(keys ...ebiten.Key) {
	for _, k := range keys {
		if !f.keys[k] {
			f.keyEdges[k] = true
		}
		f.keys[k] = true
	}
}

func (f *fakeInput) release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(f.keys, k)
		delete(f.keyEdges, k)
	}
}

func (f *fakeInput) pressButton(b ebiten.StandardGamepadButton) {
	if !f.pad[b] {
		f.padEdges[b] = true
	}
	f.pad[b] = true
}

func (f *fakeInput) endFrame() {
	clear(f.keyEdges)
	clear(f.padEdges)
}

func (f *fakeInput) IsKeyPressed(k ebiten.Key) bool { return f.keys[k] }
func (f *fakeInput) IsKeyJustPressed(k ebiten.Key) bool { return f.keyEdges[k] }

func (f *fakeInput) IsGamepadButtonPressed(pad int, b ebiten.StandardGamepadButton) bool {
	return pad == 0 && f.pad[b]
}

func (f *fakeInput) IsGamepadButtonJustPressed(pad int, b ebiten.StandardGamepadButton) bool {
	return pad == 0 && f.padEdges[b]
}

func (f *fakeInput) GamepadAxis(pad int, a ebiten.StandardGamepadAxis) float64 {
	if pad != 0 {
		return 0
	}
	return f.axes[a]
}
