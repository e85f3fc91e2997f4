package gameshell

import "github.com/hajimehoshi/ebiten/v2"

// WindowGeometry is a window position and size in screen pixels.
type WindowGeometry struct {
	X, Y          int
	Width, Height int
}

// Window is the platform window driven by WindowController.
type Window interface {
	Position() (x, y int)
	Size() (width, height int)
	SetPosition(x, y int)
	SetSize(width, height int)
	SetFullscreen(fullscreen bool)
	SetDecorated(decorated bool)
	MonitorSize() (width, height int)
}

// WindowMode is the presentation state of the shell window.
type WindowMode uint8

const (
	ModeWindowed      WindowMode = iota // decorated window at the saved geometry
	ModeFullscreen                      // exclusive fullscreen (hardware mode switch)
	ModeBorderless                      // undecorated window covering the monitor
	ModeTransitioning                   // a change was requested and has not settled yet
)

func (m WindowMode) String() string {
	switch m {
	case ModeWindowed:
		return "Windowed"
	case ModeFullscreen:
		return "Fullscreen"
	case ModeBorderless:
		return "Borderless"
	case ModeTransitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}

// ModeChange describes a settled mode change requested by a toggle.
type ModeChange struct {
	From, To WindowMode
	// GeometrySaved is set when the windowed geometry was captured because
	// the window entered fullscreen.
	GeometrySaved bool
}

// WindowController implements the fullscreen and borderless toggles on top of
// a Window, keeping the windowed geometry in Settings.
type WindowController struct {
	settings *Settings
	window   Window

	// OnChange, when set, is called after every toggle.
	OnChange func(ModeChange)

	pending bool
	// borderlessFromFullscreen records that borderless was entered while
	// already fullscreen, so leaving it with ToggleFullscreen goes back to
	// exclusive fullscreen instead of windowed.
	borderlessFromFullscreen bool
	geometrySaved            bool
}

// NewWindowController returns a controller that mutates s and drives w.
func NewWindowController(s *Settings, w Window) *WindowController {
	return &WindowController{settings: s, window: w}
}

// Init applies the loaded settings to the window. A borderless record is
// treated as fullscreen.
func (c *WindowController) Init() {
	c.settings.IsFullscreen = c.settings.IsFullscreen || c.settings.IsBorderless

	c.RestoreWindow()
	if c.settings.IsFullscreen {
		c.applyFullscreenChange(false)
	}
}

// ToggleFullscreen leaves borderless if it is active, otherwise flips
// fullscreen.
func (c *WindowController) ToggleFullscreen() {
	from := c.stableMode()
	wasFullscreen := c.settings.IsFullscreen

	if c.settings.IsBorderless {
		c.settings.IsBorderless = false
		c.settings.IsFullscreen = c.borderlessFromFullscreen
	} else {
		c.settings.IsFullscreen = !c.settings.IsFullscreen
	}
	c.borderlessFromFullscreen = false

	c.applyFullscreenChange(wasFullscreen)
	c.notify(from)
}

// ToggleBorderless flips borderless. Fullscreen follows the new value.
func (c *WindowController) ToggleBorderless() {
	from := c.stableMode()
	wasFullscreen := c.settings.IsFullscreen

	c.settings.IsBorderless = !c.settings.IsBorderless
	c.settings.IsFullscreen = c.settings.IsBorderless
	c.borderlessFromFullscreen = c.settings.IsBorderless && wasFullscreen

	c.applyFullscreenChange(wasFullscreen)
	c.notify(from)
}

// Settle marks the last requested change as applied. Call once per frame
// before reading Mode.
func (c *WindowController) Settle() {
	c.pending = false
}

// Mode reports the current window mode.
func (c *WindowController) Mode() WindowMode {
	if c.pending {
		return ModeTransitioning
	}
	return c.stableMode()
}

// HardwareModeSwitch reports whether fullscreen uses an exclusive display
// mode rather than a borderless window.
func (c *WindowController) HardwareModeSwitch() bool {
	return !c.settings.IsBorderless
}

// SaveWindow stores the current window geometry in the settings.
func (c *WindowController) SaveWindow() {
	x, y := c.window.Position()
	w, h := c.window.Size()
	c.settings.SetGeometry(WindowGeometry{X: x, Y: y, Width: w, Height: h})
}

// RestoreWindow applies the saved geometry to the window.
func (c *WindowController) RestoreWindow() {
	g := c.settings.Geometry()
	c.window.SetPosition(g.X, g.Y)
	c.window.SetSize(g.Width, g.Height)
}

// Shutdown captures the windowed geometry unless the window is fullscreen,
// in which case the geometry saved on entering fullscreen is kept.
func (c *WindowController) Shutdown() {
	if !c.settings.IsFullscreen {
		c.SaveWindow()
	}
}

func (c *WindowController) stableMode() WindowMode {
	switch {
	case c.settings.IsBorderless:
		return ModeBorderless
	case c.settings.IsFullscreen:
		return ModeFullscreen
	default:
		return ModeWindowed
	}
}

func (c *WindowController) applyFullscreenChange(wasFullscreen bool) {
	c.geometrySaved = false
	if c.settings.IsFullscreen {
		if wasFullscreen {
			c.applyHardwareMode()
		} else {
			c.setFullscreen()
		}
	} else {
		c.unsetFullscreen()
	}
	c.pending = true
}

// applyHardwareMode switches between exclusive and borderless presentation
// while staying fullscreen. The windowed geometry is left alone.
func (c *WindowController) applyHardwareMode() {
	if c.HardwareModeSwitch() {
		c.window.SetDecorated(true)
		c.window.SetFullscreen(true)
		return
	}
	c.window.SetFullscreen(false)
	c.window.SetDecorated(false)
	w, h := c.window.MonitorSize()
	c.window.SetPosition(0, 0)
	c.window.SetSize(w, h)
}

func (c *WindowController) setFullscreen() {
	c.SaveWindow()
	c.geometrySaved = true
	c.applyHardwareMode()
}

func (c *WindowController) unsetFullscreen() {
	c.window.SetFullscreen(false)
	c.window.SetDecorated(true)
	c.RestoreWindow()
}

func (c *WindowController) notify(from WindowMode) {
	if c.OnChange == nil {
		return
	}
	c.OnChange(ModeChange{From: from, To: c.stableMode(), GeometrySaved: c.geometrySaved})
}

// ebitenWindow drives the Ebitengine window.
type ebitenWindow struct{}

func (ebitenWindow) Position() (int, int) { return ebiten.WindowPosition() }
func (ebitenWindow) Size() (int, int) { return ebiten.WindowSize() }
func (ebitenWindow) SetPosition(x, y int) { ebiten.SetWindowPosition(x, y) }
func (ebitenWindow) SetSize(width, height int) { ebiten.SetWindowSize(width, height) }
func (ebitenWindow) SetFullscreen(fullscreen bool) { ebiten.SetFullscreen(fullscreen) }
func (ebitenWindow) SetDecorated(decorated bool) { ebiten.SetWindowDecorated(decorated) }

func (ebitenWindow) MonitorSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		return m.Size()
	}
	return ebiten.ScreenSizeInFullscreen()
}
