package gameshell

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// moveSpeed is the player speed in world pixels per millisecond.
const moveSpeed = 0.1

// backgroundCell is the side of one checker cell of the background texture.
const backgroundCell = 32

// Options configures a Game.
type Options struct {
	// SettingsPath is where settings are read at startup and written at exit.
	SettingsPath string
	// Title is the window title.
	Title string
	// Bindings maps actions to inputs. Nil means DefaultBindings.
	Bindings Bindings
	// Script, when set, replays scripted input on top of the devices.
	Script *Script
	// ScreenshotDir receives screenshot PNGs.
	ScreenshotDir string
	// Debug logs frame stats once per second.
	Debug bool
	// Logger receives shell logs. Nil discards them.
	Logger *log.Logger
}

// Game is the shell: it implements ebiten.Game.
type Game struct {
	opts     Options
	logger   *log.Logger
	settings Settings

	window   *WindowController
	input    InputSource
	bindings Bindings

	world      donburi.World
	camera     *Camera
	background *Background
	hud        *HUD
	fps        FPSCounter

	lastUpdate time.Time
	now        func() time.Time
	closing    func() bool

	screenshotQueue []string
	debug           debugStats
	quit            bool
}

// NewGame creates a shell over the Ebitengine window and devices.
func NewGame(s Settings, opts Options) (*Game, error) {
	return newGame(s, opts, ebitenWindow{}, &ebitenInput{})
}

func newGame(s Settings, opts Options, win Window, in InputSource) (*Game, error) {
	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}

	g := &Game{
		opts:     opts,
		logger:   logger,
		settings: s,
		input:    in,
		bindings: bindings,
		world:    NewWorld(),
		camera:   NewCamera(Rect{Width: float64(s.Width), Height: float64(s.Height)}),
		background: NewBackground(
			NewCheckerTexture(backgroundCell, ColorGray700, ColorGray800), DefaultParallax),
		hud:     hud,
		now:     time.Now,
		closing: ebiten.IsWindowBeingClosed,
	}
	g.window = NewWindowController(&g.settings, win)
	g.window.OnChange = func(c ModeChange) {
		ModeChangeEvent.Publish(g.world, c)
	}
	ModeChangeEvent.Subscribe(g.world, g.onModeChange)
	return g, nil
}

// Settings returns the current settings record.
func (g *Game) Settings() Settings {
	return g.settings
}

// Window returns the window mode controller.
func (g *Game) Window() *WindowController {
	return g.window
}

// World returns the entity world.
func (g *Game) World() donburi.World {
	return g.world
}

// FPS returns the frame counter.
func (g *Game) FPS() *FPSCounter {
	return &g.fps
}

// Init applies the engine settings and the saved window state. Call it once
// before ebiten.RunGame.
func (g *Game) Init() {
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(g.settings.IsVSync)
	if g.settings.IsFixedTimeStep {
		ebiten.SetTPS(ebiten.DefaultTPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	g.window.Init()
	g.logger.Info("window ready", "mode", g.window.Mode(), "geometry", g.settings.Geometry())
}

// elapsed returns the seconds covered by this update. Fixed time step mode
// uses the nominal tick length.
func (g *Game) elapsed() float64 {
	if g.settings.IsFixedTimeStep {
		return 1.0 / float64(ebiten.DefaultTPS)
	}
	now := g.now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
		return 1.0 / float64(ebiten.DefaultTPS)
	}
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	return dt
}

// Update polls input, applies toggles and moves the player.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	dt := g.elapsed()
	g.fps.Update(dt)
	g.window.Settle()

	if r, ok := g.input.(interface{ Refresh() }); ok {
		r.Refresh()
	}
	actions := g.bindings.Poll(g.input)
	if g.opts.Script != nil {
		if label, ok := g.opts.Script.step(&actions); ok {
			g.Screenshot(label)
		}
	}

	if actions.Pressed(ActionQuit) || g.closing() {
		g.Shutdown()
		return ebiten.Termination
	}

	if actions.Pressed(ActionToggleFullscreen) {
		g.window.ToggleFullscreen()
	}
	if actions.Pressed(ActionToggleBorderless) {
		g.window.ToggleBorderless()
	}
	if actions.Pressed(ActionScreenshot) {
		g.Screenshot("screenshot")
	}

	move := moveSpeed * dt * 1000
	dir := actions.Movement()
	if dir != (Vec2{}) {
		MovePlayer(g.world, Vec2{dir.X * move, dir.Y * move})
	}
	g.camera.CenterOn(PlayerBounds(g.world).Center())

	ModeChangeEvent.ProcessEvents(g.world)
	g.hud.Update(dt)
	g.debugTick(dt)
	return nil
}

// Shutdown captures the windowed geometry for saving and makes the next
// Update end the game.
func (g *Game) Shutdown() {
	if g.quit {
		return
	}
	g.quit = true
	g.window.Shutdown()
	g.logger.Info("shutting down", "mode", g.window.Mode(), "geometry", g.settings.Geometry())
}

// Draw clears the screen and draws the background, the shapes and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.Draw()
	screen.Fill(ColorGray700.ToRGBA())

	g.background.Draw(screen, g.camera)
	DrawShapes(g.world, screen, g.camera)
	g.hud.Draw(screen, &g.fps)

	g.flushScreenshots(screen)
}

// Layout uses the window size as the screen size so the world is never
// stretched.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.Viewport = Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

func (g *Game) onModeChange(_ donburi.World, c ModeChange) {
	g.debug.toggles++
	g.hud.ShowBanner(c.To.String())
	g.logger.Info("window mode changed",
		"from", c.From,
		"to", c.To,
		"hardwareModeSwitch", g.window.HardwareModeSwitch(),
		"geometrySaved", c.GeometrySaved,
	)
}

// Run loads the settings, runs the shell until the player quits and saves
// the settings.
func Run(opts Options) error {
	s, err := EnsureSettings(opts.SettingsPath)
	if err != nil {
		return err
	}
	s.Normalize()
	g, err := NewGame(s, opts)
	if err != nil {
		return err
	}
	g.Init()

	runErr := ebiten.RunGame(g)
	if err := SaveSettings(opts.SettingsPath, g.Settings()); err != nil {
		g.logger.Error("save settings", "err", err)
		if runErr == nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
