package gameshell

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gopkg.in/yaml.v3"
)

// stickDeadZone is the left stick deflection below which movement is ignored.
const stickDeadZone = 0.25

// InputSource is the per-frame device state read by conditions.
// Gamepads are addressed by connection order, 0 being the first.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsGamepadButtonPressed(pad int, button ebiten.StandardGamepadButton) bool
	IsGamepadButtonJustPressed(pad int, button ebiten.StandardGamepadButton) bool
	GamepadAxis(pad int, axis ebiten.StandardGamepadAxis) float64
}

// --- Conditions ---

// Condition is a bindable input test. Pressed is true on the frame the input
// goes down; Held is true on every frame it stays down.
type Condition interface {
	Pressed(src InputSource) bool
	Held(src InputSource) bool
}

// KeyCondition matches a single keyboard key.
type KeyCondition struct {
	Key ebiten.Key
}

func (c KeyCondition) Pressed(src InputSource) bool { return src.IsKeyJustPressed(c.Key) }
func (c KeyCondition) Held(src InputSource) bool { return src.IsKeyPressed(c.Key) }

// GamepadCondition matches a standard-layout button on the Pad-th gamepad.
type GamepadCondition struct {
	Button ebiten.StandardGamepadButton
	Pad    int
}

func (c GamepadCondition) Pressed(src InputSource) bool {
	return src.IsGamepadButtonJustPressed(c.Pad, c.Button)
}

func (c GamepadCondition) Held(src InputSource) bool {
	return src.IsGamepadButtonPressed(c.Pad, c.Button)
}

// AnyCondition matches when any of its parts match.
type AnyCondition []Condition

func (c AnyCondition) Pressed(src InputSource) bool {
	for _, part := range c {
		if part.Pressed(src) {
			return true
		}
	}
	return false
}

func (c AnyCondition) Held(src InputSource) bool {
	for _, part := range c {
		if part.Held(src) {
			return true
		}
	}
	return false
}

// AllCondition is a chord. It is held when every part is held, and pressed
// when every part is held and at least one of them went down this frame.
type AllCondition []Condition

func (c AllCondition) Pressed(src InputSource) bool {
	if !c.Held(src) {
		return false
	}
	for _, part := range c {
		if part.Pressed(src) {
			return true
		}
	}
	return false
}

func (c AllCondition) Held(src InputSource) bool {
	if len(c) == 0 {
		return false
	}
	for _, part := range c {
		if !part.Held(src) {
			return false
		}
	}
	return true
}

// --- Actions ---

// Action is a named input the shell reacts to.
type Action uint8

const (
	ActionQuit Action = iota
	ActionToggleFullscreen
	ActionToggleBorderless
	ActionLeft
	ActionUp
	ActionRight
	ActionDown
	ActionScreenshot
	actionCount
)

var actionNames = [actionCount]string{
	ActionQuit:             "quit",
	ActionToggleFullscreen: "toggleFullscreen",
	ActionToggleBorderless: "toggleBorderless",
	ActionLeft:             "left",
	ActionUp:               "up",
	ActionRight:            "right",
	ActionDown:             "down",
	ActionScreenshot:       "screenshot",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Chord is a set of keys that must be held together.
type Chord []ebiten.Key

// KeyMap assigns keyboard chords to actions. Any chord triggers the action.
type KeyMap map[Action][]Chord

// DefaultKeyMap returns the keyboard layout of the shell.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ActionQuit:             {{ebiten.KeyEscape}},
		ActionToggleFullscreen: {{ebiten.KeyAltLeft, ebiten.KeyEnter}},
		ActionToggleBorderless: {{ebiten.KeyF11}},
		ActionLeft:             {{ebiten.KeyArrowLeft}},
		ActionUp:               {{ebiten.KeyArrowUp}},
		ActionRight:            {{ebiten.KeyArrowRight}},
		ActionDown:             {{ebiten.KeyArrowDown}},
		ActionScreenshot:       {{ebiten.KeyF12}},
	}
}

// PadMap assigns buttons of the first gamepad to actions.
type PadMap map[Action][]ebiten.StandardGamepadButton

// DefaultPadMap returns the gamepad layout of the shell.
func DefaultPadMap() PadMap {
	return PadMap{
		ActionQuit:  {ebiten.StandardGamepadButtonCenterLeft},
		ActionLeft:  {ebiten.StandardGamepadButtonLeftLeft},
		ActionUp:    {ebiten.StandardGamepadButtonLeftTop},
		ActionRight: {ebiten.StandardGamepadButtonLeftRight},
		ActionDown:  {ebiten.StandardGamepadButtonLeftBottom},
	}
}

// Bindings maps every action to its condition.
type Bindings map[Action]Condition

// DefaultBindings returns bindings built from the default key and pad maps.
func DefaultBindings() Bindings {
	return NewBindings(DefaultKeyMap(), DefaultPadMap())
}

// NewBindings combines keyboard chords and gamepad buttons into one
// AnyCondition per action.
func NewBindings(keys KeyMap, pad PadMap) Bindings {
	b := make(Bindings, actionCount)
	for a := Action(0); a < actionCount; a++ {
		var cond AnyCondition
		for _, chord := range keys[a] {
			switch len(chord) {
			case 0:
			case 1:
				cond = append(cond, KeyCondition{Key: chord[0]})
			default:
				all := make(AllCondition, len(chord))
				for i, k := range chord {
					all[i] = KeyCondition{Key: k}
				}
				cond = append(cond, all)
			}
		}
		for _, btn := range pad[a] {
			cond = append(cond, GamepadCondition{Button: btn})
		}
		b[a] = cond
	}
	return b
}

// Pressed reports whether the action went down this frame.
func (b Bindings) Pressed(a Action, src InputSource) bool {
	c, ok := b[a]
	return ok && c.Pressed(src)
}

// Held reports whether the action is down.
func (b Bindings) Held(a Action, src InputSource) bool {
	c, ok := b[a]
	return ok && c.Held(src)
}

// LoadKeyMap reads keyboard overrides from a YAML file and applies them on
// top of the default key map. Each action lists chords written as key names
// joined with "+", for example:
//
//	toggleFullscreen: ["AltLeft+Enter", "F10"]
//	quit: [Escape, Q]
//
// A missing file yields the defaults.
func LoadKeyMap(path string) (KeyMap, error) {
	km := DefaultKeyMap()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return km, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bindings %s: %w", path, err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bindings %s: %w", path, err)
	}
	for name, chords := range raw {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("parse bindings %s: %w", path, err)
		}
		parsed := make([]Chord, 0, len(chords))
		for _, s := range chords {
			chord, err := parseChord(s)
			if err != nil {
				return nil, fmt.Errorf("parse bindings %s: %s: %w", path, name, err)
			}
			parsed = append(parsed, chord)
		}
		km[a] = parsed
	}
	return km, nil
}

func parseChord(s string) (Chord, error) {
	parts := strings.Split(s, "+")
	chord := make(Chord, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty key in chord %q", s)
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(p)); err != nil {
			return nil, err
		}
		chord = append(chord, k)
	}
	return chord, nil
}

// --- Per-frame state ---

// ActionState is the resolved state of every action for one frame.
type ActionState struct {
	pressed [actionCount]bool
	held    [actionCount]bool

	// Stick is the first gamepad's left stick, zero inside the dead zone.
	Stick Vec2
}

// Poll evaluates every binding against src.
func (b Bindings) Poll(src InputSource) ActionState {
	var s ActionState
	for a := Action(0); a < actionCount; a++ {
		s.pressed[a] = b.Pressed(a, src)
		s.held[a] = b.Held(a, src)
	}

	sx := src.GamepadAxis(0, ebiten.StandardGamepadAxisLeftStickHorizontal)
	sy := src.GamepadAxis(0, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Hypot(sx, sy) >= stickDeadZone {
		s.Stick = Vec2{sx, sy}
	}
	return s
}

// Pressed reports whether a went down this frame.
func (s *ActionState) Pressed(a Action) bool { return a < actionCount && s.pressed[a] }

// Held reports whether a is down this frame.
func (s *ActionState) Held(a Action) bool { return a < actionCount && s.held[a] }

// Press marks a as pressed and held this frame.
func (s *ActionState) Press(a Action) {
	if a < actionCount {
		s.pressed[a] = true
		s.held[a] = true
	}
}

// Hold marks a as held this frame without a press edge.
func (s *ActionState) Hold(a Action) {
	if a < actionCount {
		s.held[a] = true
	}
}

// Movement returns the movement direction for this frame. Each component is
// in [-1, 1]; digital directions and the stick add up.
func (s *ActionState) Movement() Vec2 {
	var dir Vec2
	if s.Held(ActionLeft) {
		dir.X--
	}
	if s.Held(ActionRight) {
		dir.X++
	}
	if s.Held(ActionUp) {
		dir.Y--
	}
	if s.Held(ActionDown) {
		dir.Y++
	}
	dir.X = math.Max(-1, math.Min(1, dir.X+s.Stick.X))
	dir.Y = math.Max(-1, math.Min(1, dir.Y+s.Stick.Y))
	return dir
}

// --- Ebitengine source ---

// ebitenInput reads devices through Ebitengine. Refresh must be called once
// per frame before conditions are evaluated.
type ebitenInput struct {
	gamepads []ebiten.GamepadID
}

func (in *ebitenInput) Refresh() {
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
}

func (in *ebitenInput) gamepad(pad int) (ebiten.GamepadID, bool) {
	if pad < 0 || pad >= len(in.gamepads) {
		return 0, false
	}
	id := in.gamepads[pad]
	return id, ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (in *ebitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (in *ebitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (in *ebitenInput) IsGamepadButtonPressed(pad int, button ebiten.StandardGamepadButton) bool {
	id, ok := in.gamepad(pad)
	return ok && ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (in *ebitenInput) IsGamepadButtonJustPressed(pad int, button ebiten.StandardGamepadButton) bool {
	id, ok := in.gamepad(pad)
	return ok && inpututil.IsStandardGamepadButtonJustPressed(id, button)
}

func (in *ebitenInput) GamepadAxis(pad int, axis ebiten.StandardGamepadAxis) float64 {
	id, ok := in.gamepad(pad)
	if !ok {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}
