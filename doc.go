// Package gameshell is a minimal 2D game shell for [Ebitengine].
//
// The shell moves a rectangle with the keyboard or a gamepad, draws it with
// two static boxes over an endlessly scrolling background, and shows an FPS
// counter. Window settings are persisted in a JSON file between runs.
//
// # Quick start
//
// [Run] loads the settings, opens the window and saves the settings when the
// player quits:
//
//	err := gameshell.Run(gameshell.Options{
//		SettingsPath: gameshell.SettingsPath(gameshell.SettingsFile),
//		Title:        "My Game",
//	})
//
// For full control, create the game with [NewGame], call [Game.Init] and pass
// it to ebiten.RunGame yourself.
//
// # Window modes
//
// [WindowController] switches between windowed, exclusive fullscreen and
// borderless modes. Alt+Enter toggles fullscreen and F11 toggles
// borderless. Borderless always counts as fullscreen. The windowed
// geometry is captured when the window leaves windowed mode and restored
// when it comes back, so the settings file always holds the last windowed
// position and size.
//
// # Input
//
// Actions are bound to [Condition] values: single keys, gamepad buttons,
// and chords. Key bindings can be overridden from YAML with [LoadKeyMap].
// A [Script] replays inputs frame by frame for automated runs.
//
// # Entities
//
// Shapes live in a [Donburi] world with [Bounds] and [Style] components.
// Window mode changes are published as [ModeChangeEvent] events.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gameshell
