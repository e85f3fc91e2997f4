package gameshell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SettingsFile is the default settings file name.
const SettingsFile = "Settings.json"

// Settings is the persisted shell configuration. X, Y, Width and Height hold
// the last windowed geometry; they are not updated while fullscreen.
type Settings struct {
	IsFixedTimeStep bool `json:"isFixedTimeStep"`
	IsVSync         bool `json:"isVSync"`
	IsFullscreen    bool `json:"isFullscreen"`
	IsBorderless    bool `json:"isBorderless"`
	X               int  `json:"x"`
	Y               int  `json:"y"`
	Width           int  `json:"width"`
	Height          int  `json:"height"`
}

const (
	defaultWindowX      = 320
	defaultWindowY      = 320
	defaultWindowWidth  = 700
	defaultWindowHeight = 700
)

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		IsFixedTimeStep: true,
		IsVSync:         false,
		X:               defaultWindowX,
		Y:               defaultWindowY,
		Width:           defaultWindowWidth,
		Height:          defaultWindowHeight,
	}
}

// Normalize restores the invariants of a loaded record: borderless implies
// fullscreen, and the windowed size is positive.
func (s *Settings) Normalize() {
	s.IsFullscreen = s.IsFullscreen || s.IsBorderless
	if s.Width <= 0 || s.Height <= 0 {
		s.Width = defaultWindowWidth
		s.Height = defaultWindowHeight
	}
}

// Geometry returns the saved windowed geometry.
func (s *Settings) Geometry() WindowGeometry {
	return WindowGeometry{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// SetGeometry stores g as the windowed geometry.
func (s *Settings) SetGeometry(g WindowGeometry) {
	s.X, s.Y, s.Width, s.Height = g.X, g.Y, g.Width, g.Height
}

// SettingsPath returns name resolved next to the running executable. It falls
// back to name itself when the executable path is unknown.
func SettingsPath(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// LoadSettings reads settings from path. A missing file yields the defaults
// and no error; nothing is written.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return decodeSettings(path, data)
}

// EnsureSettings reads settings from path, writing the defaults there first
// if the file does not exist.
func EnsureSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := DefaultSettings()
		if err := SaveSettings(path, s); err != nil {
			return Settings{}, err
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return decodeSettings(path, data)
}

// SaveSettings writes s to path as indented JSON.
func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// decodeSettings starts from the defaults so keys absent from the file keep
// their default values.
func decodeSettings(path string, data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
