package gameshell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.IsFixedTimeStep || s.IsVSync || s.IsFullscreen || s.IsBorderless {
		t.Errorf("flags = %+v, want fixed step only", s)
	}
	if got, want := s.Geometry(), (WindowGeometry{320, 320, 700, 700}); got != want {
		t.Errorf("Geometry() = %v, want %v", got, want)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)

	for _, fixed := range []bool{false, true} {
		for _, vsync := range []bool{false, true} {
			for _, mode := range []struct{ full, borderless bool }{{false, false}, {true, false}, {true, true}} {
				want := Settings{
					IsFixedTimeStep: fixed,
					IsVSync:         vsync,
					IsFullscreen:    mode.full,
					IsBorderless:    mode.borderless,
					X:               -40,
					Y:               12,
					Width:           1024,
					Height:          768,
				}
				if err := SaveSettings(path, want); err != nil {
					t.Fatalf("SaveSettings() failed: %v", err)
				}
				got, err := LoadSettings(path)
				if err != nil {
					t.Fatalf("LoadSettings() failed: %v", err)
				}
				if got != want {
					t.Errorf("round trip = %+v, want %+v", got, want)
				}
			}
		}
	}
}

func TestSaveSettingsFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := SaveSettings(path, DefaultSettings()); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("file is not JSON: %v", err)
	}
	keys := []string{"isFixedTimeStep", "isVSync", "isFullscreen", "isBorderless", "x", "y", "width", "height"}
	if len(raw) != len(keys) {
		t.Errorf("file has %d keys, want %d", len(raw), len(keys))
	}
	for _, k := range keys {
		if _, ok := raw[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	if !strings.Contains(string(data), "\n  \"isFixedTimeStep\": true") {
		t.Errorf("file is not indented:\n%s", data)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, want defaults", s)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("LoadSettings wrote a file")
	}
}

func TestEnsureSettingsWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	s, err := EnsureSettings(path)
	if err != nil {
		t.Fatalf("EnsureSettings() failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("EnsureSettings() = %+v, want defaults", s)
	}

	onDisk, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if onDisk != DefaultSettings() {
		t.Errorf("file holds %+v, want defaults", onDisk)
	}
}

func TestEnsureSettingsKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	want := DefaultSettings()
	want.X, want.Y = 10, 20
	if err := SaveSettings(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := EnsureSettings(path)
	if err != nil {
		t.Fatalf("EnsureSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("EnsureSettings() = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte(`{"isVSync": true, "x": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	want := DefaultSettings()
	want.IsVSync = true
	want.X = 5
	if s != want {
		t.Errorf("LoadSettings() = %+v, want %+v", s, want)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte(`not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := EnsureSettings(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSettingsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			"borderless implies fullscreen",
			Settings{IsBorderless: true, Width: 800, Height: 600},
			Settings{IsBorderless: true, IsFullscreen: true, Width: 800, Height: 600},
		},
		{
			"fullscreen alone is kept",
			Settings{IsFullscreen: true, Width: 800, Height: 600},
			Settings{IsFullscreen: true, Width: 800, Height: 600},
		},
		{
			"zero size uses default",
			Settings{X: 3, Y: 4},
			Settings{X: 3, Y: 4, Width: defaultWindowWidth, Height: defaultWindowHeight},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.Normalize()
			if s != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", s, tt.want)
			}
		})
	}
}

func TestSettingsPath(t *testing.T) {
	p := SettingsPath(SettingsFile)
	if filepath.Base(p) != SettingsFile {
		t.Errorf("SettingsPath() = %q, want base %q", p, SettingsFile)
	}
}
