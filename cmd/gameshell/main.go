// gameshell is a minimal 2D game shell: a movable rectangle, a scrolling
// background and an FPS counter, with persisted window settings.
//
// Controls:
//
//	Arrow keys / d-pad / left stick - move
//	Alt+Enter                       - toggle fullscreen
//	F11                             - toggle borderless
//	F12                             - screenshot
//	Escape / gamepad Back           - quit
//
// Flags:
//
//	--settings <path>     - Settings file (default: Settings.json next to the executable)
//	--bindings <path>     - Optional YAML key binding overrides
//	--script <path>       - Replay a JSON input script
//	--screenshots <dir>   - Screenshot directory (default: screenshots)
//	--title <text>        - Window title
//	--debug               - Log frame stats every second
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/gameshell"
)

var (
	flagSettings    string
	flagBindings    string
	flagScript      string
	flagScreenshots string
	flagTitle       string
	flagDebug       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "gameshell",
	Short:        "Minimal 2D game shell",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagSettings, "settings", "", "Settings file (default: Settings.json next to the executable)")
	rootCmd.Flags().StringVar(&flagBindings, "bindings", "", "YAML file with key binding overrides")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "JSON input script to replay")
	rootCmd.Flags().StringVar(&flagScreenshots, "screenshots", "screenshots", "Directory for screenshots")
	rootCmd.Flags().StringVar(&flagTitle, "title", "Game Shell", "Window title")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log frame stats every second")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gameshell",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	settingsPath := flagSettings
	if settingsPath == "" {
		settingsPath = gameshell.SettingsPath(gameshell.SettingsFile)
	}

	bindings := gameshell.DefaultBindings()
	if flagBindings != "" {
		keys, err := gameshell.LoadKeyMap(flagBindings)
		if err != nil {
			return err
		}
		bindings = gameshell.NewBindings(keys, gameshell.DefaultPadMap())
	}

	var script *gameshell.Script
	if flagScript != "" {
		s, err := gameshell.LoadScript(flagScript)
		if err != nil {
			return err
		}
		script = s
	}

	logger.Info("starting", "settings", settingsPath)
	return gameshell.Run(gameshell.Options{
		SettingsPath:  settingsPath,
		Title:         flagTitle,
		Bindings:      bindings,
		Script:        script,
		ScreenshotDir: flagScreenshots,
		Debug:         flagDebug,
		Logger:        logger,
	})
}
