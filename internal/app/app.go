// Package app bootstraps the simulator: it builds the menu tree, wires the
// frame buffer and renderer, and runs the Bubble Tea program.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/backend"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging/events"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menudef"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/render"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	// MenuPath names a YAML menu definition. Empty runs the built-in demo
	// tree.
	MenuPath string
	Watch    bool
	Animate  bool
	Verbose  bool
}

// watchQuiet coalesces editor save bursts into one reload.
const watchQuiet = 250 * time.Millisecond

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	actions := Actions()

	var (
		root   *menu.Menu
		reload ui.ReloadFunc
		err    error
	)
	if cfg.MenuPath != "" {
		reload = func() (*menu.Menu, error) {
			return menudef.Load(cfg.MenuPath, actions)
		}
		root, err = reload()
		if err != nil {
			return fmt.Errorf("load menu %s: %w", cfg.MenuPath, err)
		}
		events.App.MenuLoaded(cfg.MenuPath, len(root.Items))
	} else {
		root = DemoMenu()
		events.App.MenuLoaded("builtin", len(root.Items))
	}
	root.PositionTop()

	frame := display.NewFrame(display.DOGM128)
	renderer := render.New(frame)
	renderer.SetAnimated(cfg.Animate)

	var watcher *backend.Watcher
	if cfg.MenuPath != "" && cfg.Watch {
		watcher, err = backend.NewWatcher(cfg.MenuPath, watchQuiet)
		if err != nil {
			return fmt.Errorf("watch %s: %w", cfg.MenuPath, err)
		}
		defer watcher.Stop()
	}

	model := ui.NewModel(root, frame, renderer, watcher, reload, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
