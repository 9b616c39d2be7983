package main

import (
	"fmt"
	"os"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/app"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/config"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records the invocation, the menu source, and the
// simulated panel geometry so a trace log is self-describing.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	source := cfg.App.MenuPath
	if source == "" {
		source = "built-in demo"
	}

	geo := display.DOGM128
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"menu": map[string]interface{}{
			"source":  source,
			"watch":   cfg.App.Watch,
			"animate": cfg.App.Animate,
		},
		"panel": map[string]interface{}{
			"cols":      geo.Cols,
			"rows":      geo.Rows,
			"rowHeight": geo.RowHeight,
			"charWidth": geo.CharWidth,
		},
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails sizes up the standard descriptors. The TUI needs a real
// terminal at least wide enough for the panel, so the first descriptor that
// reports a size wins.
func collectTTYDetails() ttyDetails {
	names := []string{"stdin", "stdout", "stderr"}
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	results := make([]ttyProbeResult, 0, len(files))
	var detected *ttyDetected
	for i, f := range files {
		entry := ttyProbeResult{Name: names[i]}
		fd := int(f.Fd())
		switch {
		case fd < 0 || !term.IsTerminal(fd):
		default:
			entry.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				entry.Error = err.Error()
				break
			}
			entry.Width = width
			entry.Height = height
			if detected == nil {
				detected = &ttyDetected{Source: entry.Name, Width: width, Height: height}
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
