// Package config resolves runtime configuration from CLI flags,
// environment variables, and an optional env file, in that order of
// precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/app"
)

// Config captures runtime configuration for the simulator.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuPath = "MENUSIM_MENU"
	envWatch    = "MENUSIM_WATCH"
	envAnimate  = "MENUSIM_ANIMATE"
	envVerbose  = "MENUSIM_VERBOSE"
	envTrace    = "MENUSIM_TRACE"
	envLogFile  = "MENUSIM_LOG_FILE"
	envEnvFile  = "MENUSIM_ENV_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	mergeEnvFile(env)

	fs := flag.NewFlagSet("lcdmenu-sim", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuPath := fs.String("menu", envOrDefault(env, envMenuPath, ""), "path to a YAML menu definition (empty uses the built-in demo)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the menu definition when the file changes")
	animate := fs.Bool("animate", envOrBool(env, envAnimate, true), "slide between menus on enter/back")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show item activation feedback in the footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			MenuPath: *menuPath,
			Watch:    *watch,
			Animate:  *animate,
			Verbose:  *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menu":    *menuPath,
			"watch":   strconv.FormatBool(*watch),
			"animate": strconv.FormatBool(*animate),
			"verbose": strconv.FormatBool(*verbose),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// mergeEnvFile fills missing MENUSIM_* values from an env file. The file is
// named by MENUSIM_ENV_FILE, falling back to .env when present; real
// environment variables always win.
func mergeEnvFile(env map[string]string) {
	path := env[envEnvFile]
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		path = ".env"
	}
	values, err := godotenv.Read(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to read env file %s: %v\n", path, err)
		return
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.MenuPath != "" {
		if _, err := os.Stat(cfg.App.MenuPath); err != nil {
			return fmt.Errorf("menu definition: %w", err)
		}
	}
	return nil
}
