package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/dptrace/problem"
)

// Output formats accepted by solve.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

var formats = []string{formatText, formatYAML, formatJSON}

// errBadFormat indicates an output format outside formats.
var errBadFormat = errors.New("unsupported output format")

// Config is the on-disk configuration, read from TOML:
//
//	verbose = false
//	format = "text"
//
//	[engine]
//	max_cities = 12
//	no_improvement_steps = true
//	early_exit = false
//
// Command-line flags take precedence over every field.
type Config struct {
	Verbose bool   `toml:"verbose"`
	Format  string `toml:"format"`
	Engine  Engine `toml:"engine"`
}

// Engine holds the engine tuning knobs.
type Engine struct {
	MaxCities          int  `toml:"max_cities"`
	NoImprovementSteps bool `toml:"no_improvement_steps"`
	EarlyExit          bool `toml:"early_exit"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{Format: formatText}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/dptrace/config.toml (or the
// platform equivalent), or "" if no config directory is known.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dptrace", "config.toml")
}

// loadConfig reads path over the defaults. A missing file is an error only
// when the caller named it explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	return validateFormat(c.Format)
}

func validateFormat(f string) error {
	if !slices.Contains(formats, f) {
		return fmt.Errorf("%w: %q (want one of %v)", errBadFormat, f, formats)
	}
	return nil
}

// settings converts the engine section to problem.Settings.
func (c Config) settings() problem.Settings {
	return problem.Settings{
		MaxCities:          c.Engine.MaxCities,
		NoImprovementSteps: c.Engine.NoImprovementSteps,
		EarlyExit:          c.Engine.EarlyExit,
	}
}
