package momentum

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults used when no config file or override is given.
const (
	DefaultInitialCapital = 2_000_000
	DefaultMaxStocks      = 20
	DefaultInputDir       = "input"
	DefaultOutputDir      = "output"
)

// Config holds the two scalars the engine needs plus the directories the
// surrounding commands read from and write to.
type Config struct {
	InitialCapital Money  `json:"initial_capital"`
	MaxStocks      int    `json:"max_stocks"`
	InputDir       string `json:"input_dir"`
	OutputDir      string `json:"output_dir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		InitialCapital: M(DefaultInitialCapital),
		MaxStocks:      DefaultMaxStocks,
		InputDir:       DefaultInputDir,
		OutputDir:      DefaultOutputDir,
	}
}

// LoadConfig reads a JSON config file, filling any field the file omits
// with its default. A missing file is not an error: the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if cfg.MaxStocks <= 0 {
		return cfg, fmt.Errorf("config %q: max_stocks must be positive, got %d", path, cfg.MaxStocks)
	}
	if !cfg.InitialCapital.IsPositive() {
		return cfg, fmt.Errorf("config %q: initial_capital must be positive", path)
	}
	return cfg, nil
}

// Replay returns the engine parameters of this configuration.
func (c Config) Replay() ReplayConfig {
	return ReplayConfig{InitialCapital: c.InitialCapital, MaxStocks: c.MaxStocks}
}
