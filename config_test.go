package momentum

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig() on a missing file: %v", err)
	}
	if !cfg.InitialCapital.Equal(M(DefaultInitialCapital)) || cfg.MaxStocks != DefaultMaxStocks {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"initial_capital": 500000}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned unexpected error: %v", err)
	}
	if !cfg.InitialCapital.Equal(M(500_000)) {
		t.Errorf("initial_capital = %s, want 500000.00", cfg.InitialCapital.Plain())
	}
	// fields the file omits keep their defaults
	if cfg.MaxStocks != DefaultMaxStocks || cfg.InputDir != DefaultInputDir {
		t.Errorf("omitted fields lost their defaults: %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		body string
	}{
		{"bad json", `{"max_stocks": `},
		{"zero max_stocks", `{"max_stocks": 0}`},
		{"negative capital", `{"initial_capital": -1}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".json")
			if err := os.WriteFile(path, []byte(tc.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() accepted an invalid file")
			}
		})
	}
}
