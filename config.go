package lispy

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the optional `.lispyrc.yaml` settings the driver reads
// before starting a REPL session. Every field has a default (see
// defaultConfig) so a missing or partial file is never an error.
type Config struct {
	// HistoryFile is where REPL line history is persisted between runs.
	HistoryFile string `yaml:"history_file"`
	// Prelude lists files loaded (via LoadFile) before the REPL starts.
	Prelude []string `yaml:"prelude"`
	// NoColor disables lipgloss styling of the prompt and results.
	NoColor bool `yaml:"no_color"`
}

func defaultConfig() Config {
	return Config{HistoryFile: ".lispy-history"}
}

// LoadConfig reads path and merges it over the defaults. A missing
// file is not an error: it simply yields the defaults, mirroring how
// an absent `.lispyrc.yaml` should never block the REPL from starting.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
