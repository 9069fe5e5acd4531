package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Config mirrors the part of the board configuration file this module reads.
type Config struct {
	Params Params `json:"params"`
}

type Params struct {
	SignificantDigits *int `json:"significant-digits,omitempty"`
}

// Load decodes a JSON configuration. Unknown keys are ignored so a full board
// configuration file can be passed as is.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if d := cfg.Params.SignificantDigits; d != nil && *d < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigits, *d)
	}
	return &cfg, nil
}

// LoadFile is Load for a path on disk.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Apply pushes the loaded values into the process-wide store. Keys absent
// from the file leave the store untouched.
func (c *Config) Apply() error {
	if c.Params.SignificantDigits == nil {
		return nil
	}
	return SetSignificantDigits(*c.Params.SignificantDigits)
}
