// Package config holds the tunables shared by every command. Values come
// from defaults, then an optional TOML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/pkg/output"
)

var (
	ErrInvalidCount    = errors.New("count must be at least 1")
	ErrInvalidWorkers  = errors.New("workers must be at least 1")
	ErrInvalidInterval = errors.New("report interval must not be negative")
	ErrInvalidTimeout  = errors.New("timeout must not be negative")
)

// Config is the run configuration.
type Config struct {
	Workers int    `toml:"workers"`
	Count   int    `toml:"count"`
	Format  string `toml:"format"`
	Output  string `toml:"output"`

	// ReportInterval is the progress interval in seconds, 0 disables it.
	ReportInterval int `toml:"report_interval"`
	// Timeout bounds a whole batch in seconds, 0 waits forever.
	Timeout int `toml:"timeout"`

	Verbosity uint32 `toml:"verbosity"`
	JSONLog   bool   `toml:"json_log"`
	Color     bool   `toml:"color"`
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Workers:        runtime.NumCPU(),
		Count:          1,
		Format:         string(output.FormatJSON),
		ReportInterval: 5,
		Verbosity:      4,
		Color:          true,
	}
}

// LoadFile decodes a TOML file on top of c. Unknown keys are logged and
// otherwise ignored.
func (c *Config) LoadFile(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		log.Warn("unknown config keys ignored", "file", path, "keys", strings.Join(keys, ","))
	}
	log.Debug("loaded config", "file", path)
	return nil
}

// Validate checks value ranges and the output format.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return ErrInvalidCount
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.ReportInterval < 0 {
		return ErrInvalidInterval
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
