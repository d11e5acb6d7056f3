package engine

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/wildfunctions/solve24/pkg/card"
	"github.com/wildfunctions/solve24/pkg/expr"
	"github.com/wildfunctions/solve24/pkg/pool"
)

// ErrInvalidConfig wraps every validation failure from Config.Validate.
var ErrInvalidConfig = errors.New("engine: invalid config")

// Output formats understood by Write.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatPretty   = "pretty" // markdown rendered for the terminal
)

var formats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatPretty}

// Config holds all parameters for a search.
type Config struct {
	Target   float64 `yaml:"target" json:"target"`
	Pool     string  `yaml:"pool" json:"pool"`
	Workers  int     `yaml:"workers" json:"workers"` // <= 1 searches sequentially
	Limit    int     `yaml:"limit" json:"limit"`     // 0 = all solutions
	Format   string  `yaml:"format" json:"format"`
	Notation string  `yaml:"notation" json:"notation"`
	Explain  bool    `yaml:"explain" json:"explain"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Target:   card.DefaultTarget,
		Pool:     pool.Default,
		Workers:  runtime.NumCPU(),
		Limit:    0,
		Format:   FormatText,
		Notation: string(expr.Infix),
		Explain:  true,
	}
}

// Validate checks every field that New would otherwise reject later.
func (c Config) Validate() error {
	if math.IsNaN(c.Target) || math.IsInf(c.Target, 0) {
		return fmt.Errorf("%w: target must be finite, got %v", ErrInvalidConfig, c.Target)
	}
	if _, err := pool.Get(c.Pool); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 0, got %d", ErrInvalidConfig, c.Limit)
	}
	if _, ok := expr.ParseNotation(c.Notation); !ok {
		return fmt.Errorf("%w: unknown notation %q (infix, prefix, postfix)", ErrInvalidConfig, c.Notation)
	}
	if !validFormat(c.Format) {
		return fmt.Errorf("%w: unknown format %q (available: %v)", ErrInvalidConfig, c.Format, formats)
	}
	return nil
}

func validFormat(f string) bool {
	if f == "" {
		return true
	}
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}
