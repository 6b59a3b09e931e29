// Package lox's config.go handles the optional .gloxrc.toml project file.
package lox

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings glox reads from .gloxrc.toml. Every field has a
// usable default, so a missing file is not an error.
type Config struct {
	REPL        REPLConfig        `toml:"repl"`
	Interpreter InterpreterConfig `toml:"interpreter"`
}

// REPLConfig configures the interactive prompt.
type REPLConfig struct {
	Prompt                   string `toml:"prompt"`
	EchoExpressionStatements bool   `toml:"echo_expression_statements"`
}

// InterpreterConfig configures the Interpreter.
type InterpreterConfig struct {
	MaxCallDepth int `toml:"max_call_depth"`
}

// DefaultConfig returns the configuration glox runs with when no
// .gloxrc.toml is found.
func DefaultConfig() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:                   "> ",
			EchoExpressionStatements: true,
		},
		Interpreter: InterpreterConfig{
			MaxCallDepth: defaultMaxCallDepth,
		},
	}
}

// LoadConfig parses a .gloxrc.toml file, filling in defaults for any field
// the file does not set.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig walks up from startDir looking for .gloxrc.toml, loads the
// first one it finds, and returns defaults if none exists anywhere above
// startDir. A malformed config file that is found is still an error.
func FindConfig(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ".gloxrc.toml")
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultConfig(), nil
		}
		dir = parent
	}
}
