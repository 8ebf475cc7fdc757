// Package config loads parser settings from YAML.
//
//	parser:
//	  max_depth: 1024
//	  trace: true
//
// An omitted max_depth keeps parser.DefaultMaxDepth. Zero disables the
// nesting bound.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/bfast/parser"
)

// Config is the root of a configuration file.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
}

// ParserConfig configures the parser.
type ParserConfig struct {
	MaxDepth *int `yaml:"max_depth,omitempty"`
	Trace    bool `yaml:"trace,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{}
}

// Load reads a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a configuration document. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Parser.MaxDepth != nil && *c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d",
			*c.Parser.MaxDepth)
	}
	return nil
}

// Builder returns a parser builder with the configured settings.
func (c Config) Builder() parser.Builder {
	b := parser.NewBuilder()

	if c.Parser.MaxDepth != nil {
		b = b.WithMaxDepth(*c.Parser.MaxDepth)
	}

	if c.Parser.Trace {
		b = b.WithTracer(parser.SlogTracer{})
	}

	return b
}
