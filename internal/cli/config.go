package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMethod is the name of the generated method.
const DefaultMethod = "String"

// Config stores CLI options for a single generation run.
type Config struct {
	Pattern      string   `yaml:"package"`
	Types        []string `yaml:"types"`
	Output       string   `yaml:"output"`
	Method       string   `yaml:"method"`
	Pointer      bool     `yaml:"pointer_receiver"`
	Values       bool     `yaml:"values"`
	IgnoreFields []string `yaml:"ignore_fields"`

	Preview     bool   `yaml:"-"`
	Debug       bool   `yaml:"-"`
	ConfigFile  string `yaml:"-"`
	ShowVersion bool   `yaml:"-"`
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.Output
}

// MethodName returns the name of the generated method.
func (c *Config) MethodName() string {
	if c.Method == "" {
		return DefaultMethod
	}
	return c.Method
}

// PointerReceiver reports whether generated methods use pointer receivers.
func (c *Config) PointerReceiver() bool {
	return c.Pointer
}

// RenderValues reports whether field values are rendered.
func (c *Config) RenderValues() bool {
	return c.Values
}

// LoadFile reads a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
