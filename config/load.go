package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/haulroute/finance"
)

// Load reads a scenario file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a scenario document. Policy and analysis fields absent from
// data keep their defaults; unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{
		Policy:   finance.DefaultPolicy(),
		Analysis: DefaultAnalysis(),
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return cfg, nil
}
