// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
)

// EnvConfigFile names the environment variable holding the config file path.
const EnvConfigFile = "X509_WORKBENCH_CONFIG"

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// Format is a configuration file encoding.
type Format int

const (
	// FormatJSON represents JSON configuration format (.json)
	FormatJSON Format = iota
	// FormatYAML represents YAML configuration format (.yaml, .yml)
	FormatYAML
)

// Defaults pre-fills generation forms and report output.
type Defaults struct {
	KeySize         int    `json:"keySize" yaml:"keySize"`
	SignatureDigest string `json:"signatureDigest" yaml:"signatureDigest"`
	ValidityYears   int    `json:"validityYears" yaml:"validityYears"`
	// OutputDir is where the CLI writes generated files. Empty means the
	// working directory.
	OutputDir    string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	ReportFormat string `json:"reportFormat" yaml:"reportFormat"`
}

// Config is the workbench configuration.
type Config struct {
	Defaults Defaults `json:"defaults" yaml:"defaults"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			KeySize:         2048,
			SignatureDigest: string(artifact.SHA256),
			ValidityYears:   1,
			ReportFormat:    "markdown",
		},
	}
}

// DetectFormat determines the configuration format from the file extension.
// Matching is case-insensitive; anything that is not YAML is read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the configuration from path, falling back to the
// X509_WORKBENCH_CONFIG environment variable and then to [Default].
//
// Parameters:
//   - path: Configuration file path (optional, can be empty)
//
// Returns:
//   - *Config: Defaults overridden by the file, if any
//   - error: Read, parse or validation failure
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_WORKBENCH_CONFIG is checked if path is empty
//  3. Config file values override defaults
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, DetectFormat(path))
}

// Parse decodes data in the given format on top of the defaults.
//
// The raw document is checked against the embedded schema before it is
// merged, so unknown keys and out-of-range values are reported with their
// field path.
func Parse(data []byte, format Format) (*Config, error) {
	var raw any
	if err := unmarshal(data, &raw, format); err != nil {
		return nil, err
	}
	if raw == nil {
		return Default(), nil
	}
	if err := validateDocument(gojsonschema.NewGoLoader(raw)); err != nil {
		return nil, err
	}

	config := Default()
	if err := unmarshal(data, config, format); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks c against the schema and resolves the digest name.
func (c *Config) Validate() error {
	if err := validateDocument(gojsonschema.NewGoLoader(c)); err != nil {
		return err
	}
	if _, err := artifact.ParseDigest(c.Defaults.SignatureDigest); err != nil {
		return fmt.Errorf("%w: defaults.signatureDigest: %v", ErrInvalidConfig, err)
	}
	return nil
}

func unmarshal(data []byte, v any, format Format) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

func validateDocument(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		field := strings.TrimPrefix(e.Field(), "(root).")
		problems = append(problems, field+": "+e.Description())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
