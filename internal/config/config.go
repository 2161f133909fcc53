// Package config loads and validates uvconfig.json, the small project
// configuration file the uvc CLI reads for its parser/cache defaults. It also
// records a source root and watch globs, which no uvc command reads.
//
// Validation compiles an embedded JSON Schema once, decodes the config file
// into a generic interface{}, and validates that against the compiled schema
// before unmarshaling into the typed Config struct.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the decoded, validated contents of a uvconfig.json file.
type Config struct {
	// SourceRoot is the project's source directory. It is decoded and
	// validated only: uvc commands use the file path given on the command
	// line as-is and do not resolve it against SourceRoot.
	SourceRoot string `json:"sourceRoot"`
	// WatchPatterns are glob patterns for the project's watched files. They
	// are decoded and validated only: `uvc watch` watches the single file
	// named on its command line and does not consult these patterns.
	WatchPatterns []string `json:"watchPatterns,omitempty"`
	// MaxDepth overrides the parser's tag-nesting recursion limit
	// (parser.WithMaxDepth); zero means "use the parser's default".
	MaxDepth int `json:"maxDepth,omitempty"`
	// Cache toggles whether `uvc ast` consults/writes a CBOR AST cache by
	// default (internal/astcache).
	Cache bool `json:"cache,omitempty"`
}

// Default returns the configuration used when no uvconfig.json is present.
func Default() *Config {
	return &Config{SourceRoot: "."}
}

var compiledSchema *jsonschema.Schema

func schema() (*jsonschema.Schema, error) {
	if compiledSchema != nil {
		return compiledSchema, nil
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	const url = "uvconfig.schema.json"
	if err := compiler.AddResource(url, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("config: adding schema resource: %w", err)
	}
	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("config: compiling schema: %w", err)
	}
	compiledSchema = s
	return s, nil
}

// Load reads and validates the uvconfig.json file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes raw JSON bytes into a Config.
func Parse(data []byte) (*Config, error) {
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("config: invalid JSON: %w", err)
	}

	s, err := schema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(generic); err != nil {
		return nil, fmt.Errorf("config: schema validation failed: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if cfg.SourceRoot == "" {
		cfg.SourceRoot = "."
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load, but returns Default() instead of an error
// when path does not exist — uvc's CLI commands treat a missing uvconfig.json
// as "use the defaults", not a failure.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
