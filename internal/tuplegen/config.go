package tuplegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxArity is the largest tuple generated when
	// no other limit is configured.
	DefaultMaxArity = 12

	// DefaultModule is the import path of the module
	// the generated packages live in.
	DefaultModule = "github.com/rogpeppe/tuplelist"

	maxArityLimit = 64
)

// Config holds the generator settings. It can be loaded from
// a YAML file with LoadConfig, for example:
//
//	max_arity: 16
//	module: example.com/mytuples
//	root: .
type Config struct {
	// MaxArity holds the largest arity to generate code for.
	MaxArity int `yaml:"max_arity"`

	// Module holds the import path of the module root.
	// The generated tuple code imports Module + "/hlist".
	Module string `yaml:"module"`

	// Root holds the directory of the module root. Generated
	// files are written relative to it.
	Root string `yaml:"root"`
}

// DefaultConfig returns the configuration used when
// no configuration file is provided.
func DefaultConfig() Config {
	return Config{
		MaxArity: DefaultMaxArity,
		Module:   DefaultModule,
		Root:     ".",
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the
// file keep their default values; unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to generate code.
func (cfg Config) Validate() error {
	if cfg.MaxArity < 1 || cfg.MaxArity > maxArityLimit {
		return fmt.Errorf("max arity %d out of range [1, %d]", cfg.MaxArity, maxArityLimit)
	}
	if cfg.Module == "" {
		return errors.New("no module path configured")
	}
	return nil
}
