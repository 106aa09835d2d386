package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FixStd names a supported FIX protocol version. The design allows for
// additional versions; only FIX44 is implemented here.
type FixStd string

// FIX44 is the only FixStd this module implements.
const FIX44 FixStd = "FIX44"

// DefaultSeparator is SOH (0x01), the canonical FIX field separator.
const DefaultSeparator byte = 0x01

// DefaultDictionaryPathTemplate mirrors the original implementation's
// default dictionary location:
// "/usr/local/etc/fixparser/<std>.xml".
const DefaultDictionaryPathTemplate = "/usr/local/etc/fixparser/%s.xml"

// Config holds the options Validate recognises.
type Config struct {
	// Separator is the wire field separator. Defaults to SOH (0x01).
	Separator byte `yaml:"separator"`
	// FixStd selects the dictionary dialect. Defaults to FIX44.
	FixStd FixStd `yaml:"fix_std"`
	// DictionaryPath is where dictionary.LoadFile looks for the XML
	// dictionary, if a caller uses it. Left empty, Default() fills it in
	// from FixStd using DefaultDictionaryPathTemplate.
	DictionaryPath string `yaml:"dictionary_path"`
}

// Default returns the library defaults: SOH separator, FIX44,
// "/usr/local/etc/fixparser/FIX44.xml".
func Default() Config {
	return Config{
		Separator:      DefaultSeparator,
		FixStd:         FIX44,
		DictionaryPath: fmt.Sprintf(DefaultDictionaryPathTemplate, FIX44),
	}
}

// Normalize fills in zero-valued fields with their defaults. It never
// mutates the caller's directory or process working directory — the
// original C++ implementation's loader called fs::current_path(path)
// before opening the dictionary file, a footgun this port does not
// repeat.
func (c Config) Normalize() Config {
	if c.Separator == 0 {
		c.Separator = DefaultSeparator
	}
	if c.FixStd == "" {
		c.FixStd = FIX44
	}
	if c.DictionaryPath == "" {
		c.DictionaryPath = fmt.Sprintf(DefaultDictionaryPathTemplate, c.FixStd)
	}
	return c
}

// Load reads a YAML config file at path and merges it over Default(),
// so a partial override file only needs to name the fields it changes.
// This is a convenience for callers who keep validator settings
// alongside the rest of their service's YAML config; Validate itself
// never calls Load or touches the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg.Normalize(), nil
}
