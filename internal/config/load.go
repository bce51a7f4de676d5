// speckit - Spec-Kit Configuration Manager
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/speckit

// Package config manages the on-disk spec-kit configuration documents and
// their merged runtime view, built with koanf. Values are resolved with
// priority: environment variables (SPECKIT_*) > project config
// (.opencode/spec-kit/config.json) > global config
// (~/.config/opencode/spec-kit/config.json) > built-in defaults.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Source tracks which layer a configuration value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceGlobal  Source = "global"
	SourceProject Source = "project"
	SourceEnv     Source = "env"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SPECKIT_"

// LoadOptions selects the directories the merged view is built from.
type LoadOptions struct {
	// HomeDir is the user home directory containing the global files.
	HomeDir string
	// ProjectDir is the project root containing .opencode/spec-kit.
	ProjectDir string
}

// Merged is the layered configuration view backing `config show` and
// `config get`.
type Merged struct {
	k       *koanf.Koanf
	sources map[string]Source

	// GlobalPath and ProjectPath are the file paths consulted; the
	// corresponding Loaded flags report whether each file was present.
	GlobalPath    string
	ProjectPath   string
	GlobalLoaded  bool
	ProjectLoaded bool
}

// Load builds the merged configuration view. Missing files are skipped;
// a present but malformed file is an error.
func Load(opts LoadOptions) (*Merged, error) {
	m := &Merged{
		k:           koanf.New("."),
		sources:     make(map[string]Source),
		GlobalPath:  GlobalConfigPath(opts.HomeDir),
		ProjectPath: ProjectConfigPath(opts.ProjectDir),
	}

	if err := m.mergeLayer(confmap.Provider(GetDefaults(), "."), nil, SourceDefault); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if FileExists(m.GlobalPath) {
		if err := m.mergeLayer(file.Provider(m.GlobalPath), json.Parser(), SourceGlobal); err != nil {
			return nil, fmt.Errorf("loading global config %s: %w", m.GlobalPath, err)
		}
		m.GlobalLoaded = true
	}

	if FileExists(m.ProjectPath) {
		if err := m.mergeLayer(file.Provider(m.ProjectPath), json.Parser(), SourceProject); err != nil {
			return nil, fmt.Errorf("loading project config %s: %w", m.ProjectPath, err)
		}
		m.ProjectLoaded = true
	}

	if err := m.mergeLayer(env.Provider(EnvPrefix, ".", envTransform), nil, SourceEnv); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	return m, nil
}

// mergeLayer loads a provider into a scratch koanf, records the layer's
// keys for source attribution, and merges it over the accumulated view.
func (m *Merged) mergeLayer(p koanf.Provider, parser koanf.Parser, src Source) error {
	layer := koanf.New(".")
	if err := layer.Load(p, parser); err != nil {
		return err
	}
	for _, key := range layer.Keys() {
		m.sources[key] = src
	}
	return m.k.Load(confmap.Provider(layer.All(), "."), nil)
}

// Get returns the effective value for a dotted key and whether it exists.
func (m *Merged) Get(key string) (interface{}, bool) {
	if !m.k.Exists(key) {
		return nil, false
	}
	return m.k.Get(key), true
}

// Source returns the layer that supplied the effective value for key.
func (m *Merged) Source(key string) Source {
	if src, ok := m.sources[key]; ok {
		return src
	}
	return SourceDefault
}

// Keys returns every effective key in sorted order.
func (m *Merged) Keys() []string {
	keys := m.k.Keys()
	sort.Strings(keys)
	return keys
}

// All returns the effective configuration as a flat dotted-key map.
func (m *Merged) All() map[string]interface{} {
	return m.k.All()
}

// envTransform converts environment variable names to config keys.
// Example: SPECKIT_AUTO_SAVE -> auto_save
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
