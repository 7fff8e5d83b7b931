package config

import (
	"fmt"
	"os"

	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// String returns the source name.
func (s ConfigSource) String() string {
	return string(s)
}

// ResolvedValue records the winning value of one key and the values it
// shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// precedence lists sources from highest to lowest.
var precedence = []ConfigSource{SourceFlag, SourceEnv, SourceConfig, SourceDefault}

// ResolveValue picks the value of key from the highest-precedence layer
// that sets it. Source is empty when no layer does.
func ResolveValue(key string, layers map[ConfigSource]map[string]string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, src := range precedence {
		v, ok := layers[src][key]
		if !ok {
			continue
		}
		if rv.Source == "" {
			rv.Value = v
			rv.Source = src
			continue
		}
		rv.Shadowed[src] = v
	}
	return rv
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) WPGEN_CONFIG env, (3) ~/.wp-gen/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	layers := map[ConfigSource]map[string]string{
		SourceDefault: {"config": paths.ConfigFile},
	}
	if opts.FlagValue != "" {
		layers[SourceFlag] = map[string]string{"config": opts.FlagValue}
	}
	if env := os.Getenv(EnvConfig); env != "" {
		layers[SourceEnv] = map[string]string{"config": env}
	}

	return ResolveValue("config", layers), nil
}

// ResolveOptions contains the inputs of Resolve.
type ResolveOptions struct {
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string

	// Flags holds the values of flags the user set explicitly, by key.
	Flags map[string]string
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	// Config holds the effective values.
	Config *Config

	// ConfigPath records which config file was read.
	ConfigPath ResolvedValue

	// Values records the resolution of every key, in Keys order.
	Values []ResolvedValue
}

// Resolve builds the effective configuration with precedence
// flag > env > config file > default for every key.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	path, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	loader := NewLoader()
	fileCfg, err := loader.Load(path.Value)
	if err != nil {
		return nil, err
	}

	layers := map[ConfigSource]map[string]string{
		SourceFlag:    opts.Flags,
		SourceEnv:     loader.Env(),
		SourceConfig:  values(fileCfg),
		SourceDefault: values(DefaultConfig()),
	}

	res := &Resolved{Config: &Config{}, ConfigPath: path}
	for _, key := range Keys {
		rv := ResolveValue(key, layers)
		if rv.Source != "" {
			if err := res.Config.Set(key, rv.Value); err != nil {
				return nil, oerrors.NewValidationError(err.Error(), string(rv.Source), key,
					fmt.Sprintf("Check the %s value or the %s environment variable.", key, EnvVar(key)))
			}
		}
		res.Values = append(res.Values, rv)
	}

	return res, nil
}

func values(cfg *Config) map[string]string {
	m := make(map[string]string)
	for _, key := range Keys {
		if v, ok := cfg.Get(key); ok {
			m[key] = v
		}
	}
	return m
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		if v.Source == "" {
			continue
		}
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for _, src := range precedence {
			shadowed, ok := v.Shadowed[src]
			if !ok {
				continue
			}
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", src,
				"shadowed_value", shadowed,
			)
		}
	}
}
