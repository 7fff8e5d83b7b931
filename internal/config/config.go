// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"strconv"
)

// Configuration keys, as written in the config file.
const (
	KeyOutput        = "output"
	KeyAuthor        = "author"
	KeyPluginVersion = "pluginVersion"
	KeyLogTimestamps = "log.timestamps"
)

// Keys lists every configuration key in resolution order.
var Keys = []string{KeyOutput, KeyAuthor, KeyPluginVersion, KeyLogTimestamps}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: off. Override with --timestamps.
	Timestamps *bool `yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the wp-gen configuration, loaded from
// ~/.wp-gen/config.yaml.
type Config struct {
	// Output is the directory modules are generated into.
	// Env: WPGEN_OUTPUT, Default: "output"
	Output string `yaml:"output" mapstructure:"output"`

	// Author is written to the plugin header when set.
	// Env: WPGEN_AUTHOR
	Author string `yaml:"author,omitempty" mapstructure:"author"`

	// PluginVersion is the version written to the plugin header.
	// Env: WPGEN_PLUGIN_VERSION, Default: "1.0.0"
	PluginVersion string `yaml:"pluginVersion" mapstructure:"pluginVersion"`

	// Log contains logging-related settings.
	Log LogConfig `yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `wp-gen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Output:        "output",
		PluginVersion: "1.0.0",
	}
}

// Get returns the value of key as a string, and whether it is set.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case KeyOutput:
		return c.Output, c.Output != ""
	case KeyAuthor:
		return c.Author, c.Author != ""
	case KeyPluginVersion:
		return c.PluginVersion, c.PluginVersion != ""
	case KeyLogTimestamps:
		if c.Log.Timestamps == nil {
			return "", false
		}
		return strconv.FormatBool(*c.Log.Timestamps), true
	default:
		return "", false
	}
}

// Set assigns the string form of a value to key.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyOutput:
		c.Output = value
	case KeyAuthor:
		c.Author = value
	case KeyPluginVersion:
		c.PluginVersion = value
	case KeyLogTimestamps:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", key, value)
		}
		c.Log.Timestamps = &b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
