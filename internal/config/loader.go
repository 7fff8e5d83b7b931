package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode"

	"github.com/spf13/viper"
)

// Environment variable prefix for wp-gen configuration.
const envPrefix = "WPGEN"

// EnvVar returns the environment variable bound to key,
// e.g. WPGEN_PLUGIN_VERSION for pluginVersion.
func EnvVar(key string) string {
	var sb strings.Builder
	sb.WriteString(envPrefix)
	sb.WriteByte('_')
	for i, r := range key {
		switch {
		case r == '.':
			sb.WriteByte('_')
		case unicode.IsUpper(r) && i > 0:
			sb.WriteByte('_')
			sb.WriteRune(r)
		default:
			sb.WriteRune(unicode.ToUpper(r))
		}
	}
	return sb.String()
}

// Loader reads the config file and the environment into separate layers
// so the resolver can tell where each value came from.
type Loader struct {
	file *viper.Viper
	env  *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range Keys {
		_ = env.BindEnv(key, EnvVar(key))
	}

	return &Loader{file: viper.New(), env: env}
}

// Load reads configFile and returns its values. A missing file yields an
// empty Config. Environment variables are not applied.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.file.SetConfigFile(expandedPath)
	l.file.SetConfigType("yaml")

	if err := l.file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	var cfg Config
	if err := l.file.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Env returns the values set through WPGEN_* environment variables.
func (l *Loader) Env() map[string]string {
	values := make(map[string]string)
	for _, key := range Keys {
		if l.env.IsSet(key) {
			values[key] = l.env.GetString(key)
		}
	}
	return values
}
