// Package config loads nextrip settings from config.yaml, NEXTRIP_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/nextrip/internal/provider"
)

// Config keys as they appear in config.yaml.
const (
	KeyBaseURL  = "base_url"
	KeyTimeout  = "timeout"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "NEXTRIP"

	defaultLogLevel = "warn"
)

// Config holds resolved settings.
type Config struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	// Timeout bounds each provider request; zero means no timeout.
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0s"`
	LogLevel string        `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile  string        `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		BaseURL:  provider.DefaultBaseURL,
		LogLevel: defaultLogLevel,
	}
}

// FlagBindings maps config keys to the flag names that override them.
var FlagBindings = map[string]string{
	KeyBaseURL: "base-url",
	KeyTimeout: "timeout",
}

// Load reads config.yaml from configDir, then applies NEXTRIP_* environment
// variables and any changed flags in fs. A missing config.yaml is not an
// error. The result is validated before it is returned.
func Load(configDir string, fs *pflag.FlagSet) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(KeyBaseURL, def.BaseURL)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFile, def.LogFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range FlagBindings {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configDir != "" {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every invalid key.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: failed %q (value %v)", fieldKey(fe.Field()), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// fieldKey maps a struct field name back to its config key.
func fieldKey(field string) string {
	switch field {
	case "BaseURL":
		return KeyBaseURL
	case "Timeout":
		return KeyTimeout
	case "LogLevel":
		return KeyLogLevel
	case "LogFile":
		return KeyLogFile
	default:
		return field
	}
}
