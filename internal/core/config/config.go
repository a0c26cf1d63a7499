package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the portal.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the portal listens.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// DefaultLang is the label language used when a request does not ask for one.
	DefaultLang string `mapstructure:"DEFAULT_LANG" default:"mn"`

	Backend BackendConfig `mapstructure:",squash"`
	Redis   RedisConfig   `mapstructure:",squash"`
	Session SessionConfig `mapstructure:",squash"`
	Wizard  WizardConfig  `mapstructure:",squash"`
}

// BackendConfig describes the cargo REST backend the portal fronts.
type BackendConfig struct {
	// URL is the base URL of the backend API (e.g., https://api.cargo.mn/api).
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// TimeoutSeconds bounds a single backend call.
	TimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS" default:"15"`
}

// Timeout returns the backend call timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// RedisConfig holds the connection shared by sessions, announcements and the settings cache.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// Prefix namespaces every key this process writes.
	Prefix string `mapstructure:"REDIS_PREFIX" default:"cargo-portal:"`
}

// SessionConfig controls the browser session.
type SessionConfig struct {
	CookieName string `mapstructure:"SESSION_COOKIE" default:"cargo_session"`
	// TTLHours caps how long a session lives, even if the backend token lives longer.
	TTLHours int `mapstructure:"SESSION_TTL_HOURS" default:"24"`
}

// TTL returns the session lifetime cap.
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// WizardConfig controls multi-step form state.
type WizardConfig struct {
	TTLMinutes  int `mapstructure:"WIZARD_TTL_MINUTES" default:"60"`
	UploadMaxMB int `mapstructure:"UPLOAD_MAX_MB" default:"10"`
}

// TTL returns how long an untouched wizard is kept.
func (w WizardConfig) TTL() time.Duration {
	return time.Duration(w.TTLMinutes) * time.Minute
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
