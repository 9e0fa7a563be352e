// Package config provides configuration management for Moniker.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/jmgilman/moniker/internal/namegen"
)

// Default configuration values.
const (
	DefaultConfigDir  = ".config/moniker"
	DefaultConfigFile = "config.yaml"

	// DefaultAmount is the number of names generated when no count is given.
	DefaultAmount = 1
)

// Sentinel errors for configuration operations.
var (
	ErrInvalidKey    = errors.New("invalid configuration key")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNoEditor      = errors.New("$EDITOR environment variable not set")
)

// validKeys is built once from Config struct reflection.
var validKeys = buildValidKeys()

// validate is the shared validator instance.
var validate = validator.New()

// Config represents the full Moniker configuration.
type Config struct {
	Default DefaultConfig `mapstructure:"default" validate:"required"`
	Words   WordsConfig   `mapstructure:"words"`
}

// DefaultConfig holds default values for name generation.
type DefaultConfig struct {
	Style    string `mapstructure:"style" validate:"required,oneof=Plain Numbered TitleCase CamelCase ClassCase KebabCase TrainCase ScreamingSnakeCase TableCase SentenceCase SnakeCase PascalCase"`
	Numbered bool   `mapstructure:"numbered"`
	Amount   int    `mapstructure:"amount" validate:"min=1"`
}

// WordsConfig holds optional custom word lists. When set, a list replaces
// the corresponding built-in list entirely.
type WordsConfig struct {
	Adjectives []string `mapstructure:"adjectives" validate:"omitempty,dive,required,lowercase,alpha"`
	Nouns      []string `mapstructure:"nouns" validate:"omitempty,dive,required,lowercase,alpha"`
}

// Validate checks the configuration for errors using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Style parses the configured default style.
func (c *Config) Style() (namegen.Style, error) {
	return namegen.ParseStyle(c.Default.Style)
}

// Adjectives returns the configured adjective list, falling back to the
// built-in list when no override is set.
func (c *Config) Adjectives() []string {
	if len(c.Words.Adjectives) > 0 {
		return c.Words.Adjectives
	}
	return namegen.Adjectives
}

// Nouns returns the configured noun list, falling back to the built-in
// list when no override is set.
func (c *Config) Nouns() []string {
	if len(c.Words.Nouns) > 0 {
		return c.Words.Nouns
	}
	return namegen.Nouns
}

// Loader provides configuration loading and saving.
type Loader struct {
	v       *viper.Viper
	path    string
	homeDir string
}

// NewLoader creates a new configuration loader.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}

	configPath := filepath.Join(home, DefaultConfigDir, DefaultConfigFile)

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Environment variable binding
	v.SetEnvPrefix("MONIKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind specific env vars to config keys.
	// We intentionally ignore errors here as BindEnv only fails if called with zero arguments.
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("default.style", "MONIKER_STYLE")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("default.numbered", "MONIKER_NUMBERED")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("default.amount", "MONIKER_AMOUNT")

	l := &Loader{
		v:       v,
		path:    configPath,
		homeDir: home,
	}

	// Set defaults before any config reading
	l.setDefaults()

	return l, nil
}

// setDefaults sets all default configuration values using Viper.
func (l *Loader) setDefaults() {
	l.v.SetDefault("default.style", namegen.DefaultStyle.String())
	l.v.SetDefault("default.numbered", false)
	l.v.SetDefault("default.amount", DefaultAmount)
	l.v.SetDefault("words.adjectives", []string{})
	l.v.SetDefault("words.nouns", []string{})
}

// Load reads the configuration file, creating defaults if it doesn't exist.
func (l *Loader) Load() (*Config, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		if err := l.createDefault(); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// Get returns a configuration value by dot-notation key.
func (l *Loader) Get(key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return l.v.Get(key), nil
}

// Set sets a configuration value by dot-notation key.
func (l *Loader) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	// Validate the style name if setting default.style
	if key == "default.style" {
		if _, err := namegen.ParseStyle(value); err != nil {
			return err
		}
	}

	// Validate the amount if setting default.amount
	if key == "default.amount" {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s (must be a positive integer)", ErrInvalidAmount, value)
		}
	}

	l.v.Set(key, value)
	return l.v.WriteConfig()
}

// createDefault writes the default configuration file using Viper.
func (l *Loader) createDefault() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return l.v.SafeWriteConfigAs(l.path)
}

// ValidateKey checks if a key is a valid configuration key.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if validKeys[key] {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidKey, key)
}

// buildValidKeys builds the set of valid keys from Config struct using reflection.
func buildValidKeys() map[string]bool {
	keys := make(map[string]bool)
	addKeysFromType(reflect.TypeOf(Config{}), "", keys)
	return keys
}

// addKeysFromType recursively adds keys from a struct type.
func addKeysFromType(t reflect.Type, prefix string, keys map[string]bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		keys[key] = true

		if field.Type.Kind() == reflect.Struct {
			addKeysFromType(field.Type, key, keys)
		}
	}
}
