package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/moniker/internal/namegen"
)

func TestLoader_Load_CreatesDefaultIfMissing(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	loader, err := NewLoader()
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)

	// Check defaults
	assert.Equal(t, "KebabCase", cfg.Default.Style)
	assert.False(t, cfg.Default.Numbered)
	assert.Equal(t, DefaultAmount, cfg.Default.Amount)
	assert.Empty(t, cfg.Words.Adjectives)
	assert.Empty(t, cfg.Words.Nouns)

	// Verify file was created
	_, err = os.Stat(loader.Path())
	assert.NoError(t, err)
}

func TestLoader_Load_ReadsExistingConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "moniker")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	configContent := `
default:
  style: SnakeCase
  numbered: true
  amount: 5
words:
  adjectives:
    - shiny
    - dusty
  nouns:
    - anvil
`
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yaml"),
		[]byte(configContent),
		0644,
	))

	loader, err := NewLoader()
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "SnakeCase", cfg.Default.Style)
	assert.True(t, cfg.Default.Numbered)
	assert.Equal(t, 5, cfg.Default.Amount)
	assert.Equal(t, []string{"shiny", "dusty"}, cfg.Adjectives())
	assert.Equal(t, []string{"anvil"}, cfg.Nouns())
}

func TestLoader_EnvOverride(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("MONIKER_STYLE", "PascalCase")
	t.Setenv("MONIKER_AMOUNT", "3")

	loader, err := NewLoader()
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "PascalCase", cfg.Default.Style)
	assert.Equal(t, 3, cfg.Default.Amount)
}

func TestConfig_Validate_RejectsUnknownStyle(t *testing.T) {
	cfg := &Config{
		Default: DefaultConfig{Style: "WhisperCase", Amount: 1},
	}
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsZeroAmount(t *testing.T) {
	cfg := &Config{
		Default: DefaultConfig{Style: "KebabCase", Amount: 0},
	}
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsMalformedWords(t *testing.T) {
	cfg := &Config{
		Default: DefaultConfig{Style: "KebabCase", Amount: 1},
		Words:   WordsConfig{Adjectives: []string{"Shiny-2"}},
	}
	assert.Error(t, cfg.Validate())
}

func TestConfig_WordFallbacks(t *testing.T) {
	cfg := &Config{Default: DefaultConfig{Style: "KebabCase", Amount: 1}}

	assert.Equal(t, namegen.Adjectives, cfg.Adjectives())
	assert.Equal(t, namegen.Nouns, cfg.Nouns())
}

func TestConfig_Style(t *testing.T) {
	cfg := &Config{Default: DefaultConfig{Style: "TrainCase", Amount: 1}}

	style, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, namegen.TrainCase, style)
}

func TestLoader_Set(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	loader, err := NewLoader()
	require.NoError(t, err)
	_, err = loader.Load()
	require.NoError(t, err)

	require.NoError(t, loader.Set("default.style", "CamelCase"))

	value, err := loader.Get("default.style")
	require.NoError(t, err)
	assert.Equal(t, "CamelCase", value)

	// Setting survives a reload from disk
	reloaded, err := NewLoader()
	require.NoError(t, err)
	cfg, err := reloaded.Load()
	require.NoError(t, err)
	assert.Equal(t, "CamelCase", cfg.Default.Style)
}

func TestLoader_Set_RejectsUnknownStyle(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	loader, err := NewLoader()
	require.NoError(t, err)
	_, err = loader.Load()
	require.NoError(t, err)

	err = loader.Set("default.style", "LoudCase")
	assert.ErrorIs(t, err, namegen.ErrUnknownStyle)
}

func TestLoader_Set_RejectsBadAmount(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	loader, err := NewLoader()
	require.NoError(t, err)
	_, err = loader.Load()
	require.NoError(t, err)

	for _, value := range []string{"0", "-3", "lots"} {
		err = loader.Set("default.amount", value)
		assert.ErrorIs(t, err, ErrInvalidAmount, "value %q", value)
	}
}

func TestValidateKey(t *testing.T) {
	valid := []string{
		"default",
		"default.style",
		"default.numbered",
		"default.amount",
		"words",
		"words.adjectives",
		"words.nouns",
	}
	for _, key := range valid {
		assert.NoError(t, ValidateKey(key), "key %q", key)
	}

	invalid := []string{"", "style", "default.words", "words.verbs"}
	for _, key := range invalid {
		assert.ErrorIs(t, ValidateKey(key), ErrInvalidKey, "key %q", key)
	}
}
