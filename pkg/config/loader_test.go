package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pollkit/pkg/config"
)

type SuccessConfig struct {
	Name    string        `env:"TEST_LOADER_NAME" envDefault:"fallback"`
	Retries int           `env:"TEST_LOADER_RETRIES" envDefault:"3"`
	Wait    time.Duration `env:"TEST_LOADER_WAIT" envDefault:"0"`
}

type DefaultsConfig struct {
	Name    string `env:"TEST_DEFAULTS_NAME" envDefault:"fallback"`
	Enabled bool   `env:"TEST_DEFAULTS_ENABLED" envDefault:"true"`
}

type SingletonConfig struct {
	Value string `env:"TEST_SINGLETON_VALUE" envDefault:"initial"`
}

type RequiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

type MustConfig struct {
	Token string `env:"TEST_MUST_TOKEN,required"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_LOADER_NAME", "driver")
	t.Setenv("TEST_LOADER_RETRIES", "7")
	t.Setenv("TEST_LOADER_WAIT", "250ms")

	var cfg SuccessConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "driver", cfg.Name)
	assert.Equal(t, 7, cfg.Retries)
	assert.Equal(t, 250*time.Millisecond, cfg.Wait)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEST_DEFAULTS_NAME")
	os.Unsetenv("TEST_DEFAULTS_ENABLED")

	var cfg DefaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.True(t, cfg.Enabled)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_SINGLETON_VALUE", "first")

	var first SingletonConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, "first", first.Value)

	// A later environment change must not affect the cached type.
	t.Setenv("TEST_SINGLETON_VALUE", "second")
	var second SingletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	// Mutating the loaded copy must not leak into the cache.
	second.Value = "mutated"
	var third SingletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "first", third.Value)
}

func TestLoad_RequiredMissing(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_TOKEN")

	var cfg RequiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	err := config.Load[SuccessConfig](nil)
	require.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	os.Unsetenv("TEST_MUST_TOKEN")

	var cfg MustConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv_File(t *testing.T) {
	os.Unsetenv("TEST_DOTENV_VALUE")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_VALUE=from-file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, "from-file", os.Getenv("TEST_DOTENV_VALUE"))
	t.Cleanup(func() { os.Unsetenv("TEST_DOTENV_VALUE") })
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	t.Setenv("TEST_DOTENV_KEEP", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_KEEP=from-file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, "from-env", os.Getenv("TEST_DOTENV_KEEP"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Parallel()

	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
