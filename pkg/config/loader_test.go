package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/config"
)

type defaultsConfig struct {
	Layouts   []string `env:"LAYOUTS" envSeparator:"," envDefault:"2006-01-02"`
	TrimSpace bool     `env:"TRIM_SPACE" envDefault:"true"`
	MaxSize   int64    `env:"MAX_SIZE" envDefault:"1024"`
}

type prefixedConfig struct {
	Value string `env:"VALUE" envDefault:"fallback"`
}

type cachedConfig struct {
	Value string `env:"CACHED_VALUE" envDefault:"first"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type fileConfig struct {
	FromFile string `env:"PARAMKIT_FROM_FILE"`
}

func TestParse_Defaults(t *testing.T) {
	os.Unsetenv("LAYOUTS")
	os.Unsetenv("TRIM_SPACE")
	os.Unsetenv("MAX_SIZE")

	var cfg defaultsConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, []string{"2006-01-02"}, cfg.Layouts)
	assert.True(t, cfg.TrimSpace)
	assert.Equal(t, int64(1024), cfg.MaxSize)
}

func TestParse_FromEnvironment(t *testing.T) {
	t.Setenv("LAYOUTS", "2006-01-02,15:04")
	t.Setenv("TRIM_SPACE", "false")
	t.Setenv("MAX_SIZE", "2048")

	var cfg defaultsConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, []string{"2006-01-02", "15:04"}, cfg.Layouts)
	assert.False(t, cfg.TrimSpace)
	assert.Equal(t, int64(2048), cfg.MaxSize)
}

func TestParse_Prefix(t *testing.T) {
	t.Setenv("APP_VALUE", "prefixed")
	t.Setenv("VALUE", "plain")

	var cfg prefixedConfig
	require.NoError(t, config.Parse(&cfg, config.WithPrefix("APP_")))
	assert.Equal(t, "prefixed", cfg.Value)
}

func TestParse_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Parse(&cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestParse_InvalidValue(t *testing.T) {
	t.Setenv("MAX_SIZE", "not-a-number")

	var cfg defaultsConfig
	err := config.Parse(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestParse_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestParse_EnvFiles(t *testing.T) {
	os.Unsetenv("PARAMKIT_FROM_FILE")
	t.Cleanup(func() { os.Unsetenv("PARAMKIT_FROM_FILE") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PARAMKIT_FROM_FILE=loaded\n"), 0o600))

	var cfg fileConfig
	require.NoError(t, config.Parse(&cfg, config.WithEnvFiles(path)))
	assert.Equal(t, "loaded", cfg.FromFile)

	err := config.Parse(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
	assert.ErrorIs(t, err, config.ErrEnvFile)
}

func TestLoad_Caches(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CACHED_VALUE", "first")
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CACHED_VALUE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value is returned")

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_PrefixIsPartOfCacheKey(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("A_VALUE", "a")
	t.Setenv("B_VALUE", "b")

	var a, b prefixedConfig
	require.NoError(t, config.Load(&a, config.WithPrefix("A_")))
	require.NoError(t, config.Load(&b, config.WithPrefix("B_")))
	assert.Equal(t, "a", a.Value)
	assert.Equal(t, "b", b.Value)
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	os.Unsetenv("REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("REQUIRED_VALUE", "set")
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
		assert.Equal(t, "set", cfg.Required)
	})
}
