package source_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/config"
	"github.com/dmitrymomot/paramkit/pkg/source"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		for _, key := range []string{"PARAM_TIME_LAYOUTS", "PARAM_TRIM_SPACE", "PARAM_FORM_MAX_MEMORY", "PARAM_JSON_MAX_SIZE"} {
			os.Unsetenv(key)
		}

		cfg, err := source.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, source.DefaultConfig(), cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("PARAM_TIME_LAYOUTS", "Mon, 02 Jan 2006 15:04:05 MST;2006-01-02")
		t.Setenv("PARAM_TRIM_SPACE", "true")
		t.Setenv("PARAM_FORM_MAX_MEMORY", "1024")
		t.Setenv("PARAM_JSON_MAX_SIZE", "2048")

		cfg, err := source.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"Mon, 02 Jan 2006 15:04:05 MST", "2006-01-02"}, cfg.TimeLayouts)
		assert.True(t, cfg.TrimSpace)
		assert.Equal(t, int64(1024), cfg.FormMaxMemory)
		assert.Equal(t, int64(2048), cfg.JSONMaxSize)
	})
}
