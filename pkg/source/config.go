package source

import (
	"github.com/dmitrymomot/paramkit/pkg/config"
)

// Config holds the environment-driven settings of sources and adapters.
// Time layouts are separated by ";" because layouts such as RFC1123 contain commas.
type Config struct {
	TimeLayouts   []string `env:"PARAM_TIME_LAYOUTS" envSeparator:";" envDefault:"2006-01-02T15:04:05Z07:00;2006-01-02 15:04:05;2006-01-02"`
	TrimSpace     bool     `env:"PARAM_TRIM_SPACE" envDefault:"false"`
	FormMaxMemory int64    `env:"PARAM_FORM_MAX_MEMORY" envDefault:"10485760"`
	JSONMaxSize   int64    `env:"PARAM_JSON_MAX_SIZE" envDefault:"1048576"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		TimeLayouts:   append([]string(nil), DefaultTimeLayouts...),
		FormMaxMemory: DefaultMaxMemory,
		JSONMaxSize:   DefaultMaxJSONSize,
	}
}

// LoadConfig reads Config from the environment (and .env). The result is
// cached for the process lifetime.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
