package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. A .env file in the working directory
// is loaded first (see the godotenv autoload import in main.go).
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	Env           string        `env:"APP_ENV" envDefault:"development"`
	RelayURL      string        `env:"RELAY_URL" envDefault:"https://formspree.io/f/xwpgjdnd"`
	SessionSecret string        `env:"SESSION_SECRET"`
	ContentPath   string        `env:"CONTENT_PATH"`
	TemplateGlob  string        `env:"TEMPLATE_GLOB" envDefault:"templates/*"`
	StaticDir     string        `env:"STATIC_DIR" envDefault:"./static"`
	LogFile       string        `env:"LOG_FILE" envDefault:".logs/portfolio.log"`
	Metrics       bool          `env:"METRICS_ENABLED" envDefault:"true"`
	FormIdleTTL   time.Duration `env:"FORM_IDLE_TTL" envDefault:"30m"`
	OTLPEndpoint  string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName   string        `env:"OTEL_SERVICE_NAME" envDefault:"portfolio"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = generateSecret()
	}
	return cfg, nil
}

func (c Config) development() bool {
	return c.Env == "development"
}
