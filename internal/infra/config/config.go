package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервиса.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	Port   int    `envconfig:"PORT" default:"8080"`

	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	PGDSN string `envconfig:"PG_DSN"`

	Anthropic struct {
		APIKey  string        `envconfig:"ANTHROPIC_API_KEY"`
		BaseURL string        `envconfig:"ANTHROPIC_BASE_URL"`
		Model   string        `envconfig:"ANTHROPIC_MODEL" default:"claude-3-haiku-20240307"`
		Timeout time.Duration `envconfig:"ANALYZE_TIMEOUT" default:"30s"`
	} `envconfig:""`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}
