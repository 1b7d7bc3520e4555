package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP_PORT    string `env:"PORT" envDefault:"10000"`
	DATABASE_URL string `env:"DATABASE_URL,required,notEmpty"`
	API_KEY      string `env:"API_KEY,required,notEmpty"`

	// SALES_TABLE may be schema-qualified, e.g. "public.sales".
	SALES_TABLE            string `env:"SALES_TABLE" envDefault:"sales"`
	SALES_EXTENDED_COLUMNS bool   `env:"SALES_EXTENDED_COLUMNS" envDefault:"true"`
	DB_TLS_SKIP_VERIFY     bool   `env:"DB_TLS_SKIP_VERIFY" envDefault:"true"`

	// empty KAFKA_BROKERS disables query auditing
	KAFKA_BROKERS string `env:"KAFKA_BROKERS"`
	KAFKA_TOPIC   string `env:"KAFKA_TOPIC" envDefault:"vila-sales.queries"`

	LOG_LEVEL string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.SALES_TABLE = strings.TrimSpace(cfg.SALES_TABLE)
	if cfg.SALES_TABLE == "" {
		return nil, fmt.Errorf("config: SALES_TABLE must not be blank")
	}

	return cfg, nil
}

// AuditEnabled reports whether query events are published to Kafka.
func (c *Config) AuditEnabled() bool {
	return strings.TrimSpace(c.KAFKA_BROKERS) != ""
}
