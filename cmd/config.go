package cmd

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort      string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName        string `envconfig:"DB_NAME" default:"distribution"`
	DBSslMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	KafkaBrokers  string `envconfig:"KAFKA_BROKERS" default:""`
	KafkaTopic    string `envconfig:"KAFKA_ORDER_EVENTS_TOPIC" default:"order-events"`
	PaymentSecret string `envconfig:"PAYMENT_SECRET" default:""`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
