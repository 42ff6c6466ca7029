package test

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the integration scenario at a real relay.
// The scenario is skipped when SANTA_IT_SMTP_HOST is empty.
type Config struct {
	Host   string `envconfig:"SANTA_IT_SMTP_HOST"`
	Port   int    `envconfig:"SANTA_IT_SMTP_PORT" default:"587"`
	Sender string `envconfig:"SANTA_IT_SMTP_SENDER"`
	Secret string `envconfig:"SANTA_IT_SMTP_SECRET"`
	// SANTA_IT_RECIPIENT receives every notification of the scenario
	Recipient string `envconfig:"SANTA_IT_RECIPIENT"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
