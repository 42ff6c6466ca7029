package internal

import (
	"fmt"
	"time"

	"secret-santa/errors"

	"github.com/Netflix/go-env"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	MaxAttempts     int           `env:"MAX_ATTEMPTS,default=100"`
	SMTPHost        string        `env:"SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort        int           `env:"SMTP_PORT,default=587"`
	SMTPSender      string        `env:"SMTP_SENDER"`
	MailSubject     string        `env:"MAIL_SUBJECT"`
	DeliveryWorkers int           `env:"DELIVERY_WORKERS,default=1"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT,default=30s"`
	LedgerPath      string        `env:"LEDGER_PATH"`
	Colors          bool          `env:"COLORS,default=true"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Parse reads the configuration from an explicit set of variables.
func Parse(es env.EnvSet) (Config, error) {
	var config Config
	if err := env.Unmarshal(es, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch {
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: MAX_ATTEMPTS must be at least 1, got %d", errors.ErrInvalidConfig, c.MaxAttempts)
	case c.DeliveryWorkers < 1:
		return fmt.Errorf("%w: DELIVERY_WORKERS must be at least 1, got %d", errors.ErrInvalidConfig, c.DeliveryWorkers)
	case c.SMTPPort < 1 || c.SMTPPort > 65535:
		return fmt.Errorf("%w: SMTP_PORT out of range, got %d", errors.ErrInvalidConfig, c.SMTPPort)
	case c.DeliveryTimeout < 0:
		return fmt.Errorf("%w: DELIVERY_TIMEOUT must not be negative", errors.ErrInvalidConfig)
	}
	return nil
}
