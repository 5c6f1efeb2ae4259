package parallel

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Limit    int  `env:"VALIDATE_CONCURRENCY" envDefault:"4"`   // Limit bounds how many validation units run at once.
	FailFast bool `env:"VALIDATE_FAIL_FAST" envDefault:"false"` // FailFast cancels pending units on the first failure.
}

// LoadConfig reads coordinator settings from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse coordinator config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig creates a Coordinator from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Coordinator {
	configOpts := make([]Option, 0, 2)

	if cfg.Limit > 0 {
		configOpts = append(configOpts, WithLimit(cfg.Limit))
	}
	if cfg.FailFast {
		configOpts = append(configOpts, WithFailFast())
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
