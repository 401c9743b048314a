package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAttempts = 3
	defaultDelay    = 1 * time.Second
	defaultMaxDelay = 8 * time.Second
)

// Config controls the resilient-send retry loop: up to Attempts tries,
// starting at Delay and doubling between attempts, capped at MaxDelay.
// No delay is applied after the final attempt.
type Config struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"3"`
	Delay    time.Duration `env:"DELAY" envDefault:"1s"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"8s"`
}

func (c *Config) ToOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(c.Attempts),
		retry.Delay(c.Delay),
		retry.MaxDelay(c.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	}
}

func DefaultConfig() *Config {
	return &Config{
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
		MaxDelay: defaultMaxDelay,
	}
}
