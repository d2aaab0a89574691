package config

import (
	"os"
	"time"

	"github.com/oliy/workers-sdk/internal/constants"
)

// Config is the runtime configuration for the application.
type Config struct {
	// Token is the bearer token used for all control plane calls.
	Token string

	// PropagationDelay is how long freshly issued bucket credentials are
	// given to propagate before first use.
	PropagationDelay time.Duration
}

// ConfigOption is a function that modifies a Config instance.
type ConfigOption func(*Config)

// NewConfig creates a new Config instance with the given options.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	const defaultPropagationDelay = 3 * time.Second

	c := &Config{
		Token:            os.Getenv(constants.EnvApiToken),
		PropagationDelay: defaultPropagationDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// WithToken returns a ConfigOption that sets the API token.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithPropagationDelay returns a ConfigOption that sets the credential
// propagation delay.
func WithPropagationDelay(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.PropagationDelay = d
	}
}
