// SuiteBot - Slack to webhook relay bridge
// License: MIT

// Package config holds the environment-derived runtime configuration.
// The Config is built once at process start and passed explicitly to the
// services that need it; nothing reads the environment after Load.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// WebhookURL is the automation endpoint every tracked message is
	// forwarded to.
	WebhookURL string `env:"WEBHOOK_URL"`

	// SlackBotToken authenticates Web API calls (chat.postMessage,
	// reactions.add, reactions.remove).
	SlackBotToken string `env:"SLACK_BOT_TOKEN"`

	// SlackAppToken authenticates the Socket Mode connection.
	SlackAppToken string `env:"SLACK_APP_TOKEN"`

	// Port is where the liveness endpoint listens. The hosting
	// supervisor probes it to confirm the process is alive.
	Port int `env:"PORT" envDefault:"10000"`

	// WebhookTimeout bounds the single forward call per message.
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"60s"`
}

// Load parses the environment into a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the required credentials and endpoint are present.
func (c *Config) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("WEBHOOK_URL is required")
	}
	if c.SlackBotToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN is required")
	}
	if c.SlackAppToken == "" {
		return fmt.Errorf("SLACK_APP_TOKEN is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %d", c.Port)
	}
	if c.WebhookTimeout <= 0 {
		return fmt.Errorf("WEBHOOK_TIMEOUT must be positive, got %s", c.WebhookTimeout)
	}
	return nil
}
