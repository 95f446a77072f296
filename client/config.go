package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds client settings read from the environment.
// Variables are prefixed with LINKEDIN_, e.g. LINKEDIN_CONSUMER_KEY.
type Config struct {
	APIURL string `envconfig:"API_URL" default:"https://api.linkedin.com"`

	ConsumerKey    string `envconfig:"CONSUMER_KEY"`
	ConsumerSecret string `envconfig:"CONSUMER_SECRET"`
	Token          string `envconfig:"TOKEN"`
	TokenSecret    string `envconfig:"TOKEN_SECRET"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`

	// Transport retry; 1 attempt means no retry.
	RetryMaxAttempts int           `envconfig:"RETRY_MAX_ATTEMPTS" default:"1"`
	RetryBaseBackoff time.Duration `envconfig:"RETRY_BASE_BACKOFF" default:"200ms"`
}

// Credentials returns the OAuth credentials carried by the config.
func (c Config) Credentials() Credentials {
	return Credentials{
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
		Token:          c.Token,
		TokenSecret:    c.TokenSecret,
	}
}

// LoadConfig parses LINKEDIN_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("LINKEDIN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("api_url", cfg.APIURL).
		Bool("consumer_key_present", cfg.ConsumerKey != "").
		Bool("consumer_secret_present", cfg.ConsumerSecret != "").
		Bool("token_present", cfg.Token != "").
		Bool("token_secret_present", cfg.TokenSecret != "").
		Dur("http_timeout", cfg.HTTPTimeout).
		Int("retry_max_attempts", cfg.RetryMaxAttempts).
		Msg("linkedin client configuration loaded")

	return &cfg, nil
}

// NewFromConfig builds a Client from cfg. Extra options are applied after
// the ones derived from cfg and therefore win.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithAPIURL(cfg.APIURL),
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithRetry(cfg.RetryMaxAttempts, cfg.RetryBaseBackoff),
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.Credentials(), append(base, opts...)...)
}
