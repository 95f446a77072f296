package client

// Functional options applied by New.

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	clienterrors "github.com/mycelian/linkedin/client/internal/errors"
	"github.com/mycelian/linkedin/client/internal/transport"
)

// Option configures a Client during construction in New.
//
// Options are applied in order and must be deterministic and side-effect
// free. A failing option aborts New with a *ConfigurationError.
type Option func(*Client) error

// WithAPIURL overrides the API root (default https://api.linkedin.com), for
// example to target a sandbox or a recording proxy.
func WithAPIURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return clienterrors.NewConfigurationError("api url", "must be an absolute http(s) URL")
		}
		c.apiURL = strings.TrimRight(raw, "/")
		return nil
	}
}

// WithHTTPClient injects a custom *http.Client, for example to set TLS or
// tracing. The client is copied; later options never modify the caller's
// value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return clienterrors.NewConfigurationError("http client", "must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// The timeout bounds a single HTTP round trip; it belongs to the transport
// and never changes how responses are interpreted. The value must be
// greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return clienterrors.NewConfigurationError("http timeout", "must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: signed URLs carry
// the OAuth token and end up in the logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); already {
				return nil
			}
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}

// WithRetry lets the transport retry network failures and 408/429/5xx
// responses up to maxAttempts times with exponential backoff starting at
// baseBackoff. Responses are never retried by the resource layer itself.
func WithRetry(maxAttempts int, baseBackoff time.Duration) Option {
	return func(c *Client) error {
		if maxAttempts < 1 {
			return clienterrors.NewConfigurationError("retry attempts", "must be >= 1")
		}
		c.retry = transport.RetryPolicy{MaxAttempts: maxAttempts, BaseBackoff: baseBackoff}
		return nil
	}
}

// WithStamper replaces the source of OAuth nonces and timestamps. A fixed
// stamper makes every signed URL reproducible, which tests rely on.
func WithStamper(s Stamper) Option {
	return func(c *Client) error {
		if s == nil {
			return clienterrors.NewConfigurationError("stamper", "must not be nil")
		}
		c.stamper = s
		return nil
	}
}

// WithTransport replaces the HTTP transport entirely. WithHTTPClient,
// WithHTTPTimeout, WithDebugLogging and WithRetry have no effect once a
// transport is supplied.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return clienterrors.NewConfigurationError("transport", "must not be nil")
		}
		c.transport = t
		return nil
	}
}
