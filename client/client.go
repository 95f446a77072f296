package client

import (
	"net/http"
	"time"

	"github.com/mycelian/linkedin/client/internal/oauth"
	"github.com/mycelian/linkedin/client/internal/transport"
)

// DefaultAPIURL is used unless WithAPIURL overrides it.
const DefaultAPIURL = oauth.DefaultAPIURL

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client gives typed access to the LinkedIn REST API. Its configuration is
// fixed at construction and it carries no state between calls, so a single
// Client may be shared by concurrent goroutines.
type Client struct {
	apiURL    string
	creds     Credentials
	http      *http.Client
	retry     transport.RetryPolicy
	stamper   oauth.Stamper
	transport transport.Transport

	people *People
}

// New constructs a Client acting with creds. Missing credentials are not an
// error here; they are reported as a *ConfigurationError by the first call.
// Options that fail validation are returned as a *ConfigurationError.
func New(creds Credentials, opts ...Option) (*Client, error) {
	c := &Client{
		apiURL: DefaultAPIURL,
		creds:  creds,
		http:   &http.Client{Timeout: 30 * time.Second},
		retry:  transport.RetryPolicy{MaxAttempts: 1},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.transport == nil {
		c.transport = transport.New(c.http, c.retry)
	}

	c.people = &People{
		signer:    oauth.NewSigner(c.apiURL, c.creds, c.stamper),
		transport: c.transport,
	}
	return c, nil
}

// People returns the people resource.
func (c *Client) People() *People { return c.people }

// APIURL reports the root that resource paths are resolved against.
func (c *Client) APIURL() string { return c.apiURL }
