// Package transport performs HTTP round trips for the resource layer. It
// returns the raw status and body and never interprets either; the only
// policy it owns is the optional retry of transient failures.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	clienterrors "github.com/mycelian/linkedin/client/internal/errors"
)

// Response is the raw outcome of a round trip.
type Response struct {
	Status int
	Body   []byte
	Header http.Header
}

// Transport issues requests against fully qualified URLs.
type Transport interface {
	Get(ctx context.Context, url string, header http.Header) (*Response, error)
	Post(ctx context.Context, url string, body []byte, header http.Header) (*Response, error)
	Put(ctx context.Context, url string, body []byte, header http.Header) (*Response, error)
	Delete(ctx context.Context, url string, body []byte, header http.Header) (*Response, error)
}

// RetryPolicy bounds the retries of network errors and recoverable statuses
// (408, 429, 5xx). MaxAttempts of 1 disables retrying.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxInterval time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseBackoff <= 0 {
		p.BaseBackoff = 200 * time.Millisecond
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = 5 * time.Second
	}
	return p
}

// HTTPTransport implements Transport on top of an *http.Client.
type HTTPTransport struct {
	client *http.Client
	retry  RetryPolicy
}

var _ Transport = (*HTTPTransport)(nil)

// New returns an HTTPTransport. A nil client selects http.DefaultClient.
func New(client *http.Client, retry RetryPolicy) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client, retry: retry.withDefaults()}
}

func (t *HTTPTransport) Get(ctx context.Context, url string, header http.Header) (*Response, error) {
	return t.Do(ctx, http.MethodGet, url, nil, header)
}

func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte, header http.Header) (*Response, error) {
	return t.Do(ctx, http.MethodPost, url, body, header)
}

func (t *HTTPTransport) Put(ctx context.Context, url string, body []byte, header http.Header) (*Response, error) {
	return t.Do(ctx, http.MethodPut, url, body, header)
}

func (t *HTTPTransport) Delete(ctx context.Context, url string, body []byte, header http.Header) (*Response, error) {
	return t.Do(ctx, http.MethodDelete, url, body, header)
}

// Do sends the request, retrying per the RetryPolicy. When retries are
// exhausted on a recoverable status the last response is returned as is.
func (t *HTTPTransport) Do(ctx context.Context, method, url string, body []byte, header http.Header) (*Response, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = t.retry.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = t.retry.MaxInterval
	exp.MaxElapsedTime = 0
	exp.Reset()

	var (
		last    *Response
		attempt int
	)
	op := func() error {
		attempt++
		if attempt > 1 {
			retriesTotal.WithLabelValues(method).Inc()
		}
		resp, err := t.roundTrip(ctx, method, url, body, header)
		if err != nil {
			var netErr *clienterrors.TransportError
			if ctx.Err() != nil || !errors.As(err, &netErr) || netErr.Category() != clienterrors.Recoverable {
				return backoff.Permanent(err)
			}
			return err
		}
		last = resp
		if resp.Status >= 400 {
			classified := clienterrors.NewHTTPError(resp.Status, string(resp.Body), method)
			if clienterrors.IsIrrecoverable(classified) {
				return backoff.Permanent(classified)
			}
			return classified
		}
		return nil
	}
	notify := func(err error, wait time.Duration) {
		ev := log.Debug().Err(err).Str("method", method).Int("attempt", attempt).Dur("wait", wait)
		var classified *clienterrors.ClassifiedError
		if errors.As(err, &classified) {
			ev = ev.Int("status", classified.StatusCode).
				Str("category", classified.Category.String()).
				Str("body", truncate(classified.Body, 256))
		}
		ev.Msg("retrying request")
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(t.retry.MaxAttempts-1)), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		// Statuses >= 400 still carry a response for the caller to interpret.
		var classified *clienterrors.ClassifiedError
		if errors.As(err, &classified) && last != nil {
			return last, nil
		}
		return nil, err
	}
	return last, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (t *HTTPTransport) roundTrip(ctx context.Context, method, url string, body []byte, header http.Header) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, clienterrors.NewNetworkError(method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	if err != nil {
		return nil, clienterrors.NewNetworkError(method, fmt.Errorf("read body: %w", err))
	}
	return &Response{Status: resp.StatusCode, Body: data, Header: resp.Header}, nil
}
