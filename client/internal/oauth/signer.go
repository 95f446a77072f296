// Package oauth builds OAuth 1.0a signed request URLs.
//
// Signing is a pure function of the path, the parameters, the credentials and
// the Stamp (nonce and timestamp) drawn from the Stamper, so a fixed Stamper
// makes every URL reproducible.
package oauth

import (
	"cmp"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/google/uuid"
	clienterrors "github.com/mycelian/linkedin/client/internal/errors"
)

const (
	// DefaultAPIURL is the root every relative resource path is resolved against.
	DefaultAPIURL = "https://api.linkedin.com"

	SignatureMethod = "HMAC-SHA1"
	Version         = "1.0"
)

// Credentials identify the consumer application and the member token it acts for.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

func (c Credentials) validate() error {
	switch {
	case c.ConsumerKey == "":
		return clienterrors.NewConfigurationError("consumer key", "is required")
	case c.ConsumerSecret == "":
		return clienterrors.NewConfigurationError("consumer secret", "is required")
	case c.Token == "":
		return clienterrors.NewConfigurationError("token", "is required")
	}
	return nil
}

// Stamp carries the per-request replay protection values.
type Stamp struct {
	Nonce     string
	Timestamp int64
}

// Stamper supplies the Stamp for each signature.
type Stamper interface {
	Stamp() Stamp
}

// StamperFunc adapts a function to a Stamper.
type StamperFunc func() Stamp

func (f StamperFunc) Stamp() Stamp { return f() }

// FixedStamper always returns the same nonce and timestamp.
func FixedStamper(nonce string, timestamp int64) Stamper {
	return StamperFunc(func() Stamp { return Stamp{Nonce: nonce, Timestamp: timestamp} })
}

type clockStamper struct{ now func() time.Time }

func (s clockStamper) Stamp() Stamp {
	return Stamp{
		Nonce:     strings.ReplaceAll(uuid.NewString(), "-", ""),
		Timestamp: s.now().Unix(),
	}
}

// DefaultStamper draws a random nonce and the wall-clock time.
func DefaultStamper() Stamper { return clockStamper{now: time.Now} }

// Signer turns resource paths and parameters into signed request URLs.
// It holds no mutable state and is safe for concurrent use.
type Signer struct {
	apiURL  string
	creds   Credentials
	stamper Stamper
	hmac    *oauth1.HMACSigner
}

// NewSigner returns a Signer. A nil stamper selects DefaultStamper.
func NewSigner(apiURL string, creds Credentials, stamper Stamper) *Signer {
	if stamper == nil {
		stamper = DefaultStamper()
	}
	return &Signer{
		apiURL:  apiURL,
		creds:   creds,
		stamper: stamper,
		hmac:    &oauth1.HMACSigner{ConsumerSecret: creds.ConsumerSecret},
	}
}

// SafeEncode percent-encodes value per RFC 3986 for use inside a path
// segment: unreserved characters are kept, space becomes %20.
func SafeEncode(value string) string {
	return oauth1.PercentEncode(value)
}

// ToURL returns the signed GET URL for path and params.
func (s *Signer) ToURL(path string, params Params) (string, error) {
	return s.SignedURL(http.MethodGet, path, params)
}

// SignedURL returns the URL for method with the caller parameters followed by
// the oauth_* protocol parameters and the HMAC-SHA1 signature. A query already
// present on path is kept ahead of params and signed with them.
func (s *Signer) SignedURL(method, path string, params Params) (string, error) {
	if err := s.creds.validate(); err != nil {
		return "", err
	}
	base, query, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	stamp := s.stamper.Stamp()
	signed := params.Clone()
	if len(query) > 0 {
		signed = append(query, signed...)
	}
	signed.Set("oauth_consumer_key", s.creds.ConsumerKey)
	signed.Set("oauth_nonce", stamp.Nonce)
	signed.Set("oauth_signature_method", SignatureMethod)
	signed.Set("oauth_timestamp", strconv.FormatInt(stamp.Timestamp, 10))
	signed.Set("oauth_token", s.creds.Token)
	signed.Set("oauth_version", Version)

	signature, err := s.hmac.Sign(s.creds.TokenSecret, baseString(method, base, signed))
	if err != nil {
		return "", fmt.Errorf("oauth: sign request: %w", err)
	}
	signed.Set("oauth_signature", signature)

	return base + "?" + signed.Encode(), nil
}

// resolve returns the normalized base URI for path and the query it carries.
// Relative paths are prefixed with the API root.
func (s *Signer) resolve(path string) (string, Params, error) {
	if !isAbsolute(path) {
		root, err := s.root()
		if err != nil {
			return "", nil, err
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		path = root + path
	}

	u, err := url.Parse(path)
	if err != nil || !isHTTP(u) {
		return "", nil, clienterrors.NewConfigurationError("request url", fmt.Sprintf("%q is not an absolute http(s) URL", path))
	}
	query, err := ParseQuery(u.RawQuery)
	if err != nil {
		return "", nil, clienterrors.NewConfigurationError("request url", fmt.Sprintf("query of %q: %v", path, err))
	}
	return normalize(u), query, nil
}

func (s *Signer) root() (string, error) {
	u, err := url.Parse(s.apiURL)
	if err != nil || !isHTTP(u) {
		return "", clienterrors.NewConfigurationError("api url", fmt.Sprintf("%q is not an absolute http(s) URL", s.apiURL))
	}
	return strings.TrimRight(normalize(u), "/"), nil
}

func isAbsolute(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isHTTP(u *url.URL) bool {
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// normalize keeps scheme, host and path: the base string URI of RFC 5849
// section 3.4.1.2.
func normalize(u *url.URL) string {
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + u.EscapedPath()
}

// baseString builds the RFC 5849 section 3.4.1 signature base string.
func baseString(method, baseURL string, params Params) string {
	pairs := make(Params, len(params))
	for i, kv := range params {
		pairs[i] = Param{Key: SafeEncode(kv.Key), Value: SafeEncode(kv.Value)}
	}
	slices.SortStableFunc(pairs, func(a, b Param) int {
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})

	normalized := make([]string, len(pairs))
	for i, kv := range pairs {
		normalized[i] = kv.Key + "=" + kv.Value
	}
	return strings.ToUpper(method) + "&" + SafeEncode(baseURL) + "&" + SafeEncode(strings.Join(normalized, "&"))
}
