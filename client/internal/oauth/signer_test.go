package oauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	clienterrors "github.com/mycelian/linkedin/client/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{ConsumerKey: "ck", ConsumerSecret: "cs", Token: "tk", TokenSecret: "ts"}

func newTestSigner() *Signer {
	return NewSigner(DefaultAPIURL, testCreds, FixedStamper("n0nce", 1300000000))
}

func TestSafeEncode(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"http://www.linkedin.com/in/dianaprajescu": "http%3A%2F%2Fwww.linkedin.com%2Fin%2Fdianaprajescu",
		"a b":      "a%20b",
		"tilde~ok": "tilde~ok",
		"a+b&c=d":  "a%2Bb%26c%3Dd",
		"-._":      "-._",
	}
	for in, want := range cases {
		assert.Equal(t, want, SafeEncode(in), "input %q", in)
	}
}

func TestToURL_SignsRequest(t *testing.T) {
	t.Parallel()
	var params Params
	params.Set("format", "json")

	got, err := newTestSigner().ToURL("/v1/people/~", params)
	require.NoError(t, err)

	base := "GET&https%3A%2F%2Fapi.linkedin.com%2Fv1%2Fpeople%2F~&" +
		"format%3Djson%26oauth_consumer_key%3Dck%26oauth_nonce%3Dn0nce%26" +
		"oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1300000000%26" +
		"oauth_token%3Dtk%26oauth_version%3D1.0"
	mac := hmac.New(sha1.New, []byte("cs&ts"))
	mac.Write([]byte(base))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	want := "https://api.linkedin.com/v1/people/~?format=json&oauth_consumer_key=ck&oauth_nonce=n0nce" +
		"&oauth_signature_method=HMAC-SHA1&oauth_timestamp=1300000000&oauth_token=tk&oauth_version=1.0" +
		"&oauth_signature=" + SafeEncode(sig)
	assert.Equal(t, want, got)
}

func TestToURL_Deterministic(t *testing.T) {
	t.Parallel()
	var params Params
	params.Set("format", "json")
	params.Add("facet", "location,us-84")
	params.Add("facet", "industry,47")
	params.SetBool("current-company", true)

	s := newTestSigner()
	first, err := s.ToURL("/v1/people-search:(people:(id))", params)
	require.NoError(t, err)
	second, err := s.ToURL("/v1/people-search:(people:(id))", params)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// the caller's params are never mutated by signing
	assert.Len(t, params, 4)
	assert.True(t, strings.HasPrefix(first,
		"https://api.linkedin.com/v1/people-search:(people:(id))?format=json&facet=location%2Cus-84&facet=industry%2C47&current-company=true&oauth_consumer_key=ck"))
}

func TestToURL_DefaultStamperVariesNonce(t *testing.T) {
	t.Parallel()
	s := NewSigner(DefaultAPIURL, testCreds, nil)
	a, err := s.ToURL("/v1/people/~", nil)
	require.NoError(t, err)
	b, err := s.ToURL("/v1/people/~", nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestToURL_AbsolutePathAndAPIURLNormalization(t *testing.T) {
	t.Parallel()
	s := NewSigner("HTTPS://API.Example.com/", testCreds, FixedStamper("n", 1))
	got, err := s.ToURL("v1/people/~", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "https://api.example.com/v1/people/~?oauth_consumer_key=ck"), got)

	abs, err := s.ToURL("http://other.example.com/v1/people/x", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(abs, "http://other.example.com/v1/people/x?"), abs)

	upper, err := s.ToURL("HTTP://Other.Example.com/v1/people/x?a=1", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upper, "http://other.example.com/v1/people/x?a=1&oauth_consumer_key=ck"), upper)
}

func TestToURL_ExistingQueryIsSignedAndMerged(t *testing.T) {
	t.Parallel()
	var params Params
	params.Set("format", "json")

	got, err := newTestSigner().ToURL("/v1/people/abc?trk=x", params)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "?"), got)

	base := "GET&https%3A%2F%2Fapi.linkedin.com%2Fv1%2Fpeople%2Fabc&" +
		"format%3Djson%26oauth_consumer_key%3Dck%26oauth_nonce%3Dn0nce%26" +
		"oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1300000000%26" +
		"oauth_token%3Dtk%26oauth_version%3D1.0%26trk%3Dx"
	mac := hmac.New(sha1.New, []byte("cs&ts"))
	mac.Write([]byte(base))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	want := "https://api.linkedin.com/v1/people/abc?trk=x&format=json&oauth_consumer_key=ck&oauth_nonce=n0nce" +
		"&oauth_signature_method=HMAC-SHA1&oauth_timestamp=1300000000&oauth_token=tk&oauth_version=1.0" +
		"&oauth_signature=" + SafeEncode(sig)
	assert.Equal(t, want, got)
}

func TestToURL_PreservesEncodedPath(t *testing.T) {
	t.Parallel()
	path := "/v1/people/url=" + SafeEncode("http://www.linkedin.com/in/x") + ":public:(id,first-name)"
	got, err := newTestSigner().ToURL(path, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, DefaultAPIURL+path+"?oauth_consumer_key=ck"), got)
}

func TestToURL_MalformedRequestURL(t *testing.T) {
	t.Parallel()
	_, err := newTestSigner().ToURL("/v1/people/abc?bad=%zz", nil)
	var cfgErr *clienterrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, "request url", cfgErr.Field)
}

func TestToURL_ConfigurationErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		apiURL string
		creds  Credentials
		field  string
	}{
		{"missing consumer key", DefaultAPIURL, Credentials{ConsumerSecret: "cs", Token: "tk"}, "consumer key"},
		{"missing consumer secret", DefaultAPIURL, Credentials{ConsumerKey: "ck", Token: "tk"}, "consumer secret"},
		{"missing token", DefaultAPIURL, Credentials{ConsumerKey: "ck", ConsumerSecret: "cs"}, "token"},
		{"relative api url", "api.linkedin.com", testCreds, "api url"},
		{"non http api url", "ftp://api.linkedin.com", testCreds, "api url"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewSigner(c.apiURL, c.creds, FixedStamper("n", 1)).ToURL("/v1/people/~", nil)
			var cfgErr *clienterrors.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, c.field, cfgErr.Field)
		})
	}
}

func TestToURL_EmptyTokenSecretAllowed(t *testing.T) {
	t.Parallel()
	creds := testCreds
	creds.TokenSecret = ""
	_, err := NewSigner(DefaultAPIURL, creds, FixedStamper("n", 1)).ToURL("/v1/people/~", nil)
	assert.NoError(t, err)
}

func TestBaseString_SortsByKeyThenValue(t *testing.T) {
	t.Parallel()
	params := Params{{"b", "2"}, {"a-b", "x"}, {"a", "2"}, {"a", "1"}}
	got := baseString("get", "https://h/p", params)
	assert.Equal(t, "GET&https%3A%2F%2Fh%2Fp&a%3D1%26a%3D2%26a-b%3Dx%26b%3D2", got)
}
