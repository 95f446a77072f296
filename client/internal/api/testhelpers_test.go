package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mycelian/linkedin/client/internal/oauth"
	"github.com/mycelian/linkedin/client/internal/transport"
)

const (
	sampleString = `{"id":"abc","firstName":"Clair","numConnections":42}`
	errorString  = `{"errorCode":0,"message":"Invalid access token.","requestId":"R1","status":401,"timestamp":1370000000000}`
	outString    = `{"headers": { "_total": 1, "values": [{ "name": "x-li-auth-token",
				"value": "NAME_SEARCH:-Ogn" }] }, "url": "/v1/people/oAFz-3CZyv"}`
)

func testSigner() *oauth.Signer {
	creds := oauth.Credentials{ConsumerKey: "ck", ConsumerSecret: "cs", Token: "tk", TokenSecret: "ts"}
	return oauth.NewSigner(oauth.DefaultAPIURL, creds, oauth.FixedStamper("n0nce", 1300000000))
}

func mustURL(t *testing.T, path string, params oauth.Params) string {
	t.Helper()
	u, err := testSigner().ToURL(path, params)
	require.NoError(t, err)
	return u
}

func decoded(t *testing.T, body string) any {
	t.Helper()
	out, err := decode([]byte(body))
	require.NoError(t, err)
	return out
}

type recordedCall struct {
	url    string
	header http.Header
}

// fakeTransport replays canned responses in order and records every GET.
type fakeTransport struct {
	responses []*transport.Response
	calls     []recordedCall
}

func (f *fakeTransport) Get(_ context.Context, url string, header http.Header) (*transport.Response, error) {
	f.calls = append(f.calls, recordedCall{url: url, header: header})
	if len(f.calls) > len(f.responses) {
		return nil, fmt.Errorf("unexpected request #%d to %s", len(f.calls), url)
	}
	return f.responses[len(f.calls)-1], nil
}

func (f *fakeTransport) Post(context.Context, string, []byte, http.Header) (*transport.Response, error) {
	return nil, fmt.Errorf("unexpected POST")
}

func (f *fakeTransport) Put(context.Context, string, []byte, http.Header) (*transport.Response, error) {
	return nil, fmt.Errorf("unexpected PUT")
}

func (f *fakeTransport) Delete(context.Context, string, []byte, http.Header) (*transport.Response, error) {
	return nil, fmt.Errorf("unexpected DELETE")
}

type httpReply = transport.Response

func reply(status int, body string) *httpReply {
	return &transport.Response{Status: status, Body: []byte(body), Header: http.Header{}}
}

// failingSigner always refuses to build URLs.
type failingSigner struct{ err error }

func (f failingSigner) ToURL(string, oauth.Params) (string, error) { return "", f.err }
