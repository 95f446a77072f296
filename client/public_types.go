package client

import (
	"github.com/mycelian/linkedin/client/internal/oauth"
	"github.com/mycelian/linkedin/client/internal/transport"
	"github.com/mycelian/linkedin/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	ProfileRequest     = types.ProfileRequest
	ConnectionsRequest = types.ConnectionsRequest
	SearchRequest      = types.SearchRequest
	ProfileType        = types.ProfileType

	// Responses
	Result      = types.Result
	Indirection = types.Indirection

	// Signing
	Credentials = oauth.Credentials
	Stamp       = oauth.Stamp
	Stamper     = oauth.Stamper
	StamperFunc = oauth.StamperFunc

	// Transport collaborator
	Transport = transport.Transport
	Response  = transport.Response
)

const (
	ProfileStandard     = types.ProfileStandard
	ProfilePublic       = types.ProfilePublic
	ProfileRequestField = types.ProfileRequestField
)

// FacetCategories returns the facet labels that search pairs, by position,
// with SearchRequest.Facet values.
func FacetCategories() []string {
	return append([]string(nil), types.FacetCategories...)
}

// FixedStamper returns a Stamper that always yields nonce and timestamp.
func FixedStamper(nonce string, timestamp int64) Stamper {
	return oauth.FixedStamper(nonce, timestamp)
}

// SafeEncode percent-encodes value per RFC 3986 for use inside a path segment.
func SafeEncode(value string) string { return oauth.SafeEncode(value) }

// Bool returns a pointer to b, for the tri-state SearchRequest flags.
func Bool(b bool) *bool { return &b }
