package client

import (
	"context"

	"github.com/mycelian/linkedin/client/internal/api"
	"github.com/mycelian/linkedin/client/internal/oauth"
	"github.com/mycelian/linkedin/client/internal/transport"
)

// People exposes profile lookup, connections and people search.
type People struct {
	signer    *oauth.Signer
	transport transport.Transport
}

// GetProfile fetches a profile by public URL, by member ID, or the
// authenticated member's own profile when both are empty.
func (p *People) GetProfile(ctx context.Context, req ProfileRequest) (Result, error) {
	res, err := api.GetProfile(ctx, p.signer, p.transport, req)
	observe("get_profile", err)
	return res, err
}

// GetConnections lists the authenticated member's first-degree connections.
func (p *People) GetConnections(ctx context.Context, req ConnectionsRequest) (Result, error) {
	res, err := api.GetConnections(ctx, p.signer, p.transport, req)
	observe("get_connections", err)
	return res, err
}

// Search runs a people search. Requesting the api-standard-profile-request
// field may cost a second round trip for out-of-network matches.
func (p *People) Search(ctx context.Context, req SearchRequest) (Result, error) {
	res, err := api.Search(ctx, p.signer, p.transport, req)
	observe("search", err)
	return res, err
}
