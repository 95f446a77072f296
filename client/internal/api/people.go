package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mycelian/linkedin/client/internal/oauth"
	"github.com/mycelian/linkedin/client/internal/transport"
	"github.com/mycelian/linkedin/client/internal/types"
)

// GetProfile fetches a member profile by public URL, member ID, or the
// authenticated member when neither is given.
func GetProfile(ctx context.Context, signer URLSigner, tr transport.Transport, req types.ProfileRequest) (types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, profileType := profilePath(req)

	url, err := signer.ToURL(path, jsonFormat())
	if err != nil {
		return nil, err
	}
	var header http.Header
	if req.Language != "" {
		header = http.Header{}
		header.Set("Accept-Language", req.Language)
	}

	log.Debug().Str("operation", opGetProfile).Str("profile_type", string(profileType)).Str("path", path).Msg("dispatching")
	resp, err := tr.Get(ctx, url, header)
	if err != nil {
		return nil, err
	}
	return Interpret(opGetProfile, resp)
}

// profilePath picks exactly one of the url=, id= or ~ selectors.
func profilePath(req types.ProfileRequest) (string, types.ProfileType) {
	profileType := req.Type
	if profileType == "" {
		profileType = types.ProfileStandard
	}
	path := peoplePath
	switch {
	case req.URL != "":
		path += "url=" + oauth.SafeEncode(req.URL) + ":public"
		profileType = types.ProfilePublic
	case req.ID != "":
		path += "id=" + req.ID
	default:
		path += "~"
	}
	return withFields(path, req.Fields), profileType
}

// GetConnections lists the authenticated member's connections.
func GetConnections(ctx context.Context, signer URLSigner, tr transport.Transport, req types.ConnectionsRequest) (types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := jsonFormat()
	setPositive(&params, "start", req.Start)
	setPositive(&params, "count", req.Count)
	setString(&params, "modified", req.Modified)
	setString(&params, "modified-since", req.ModifiedSince)

	url, err := signer.ToURL(withFields(connectionsPath, req.Fields), params)
	if err != nil {
		return nil, err
	}
	resp, err := tr.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return Interpret(opGetConnections, resp)
}
