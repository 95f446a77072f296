package api

import (
	"strings"

	"github.com/mycelian/linkedin/client/internal/oauth"
)

// URLSigner builds signed request URLs. *oauth.Signer satisfies it.
type URLSigner interface {
	ToURL(path string, params oauth.Params) (string, error)
}

// Resource roots under the API URL.
const (
	peoplePath      = "/v1/people/"
	connectionsPath = "/v1/people/~/connections"
	searchPath      = "/v1/people-search"
)

// Operation names used in errors and logs.
const (
	opGetProfile     = "get profile"
	opGetConnections = "get connections"
	opSearch         = "search"
	opSearchResolve  = "search resolve"
)

// withFields appends the ":<fields>" selector when fields is set.
func withFields(path, fields string) string {
	if fields == "" {
		return path
	}
	return path + ":" + fields
}

func jsonFormat() oauth.Params {
	var p oauth.Params
	p.Set("format", "json")
	return p
}

func setString(p *oauth.Params, key, value string) {
	if strings.TrimSpace(value) != "" {
		p.Set(key, value)
	}
}

func setPositive(p *oauth.Params, key string, value int) {
	if value > 0 {
		p.SetInt(key, value)
	}
}

func setBool(p *oauth.Params, key string, value *bool) {
	if value != nil {
		p.SetBool(key, *value)
	}
}
