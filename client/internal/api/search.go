package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mycelian/linkedin/client/internal/oauth"
	"github.com/mycelian/linkedin/client/internal/transport"
	"github.com/mycelian/linkedin/client/internal/types"
)

// searchState tracks the out-of-network chain: a search either answers
// directly (initial) or hands back an indirection to follow (resolving).
type searchState int

const (
	searchInitial searchState = iota
	searchResolving
)

// Search runs a people search. When fields request the standard profile
// request and the first answer is an indirection, exactly one follow-up GET
// is made with the original parameters and the supplied headers, and its
// result is returned instead.
func Search(ctx context.Context, signer URLSigner, tr transport.Transport, req types.SearchRequest) (types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := searchParams(req)
	chained := strings.Contains(req.Fields, types.ProfileRequestField)

	state := searchInitial
	path := withFields(searchPath, req.Fields)
	var header http.Header
	for {
		url, err := signer.ToURL(path, params)
		if err != nil {
			return nil, err
		}
		resp, err := tr.Get(ctx, url, header)
		if err != nil {
			return nil, err
		}

		switch state {
		case searchInitial:
			result, err := Interpret(opSearch, resp)
			if err != nil || !chained {
				return result, err
			}
			ind, ok := indirection(resp.Body)
			if !ok {
				return result, nil
			}
			path, header = ind.URL, indirectionHeader(ind)
			state = searchResolving
			log.Debug().Str("operation", opSearchResolve).Str("path", path).Int("headers", len(ind.Headers.Values)).Msg("following out-of-network indirection")

		case searchResolving:
			return Interpret(opSearchResolve, resp)
		}
	}
}

func indirection(body []byte) (types.Indirection, bool) {
	var ind types.Indirection
	if err := json.Unmarshal(body, &ind); err != nil || ind.URL == "" {
		return types.Indirection{}, false
	}
	return ind, true
}

func indirectionHeader(ind types.Indirection) http.Header {
	h := http.Header{}
	for _, v := range ind.Headers.Values {
		if v.Name != "" {
			h.Add(v.Name, v.Value)
		}
	}
	return h
}

func searchParams(req types.SearchRequest) oauth.Params {
	params := jsonFormat()
	setString(&params, "keywords", req.Keywords)
	setString(&params, "first-name", req.FirstName)
	setString(&params, "last-name", req.LastName)
	setString(&params, "company-name", req.CompanyName)
	setBool(&params, "current-company", req.CurrentCompany)
	setString(&params, "title", req.Title)
	setBool(&params, "current-title", req.CurrentTitle)
	setString(&params, "school-name", req.SchoolName)
	setBool(&params, "current-school", req.CurrentSchool)
	setString(&params, "country-code", req.CountryCode)
	setString(&params, "postal-code", req.PostalCode)
	setPositive(&params, "distance", req.Distance)
	setString(&params, "facets", req.Facets)
	for _, f := range facetValues(req.Facet) {
		params.Add("facet", f)
	}
	setPositive(&params, "start", req.Start)
	setPositive(&params, "count", req.Count)
	setString(&params, "sort", req.Sort)
	return params
}

// facetValues pairs values with FacetCategories by position. Values past the
// last category are dropped and empty values are skipped.
func facetValues(values []string) []string {
	n := min(len(values), len(types.FacetCategories))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if values[i] == "" {
			continue
		}
		out = append(out, types.FacetCategories[i]+","+values[i])
	}
	return out
}
