package types

// ------------------------------
// Request Types
// ------------------------------

// ProfileRequest selects one member profile. URL wins over ID; with neither
// the authenticated member ("~") is returned.
type ProfileRequest struct {
	ID       string
	URL      string
	Fields   string // field selector such as "(id,first-name,last-name)", passed through verbatim
	Type     ProfileType
	Language string // Accept-Language header value
}

// ConnectionsRequest pages through the authenticated member's connections.
// Zero values are left out of the query.
type ConnectionsRequest struct {
	Fields        string
	Start         int
	Count         int
	Modified      string // "new" or "updated"
	ModifiedSince string // epoch milliseconds
}

// SearchRequest holds people-search parameters. Empty strings, non-positive
// ints and nil booleans are left out of the query.
type SearchRequest struct {
	Fields         string
	Keywords       string
	FirstName      string
	LastName       string
	CompanyName    string
	CurrentCompany *bool
	Title          string
	CurrentTitle   *bool
	SchoolName     string
	CurrentSchool  *bool
	CountryCode    string
	PostalCode     string
	Distance       int
	Facets         string   // comma separated facet names to return
	Facet          []string // values paired by position with FacetCategories
	Start          int
	Count          int
	Sort           string
}
