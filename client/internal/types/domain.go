package types

// ------------------------------
// Shared Vocabulary
// ------------------------------

// ProfileType distinguishes the standard (authenticated) profile from the
// public one addressed by URL.
type ProfileType string

const (
	ProfileStandard ProfileType = "standard"
	ProfilePublic   ProfileType = "public"
)

// ProfileRequestField is the field selector that makes people search answer
// out-of-network matches with an indirection instead of the final payload.
const ProfileRequestField = "api-standard-profile-request"

// FacetCategories labels search facet values by position.
var FacetCategories = []string{
	"location",
	"industry",
	"network",
	"language",
	"current-company",
	"past-company",
	"school",
}
