package types

// ------------------------------
// Response Types
// ------------------------------

// Result is a decoded response body: map[string]any for objects, []any for
// arrays, with numbers kept as json.Number.
type Result = any

// ErrorBody mirrors the error document returned with 4xx/5xx statuses.
type ErrorBody struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Status    int    `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// HeaderValue is one header the caller must replay.
type HeaderValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Indirection is returned by people search for out-of-network profiles:
// the profile must be re-fetched from URL carrying Headers.
type Indirection struct {
	Headers struct {
		Total  int           `json:"_total"`
		Values []HeaderValue `json:"values"`
	} `json:"headers"`
	URL string `json:"url"`
}
