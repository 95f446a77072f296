package client

import (
	"errors"

	clienterrors "github.com/mycelian/linkedin/client/internal/errors"
)

// Failure types re-exported so callers compare against a single symbol.
type (
	// ConfigurationError reports missing credentials or invalid options,
	// always before any network call.
	ConfigurationError = clienterrors.ConfigurationError
	// RemoteAPIError is returned for every HTTP status >= 400.
	RemoteAPIError = clienterrors.RemoteAPIError
	// DecodeError reports a malformed body on a successful status.
	DecodeError = clienterrors.DecodeError
	// TransportError reports a request that never got a response.
	TransportError = clienterrors.TransportError
)

// IsRemoteAPIError reports whether err carries a *RemoteAPIError.
func IsRemoteAPIError(err error) bool {
	var e *RemoteAPIError
	return errors.As(err, &e)
}

// IsConfigurationError reports whether err carries a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// StatusCode returns the HTTP status of a *RemoteAPIError, or 0.
func StatusCode(err error) int {
	var e *RemoteAPIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
