package cloudns

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned before any request is sent when the
// resolved auth ID or password is empty.
var ErrMissingCredentials = errors.New("missing credentials: set CLOUDNS_AUTH_ID and CLOUDNS_AUTH_PASSWORD or pass --auth-id and --auth-password")

// ErrorKind classifies why a request could not produce a usable response.
type ErrorKind string

const (
	// KindNetwork covers transport failures and HTTP error statuses.
	KindNetwork ErrorKind = "network"
	// KindMalformed covers bodies that are not valid JSON.
	KindMalformed ErrorKind = "malformed response"
)

// RequestError is returned once every retry attempt for an endpoint has
// been used up. It aborts the whole run rather than a single domain.
type RequestError struct {
	Kind     ErrorKind
	Endpoint string
	Attempts int
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s after %d attempts: %v", e.Endpoint, e.Kind, e.Attempts, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError is a response the API itself marked as failed. Whether it is
// fatal depends on the operation: a failed share is recorded per domain,
// a failed login ends the run.
type APIError struct {
	Endpoint    string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Description)
}

// IsFatal reports whether err must abort a batch instead of being
// recorded against a single domain.
func IsFatal(err error) bool {
	if errors.Is(err, ErrMissingCredentials) {
		return true
	}
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
