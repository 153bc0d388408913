package checkout

import "errors"

var (
	// ErrInvalidConfig is returned when the client configuration is incomplete
	ErrInvalidConfig = errors.New("invalid checkout client config")

	// ErrNetworkError is returned when the API could not be reached at all
	ErrNetworkError = errors.New("network error")

	// ErrRequestFailed is returned when the API answered with status:false
	ErrRequestFailed = errors.New("request failed")

	// ErrNotFound is returned when the mutation target does not exist
	ErrNotFound = errors.New("cart item not found")
)
