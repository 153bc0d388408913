package errors

// Error code constants, used as the machine-readable half of log entries and
// parse results. The wire format itself only carries {status, msg}.

const (
	// QueryFailed covers store or network level failures: the data could not
	// be read or written at all.
	QueryFailed = "QUERY_FAILED"

	// NotFound covers mutations whose target entry does not exist.
	NotFound = "NOT_FOUND"

	// ValidationFailed covers malformed or rejected input.
	ValidationFailed = "VALIDATION_FAILED"

	// Internal covers everything unexpected.
	Internal = "INTERNAL_SERVER_ERROR"
)
