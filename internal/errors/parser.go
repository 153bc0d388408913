package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the parsed classification of a lower-layer error.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError classifies an error from the store layer into the taxonomy.
// Driver errors never reach the client verbatim; callers pick the
// user-facing message per route and use the code for logging.
func ParseError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: Internal, Message: "unexpected server error"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: NotFound, Message: "requested entry does not exist"}
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection reset") {
		return ErrorInfo{Code: QueryFailed, Message: "store unreachable"}
	}

	if strings.Contains(errStr, "constraint") || strings.Contains(errStr, "null value") {
		return ErrorInfo{Code: ValidationFailed, Message: "input rejected by store"}
	}

	return ErrorInfo{Code: QueryFailed, Message: "store query failed"}
}
