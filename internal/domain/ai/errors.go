package ai

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the provider credential is not configured.
// Checked before any outbound call is attempted.
var ErrMissingAPIKey = errors.New("ai api key not configured")

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// SchemaError marks a provider reply that could not be parsed into the
// required four-field shape. Distinct from transport or provider failures.
type SchemaError struct {
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *SchemaError) Unwrap() error { return e.Err }

// IsSchemaError reports whether err is (or wraps) a schema violation.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
