package rating

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports required options that were not supplied. It is
// returned before any document is built or any network call is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required options: %s", strings.Join(e.Missing, ", "))
}

// EncodingError reports an option value with no entry in its code table.
type EncodingError struct {
	Table string
	Key   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Table, e.Key)
}

// IsValidation - signals that the error is a missing required option.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsEncoding - signals that the error is an unknown code-table key.
func IsEncoding(err error) bool {
	var eerr *EncodingError
	return errors.As(err, &eerr)
}
