package service

import (
	"errors"
	"fmt"

	"homematch/internal/utils"
)

// ErrNoPreferences is the terminal condition for a matching run: the buyer
// supplied neither structured constraints nor free-text statements.
var ErrNoPreferences = errors.New("no preferences supplied")

// ErrInvalidPreference marks a structured preference field with an invalid
// value, such as a negative budget.
var ErrInvalidPreference = errors.New("invalid preference value")

// GenerationError wraps a failure of the external text generator: provider,
// network, auth, or a malformed response. The pipeline recovers from it per
// item; it never aborts a whole batch.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed during %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ParseError marks a single generated listing that does not conform to the
// expected shape. The listing is skipped; generation continues.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparsable listing (%s): %s", e.Reason, utils.TruncateString(e.Raw, 80))
}
