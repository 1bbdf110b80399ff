package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound covers entities that are absent or not owned by the caller.
// Ownership failures are deliberately indistinguishable from absence.
var ErrNotFound = errors.New("not found")

// ValidationError reports a publish attempt on an incomplete entity, naming
// the required fields that are still empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
