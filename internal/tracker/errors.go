package tracker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an operation references a record id that
// is not in the local collection.
var ErrNotFound = errors.New("job record not found")

// ValidationError maps JSON field names to human-readable messages.
// It is recovered locally; no I/O happens when validation fails.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PermissionError reports a mutation rejected by the permission rules
// before any I/O was attempted.
type PermissionError struct {
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("not allowed to %s this job record", e.Action)
}
