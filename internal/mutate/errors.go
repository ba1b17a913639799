// Package mutate implements the closed set of document mutations. Every
// operation either leaves the document satisfying all referential invariants
// or returns an error having changed nothing.
package mutate

import "fmt"

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ValidationError rejects a mutation that would violate a document rule
// (blank title, out-of-range value, cross-goal reorder). The prior value is
// always retained.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func errEmptyTitle(field string) error {
	return ValidationError{Field: field, Reason: "cannot be empty"}
}

func errBadDate(field string) error {
	return ValidationError{Field: field, Reason: "must be YYYY-MM-DD or empty"}
}
