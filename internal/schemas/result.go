package schemas

import (
	"fmt"
	"strings"
)

// Violation is a single failed constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// Result collects violations in declaration order.
type Result struct {
	Violations []Violation `json:"violations,omitempty"`
}

// Add records a violation.
func (r *Result) Add(field, message string) {
	r.Violations = append(r.Violations, Violation{Field: field, Message: message})
}

// Merge appends every violation from other, prefixing field paths.
func (r *Result) Merge(prefix string, other *Result) {
	for _, v := range other.Violations {
		if prefix != "" {
			v.Field = prefix + "." + v.Field
		}
		r.Violations = append(r.Violations, v)
	}
}

// Valid reports whether no constraint failed.
func (r *Result) Valid() bool {
	return len(r.Violations) == 0
}

// First returns the violation shown to the user, or nil.
func (r *Result) First() *Violation {
	if len(r.Violations) == 0 {
		return nil
	}
	v := r.Violations[0]
	return &v
}

// Details renders every violation as "field: message".
func (r *Result) Details() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.String()
	}
	return out
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Violations: r.Violations}
}

// ValidationError carries every violation of a rejected payload.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Violations[0])
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("validation failed (%d violations): %s", len(e.Violations), strings.Join(parts, "; "))
}

// Details renders every violation as "field: message".
func (e *ValidationError) Details() []string {
	r := Result{Violations: e.Violations}
	return r.Details()
}
