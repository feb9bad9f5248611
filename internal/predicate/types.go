// Package predicate provides comparison predicate parsing and matching.
package predicate

import "fmt"

// Operator for value comparison.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "<>"
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
)

// Raw is a parsed but unresolved clause: an operator and the value text.
type Raw struct {
	Operator Operator
	Value    string
}

// Clause is a single resolved comparison term.
type Clause[T any] struct {
	Operator Operator
	Value    T
}

// FormatError is returned when a predicate matches neither the one-clause
// nor the two-clause form.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("the predicate format cannot be recognized: %q", e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnknownOperatorError means an Operator outside the supported set reached
// evaluation. Parse never produces one.
type UnknownOperatorError struct {
	Operator Operator
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", string(e.Operator))
}
