package php

import "fmt"

// InvalidInputError reports malformed, missing or out-of-domain user
// input, detected before (or while) establishing the state.
type InvalidInputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// PropertyLookupError reports an oracle query rejection, naming the
// offending property and state.
type PropertyLookupError struct {
	Property Property
	Fluid    string
	Spec     StateSpec
	Err      error
}

func (e *PropertyLookupError) Error() string {
	return fmt.Sprintf("property lookup %s for %s at %s: %v",
		e.Property, e.Fluid, e.Spec, e.Err)
}

func (e *PropertyLookupError) Unwrap() error { return e.Err }

// NotApplicableError reports a correlation requested on a result it is
// not defined for.
type NotApplicableError struct {
	Reason string
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("correlation not applicable: %s", e.Reason)
}

// DegenerateResultError reports a well-defined formula hitting an
// unrecoverable singularity.
type DegenerateResultError struct {
	Reason string
}

func (e *DegenerateResultError) Error() string {
	return fmt.Sprintf("degenerate result: %s", e.Reason)
}
