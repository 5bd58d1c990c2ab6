package analyzer

import "fmt"

// NavigationError marks a page that failed to load: DNS or connection
// failures, and navigation timeouts. It short-circuits into a failed
// PageResult rather than propagating past the analysis boundary.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ElementReadError marks a single form or field that could not be read.
// It is never fatal: the offending element is skipped and the rest of
// the page keeps its partial results.
type ElementReadError struct {
	What string
	Err  error
}

func (e *ElementReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.What, e.Err)
}

func (e *ElementReadError) Unwrap() error { return e.Err }
