// Package selection evaluates team diversity and searches the candidate pool for diverse teams.
package selection

import "fmt"

// Error reports a selection request that cannot be served, such as an
// unknown strategy name.
type Error struct {
	Strategy string // requested strategy, if any
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Strategy != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Strategy)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
