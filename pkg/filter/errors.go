package filter

import "fmt"

// FilterError reports a collaborator failure during one marker
// substitution. These never escape Apply; they are logged and the marker
// degrades to an inline error fragment.
type FilterError struct {
	Stage   string
	Message string
	Err     error
}

func (e *FilterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter %s: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("filter %s: %s", e.Stage, e.Message)
}

func (e *FilterError) Unwrap() error { return e.Err }

func NewFilterError(stage, message string, err error) *FilterError {
	return &FilterError{Stage: stage, Message: message, Err: err}
}
