package diag

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// ErrBudgetExceeded aborts a single function pass whose CFG is larger than
// the configured limit. Other functions are unaffected.
var ErrBudgetExceeded = stderrors.New("analysis budget exceeded")

// InternalError is a violated engine contract: a malformed CFG or a type
// that bypassed normalization. It aborts the pass and is never reported as
// a user-facing diagnostic.
type InternalError struct {
	Function string
	Node     int
	cause    error
}

// Internalf creates an InternalError carrying a stack trace.
func Internalf(function string, node int, format string, args ...any) *InternalError {
	return &InternalError{
		Function: function,
		Node:     node,
		cause:    errors.Errorf(format, args...),
	}
}

// AsInternal wraps a recovered panic value as an InternalError.
func AsInternal(function string, node int, recovered any) *InternalError {
	var cause error
	switch r := recovered.(type) {
	case *InternalError:
		return r
	case error:
		cause = errors.WithStack(r)
	default:
		cause = errors.Errorf("%v", r)
	}
	return &InternalError{Function: function, Node: node, cause: cause}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s at node %d: %s", e.Function, e.Node, e.cause)
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// Format prints the stack trace of the cause with %+v.
func (e *InternalError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "internal error in %s at node %d: %+v", e.Function, e.Node, e.cause)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

// IsInternal reports whether err is or wraps an InternalError.
func IsInternal(err error) bool {
	var ie *InternalError
	return stderrors.As(err, &ie)
}
