package analyzer

import (
	"time"

	"github.com/google/uuid"

	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/lattice"
)

// Report is the outcome of analyzing one program.
type Report struct {
	RunID  uuid.UUID
	Path   string
	Strict bool
	// Functions are in program order.
	Functions   []*Function
	Diagnostics *diag.Bag
}

// Function is the outcome of one function pass.
type Function struct {
	Name string
	// Result is nil when the pass failed with an internal error. A
	// skipped pass carries only its budget diagnostic.
	Result  *flow.Result
	Err     error
	Elapsed time.Duration
}

// Skipped reports whether the pass gave up before propagating.
func (f *Function) Skipped() bool {
	return f.Err != nil
}

// Function returns the pass over the body named name.
func (r *Report) Function(name string) (*Function, bool) {
	for _, fn := range r.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}

// Errors returns the internal errors of all passes.
func (r *Report) Errors() []error {
	var errs []error
	for _, fn := range r.Functions {
		if fn.Err != nil && diag.IsInternal(fn.Err) {
			errs = append(errs, fn.Err)
		}
	}
	return errs
}

// Failed reports whether the program should be rejected: it has an error
// diagnostic, an internal error, or in strict mode any warning.
func (r *Report) Failed() bool {
	return r.Diagnostics.Failed(r.Strict) || len(r.Errors()) > 0
}

// TypeAt returns the narrowed type of a variable on entry to a node.
func (r *Report) TypeAt(function string, node int, name string) (lattice.Type, bool) {
	fn, ok := r.Function(function)
	if !ok || fn.Result == nil {
		return nil, false
	}
	return fn.Result.TypeAt(flow.NodeID(node), name)
}
