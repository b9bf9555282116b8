package syntax

import (
	"errors"
	"fmt"
)

func (e errList) Unwrap() []error {
	return e
}

// Error is a syntax or resolution error at a byte offset of the source.
type Error struct {
	Source string
	Pos    int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%q: column %d: %s", e.Source, e.Pos+1, e.Msg)
}

// syntaxError converts a parse failure into an *Error pointing at the first
// failing offset.
func syntaxError(src string, err error) error {
	var pe *parserError
	if errors.As(err, &pe) {
		return &Error{Source: src, Pos: pe.pos.offset, Msg: pe.Inner.Error()}
	}
	return &Error{Source: src, Msg: err.Error()}
}

// list collects first and the i'th value of each rest sequence.
func list[T any](first, rest any, i int) []T {
	vals := []T{first.(T)}
	seqs, _ := rest.([]any)
	for _, seq := range seqs {
		vals = append(vals, seq.([]any)[i].(T))
	}
	return vals
}

// optional unwraps a list that may not have matched.
func optional[T any](v any) []T {
	if v == nil {
		return nil
	}
	return v.([]T)
}

// fold joins a left-associative chain of conditions.
func fold(first, rest any, join func(l, r CondNode) CondNode) CondNode {
	cond := first.(CondNode)
	seqs, _ := rest.([]any)
	for _, seq := range seqs {
		cond = join(cond, seq.([]any)[3].(CondNode))
	}
	return cond
}
