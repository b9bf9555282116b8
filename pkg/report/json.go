package report

import (
	"encoding/json"
	"io"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/diag"
	"github.com/vito/narrow/pkg/lattice"
)

// Document is the JSON form of a report.
type Document struct {
	RunID       string       `json:"run_id"`
	Path        string       `json:"path"`
	Strict      bool         `json:"strict"`
	Failed      bool         `json:"failed"`
	Functions   []Function   `json:"functions"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

type Function struct {
	Name      string `json:"name"`
	Nodes     int    `json:"nodes"`
	Reachable int    `json:"reachable"`
	Skipped   bool   `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Diagnostic struct {
	Code     string         `json:"code"`
	Severity string         `json:"severity"`
	Location diag.Location  `json:"location"`
	Message  string         `json:"message"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// NewDocument converts a report. Types appear in their printed form.
func NewDocument(r *analyzer.Report) Document {
	doc := Document{
		RunID:       r.RunID.String(),
		Path:        r.Path,
		Strict:      r.Strict,
		Failed:      r.Failed(),
		Functions:   []Function{},
		Diagnostics: []Diagnostic{},
	}
	for _, fn := range r.Functions {
		f := Function{Name: fn.Name, Skipped: fn.Skipped()}
		if fn.Result != nil {
			f.Nodes = len(fn.Result.Graph.Nodes)
			f.Reachable = len(fn.Result.In)
		}
		if fn.Err != nil {
			f.Error = fn.Err.Error()
		}
		doc.Functions = append(doc.Functions, f)
	}
	for _, d := range r.Diagnostics.All() {
		doc.Diagnostics = append(doc.Diagnostics, NewDiagnostic(d))
	}
	return doc
}

func NewDiagnostic(d diag.Diagnostic) Diagnostic {
	return Diagnostic{
		Code:     d.Kind.Code(),
		Severity: d.Severity().String(),
		Location: d.Location,
		Message:  d.Message,
		Payload:  payload(d.Payload),
	}
}

func payload(p diag.Payload) map[string]any {
	switch p := p.(type) {
	case diag.NonExhaustivePayload:
		return map[string]any{"residual": typeString(p.Residual)}
	case diag.OverloadPayload:
		return map[string]any{
			"callee":     p.Callee,
			"args":       typeStrings(p.Args),
			"candidates": nonNil(p.Candidates),
		}
	case diag.ConstraintPayload:
		return map[string]any{
			"type_var":   p.TypeVar,
			"lower":      typeString(p.Lower),
			"constraint": typeString(p.Constraint),
		}
	case diag.UnderconstrainedPayload:
		return map[string]any{"type_var": p.TypeVar}
	case diag.AssignabilityPayload:
		return map[string]any{
			"target":   p.Target,
			"source":   typeString(p.Source),
			"declared": typeString(p.Declared),
		}
	case diag.BudgetPayload:
		return map[string]any{"nodes": p.Nodes, "limit": p.Limit}
	}
	return nil
}

func typeString(t lattice.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func typeStrings(ts []lattice.Type) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = typeString(t)
	}
	return out
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// JSON writes the report as an indented JSON document.
func JSON(w io.Writer, r *analyzer.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r))
}
