package diag

import (
	"sort"
	"sync"
)

// Bag collects diagnostics. It is safe for concurrent use so that parallel
// function passes can share one.
type Bag struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
	counts      [Error + 1]int
}

func NewBag() *Bag {
	return &Bag{}
}

// Add appends diagnostics to the bag.
func (b *Bag) Add(ds ...Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, d := range ds {
		b.diagnostics = append(b.diagnostics, d)
		b.counts[d.Severity()]++
	}
}

// Count returns the number of diagnostics of a severity.
func (b *Bag) Count(s Severity) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[s]
}

// Len returns the number of diagnostics.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.diagnostics)
}

// Failed reports whether the bag contains errors, or in strict mode any
// warning.
func (b *Bag) Failed(strict bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.counts[Error] > 0 {
		return true
	}
	return strict && b.counts[Warning] > 0
}

// All returns a copy of the diagnostics ordered by function, node, then
// insertion.
func (b *Bag) All() []Diagnostic {
	b.mu.Lock()
	out := make([]Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	b.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].Location, out[j].Location
		if li.Function != lj.Function {
			return li.Function < lj.Function
		}
		return li.Node < lj.Node
	})
	return out
}

// OfKind returns the diagnostics of one kind, ordered as All.
func (b *Bag) OfKind(k Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.All() {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}
