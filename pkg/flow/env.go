package flow

import (
	"sort"

	"github.com/vito/narrow/pkg/lattice"
)

// Env maps variables to their narrowed types at one program point. It is
// never mutated; With returns a new Env.
type Env struct {
	vars map[string]lattice.Type
}

// NewEnv creates an environment from bindings.
func NewEnv(bindings map[string]lattice.Type) Env {
	vars := make(map[string]lattice.Type, len(bindings))
	for k, v := range bindings {
		vars[k] = v
	}
	return Env{vars: vars}
}

// Lookup returns the binding of name.
func (e Env) Lookup(name string) (lattice.Type, bool) {
	t, ok := e.vars[name]
	return t, ok
}

// With returns a copy of e with name rebound to t.
func (e Env) With(name string, t lattice.Type) Env {
	vars := make(map[string]lattice.Type, len(e.vars)+1)
	for k, v := range e.vars {
		vars[k] = v
	}
	vars[name] = t
	return Env{vars: vars}
}

// Names returns the bound variables, sorted.
func (e Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings.
func (e Env) Len() int {
	return len(e.vars)
}

// Equal reports whether both environments bind the same variables to the
// same types. Types are interned, so identity is equality.
func (e Env) Equal(other Env) bool {
	if len(e.vars) != len(other.vars) {
		return false
	}
	for k, v := range e.vars {
		if ov, ok := other.vars[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Bindings returns a copy of the bindings.
func (e Env) Bindings() map[string]lattice.Type {
	out := make(map[string]lattice.Type, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}

// join is the pointwise join of envs. A variable bound on only some paths
// is joined with fallback(name) for the others.
func join(u *lattice.Universe, envs []Env, fallback func(string) lattice.Type) Env {
	if len(envs) == 1 {
		return envs[0]
	}
	names := map[string]bool{}
	for _, e := range envs {
		for k := range e.vars {
			names[k] = true
		}
	}
	vars := make(map[string]lattice.Type, len(names))
	for name := range names {
		ts := make([]lattice.Type, 0, len(envs))
		for _, e := range envs {
			if t, ok := e.vars[name]; ok {
				ts = append(ts, t)
			} else {
				ts = append(ts, fallback(name))
			}
		}
		vars[name] = u.Union(ts...)
	}
	return Env{vars: vars}
}
