package lattice

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const internShards = 32

// DefaultSubtypeCacheSize bounds the subtype memo of a Universe.
const DefaultSubtypeCacheSize = 4096

// Universe owns the intern table of a lattice. It is safe for concurrent
// use: lookups take a shard read lock only, and interning the same
// structural type from several goroutines yields one canonical node.
type Universe struct {
	shards [internShards]internShard

	subtypes *lru.Cache[typePair, bool]
	classes  *Hierarchy
}

type internShard struct {
	mu    sync.RWMutex
	types map[string]Type
}

type typePair struct {
	sub, super Type
}

// Option configures a Universe.
type Option func(*Universe)

// WithSubtypeCacheSize sets the number of memoized subtype answers. A size
// of zero disables the memo.
func WithSubtypeCacheSize(size int) Option {
	return func(u *Universe) {
		if size <= 0 {
			u.subtypes = nil
			return
		}
		cache, err := lru.New[typePair, bool](size)
		if err == nil {
			u.subtypes = cache
		}
	}
}

// NewUniverse creates an empty lattice seeded with the primitive types.
func NewUniverse(opts ...Option) *Universe {
	u := &Universe{classes: NewHierarchy()}
	for i := range u.shards {
		u.shards[i].types = make(map[string]Type)
	}
	for _, p := range primitives {
		u.intern(p)
	}
	WithSubtypeCacheSize(DefaultSubtypeCacheSize)(u)
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Classes returns the nominal class hierarchy used by instanceof and tagged
// subtyping.
func (u *Universe) Classes() *Hierarchy {
	return u.classes
}

// Size returns the number of interned types.
func (u *Universe) Size() int {
	n := 0
	for i := range u.shards {
		sh := &u.shards[i]
		sh.mu.RLock()
		n += len(sh.types)
		sh.mu.RUnlock()
	}
	return n
}

func (u *Universe) intern(t Type) Type {
	key := t.Key()
	sh := &u.shards[xxhash.Sum64String(key)%internShards]

	sh.mu.RLock()
	existing, ok := sh.types[key]
	sh.mu.RUnlock()
	if ok {
		return existing
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if existing, ok := sh.types[key]; ok {
		return existing
	}
	sh.types[key] = t
	return t
}

// Lookup returns the canonical node for a key, if interned.
func (u *Universe) Lookup(key string) (Type, bool) {
	sh := &u.shards[xxhash.Sum64String(key)%internShards]
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	t, ok := sh.types[key]
	return t, ok
}

// Literal interns a unit type for a string, number or boolean value.
func (u *Universe) Literal(value any) Type {
	var base Type
	switch v := value.(type) {
	case string:
		base = String
	case bool:
		base = Boolean
	case float64:
		base = Number
	case int:
		value, base = float64(v), Number
	case int64:
		value, base = float64(v), Number
	default:
		panic(violation("unsupported literal value %T", value))
	}
	if f, ok := value.(float64); ok && math.IsNaN(f) {
		// NaN is not a unit type: NaN !== NaN.
		return Number
	}
	return u.intern(&Literal{
		base:  base,
		value: value,
		key:   "lit:" + base.Key() + ":" + formatLiteralValue(value),
	})
}

// Object interns an object shape. Later properties with a duplicate name
// replace earlier ones.
func (u *Universe) Object(tag string, props ...Prop) Type {
	byName := make(map[string]Prop, len(props))
	for _, p := range props {
		u.mustCanonical(p.Type)
		byName[p.Name] = p
	}
	sorted := make([]Prop, 0, len(byName))
	for _, p := range byName {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var key strings.Builder
	key.WriteString("obj<")
	key.WriteString(tag)
	key.WriteString(">{")
	for _, p := range sorted {
		key.WriteString(p.Name)
		if p.Optional {
			key.WriteByte('?')
		}
		if p.Readonly {
			key.WriteByte('!')
		}
		key.WriteByte(':')
		key.WriteString(p.Type.Key())
		key.WriteByte(';')
	}
	key.WriteByte('}')
	return u.intern(&Object{props: sorted, tag: tag, key: key.String()})
}

// Tuple interns a tuple type. Optional elements may only follow required
// ones; rest may be nil.
func (u *Universe) Tuple(elems []Elem, rest Type) Type {
	var key strings.Builder
	key.WriteString("tup[")
	seenOptional := false
	for i, e := range elems {
		u.mustCanonical(e.Type)
		if e.Optional {
			seenOptional = true
		} else if seenOptional {
			panic(violation("required tuple element %d follows an optional one", i))
		}
		if i > 0 {
			key.WriteByte(',')
		}
		key.WriteString(e.Type.Key())
		if e.Optional {
			key.WriteByte('?')
		}
	}
	if rest != nil {
		u.mustCanonical(rest)
		key.WriteString(",...")
		key.WriteString(rest.Key())
	}
	key.WriteByte(']')
	return u.intern(&Tuple{elems: append([]Elem(nil), elems...), rest: rest, key: key.String()})
}

// Array interns T[].
func (u *Universe) Array(elem Type) Type {
	return u.Tuple(nil, elem)
}

// Function interns a function type.
func (u *Universe) Function(params []Param, ret Type) Type {
	var key strings.Builder
	key.WriteString("fn(")
	for i, p := range params {
		u.mustCanonical(p.Type)
		if i > 0 {
			key.WriteByte(',')
		}
		switch {
		case p.Rest:
			key.WriteString("...")
		case p.Optional:
			key.WriteByte('?')
		}
		key.WriteString(p.Type.Key())
	}
	key.WriteString(")=>")
	u.mustCanonical(ret)
	key.WriteString(ret.Key())
	return u.intern(&Function{params: append([]Param(nil), params...), ret: ret, key: key.String()})
}

// TypeVar interns a type parameter. Type parameters are identified by name
// and constraint.
func (u *Universe) TypeVar(name string, constraint Type) *TypeVar {
	key := "var:" + name
	if constraint != nil {
		u.mustCanonical(constraint)
		key += "<:" + constraint.Key()
	}
	return u.intern(&TypeVar{name: name, constraint: constraint, key: key}).(*TypeVar)
}

// ContractViolation is raised (as a panic) when a type that was not produced
// by a Universe reaches the lattice, or a constructor is misused. Callers
// that drive whole passes recover it and report an internal error.
type ContractViolation struct {
	Msg string
}

func (c ContractViolation) Error() string {
	return "lattice contract violation: " + c.Msg
}

func violation(format string, args ...any) ContractViolation {
	return ContractViolation{Msg: fmt.Sprintf(format, args...)}
}

func (u *Universe) mustCanonical(t Type) {
	if t == nil {
		panic(violation("nil type"))
	}
	if t.Key() == "" {
		panic(violation("non-normalized %s type reached the lattice", t.Kind()))
	}
}
