package lattice

import (
	"fmt"
	"sort"
	"sync"
)

// Class is a nominal tag declared in the catalogue, e.g. a class usable on
// the right of instanceof.
type Class struct {
	Name    string
	Parents []string
	// Instance is the tagged object shape of instances, if declared.
	Instance Type
}

// Hierarchy records nominal tags and their parents.
type Hierarchy struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

func NewHierarchy() *Hierarchy {
	return &Hierarchy{classes: make(map[string]*Class)}
}

// Declare adds a class. Parents must already be declared.
func (h *Hierarchy) Declare(class *Class) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.classes[class.Name]; exists {
		return fmt.Errorf("class %s already declared", class.Name)
	}
	for _, p := range class.Parents {
		if _, ok := h.classes[p]; !ok {
			return fmt.Errorf("class %s extends undeclared class %s", class.Name, p)
		}
	}
	h.classes[class.Name] = class
	return nil
}

// Class returns a declared class.
func (h *Hierarchy) Class(name string) (*Class, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.classes[name]
	return c, ok
}

// Names returns all declared class names, sorted.
func (h *Hierarchy) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.classes))
	for n := range h.classes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Extends reports whether sub is tag or transitively extends it.
func (h *Hierarchy) Extends(sub, tag string) bool {
	if sub == tag {
		return true
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.extends(sub, tag, map[string]bool{})
}

func (h *Hierarchy) extends(sub, tag string, seen map[string]bool) bool {
	if sub == tag {
		return true
	}
	if seen[sub] {
		return false
	}
	seen[sub] = true
	c, ok := h.classes[sub]
	if !ok {
		return false
	}
	for _, p := range c.Parents {
		if h.extends(p, tag, seen) {
			return true
		}
	}
	return false
}

// DeclareClass declares a class and its instance shape in the universe.
// The instance shape is the given properties merged with every parent's
// instance properties, tagged with the class name.
func (u *Universe) DeclareClass(name string, parents []string, props ...Prop) (Type, error) {
	var all []Prop
	for _, p := range parents {
		parent, ok := u.classes.Class(p)
		if !ok {
			return nil, fmt.Errorf("class %s extends undeclared class %s", name, p)
		}
		if obj, ok := parent.Instance.(*Object); ok {
			all = append(all, obj.Props()...)
		}
	}
	all = append(all, props...)
	instance := u.Object(name, all...)
	if err := u.classes.Declare(&Class{Name: name, Parents: parents, Instance: instance}); err != nil {
		return nil, err
	}
	if u.subtypes != nil {
		u.subtypes.Purge()
	}
	return instance, nil
}
