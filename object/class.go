package object

import (
	"sort"
	"sync"
)

// ---------------------------------------------------------------------------
// Class: construction sugar over a method table
// ---------------------------------------------------------------------------

// Class bundles a method table with an ordered field declaration list
// for convenient construction. It is sugar outside the dispatch core:
// at dispatch time an instance is identified by its MethodTable alone,
// and nothing ever traverses from one class to another.
type Class struct {
	Name   string
	Fields []FieldInit // declared order; initializers are the defaults

	table *MethodTable
}

// NewClass creates a class with the given field declarations and
// methods. The method table is built here, exactly once, and shared by
// every instance the class constructs.
func NewClass(name string, fields []FieldInit, defs []MethodDef) *Class {
	c := &Class{Name: name, Fields: fields}
	c.table = NewMethodTable(defs)
	c.table.class = c
	return c
}

// Table returns the class's shared method table.
func (c *Class) Table() *MethodTable {
	return c.table
}

// FieldNames returns the declared field names in order.
func (c *Class) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}

// New constructs an instance, binding args positionally to the
// declared fields. Fields beyond the given args fall back to their
// declared initializers, which still see earlier-bound fields.
func (c *Class) New(args ...Value) *Instance {
	inits := make([]FieldInit, len(c.Fields))
	copy(inits, c.Fields)
	for i := range inits {
		if i < len(args) {
			inits[i].Init = Lit(args[i])
		}
	}
	return New(c.table, inits)
}

// ---------------------------------------------------------------------------
// ClassTable: registered classes by name
// ---------------------------------------------------------------------------

// ClassTable manages registered classes by name.
// It's thread-safe for concurrent access.
type ClassTable struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewClassTable creates a new empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{
		classes: make(map[string]*Class),
	}
}

// Register adds a class to the table.
// Returns the previous class with this name, or nil.
func (ct *ClassTable) Register(c *Class) *Class {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	old := ct.classes[c.Name]
	ct.classes[c.Name] = c
	return old
}

// Lookup returns the class with the given name.
func (ct *ClassTable) Lookup(name string) (*Class, bool) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	c, ok := ct.classes[name]
	return c, ok
}

// Names returns all registered class names, sorted.
func (ct *ClassTable) Names() []string {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	names := make([]string, 0, len(ct.classes))
	for name := range ct.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (ct *ClassTable) Len() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.classes)
}
