package object

// ---------------------------------------------------------------------------
// MethodTable: per-class immutable method mapping
// ---------------------------------------------------------------------------

// MethodFunc implements one method. The first parameter is always the
// instance whose dispatcher received the message; trailing dispatch
// arguments bind positionally to args. Arity is not checked: a method
// that indexes args beyond what the caller sent will panic, which is a
// declared limitation rather than a handled case.
type MethodFunc func(self *Instance, args []Value) Value

// MethodDef declares one method when building a MethodTable.
type MethodDef struct {
	Name string
	Fn   MethodFunc
}

// MethodTable is the shared per-class method mapping. It is built
// exactly once, is immutable afterwards, and is referenced (never
// copied) by every instance of its class. Its lifetime is independent
// of any instance.
type MethodTable struct {
	methods map[Selector]MethodFunc
	names   []string // declaration order of winning defs
	class   *Class   // backref, nil for tables built outside a Class
}

// NewMethodTable builds a method table from an ordered def list.
// Duplicate names follow the first-match convention: the first
// declaration wins and later ones are silently unreachable.
func NewMethodTable(defs []MethodDef) *MethodTable {
	mt := &MethodTable{
		methods: make(map[Selector]MethodFunc, len(defs)),
		names:   make([]string, 0, len(defs)),
	}
	for _, d := range defs {
		sel := Intern(d.Name)
		if _, exists := mt.methods[sel]; exists {
			continue
		}
		mt.methods[sel] = d.Fn
		mt.names = append(mt.names, d.Name)
	}
	return mt
}

// Lookup finds a method by selector.
// Returns nil and false if the table has no such method.
func (mt *MethodTable) Lookup(sel Selector) (MethodFunc, bool) {
	fn, ok := mt.methods[sel]
	return fn, ok
}

// Has reports whether the table defines the named method.
func (mt *MethodTable) Has(name string) bool {
	sel, ok := selectors.Lookup(name)
	if !ok {
		return false
	}
	_, ok = mt.methods[sel]
	return ok
}

// Names returns the method names in declaration order.
func (mt *MethodTable) Names() []string {
	result := make([]string, len(mt.names))
	copy(result, mt.names)
	return result
}

// Len returns the number of reachable methods.
func (mt *MethodTable) Len() int {
	return len(mt.methods)
}

// Class returns the class this table belongs to, or nil.
func (mt *MethodTable) Class() *Class {
	return mt.class
}
