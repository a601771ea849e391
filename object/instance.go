package object

// ---------------------------------------------------------------------------
// Instance construction
// ---------------------------------------------------------------------------

// Instance is one object: an exclusively owned FieldStore plus a
// non-owning reference to a shared MethodTable. All external
// interaction goes through Dispatch.
type Instance struct {
	fields  FieldStore
	methods *MethodTable
	trace   TraceFunc
}

// Initializer computes one field's initial value. It runs during
// construction with visibility of the fields bound before it, and
// never of the instance under construction.
type Initializer func(prior FieldReader) Value

// Lit returns an Initializer yielding a constant value.
func Lit(v Value) Initializer {
	return func(FieldReader) Value { return v }
}

// FieldInit pairs a field name with its initializer.
// A nil initializer binds the field to Nil.
type FieldInit struct {
	Name string
	Init Initializer
}

// emptyMethods backs instances constructed without a method table.
var emptyMethods = NewMethodTable(nil)

// New constructs an instance from a method table and an ordered list
// of field initializers. Initializers evaluate strictly left-to-right;
// each sees all previously bound fields through its FieldReader.
// Duplicate names are not rejected: the duplicate entry is appended
// and then permanently shadowed by first-match lookup.
// A nil table yields an instance with fields only.
func New(table *MethodTable, inits []FieldInit) *Instance {
	if table == nil {
		table = emptyMethods
	}
	inst := &Instance{methods: table}
	for _, fi := range inits {
		v := Nil
		if fi.Init != nil {
			v = fi.Init(&inst.fields)
		}
		inst.fields.appendEntry(Intern(fi.Name), v)
	}
	return inst
}

// ---------------------------------------------------------------------------
// Dispatch (core algorithm)
// ---------------------------------------------------------------------------

// Dispatch resolves a member name against fields first, methods second.
//
//   - Field hit with zero args: returns the field's current value.
//   - Field hit with args: overwrites the field with args[0] and
//     returns the stored value. Extra arguments are ignored; only the
//     first is ever consulted.
//   - Method hit: invokes the method with this instance as self and
//     the trailing args in order, returning its result directly.
//   - Otherwise: returns NotFound and mutates nothing.
//
// A field always shadows a method of the same name.
func (inst *Instance) Dispatch(name string, args ...Value) Value {
	return inst.DispatchSelector(Intern(name), args...)
}

// DispatchSelector is Dispatch for a pre-interned selector.
func (inst *Instance) DispatchSelector(sel Selector, args ...Value) Value {
	if e := inst.fields.find(sel); e != nil {
		if len(args) == 0 {
			inst.traceEvent(TraceGet, sel)
			return e.value
		}
		e.value = args[0]
		inst.traceEvent(TraceSet, sel)
		return e.value
	}

	if fn, ok := inst.methods.Lookup(sel); ok {
		inst.traceEvent(TraceCall, sel)
		return fn(inst, args)
	}

	inst.traceEvent(TraceMiss, sel)
	return NotFound
}

// DispatchFunc is an instance's dispatch entry point as a bare
// function value.
type DispatchFunc func(name string, args ...Value) Value

// Dispatcher returns the dispatch entry point bound to this instance.
// Methods receive the *Instance itself as self; this closure form is
// for callers that want the instance as a single callable.
func (inst *Instance) Dispatcher() DispatchFunc {
	return inst.Dispatch
}

// ---------------------------------------------------------------------------
// Introspection
// ---------------------------------------------------------------------------

// Methods returns the shared method table.
func (inst *Instance) Methods() *MethodTable {
	return inst.methods
}

// NumFields returns the number of field entries,
// shadowed duplicates included.
func (inst *Instance) NumFields() int {
	return inst.fields.Len()
}

// ForEachField calls fn for each field in declaration order,
// shadowed duplicates included.
func (inst *Instance) ForEachField(fn func(index int, name string, v Value)) {
	inst.fields.ForEach(func(i int, sel Selector, v Value) {
		fn(i, selectors.Name(sel), v)
	})
}

// ClassName returns the name of the instance's class, or "?" if the
// method table was built outside a Class.
func (inst *Instance) ClassName() string {
	if inst.methods == nil || inst.methods.class == nil {
		return "?"
	}
	return inst.methods.class.Name
}
