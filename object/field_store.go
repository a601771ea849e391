package object

// ---------------------------------------------------------------------------
// FieldStore: per-instance ordered field entries
// ---------------------------------------------------------------------------

// fieldEntry is one (selector, value) binding.
type fieldEntry struct {
	sel   Selector
	value Value
}

// FieldStore is the per-instance mutable field mapping.
//
// Entries are kept in declaration order. Lookup resolves to the first
// matching entry; Set overwrites that same entry in place. Duplicate
// names are legal: later duplicates stay in the store but are shadowed
// and never reached. This mirrors the ordered-list-as-dictionary
// convention the model is defined against, deliberately: lookup honors
// first match, writes mutate the matched entry rather than appending.
type FieldStore struct {
	entries []fieldEntry
}

// FieldReader is the read-only view of fields handed to initializers.
// During construction it exposes only the fields bound so far.
type FieldReader interface {
	// Field returns the current value of the named field,
	// or false if no such field is bound.
	Field(name string) (Value, bool)
}

// find returns the first entry with the given selector, or nil.
func (fs *FieldStore) find(sel Selector) *fieldEntry {
	for i := range fs.entries {
		if fs.entries[i].sel == sel {
			return &fs.entries[i]
		}
	}
	return nil
}

// appendEntry adds a binding without checking for duplicates.
// Construction is the only caller; the store never grows afterwards.
func (fs *FieldStore) appendEntry(sel Selector, v Value) {
	fs.entries = append(fs.entries, fieldEntry{sel: sel, value: v})
}

// Get returns the first-match value for a selector.
func (fs *FieldStore) Get(sel Selector) (Value, bool) {
	if e := fs.find(sel); e != nil {
		return e.value, true
	}
	return Nil, false
}

// Set overwrites the first-match entry in place.
// Returns false if no entry matches; nothing is appended.
func (fs *FieldStore) Set(sel Selector, v Value) bool {
	if e := fs.find(sel); e != nil {
		e.value = v
		return true
	}
	return false
}

// Field implements FieldReader over the process-wide selector table.
func (fs *FieldStore) Field(name string) (Value, bool) {
	sel, ok := selectors.Lookup(name)
	if !ok {
		return Nil, false
	}
	return fs.Get(sel)
}

// Len returns the number of entries, shadowed duplicates included.
func (fs *FieldStore) Len() int {
	return len(fs.entries)
}

// ForEach calls fn for each entry in declaration order,
// shadowed duplicates included.
func (fs *FieldStore) ForEach(fn func(index int, sel Selector, v Value)) {
	for i, e := range fs.entries {
		fn(i, e.sel, e.value)
	}
}
