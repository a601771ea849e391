package object

import "sync"

// ---------------------------------------------------------------------------
// SelectorTable: Interned member names
// ---------------------------------------------------------------------------

// Selector is an interned member name. Two selectors are the same
// member name exactly when their IDs are equal.
type Selector uint32

// SelectorTable interns member-name strings to unique IDs.
// Selectors are immutable and stable for the table's lifetime.
type SelectorTable struct {
	mu     sync.RWMutex
	byName map[string]Selector // name -> ID
	byID   []string            // ID -> name
}

// NewSelectorTable creates a new empty selector table.
func NewSelectorTable() *SelectorTable {
	return &SelectorTable{
		byName: make(map[string]Selector),
		byID:   make([]string, 0, 64),
	}
}

// Intern returns the selector for a name, creating a new one if needed.
func (st *SelectorTable) Intern(name string) Selector {
	// Fast path: read-only lookup
	st.mu.RLock()
	if sel, ok := st.byName[name]; ok {
		st.mu.RUnlock()
		return sel
	}
	st.mu.RUnlock()

	// Slow path: need to add a new selector
	st.mu.Lock()
	defer st.mu.Unlock()

	// Double-check after acquiring write lock
	if sel, ok := st.byName[name]; ok {
		return sel
	}

	sel := Selector(len(st.byID))
	st.byName[name] = sel
	st.byID = append(st.byID, name)
	return sel
}

// Lookup returns the selector for a name, or 0 and false if not interned.
func (st *SelectorTable) Lookup(name string) (Selector, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sel, ok := st.byName[name]
	return sel, ok
}

// Name returns the name for a selector, or "" if invalid.
func (st *SelectorTable) Name(sel Selector) string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if int(sel) >= len(st.byID) {
		return ""
	}
	return st.byID[sel]
}

// Len returns the number of interned selectors.
func (st *SelectorTable) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.byID)
}

// All returns all selector names in ID order.
func (st *SelectorTable) All() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	result := make([]string, len(st.byID))
	copy(result, st.byID)
	return result
}

// ---------------------------------------------------------------------------
// Process-wide default table
// ---------------------------------------------------------------------------

// selectors is the process-wide table used by the string-accepting
// convenience APIs. Field stores and method tables built through
// different paths must agree on IDs, so there is exactly one.
var selectors = NewSelectorTable()

// Intern returns the process-wide selector for a member name.
func Intern(name string) Selector {
	return selectors.Intern(name)
}

// SelectorName returns the name of a process-wide selector.
func SelectorName(sel Selector) string {
	return selectors.Name(sel)
}
