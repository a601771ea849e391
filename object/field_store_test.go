package object

import "testing"

func TestFieldStoreGetSet(t *testing.T) {
	var fs FieldStore
	sel := Intern("width")
	fs.appendEntry(sel, 3)

	if v, ok := fs.Get(sel); !ok || v != 3 {
		t.Errorf("Get = %v, %v; want 3, true", v, ok)
	}

	if !fs.Set(sel, 9) {
		t.Fatal("Set reported no match")
	}
	if v, _ := fs.Get(sel); v != 9 {
		t.Errorf("Get after Set = %v, want 9", v)
	}
}

func TestFieldStoreMissingName(t *testing.T) {
	var fs FieldStore

	if _, ok := fs.Get(Intern("ghost")); ok {
		t.Error("Get on empty store reported found")
	}
	if fs.Set(Intern("ghost"), 1) {
		t.Error("Set on empty store reported a match")
	}
	if fs.Len() != 0 {
		t.Errorf("Set appended an entry; Len() = %d", fs.Len())
	}
}

func TestFieldStoreFirstMatch(t *testing.T) {
	// Lookup honors first match; Set mutates the matched entry in
	// place, never the shadow.
	var fs FieldStore
	sel := Intern("dup")
	fs.appendEntry(sel, "first")
	fs.appendEntry(sel, "second")

	if v, _ := fs.Get(sel); v != "first" {
		t.Errorf("Get = %v, want first", v)
	}

	fs.Set(sel, "updated")
	if v, _ := fs.Get(sel); v != "updated" {
		t.Errorf("Get after Set = %v, want updated", v)
	}

	var values []Value
	fs.ForEach(func(_ int, _ Selector, v Value) {
		values = append(values, v)
	})
	if len(values) != 2 || values[1] != "second" {
		t.Errorf("entries after Set = %v, want [updated second]", values)
	}
}

func TestFieldReaderByName(t *testing.T) {
	var fs FieldStore
	fs.appendEntry(Intern("radius"), 5)

	if v, ok := fs.Field("radius"); !ok || v != 5 {
		t.Errorf("Field(radius) = %v, %v; want 5, true", v, ok)
	}
	if _, ok := fs.Field("neverInternedFieldName"); ok {
		t.Error("Field on unknown name reported found")
	}
}
