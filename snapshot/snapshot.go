// Package snapshot captures and restores instance field state, and
// computes content-addressed class digests.
package snapshot

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/chazu/pith/object"
)

// ---------------------------------------------------------------------------
// Instance snapshots
// ---------------------------------------------------------------------------

// FieldState is one captured (name, value) field binding.
type FieldState struct {
	Name  string
	Value interface{}
}

// InstanceSnapshot captures the field state of one instance. Field
// order is the instance's declaration order, shadowed duplicates
// included, so a restored instance resolves names identically.
// Methods are never captured; they come from the class at restore
// time.
type InstanceSnapshot struct {
	Class  string
	Fields []FieldState
}

// Capture records the current field state of an instance.
// Values are stored as-is; only CBOR-encodable values survive a trip
// through the wire encoding.
func Capture(inst *object.Instance) *InstanceSnapshot {
	snap := &InstanceSnapshot{
		Class:  inst.ClassName(),
		Fields: make([]FieldState, 0, inst.NumFields()),
	}
	inst.ForEachField(func(_ int, name string, v object.Value) {
		snap.Fields = append(snap.Fields, FieldState{Name: name, Value: v})
	})
	return snap
}

// Restore rebuilds an instance of the snapshot's class, binding the
// captured fields in captured order as literal initializers. The class
// must be registered in the given table; its declared defaults are not
// consulted, the snapshot is authoritative for field state.
func Restore(classes *object.ClassTable, snap *InstanceSnapshot) (*object.Instance, error) {
	c, ok := classes.Lookup(snap.Class)
	if !ok {
		return nil, fmt.Errorf("snapshot: class %q not registered", snap.Class)
	}

	inits := make([]object.FieldInit, len(snap.Fields))
	for i, fs := range snap.Fields {
		inits[i] = object.FieldInit{Name: fs.Name, Init: object.Lit(fs.Value)}
	}
	return object.New(c.Table(), inits), nil
}

// ---------------------------------------------------------------------------
// Class digests
// ---------------------------------------------------------------------------

// ClassDigest is a compact structural representation of a class
// suitable for content addressing. It records the declared field
// layout and method selector names; method bodies are Go functions and
// have no stable content representation, so they contribute by name
// only.
type ClassDigest struct {
	Name    string
	Fields  []string
	Methods []string // sorted for deterministic hashing
	Hash    [32]byte
}

// DigestClass computes the structural digest of a class.
// The hash is deterministic: fields contribute in declaration order,
// methods in sorted order, all strings length-prefixed.
func DigestClass(c *object.Class) *ClassDigest {
	d := &ClassDigest{
		Name:    c.Name,
		Fields:  c.FieldNames(),
		Methods: c.Table().Names(),
	}
	sort.Strings(d.Methods)

	h := sha256.New()
	hashString(h, d.Name)
	hashStrings(h, d.Fields)
	hashStrings(h, d.Methods)
	copy(d.Hash[:], h.Sum(nil))
	return d
}

func hashString(w io.Writer, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	w.Write(n[:])
	w.Write([]byte(s))
}

func hashStrings(w io.Writer, ss []string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(ss)))
	w.Write(n[:])
	for _, s := range ss {
		hashString(w, s)
	}
}
