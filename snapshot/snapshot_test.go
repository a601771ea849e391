package snapshot

import (
	"testing"

	"github.com/chazu/pith/object"
)

func newPoint2D() *object.Class {
	dot := func(self *object.Instance, args []object.Value) object.Value {
		other := args[0].(*object.Instance)
		ax := self.Dispatch("x").(int64)
		ay := self.Dispatch("y").(int64)
		bx := other.Dispatch("x").(int64)
		by := other.Dispatch("y").(int64)
		return ax*bx + ay*by
	}
	return object.NewClass("Point2D",
		[]object.FieldInit{
			{Name: "x", Init: object.Lit(int64(0))},
			{Name: "y", Init: object.Lit(int64(0))},
		},
		[]object.MethodDef{{Name: "dot", Fn: dot}})
}

func TestCapturePreservesOrderAndDuplicates(t *testing.T) {
	c := object.NewClass("Dup",
		[]object.FieldInit{
			{Name: "v", Init: object.Lit(int64(1))},
			{Name: "v", Init: object.Lit(int64(2))},
		}, nil)

	snap := Capture(c.New())
	if snap.Class != "Dup" {
		t.Errorf("Class = %q, want Dup", snap.Class)
	}
	if len(snap.Fields) != 2 {
		t.Fatalf("captured %d fields, want 2", len(snap.Fields))
	}
	if snap.Fields[0].Value != int64(1) || snap.Fields[1].Value != int64(2) {
		t.Errorf("Fields = %v, duplicate order lost", snap.Fields)
	}
}

func TestRestoreRebindsClassMethods(t *testing.T) {
	classes := object.NewClassTable()
	c := newPoint2D()
	classes.Register(c)

	a := c.New(int64(1), int64(-2))
	a.Dispatch("x", int64(5))

	restored, err := Restore(classes, Capture(a))
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// State survived, including the mutation.
	if got := restored.Dispatch("x"); got != int64(5) {
		t.Errorf("restored x = %v, want 5", got)
	}

	// Methods come back from the registered class, not the snapshot.
	b := c.New(int64(2), int64(3))
	if got := restored.Dispatch("dot", b); got != int64(4) {
		t.Errorf("restored dot = %v, want 4", got)
	}
}

func TestRestoreUnknownClass(t *testing.T) {
	classes := object.NewClassTable()

	_, err := Restore(classes, &InstanceSnapshot{Class: "Ghost"})
	if err == nil {
		t.Fatal("Restore of unregistered class did not fail")
	}
}

func TestDigestDeterministic(t *testing.T) {
	d1 := DigestClass(newPoint2D())
	d2 := DigestClass(newPoint2D())

	if d1.Hash != d2.Hash {
		t.Error("identical classes produced different digests")
	}
	if d1.Hash == ([32]byte{}) {
		t.Error("digest hash is zero")
	}
}

func TestDigestSensitivity(t *testing.T) {
	base := DigestClass(newPoint2D())

	renamed := object.NewClass("Point2E",
		[]object.FieldInit{{Name: "x"}, {Name: "y"}},
		[]object.MethodDef{{Name: "dot", Fn: func(self *object.Instance, args []object.Value) object.Value {
			return nil
		}}})
	if DigestClass(renamed).Hash == base.Hash {
		t.Error("digest ignores class name")
	}

	extraMethod := object.NewClass("Point2D",
		[]object.FieldInit{
			{Name: "x", Init: object.Lit(int64(0))},
			{Name: "y", Init: object.Lit(int64(0))},
		},
		[]object.MethodDef{
			{Name: "dot", Fn: func(self *object.Instance, args []object.Value) object.Value { return nil }},
			{Name: "norm", Fn: func(self *object.Instance, args []object.Value) object.Value { return nil }},
		})
	if DigestClass(extraMethod).Hash == base.Hash {
		t.Error("digest ignores method set")
	}
}
