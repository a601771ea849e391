package object

// Value is a dynamic value carried in fields and through dispatch.
// Any Go value may be stored; the model never interprets payloads.
type Value interface{}

// Nil is the uninitialized field value.
var Nil Value

// notFound is the distinguished member-not-found marker type.
// It has exactly one value, NotFound, so identity checks work too.
type notFound struct{}

func (notFound) String() string { return "<member not found>" }

// NotFound is returned by Dispatch when a name resolves to neither a
// field nor a method. It is a soft signal, not an error: callers test
// for it with IsNotFound rather than unwrapping anything.
var NotFound Value = notFound{}

// IsNotFound reports whether v is the member-not-found marker.
func IsNotFound(v Value) bool {
	_, ok := v.(notFound)
	return ok
}
