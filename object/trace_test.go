package object

import "testing"

type traceEvent struct {
	kind TraceKind
	name string
}

func TestTraceEvents(t *testing.T) {
	inst := newPoint2D().New(1, 2)

	var events []traceEvent
	inst.SetTrace(func(_ *Instance, kind TraceKind, sel Selector) {
		events = append(events, traceEvent{kind, SelectorName(sel)})
	})

	inst.Dispatch("x")          // get
	inst.Dispatch("y", 3)       // set
	inst.Dispatch("dot", inst)  // call (nested gets come from this instance too)
	inst.Dispatch("zzz")        // miss

	want := []traceEvent{
		{TraceGet, "x"},
		{TraceSet, "y"},
		{TraceCall, "dot"},
		{TraceGet, "x"},
		{TraceGet, "y"},
		{TraceGet, "x"},
		{TraceGet, "y"},
		{TraceMiss, "zzz"},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(events), events, len(want))
	}
	for i, e := range events {
		if e != want[i] {
			t.Errorf("event %d = %v, want %v", i, e, want[i])
		}
	}
}

func TestTraceDisabledByDefault(t *testing.T) {
	inst := newPoint2D().New()

	// Must not panic or observe anything with no hook installed.
	inst.Dispatch("x")
	inst.SetTrace(func(*Instance, TraceKind, Selector) {
		t.Error("hook ran after being replaced")
	})
	inst.SetTrace(nil)
	inst.Dispatch("x")
}

func TestTraceKindString(t *testing.T) {
	if TraceGet.String() != "get" || TraceMiss.String() != "miss" {
		t.Errorf("TraceKind strings = %s/%s/%s/%s",
			TraceGet, TraceSet, TraceCall, TraceMiss)
	}
}
