package object

import (
	"github.com/tliron/commonlog"
)

// ---------------------------------------------------------------------------
// Dispatch tracing
// ---------------------------------------------------------------------------

var log = commonlog.GetLogger("pith.object")

// TraceKind classifies a dispatch event.
type TraceKind int

const (
	TraceGet  TraceKind = iota // field read
	TraceSet                   // field write
	TraceCall                  // method invocation
	TraceMiss                  // member not found
)

func (k TraceKind) String() string {
	switch k {
	case TraceGet:
		return "get"
	case TraceSet:
		return "set"
	case TraceCall:
		return "call"
	case TraceMiss:
		return "miss"
	default:
		return "?"
	}
}

// TraceFunc observes dispatch events on an instance. It runs after
// resolution but before method bodies, so a tracing method call is
// reported before any nested sends it performs.
type TraceFunc func(inst *Instance, kind TraceKind, sel Selector)

// SetTrace installs a trace hook on this instance. A nil hook disables
// tracing; tracing is off by default and costs one nil check when off.
func (inst *Instance) SetTrace(fn TraceFunc) {
	inst.trace = fn
}

func (inst *Instance) traceEvent(kind TraceKind, sel Selector) {
	if inst.trace != nil {
		inst.trace(inst, kind, sel)
	}
}

// LogTrace is a TraceFunc that logs every dispatch event at debug
// level through commonlog. Install a commonlog backend (for example
// commonlog/simple) to see the output.
func LogTrace(inst *Instance, kind TraceKind, sel Selector) {
	log.Debugf("%s %s %s", inst.ClassName(), kind, SelectorName(sel))
}
