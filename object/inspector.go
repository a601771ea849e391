package object

import (
	"fmt"
	"sort"
	"strings"
)

// ---------------------------------------------------------------------------
// Inspection
// ---------------------------------------------------------------------------

// maxValuePreview caps the rendered length of a single field value.
const maxValuePreview = 60

// Inspect renders an instance for debugging: class name, fields in
// declaration order with shadowed duplicates annotated, and method
// selectors sorted.
func Inspect(inst *Instance) string {
	var b strings.Builder

	fmt.Fprintf(&b, "a %s\n", inst.ClassName())

	seen := make(map[Selector]bool)
	inst.fields.ForEach(func(_ int, sel Selector, v Value) {
		name := selectors.Name(sel)
		if seen[sel] {
			fmt.Fprintf(&b, "  field  %s = %s (shadowed)\n", name, previewValue(v))
			return
		}
		seen[sel] = true
		fmt.Fprintf(&b, "  field  %s = %s\n", name, previewValue(v))
	})

	names := inst.methods.Names()
	sort.Strings(names)
	for _, name := range names {
		if sel, ok := selectors.Lookup(name); ok && seen[sel] {
			fmt.Fprintf(&b, "  method %s (shadowed by field)\n", name)
			continue
		}
		fmt.Fprintf(&b, "  method %s\n", name)
	}

	return b.String()
}

// previewValue renders a field value, truncated to maxValuePreview.
func previewValue(v Value) string {
	var s string
	switch v := v.(type) {
	case nil:
		s = "nil"
	case *Instance:
		s = "a " + v.ClassName()
	case string:
		s = fmt.Sprintf("%q", v)
	default:
		s = fmt.Sprintf("%v", v)
	}
	if len(s) > maxValuePreview {
		s = s[:maxValuePreview-3] + "..."
	}
	return s
}
