package chartkit

import "testing"

// Styling is keyed by run identity, so the same key must resolve to the same
// style on every lookup, independent of panel or draw order.
func TestLookupStyleDeterministic(t *testing.T) {
	a, ok := LookupStyle(StyleBefore)
	if !ok {
		t.Fatal("StyleBefore not registered")
	}
	b, _ := LookupStyle(StyleBefore)
	if a.Color != b.Color || a.StrokeWidth != b.StrokeWidth || a.DotWidth != b.DotWidth {
		t.Fatalf("repeated lookups differ: %+v vs %+v", a, b)
	}
}

func TestLookupStyleDistinctRunIdentities(t *testing.T) {
	before, _ := LookupStyle(StyleBefore)
	after, _ := LookupStyle(StyleAfter)
	if before.Color == after.Color {
		t.Fatal("before and after runs share a color")
	}
}

func TestLookupStyleUnknownKey(t *testing.T) {
	if _, ok := LookupStyle("fuchsia"); ok {
		t.Fatal("unknown style key resolved")
	}
}

func TestTargetStyleIsDashedWithoutMarkers(t *testing.T) {
	st, ok := LookupStyle(StyleTarget)
	if !ok {
		t.Fatal("StyleTarget not registered")
	}
	if len(st.DashArray) == 0 {
		t.Fatal("target line is not dashed")
	}
	if st.DotWidth != 0 {
		t.Fatalf("target line has markers (DotWidth=%v)", st.DotWidth)
	}
}
