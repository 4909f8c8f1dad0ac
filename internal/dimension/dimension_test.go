package dimension

import (
	"math"
	"testing"
)

func TestFixSeparatorsNormalizesAllVariants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2@24+1@18", "2@24,1@18"},
		{"2x24;1x18", "2@24,1@18"},
		{"2X24/1X18", "2@24,1@18"},
		{"2:24\\1:18", "2@24,1@18"},
		{"2@24&1@18", "2@24,1@18"},
	}
	for _, tt := range tests {
		if got := FixSeparators(tt.in); got != tt.want {
			t.Fatalf("FixSeparators(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFixSeparatorsIsIdempotent(t *testing.T) {
	inputs := []string{"2@24+1@18", "3x7.5&2:9", "", "abc", "1@6.865/1@9.104"}
	for _, in := range inputs {
		once := FixSeparators(in)
		if twice := FixSeparators(once); twice != once {
			t.Fatalf("FixSeparators not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestParseListGroups(t *testing.T) {
	list := ParseList("1@6.865+1@9.104+2@9.144")
	want := List{{1, 6.865}, {1, 9.104}, {2, 9.144}}
	if len(list) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(list))
	}
	for i, g := range want {
		if list[i] != g {
			t.Fatalf("group %d = %+v, want %+v", i, list[i], g)
		}
	}
}

func TestParseListNonNumericTokensParseToZero(t *testing.T) {
	list := ParseList("abc@def,xyz")
	if len(list) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(list))
	}
	if list[0].Count != 0 || list[0].Value != 0 {
		t.Fatalf("non-numeric N@V should coerce to zero group, got %+v", list[0])
	}
	if list[1].Count != 1 || list[1].Value != 0 {
		t.Fatalf("bare non-numeric token should be one zero value, got %+v", list[1])
	}
}

func TestExpandLengthMatchesCountSum(t *testing.T) {
	inputs := []string{"1@6.865+1@9.104+2@9.144", "4@7.62", "3@6+2@7.5+1@9", "2@24,1@18"}
	for _, in := range inputs {
		list := ParseList(in)
		if got := len(list.Expand()); got != list.Count() {
			t.Fatalf("%q: expansion length %d != count sum %d", in, got, list.Count())
		}
	}
}

func TestExpandLegacyReservesIndexZero(t *testing.T) {
	legacy := ParseList("2@9.144+1@6").ExpandLegacy()
	if len(legacy) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(legacy))
	}
	if legacy[0] != 3 {
		t.Fatalf("index 0 should carry unit count 3, got %v", legacy[0])
	}
	if legacy[1] != 9.144 || legacy[3] != 6 {
		t.Fatalf("unexpected legacy values %v", legacy)
	}
}

func TestGetBuildingDimensionExample(t *testing.T) {
	dim := GetBuildingDimension("1@6.865+1@9.104+2@9.144")
	if math.Abs(dim.Total-34.257) > 1e-9 {
		t.Fatalf("total = %v, want 34.257", dim.Total)
	}
	if dim.BayCount != 4 {
		t.Fatalf("bay count = %d, want 4", dim.BayCount)
	}
	if dim.MaxSpan != 9.144 {
		t.Fatalf("max span = %v, want 9.144", dim.MaxSpan)
	}
	if dim.MinSpan != 6.865 {
		t.Fatalf("min span = %v, want 6.865", dim.MinSpan)
	}
}

// A bare value without "@" historically set only the span extremes, never the
// running total. Pinned here on purpose; the orchestrator depends on MaxSpan
// for single-value fields.
func TestGetBuildingDimensionBareNumberKeepsTotalZero(t *testing.T) {
	dim := GetBuildingDimension("28.5")
	if dim.Total != 0 {
		t.Fatalf("bare number should leave total at 0, got %v", dim.Total)
	}
	if dim.BayCount != 0 {
		t.Fatalf("bare number should leave bay count at 0, got %d", dim.BayCount)
	}
	if dim.MaxSpan != 28.5 {
		t.Fatalf("bare number should set max span, got %v", dim.MaxSpan)
	}
}

func TestGetBuildingDimensionTotalMatchesParseList(t *testing.T) {
	inputs := []string{"1@6.865+1@9.104+2@9.144", "4@7.62", "2@24+1@18"}
	for _, in := range inputs {
		list := ParseList(in)
		dim := GetBuildingDimension(in)
		if math.Abs(dim.Total-list.Total()) > 1e-9 {
			t.Fatalf("%q: dimension total %v != list total %v", in, dim.Total, list.Total())
		}
		if dim.BayCount != list.Count() {
			t.Fatalf("%q: bay count %d != list count %d", in, dim.BayCount, list.Count())
		}
	}
}

func TestParseNumberCoercion(t *testing.T) {
	if v := ParseNumber("9.144"); v != 9.144 {
		t.Fatalf("expected 9.144, got %v", v)
	}
	if v := ParseNumber(" 12 "); v != 12 {
		t.Fatalf("expected 12, got %v", v)
	}
	if v := ParseNumber("n/a"); v != 0 {
		t.Fatalf("non-numeric should coerce to 0, got %v", v)
	}
	if v := ParseNumber(""); v != 0 {
		t.Fatalf("empty should coerce to 0, got %v", v)
	}
}
