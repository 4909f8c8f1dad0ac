// Package dimension parses the compressed span/bay/slope notation used on
// estimation input forms, e.g. "2@24+1@18" meaning two 24m bays followed by
// one 18m bay.
package dimension

import (
	"strconv"
	"strings"
)

// Group is one notation token: Count repetitions of Value.
type Group struct {
	Count int
	Value float64
}

// List is an ordered sequence of groups.
type List []Group

var separatorReplacer = strings.NewReplacer(
	"+", ",",
	";", ",",
	"/", ",",
	"\\", ",",
	"&", ",",
	"x", "@",
	"X", "@",
	":", "@",
)

// FixSeparators normalizes the separator characters users type into the
// canonical comma/at-sign form. Idempotent.
func FixSeparators(text string) string {
	return separatorReplacer.Replace(text)
}

// ParseNumber converts raw text to a float, coercing non-numeric input to 0.
// This mirrors the tolerance of the legacy estimation sheets, where a typo in
// one cell zeroes that term rather than aborting the whole calculation.
func ParseNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseList parses notation text into a List. Each comma token is either
// "N@V" or a bare value with an implied count of 1.
func ParseList(text string) List {
	fixed := FixSeparators(text)
	if strings.TrimSpace(fixed) == "" {
		return nil
	}

	var list List
	for _, token := range strings.Split(fixed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if at := strings.Index(token, "@"); at >= 0 {
			count := int(ParseNumber(token[:at]))
			value := ParseNumber(token[at+1:])
			list = append(list, Group{Count: count, Value: value})
			continue
		}
		list = append(list, Group{Count: 1, Value: ParseNumber(token)})
	}
	return list
}

// Expand flattens the list into the per-unit sequence: each group's value
// repeated Count times.
func (l List) Expand() []float64 {
	var out []float64
	for _, g := range l {
		for i := 0; i < g.Count; i++ {
			out = append(out, g.Value)
		}
	}
	return out
}

// ExpandLegacy returns the expansion in the legacy encoding where index 0
// carries the total unit count and the values start at index 1.
func (l List) ExpandLegacy() []float64 {
	values := l.Expand()
	out := make([]float64, 0, len(values)+1)
	out = append(out, float64(len(values)))
	return append(out, values...)
}

// Total returns the sum of count*value over all groups.
func (l List) Total() float64 {
	var total float64
	for _, g := range l {
		total += float64(g.Count) * g.Value
	}
	return total
}

// Count returns the sum of group counts.
func (l List) Count() int {
	var n int
	for _, g := range l {
		n += g.Count
	}
	return n
}

// Max returns the largest group value.
func (l List) Max() float64 {
	var max float64
	for _, g := range l {
		if g.Value > max {
			max = g.Value
		}
	}
	return max
}

// BuildingDimension summarizes one notation field for the calculators.
type BuildingDimension struct {
	Total    float64
	BayCount int
	MaxSpan  float64
	MinSpan  float64
	AvgSpan  float64
}

// GetBuildingDimension computes totals the way the legacy sheets did: only
// "N@V" tokens contribute to Total and BayCount, while a bare number updates
// MaxSpan/MinSpan only. A lone bare value therefore leaves Total at 0; the
// callers that pass single-value fields rely on MaxSpan in that case.
func GetBuildingDimension(text string) BuildingDimension {
	fixed := FixSeparators(text)
	dim := BuildingDimension{}
	first := true

	for _, token := range strings.Split(fixed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		var value float64
		if at := strings.Index(token, "@"); at >= 0 {
			count := int(ParseNumber(token[:at]))
			value = ParseNumber(token[at+1:])
			dim.Total += float64(count) * value
			dim.BayCount += count
		} else {
			value = ParseNumber(token)
		}

		if value > dim.MaxSpan {
			dim.MaxSpan = value
		}
		if first || value < dim.MinSpan {
			dim.MinSpan = value
		}
		first = false
	}

	if dim.BayCount > 0 {
		dim.AvgSpan = dim.Total / float64(dim.BayCount)
	}
	return dim
}
