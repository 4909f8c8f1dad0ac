// Package engineering holds the pure lookup functions that turn a computed
// design index into a product code or numeric factor. Every selection is an
// ordered threshold table evaluated top-down so boundary behavior is a data
// fact rather than control flow.
package engineering

// step is one rung of an ascending threshold ladder: the result applies to
// any index less than or equal to UpTo. The first matching rung wins, which
// breaks ties toward the lower-capacity, more economical option.
type step[T any] struct {
	UpTo float64
	Out  T
}

func pick[T any](steps []step[T], fallback T, index float64) T {
	for _, s := range steps {
		if index <= s.UpTo {
			return s.Out
		}
	}
	return fallback
}

// Design index multipliers for cold-formed secondary members. The simple
// span factor covers the common case; the others apply to continuous-lap and
// cantilevered framing ends.
const (
	KSimpleSpan         = 1.25
	KContinuousInterior = 0.65
	KCantilever         = 2.01
)

// PurlinDesignIndex combines load, span, and the span-condition factor into
// the scalar the Z-section ladder is keyed on.
func PurlinDesignIndex(k, load, span float64) float64 {
	return k * load * span * span
}

var zSectionLadder = []step[string]{
	{UpTo: 15, Out: "Z15G"},
	{UpTo: 30, Out: "Z18G"},
	{UpTo: 60, Out: "Z20G"},
	{UpTo: 120, Out: "Z25G"},
	{UpTo: 200, Out: "Z25H"},
}

const zSectionFallback = "BUP20"

// LookupPurlinCode selects a purlin section for the design index.
func LookupPurlinCode(index float64) string {
	return pick(zSectionLadder, zSectionFallback, index)
}

// LookupGirtCode selects a girt section. Girts run the same Z-section ladder
// as purlins; the callers differ only in how they compute the index.
func LookupGirtCode(index float64) string {
	return pick(zSectionLadder, zSectionFallback, index)
}

// FixedBase describes the column base selected for a building width.
type FixedBase struct {
	ConnType  int
	BoltCount int
	BoltDia   int
}

var fixedBaseLadder = []step[FixedBase]{
	{UpTo: 15, Out: FixedBase{ConnType: 16, BoltCount: 4, BoltDia: 24}},
	{UpTo: 25, Out: FixedBase{ConnType: 20, BoltCount: 4, BoltDia: 24}},
	{UpTo: 35, Out: FixedBase{ConnType: 25, BoltCount: 6, BoltDia: 27}},
	{UpTo: 45, Out: FixedBase{ConnType: 28, BoltCount: 6, BoltDia: 30}},
	{UpTo: 50, Out: FixedBase{ConnType: 32, BoltCount: 8, BoltDia: 30}},
	{UpTo: 60, Out: FixedBase{ConnType: 32, BoltCount: 8, BoltDia: 33}},
}

var fixedBaseFallback = FixedBase{ConnType: 36, BoltCount: 8, BoltDia: 36}

// LookupFixedBase selects the fixed-base connection for a building width.
func LookupFixedBase(width float64) FixedBase {
	return pick(fixedBaseLadder, fixedBaseFallback, width)
}

var connectionTypeLadder = []step[int]{
	{UpTo: 20, Out: 16},
	{UpTo: 28, Out: 20},
	{UpTo: 38, Out: 25},
	{UpTo: 50, Out: 32},
}

// LookupConnectionType maps frame weight per meter to a connection type.
func LookupConnectionType(weightPerMeter float64) int {
	return pick(connectionTypeLadder, 36, weightPerMeter)
}

var connectionPlateLadder = []step[float64]{
	{UpTo: 1000, Out: 0.12},
	{UpTo: 3000, Out: 0.10},
	{UpTo: 6000, Out: 0.085},
}

// ConnectionPlatePercent returns the connection-plate weight allowance as a
// fraction of total frame weight.
func ConnectionPlatePercent(frameWeight float64) float64 {
	return pick(connectionPlateLadder, 0.075, frameWeight)
}
