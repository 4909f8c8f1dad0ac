package enums

import "strings"

// Unit is the unit of measure attached to a product master record. The unit
// decides how line totals are computed: M multiplies weight and price by both
// size and quantity, KG takes the quantity as the weight itself, and the
// remaining units ignore size entirely.
type Unit string

const (
	UnitMeter       Unit = "M"
	UnitSquareMeter Unit = "M2"
	UnitKilogram    Unit = "KG"
	UnitEach        Unit = "EA"
	UnitNumbers     Unit = "NOS"
	UnitSet         Unit = "SET"
)

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// IsCount reports whether the unit is one of the per-piece units that share
// EA total semantics.
func (u Unit) IsCount() bool {
	switch u {
	case UnitEach, UnitNumbers, UnitSet:
		return true
	}
	return false
}

// NormalizeUnit uppercases and trims raw unit text from the product master.
// Unknown values pass through so a bad master row still produces a line.
func NormalizeUnit(value string) Unit {
	return Unit(strings.ToUpper(strings.TrimSpace(value)))
}
