package engineering

import (
	"math"

	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// DutyFactor scales the crane beam index by service class. Unknown classes
// fall back to light duty.
func DutyFactor(duty enums.CraneDuty) float64 {
	switch duty {
	case enums.CraneDutyHeavy:
		return 1.2
	case enums.CraneDutyMedium:
		return 1.1
	default:
		return 1.0
	}
}

// CraneBeamIndex is the selection scalar for crane runway beams.
func CraneBeamIndex(capacity, bayLength, railCenters float64, duty enums.CraneDuty) float64 {
	return capacity * bayLength * math.Sqrt(railCenters) * DutyFactor(duty)
}

// CraneBeam is a selected runway beam. Weight is kg per meter for a rolled
// section; a BuiltUp beam has no rolled equivalent and Weight becomes the
// computed kg for one bay.
type CraneBeam struct {
	Code    string
	Weight  float64
	BuiltUp bool
}

// craneBeamTier is one rung of a descending ladder: the beam applies to any
// index strictly greater than Above. Rungs must be ordered heaviest first so
// an index sitting exactly on a bound drops to the lighter section below it.
type craneBeamTier struct {
	Above  float64
	Code   string
	Weight float64
}

var craneBeamLadder = []craneBeamTier{
	{Above: 1000, Code: "CB460", Weight: 82.1},
	{Above: 800, Code: "CB410", Weight: 67.2},
	{Above: 500, Code: "CB360", Weight: 56.1},
	{Above: 250, Code: "CB310", Weight: 46.2},
}

var craneBeamLightest = craneBeamTier{Code: "CB250", Weight: 37.3}

// SelectCraneBeam picks the runway beam for a computed index. Past the top
// of the rolled-section ladder the beam becomes a built-up section sized in
// proportion to the index and the bay it spans.
func SelectCraneBeam(index, bayLength float64) CraneBeam {
	if index > 1400 {
		return CraneBeam{
			Code:    "CBBU",
			Weight:  index / 1400 * 101 * bayLength,
			BuiltUp: true,
		}
	}
	for _, t := range craneBeamLadder {
		if index > t.Above {
			return CraneBeam{Code: t.Code, Weight: t.Weight}
		}
	}
	return CraneBeam{Code: craneBeamLightest.Code, Weight: craneBeamLightest.Weight}
}
