package engineering

import "math"

// MainFrameWeightPerMeter estimates the rigid-frame weight per meter of
// rafter length from the frame load, the tributary bay width, and the clear
// span. The result never drops below the minimum sustained by the thinnest
// plate the shop will roll.
func MainFrameWeightPerMeter(mfLoad, tribBay, span, minThickness float64) float64 {
	wplm := (0.1*mfLoad*tribBay + 0.3) * (2*span - 9)
	if floor := MinWeightPerMeter(minThickness); wplm < floor {
		return floor
	}
	return wplm
}

// MinWeightPerMeter is the lightest built-up section per meter that can be
// fabricated from plate of the given thickness in millimeters.
func MinWeightPerMeter(minThickness float64) float64 {
	return math.Sqrt(minThickness/3.5) * 18.5
}

// EndwallTribBay is the tributary width used when sizing bearing-frame
// endwall columns: the end bay carries 0.6 of its width rather than half,
// accounting for the wind load the endwall sheeting sheds into the columns.
func EndwallTribBay(endBay float64) float64 {
	return endBay * 0.6
}
