package engineering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pebworks/steelquote-backend/pkg/enums"
)

func TestLookupPurlinCode(t *testing.T) {
	tests := []struct {
		index float64
		want  string
	}{
		{10, "Z15G"},
		{15, "Z15G"},
		{15.0001, "Z18G"},
		{20, "Z18G"},
		{30, "Z18G"},
		{30.0001, "Z20G"},
		{40, "Z20G"},
		{60, "Z20G"},
		{60.0001, "Z25G"},
		{80, "Z25G"},
		{120, "Z25G"},
		{120.0001, "Z25H"},
		{200, "Z25H"},
		{200.0001, "BUP20"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupPurlinCode(tt.index), "index %v", tt.index)
	}
}

func TestLookupGirtCode_SharesLadder(t *testing.T) {
	for _, index := range []float64{10, 15, 30, 60, 120, 200, 500} {
		assert.Equal(t, LookupPurlinCode(index), LookupGirtCode(index))
	}
}

func TestPurlinDesignIndex(t *testing.T) {
	assert.InDelta(t, 1.25*0.57*8.5*8.5, PurlinDesignIndex(KSimpleSpan, 0.57, 8.5), 1e-9)
	assert.Greater(t, PurlinDesignIndex(KCantilever, 0.5, 8), PurlinDesignIndex(KContinuousInterior, 0.5, 8))
}

func TestMainFrameWeightPerMeter(t *testing.T) {
	got := MainFrameWeightPerMeter(0.67, 9.144, 28.5, 4)
	assert.InDelta(t, 43.807104, got, 1e-6)
}

func TestMainFrameWeightPerMeter_FloorsAtMinThickness(t *testing.T) {
	// Small span drives the formula below what 5mm plate can yield.
	floor := MinWeightPerMeter(5)
	got := MainFrameWeightPerMeter(0.3, 6, 8, 5)
	assert.Equal(t, floor, got)
	assert.InDelta(t, 22.107, floor, 1e-3)
}

func TestEndwallTribBay(t *testing.T) {
	assert.InDelta(t, 5.4864, EndwallTribBay(9.144), 1e-9)
}

func TestLookupFixedBase(t *testing.T) {
	tests := []struct {
		width float64
		want  FixedBase
	}{
		{12, FixedBase{ConnType: 16, BoltCount: 4, BoltDia: 24}},
		{15, FixedBase{ConnType: 16, BoltCount: 4, BoltDia: 24}},
		{15.5, FixedBase{ConnType: 20, BoltCount: 4, BoltDia: 24}},
		{25, FixedBase{ConnType: 20, BoltCount: 4, BoltDia: 24}},
		{35, FixedBase{ConnType: 25, BoltCount: 6, BoltDia: 27}},
		{45, FixedBase{ConnType: 28, BoltCount: 6, BoltDia: 30}},
		{50, FixedBase{ConnType: 32, BoltCount: 8, BoltDia: 30}},
		{60, FixedBase{ConnType: 32, BoltCount: 8, BoltDia: 33}},
		{61, FixedBase{ConnType: 36, BoltCount: 8, BoltDia: 36}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupFixedBase(tt.width), "width %v", tt.width)
	}
}

func TestLookupConnectionType(t *testing.T) {
	tests := []struct {
		wplm float64
		want int
	}{
		{18, 16},
		{20, 16},
		{20.5, 20},
		{28, 20},
		{38, 25},
		{43.8, 32},
		{50, 32},
		{50.1, 36},
		{200, 36},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupConnectionType(tt.wplm), "wplm %v", tt.wplm)
	}
}

func TestConnectionPlatePercent(t *testing.T) {
	assert.Equal(t, 0.12, ConnectionPlatePercent(800))
	assert.Equal(t, 0.12, ConnectionPlatePercent(1000))
	assert.Equal(t, 0.10, ConnectionPlatePercent(1000.5))
	assert.Equal(t, 0.10, ConnectionPlatePercent(3000))
	assert.Equal(t, 0.085, ConnectionPlatePercent(6000))
	assert.Equal(t, 0.075, ConnectionPlatePercent(6001))
}

func TestDutyFactor(t *testing.T) {
	assert.Equal(t, 1.0, DutyFactor(enums.CraneDutyLight))
	assert.Equal(t, 1.1, DutyFactor(enums.CraneDutyMedium))
	assert.Equal(t, 1.2, DutyFactor(enums.CraneDutyHeavy))
	assert.Equal(t, 1.0, DutyFactor(enums.CraneDuty("")))
}

func TestSelectCraneBeam(t *testing.T) {
	// A bound value drops to the lighter section: exactly 1000 is CB410,
	// not CB460, because the ladder is strict greater-than.
	tests := []struct {
		index float64
		want  string
	}{
		{100, "CB250"},
		{250, "CB250"},
		{251, "CB310"},
		{500, "CB310"},
		{501, "CB360"},
		{800, "CB360"},
		{801, "CB410"},
		{1000, "CB410"},
		{1000.5, "CB460"},
		{1400, "CB460"},
	}
	for _, tt := range tests {
		got := SelectCraneBeam(tt.index, 9)
		assert.Equal(t, tt.want, got.Code, "index %v", tt.index)
		assert.False(t, got.BuiltUp)
		assert.Greater(t, got.Weight, 0.0)
	}
}

func TestSelectCraneBeam_BuiltUp(t *testing.T) {
	got := SelectCraneBeam(2100, 9)
	assert.True(t, got.BuiltUp)
	assert.Equal(t, "CBBU", got.Code)
	assert.InDelta(t, 2100.0/1400*101*9, got.Weight, 1e-9)
}

func TestCraneBeamIndex(t *testing.T) {
	// 10t capacity, 9m bay, 16m rail centers, medium duty.
	got := CraneBeamIndex(10, 9, 16, enums.CraneDutyMedium)
	assert.InDelta(t, 10*9*4*1.1, got, 1e-9)
}
