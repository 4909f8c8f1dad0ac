package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pebworks/steelquote-backend/pkg/enums"
)

func TestBuildContext_DerivedGeometry(t *testing.T) {
	input := &Input{
		Spans:      "1@24",
		Bays:       "5@7.62",
		EaveHeight: 6,
		RoofSlope:  1,
		DeadLoad:   0.1,
		LiveLoad:   0.57,
	}
	c := BuildContext(input)

	assert.InDelta(t, 24, c.Dim.Width, 1e-9)
	assert.InDelta(t, 38.1, c.Dim.Length, 1e-9)
	assert.Equal(t, 5, c.Dim.BayCount)
	assert.Equal(t, 1, c.Dim.SpanCount)
	assert.InDelta(t, 7.62, c.Dim.MaxBay, 1e-9)
	assert.InDelta(t, 7.62, c.Dim.EndBay, 1e-9)

	// Slope 1 in 10: rise 1.2m over the half width.
	assert.InDelta(t, 7.2, c.Dim.PeakHeight, 1e-9)
	rafter := 24 * math.Sqrt(1.01)
	assert.InDelta(t, rafter, c.Dim.RafterLength, 1e-9)
	assert.InDelta(t, rafter*38.1, c.Dim.RoofArea, 1e-9)
	assert.InDelta(t, 2*38.1*6, c.Dim.WallArea, 1e-9)
	assert.InDelta(t, 24*6+24*1.2/2, c.Dim.GableArea, 1e-9)

	assert.InDelta(t, 0.67, c.Loads.MainFrame, 1e-9)
}

func TestBuildContext_Defaults(t *testing.T) {
	c := BuildContext(&Input{Spans: "1@20", Bays: "4@6"})
	assert.Equal(t, DefaultMinThickness, c.MinThickness)
	assert.InDelta(t, DefaultRoofSlope/SlopeRun, c.Slope, 1e-9)
	assert.Equal(t, DefaultRoofPanel, c.RoofPanel)
	assert.Equal(t, DefaultWallPanel, c.WallPanel)
}

func TestInteriorFrameCount(t *testing.T) {
	base := &Input{Spans: "1@20", Bays: "4@6"}
	assert.Equal(t, 3, BuildContext(base).InteriorFrameCount())

	rigid := &Input{Spans: "1@20", Bays: "4@6", LeftEndwall: enums.EndwallRigid}
	assert.Equal(t, 4, BuildContext(rigid).InteriorFrameCount())

	both := &Input{Spans: "1@20", Bays: "4@6", LeftEndwall: enums.EndwallRigid, RightEndwall: enums.EndwallRigid}
	assert.Equal(t, 5, BuildContext(both).InteriorFrameCount())
	assert.Equal(t, 5, BuildContext(base).FrameCount())
}
