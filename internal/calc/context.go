package calc

import (
	"math"

	"github.com/pebworks/steelquote-backend/internal/dimension"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// Spacing and ratio constants used by the calculators. Each is a distinct
// truncation or spacing site in the quantity takeoff; keep them named so
// boundary behavior stays testable.
const (
	// PurlinSpacing is the on-slope distance between purlin lines, meters.
	PurlinSpacing = 1.5
	// GirtSpacing is the vertical distance between girt lines, meters.
	GirtSpacing = 1.5
	// BracedBayInterval places one braced bay per this many bays.
	BracedBayInterval = 5
	// ScrewsPerSquareMeter is the sheeting fastener density.
	ScrewsPerSquareMeter = 6.0
	// DownspoutSpacing is the run of eave per downspout, meters.
	DownspoutSpacing = 12.0
	// EndwallColumnSpacing is the target distance between endwall posts.
	EndwallColumnSpacing = 6.0
	// DefaultMinThickness is the thinnest web plate the shop rolls, mm.
	DefaultMinThickness = 4.0
	// DefaultRoofSlope is rise per 10 of run when the input leaves it blank.
	DefaultRoofSlope = 1.0
	// SlopeRun is the run the slope input is expressed against.
	SlopeRun = 10.0
)

// Default panel codes when the input does not pick a finish.
const (
	DefaultRoofPanel = "PNLR45"
	DefaultWallPanel = "PNLW45"
)

// Dimensions are the derived building geometry values written back to the
// estimation results after a pass.
type Dimensions struct {
	Width        float64 `json:"width"`
	Length       float64 `json:"length"`
	SpanCount    int     `json:"span_count"`
	BayCount     int     `json:"bay_count"`
	MaxSpan      float64 `json:"max_span"`
	MaxBay       float64 `json:"max_bay"`
	EndBay       float64 `json:"end_bay"`
	EaveHeight   float64 `json:"eave_height"`
	PeakHeight   float64 `json:"peak_height"`
	RafterLength float64 `json:"rafter_length"`
	RoofArea     float64 `json:"roof_area"`
	WallArea     float64 `json:"wall_area"`
	GableArea    float64 `json:"gable_area"`
}

// Loads are the combined design loads for the pass.
type Loads struct {
	Dead       float64 `json:"dead"`
	Live       float64 `json:"live"`
	Collateral float64 `json:"collateral"`
	WindSpeed  float64 `json:"wind_speed"`
	MainFrame  float64 `json:"main_frame"`
}

// Context carries everything a component calculator reads: the raw input,
// the parsed dimension lists, and the derived geometry and loads. It is
// built once per pass and never mutated by calculators.
type Context struct {
	Input *Input

	SpanList dimension.List
	BayList  dimension.List
	SpanDim  dimension.BuildingDimension
	BayDim   dimension.BuildingDimension

	Dim   Dimensions
	Loads Loads

	MinThickness float64
	Slope        float64
	RoofPanel    string
	WallPanel    string
}

// BuildContext parses the notation fields and derives the pass geometry.
// Derived fields are computed here exactly once; calculators never write
// them back.
func BuildContext(input *Input) *Context {
	c := &Context{Input: input}

	c.SpanList = dimension.ParseList(input.Spans)
	c.BayList = dimension.ParseList(input.Bays)
	c.SpanDim = dimension.GetBuildingDimension(input.Spans)
	c.BayDim = dimension.GetBuildingDimension(input.Bays)

	c.MinThickness = input.MinThickness.F()
	if c.MinThickness <= 0 {
		c.MinThickness = DefaultMinThickness
	}
	slopeIn := input.RoofSlope.F()
	if slopeIn <= 0 {
		slopeIn = DefaultRoofSlope
	}
	c.Slope = slopeIn / SlopeRun

	c.RoofPanel = input.RoofPanelCode
	if c.RoofPanel == "" {
		c.RoofPanel = DefaultRoofPanel
	}
	c.WallPanel = input.WallPanelCode
	if c.WallPanel == "" {
		c.WallPanel = DefaultWallPanel
	}

	width := c.SpanDim.Total
	length := c.BayDim.Total
	eave := input.EaveHeight.F()
	slopeFactor := math.Sqrt(1 + c.Slope*c.Slope)
	rafter := width * slopeFactor
	rise := width / 2 * c.Slope

	endBay := 0.0
	if len(c.BayList) > 0 {
		endBay = c.BayList[0].Value
	}

	gable := width*eave + width*rise/2

	c.Dim = Dimensions{
		Width:        width,
		Length:       length,
		SpanCount:    c.SpanDim.BayCount,
		BayCount:     c.BayDim.BayCount,
		MaxSpan:      c.SpanDim.MaxSpan,
		MaxBay:       c.BayDim.MaxSpan,
		EndBay:       endBay,
		EaveHeight:   eave,
		PeakHeight:   eave + rise,
		RafterLength: rafter,
		RoofArea:     rafter * length,
		WallArea:     2 * length * eave,
		GableArea:    gable,
	}

	c.Loads = Loads{
		Dead:       input.DeadLoad.F(),
		Live:       input.LiveLoad.F(),
		Collateral: input.CollateralLoad.F(),
		WindSpeed:  input.WindSpeed.F(),
		MainFrame:  input.DeadLoad.F() + input.LiveLoad.F() + input.CollateralLoad.F(),
	}

	return c
}

// FrameCount is the number of frame lines including both endwalls.
func (c *Context) FrameCount() int {
	return c.Dim.BayCount + 1
}

// InteriorFrameCount is the number of full rigid frames between the
// endwalls, plus one per rigid endwall.
func (c *Context) InteriorFrameCount() int {
	n := c.Dim.BayCount - 1
	if n < 0 {
		n = 0
	}
	if c.Input.LeftEndwall == enums.EndwallRigid {
		n++
	}
	if c.Input.RightEndwall == enums.EndwallRigid {
		n++
	}
	return n
}
