package calc

import (
	"context"
	"math"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/internal/dimension"
	"github.com/pebworks/steelquote-backend/internal/engineering"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// Sales codes tagging add-on lines so downstream grouping can tell the
// add-ons apart from the main structure.
const (
	salesCodeCrane     = 4
	salesCodeMezzanine = 5
	salesCodeMonitor   = 6
	salesCodeCanopy    = 7
	salesCodePartition = 8
)

// Add-on takeoff constants.
const (
	// MezzanineJoistSpacing is the deck joist spacing, meters.
	MezzanineJoistSpacing = 0.6
	// MezzanineColumnKgPerMeter sizes mezzanine pipe columns by height.
	MezzanineColumnKgPerMeter = 32.0
	// MonitorFrameSpacing is the run of monitor per frame, meters.
	MonitorFrameSpacing = 3.0
	// MonitorHotRolledKgPerMeter sizes hot-rolled monitor frames.
	MonitorHotRolledKgPerMeter = 25.0
	// MonitorOpeningLimit is the opening width in millimeters past which a
	// cold-formed monitor frame must be upgraded to hot rolled.
	MonitorOpeningLimit = 1000.0
	// MonitorLouverWidth is the width of one fixed louver set, meters.
	MonitorLouverWidth = 0.6
	// CanopyFasciaHeight is the default fascia panel drop, meters.
	CanopyFasciaHeight = 1.2
	// CraneBracketRatio is bracket weight as a share of runway beam weight.
	CraneBracketRatio = 0.15
)

// Mezzanine takes off an intermediate floor: joists, edge beams, columns,
// and deck panels.
func Mezzanine(ctx context.Context, c *Context, b *bom.Builder) error {
	m := c.Input.Mezzanine
	if m == nil {
		return nil
	}
	spans := dimension.GetBuildingDimension(m.Spans)
	bays := dimension.GetBuildingDimension(m.Bays)
	if spans.Total <= 0 || bays.Total <= 0 {
		return nil
	}
	width, length := spans.Total, bays.Total

	joists := int(math.Ceil(width/MezzanineJoistSpacing)) + 1
	if err := b.AddCode(ctx, "MEZZANINE", "MZJST", salesCodeMezzanine, length, float64(joists)); err != nil {
		return err
	}

	beamLines := spans.BayCount + 1
	wpm := engineering.MainFrameWeightPerMeter(m.LiveLoad.F(), bays.MaxSpan, spans.MaxSpan, c.MinThickness)
	beamKg := wpm * 0.6 * length * float64(beamLines)
	if err := b.AddCode(ctx, "", "MZBM", salesCodeMezzanine, 0, beamKg); err != nil {
		return err
	}

	columns := (spans.BayCount + 1) * (bays.BayCount + 1)
	columnKg := m.Height.F() * MezzanineColumnKgPerMeter * float64(columns)
	if err := b.AddCode(ctx, "", "MZCOL", salesCodeMezzanine, 0, columnKg); err != nil {
		return err
	}

	deck := m.DeckCode
	if deck == "" {
		deck = "MZDCK"
	}
	area := width * length
	if err := b.AddCode(ctx, "", deck, salesCodeMezzanine, 0, area); err != nil {
		return err
	}
	return sheetingScrews(ctx, b, salesCodeMezzanine, area)
}

// Crane takes off the runway beams, rails, and brackets for a top-running
// crane spanning the full building length on both sides.
func Crane(ctx context.Context, c *Context, b *bom.Builder) error {
	cr := c.Input.Crane
	if cr == nil || cr.Capacity.F() <= 0 || c.Dim.Length <= 0 {
		return nil
	}

	index := engineering.CraneBeamIndex(cr.Capacity.F(), c.Dim.MaxBay, cr.RailCenters.F(), cr.Duty)
	beam := engineering.SelectCraneBeam(index, c.Dim.MaxBay)

	var runwayKg float64
	if beam.BuiltUp {
		runwayKg = beam.Weight * float64(c.Dim.BayCount) * 2
		if err := b.AddCode(ctx, "CRANE RUNWAY", beam.Code, salesCodeCrane, 0, runwayKg); err != nil {
			return err
		}
	} else {
		runwayKg = beam.Weight * c.Dim.Length * 2
		if err := b.AddCode(ctx, "CRANE RUNWAY", beam.Code, salesCodeCrane, c.Dim.Length, 2); err != nil {
			return err
		}
	}

	if err := b.AddCode(ctx, "", "CRNRL", salesCodeCrane, c.Dim.Length, 2); err != nil {
		return err
	}
	return b.AddCode(ctx, "", codeBuiltUp, salesCodeCrane, 0, runwayKg*CraneBracketRatio)
}

// Canopy dispatches the three roof-edge variants. A plain canopy gets
// cantilever brackets, a fascia trades them for a vertical panel drop, and
// a roof extension carries the purlin and sheeting run only.
func Canopy(ctx context.Context, c *Context, b *bom.Builder) error {
	cn := c.Input.Canopy
	if cn == nil {
		return nil
	}
	w, l := cn.Width.F(), cn.Length.F()
	if w <= 0 || l <= 0 {
		return nil
	}

	var header string
	switch cn.Style {
	case enums.CanopyFascia:
		header = "FASCIA"
	case enums.CanopyRoofExtension:
		header = "ROOF EXTENSION"
	default:
		header = "CANOPY"
	}

	if cn.Style != enums.CanopyRoofExtension {
		brackets := int(math.Ceil(l/MonitorFrameSpacing)) + 1
		wplm := mainFrameWeightPerMeter(c)
		bracketKg := wplm * 0.35 * w * float64(brackets)
		if err := b.AddCode(ctx, header, codeBuiltUp, salesCodeCanopy, 0, bracketKg); err != nil {
			return err
		}
		header = ""
	}

	index := engineering.PurlinDesignIndex(engineering.KCantilever, c.Loads.MainFrame, w)
	lines := int(math.Ceil(w/PurlinSpacing)) + 1
	if err := b.AddCode(ctx, header, engineering.LookupPurlinCode(index), salesCodeCanopy, l, float64(lines)); err != nil {
		return err
	}

	area := w * l
	if err := b.AddCode(ctx, "", c.RoofPanel, salesCodeCanopy, 0, area); err != nil {
		return err
	}
	if cn.Style == enums.CanopyFascia {
		if err := b.AddCode(ctx, "", c.WallPanel, salesCodeCanopy, 0, l*CanopyFasciaHeight); err != nil {
			return err
		}
	}
	if err := sheetingScrews(ctx, b, salesCodeCanopy, area); err != nil {
		return err
	}
	return b.AddCode(ctx, "", codeEaveTrim, salesCodeCanopy, l, 1)
}

// Partition takes off an interior partition wall: girt grid plus single
// skin sheeting.
func Partition(ctx context.Context, c *Context, b *bom.Builder) error {
	p := c.Input.Partition
	if p == nil {
		return nil
	}
	l, h := p.Length.F(), p.Height.F()
	if l <= 0 || h <= 0 {
		return nil
	}

	lines := int(math.Ceil(h / GirtSpacing))
	index := engineering.PurlinDesignIndex(engineering.KSimpleSpan, c.Loads.MainFrame, c.Dim.MaxBay)
	if err := b.AddCode(ctx, "PARTITION", engineering.LookupGirtCode(index), salesCodePartition, l, float64(lines)); err != nil {
		return err
	}

	panel := p.PanelCode
	if panel == "" {
		panel = c.WallPanel
	}
	area := l * h
	if err := b.AddCode(ctx, "", panel, salesCodePartition, 0, area); err != nil {
		return err
	}
	return sheetingScrews(ctx, b, salesCodePartition, area)
}

// RoofMonitor takes off a ridge monitor. The eave closure and frame
// construction pair selects one of four variants; openings wider than the
// limit force either cold-formed variant onto its hot-rolled counterpart.
func RoofMonitor(ctx context.Context, c *Context, b *bom.Builder) error {
	rm := c.Input.RoofMonitor
	if rm == nil {
		return nil
	}
	w, l, throat := rm.Width.F(), rm.Length.F(), rm.ThroatHeight.F()
	if w <= 0 || l <= 0 {
		return nil
	}

	frame := rm.Frame
	if rm.OpeningWidth.F() > MonitorOpeningLimit {
		frame = enums.MonitorHotRolled
	}
	eave := rm.Eave
	if eave != enums.MonitorEaveOpen {
		eave = enums.MonitorEaveSheeted
	}

	frames := int(math.Ceil(l/MonitorFrameSpacing)) + 1
	perimeter := w + 2*throat
	area := w * l

	switch {
	case eave == enums.MonitorEaveOpen && frame == enums.MonitorHotRolled:
		if err := monitorHotRolledFrames(ctx, b, perimeter, frames); err != nil {
			return err
		}
		if err := monitorThroatLouvers(ctx, b, l, throat); err != nil {
			return err
		}
	case eave == enums.MonitorEaveOpen:
		if err := monitorColdFormedFrames(ctx, b, perimeter, frames); err != nil {
			return err
		}
		if err := monitorThroatLouvers(ctx, b, l, throat); err != nil {
			return err
		}
	case frame == enums.MonitorHotRolled:
		if err := monitorHotRolledFrames(ctx, b, perimeter, frames); err != nil {
			return err
		}
		sheeted, err := monitorThroatSheeting(ctx, c, b, l, throat)
		if err != nil {
			return err
		}
		area += sheeted
	default:
		if err := monitorColdFormedFrames(ctx, b, perimeter, frames); err != nil {
			return err
		}
		sheeted, err := monitorThroatSheeting(ctx, c, b, l, throat)
		if err != nil {
			return err
		}
		area += sheeted
	}

	if err := b.AddCode(ctx, "", c.RoofPanel, salesCodeMonitor, 0, w*l); err != nil {
		return err
	}
	if err := sheetingScrews(ctx, b, salesCodeMonitor, area); err != nil {
		return err
	}
	return b.AddCode(ctx, "", codeGableTrim, salesCodeMonitor, l, 2)
}

func monitorHotRolledFrames(ctx context.Context, b *bom.Builder, perimeter float64, frames int) error {
	kg := perimeter * MonitorHotRolledKgPerMeter * float64(frames)
	return b.AddCode(ctx, "ROOF MONITOR", "RMHRF", salesCodeMonitor, 0, kg)
}

func monitorColdFormedFrames(ctx context.Context, b *bom.Builder, perimeter float64, frames int) error {
	return b.AddCode(ctx, "ROOF MONITOR", "RMCFF", salesCodeMonitor, perimeter, float64(frames))
}

// monitorThroatSheeting clads both throat sides with wall panel and returns
// the covered area so screws follow it.
func monitorThroatSheeting(ctx context.Context, c *Context, b *bom.Builder, l, throat float64) (float64, error) {
	if throat <= 0 {
		return 0, nil
	}
	area := 2 * l * throat
	return area, b.AddCode(ctx, "", c.WallPanel, salesCodeMonitor, 0, area)
}

// monitorThroatLouvers lines both throat sides with fixed louver sets.
func monitorThroatLouvers(ctx context.Context, b *bom.Builder, l, throat float64) error {
	if throat <= 0 {
		return nil
	}
	sets := math.Ceil(2 * l / MonitorLouverWidth)
	return b.AddCode(ctx, "", codeLouver, salesCodeMonitor, 0, sets)
}

// Liner covers the requested interior areas with liner panel.
func Liner(ctx context.Context, c *Context, b *bom.Builder) error {
	ln := c.Input.Liner
	if ln == nil {
		return nil
	}
	area := ln.RoofArea.F() + ln.WallArea.F()
	if area <= 0 {
		return nil
	}
	if err := b.AddCode(ctx, "LINER PANELS", "LINP35", 2, 0, area); err != nil {
		return err
	}
	return sheetingScrews(ctx, b, 2, area)
}
