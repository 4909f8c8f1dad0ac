package calc

import (
	"context"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/internal/engineering"
)

// Product codes the structural calculators resolve. These are catalog keys,
// not descriptions; a code missing from the master degrades to a zero-cost
// row rather than aborting the pass.
const (
	codeBuiltUp        = "BUPLT"
	codeEndwallColumn  = "BUEWC"
	codeEaveStrut      = "EAVST"
	codeSagRod         = "SAGRD"
	codePurlinClip     = "CLIPP"
	codeRodBrace       = "RODBR"
	codeCableBrace     = "CABBR"
	codePortalBrace    = "PRTBR"
	codeScrew          = "SDS55"
	codeMachineBolt    = "MBOLT"
	codeFoamClosure    = "FOAMC"
	codeSkylight       = "SKY25"
	codeEaveTrim       = "TRMEV"
	codeGableTrim      = "TRMGB"
	codeCornerTrim     = "TRMCR"
	codeRidgeCap       = "TRMRD"
	codeGutter         = "GUTTR"
	codeDownspout      = "DWNSP"
	codePersonnelDoor  = "PDOOR"
	codeSlidingDoor    = "SLDDR"
	codeWindow         = "WINDW"
	codeLouver         = "LOUVR"
	codeRidgeVent      = "RIDGV"
	codePacking        = "PACKG"
	codeFreight        = "FRGHT"
	codeErection       = "ERECT"
)

// frameSteelLength is the rafter run plus both columns for one frame line.
func frameSteelLength(c *Context) float64 {
	return c.Dim.RafterLength + 2*c.Dim.EaveHeight
}

// mainFrameWeightPerMeter is the shared frame sizing entry the structural
// calculators key connection and bolt selection on.
func mainFrameWeightPerMeter(c *Context) float64 {
	return engineering.MainFrameWeightPerMeter(c.Loads.MainFrame, c.Dim.MaxBay, c.Dim.MaxSpan, c.MinThickness)
}

// MainFrames sizes the interior rigid frames and their connection plates.
func MainFrames(ctx context.Context, c *Context, b *bom.Builder) error {
	frames := c.InteriorFrameCount()
	if frames == 0 || c.Dim.Width <= 0 {
		return nil
	}

	wplm := mainFrameWeightPerMeter(c)
	frameKg := wplm * frameSteelLength(c)
	totalKg := frameKg * float64(frames)

	if err := b.AddCode(ctx, "MAIN FRAMES", codeBuiltUp, 1, 0, totalKg); err != nil {
		return err
	}

	plateKg := totalKg * engineering.ConnectionPlatePercent(frameKg)
	return b.AddCode(ctx, "", codeBuiltUp, 1, 0, plateKg)
}
