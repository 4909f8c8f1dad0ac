package calc

import (
	"context"
	"math"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// bracedBayCount is how many bays carry bracing, one per interval with at
// least one whenever the building has any bays at all.
func bracedBayCount(c *Context) int {
	if c.Dim.BayCount == 0 {
		return 0
	}
	n := int(math.Ceil(float64(c.Dim.BayCount) / BracedBayInterval))
	if n < 1 {
		n = 1
	}
	return n
}

// Bracing dispatches on the bracing system. Rod and cable systems take off
// diagonal lengths; portal frames are weighed like light rigid frames.
func Bracing(ctx context.Context, c *Context, b *bom.Builder) error {
	braced := bracedBayCount(c)
	if braced == 0 {
		return nil
	}

	switch c.Input.BracingType {
	case enums.BracingPortal:
		// A portal carries roughly the leg-and-header run of a light frame.
		wplm := mainFrameWeightPerMeter(c)
		run := c.Dim.MaxBay + 2*c.Dim.EaveHeight
		totalKg := wplm * 0.45 * run * float64(braced)
		return b.AddCode(ctx, "PORTAL BRACING", codePortalBrace, 1, 0, totalKg)
	case enums.BracingCable:
		return diagonalBracing(ctx, c, b, "CABLE BRACING", codeCableBrace, braced)
	default:
		return diagonalBracing(ctx, c, b, "ROD BRACING", codeRodBrace, braced)
	}
}

func diagonalBracing(ctx context.Context, c *Context, b *bom.Builder, header, code string, braced int) error {
	wallDiag := math.Sqrt(c.Dim.MaxBay*c.Dim.MaxBay + c.Dim.EaveHeight*c.Dim.EaveHeight)
	roofDiag := math.Sqrt(c.Dim.MaxBay*c.Dim.MaxBay + c.Dim.MaxSpan*c.Dim.MaxSpan)

	// Two crossed diagonals per sidewall per braced bay.
	wallQty := float64(braced * 4)
	if err := b.AddCode(ctx, header, code, 1, wallDiag, wallQty); err != nil {
		return err
	}
	// Two crossed diagonals per span per braced bay in the roof plane.
	roofQty := float64(braced * c.Dim.SpanCount * 2)
	if roofQty == 0 {
		return nil
	}
	return b.AddCode(ctx, "", code, 1, roofDiag, roofQty)
}
