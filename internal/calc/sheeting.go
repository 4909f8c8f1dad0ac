package calc

import (
	"context"
	"math"

	"github.com/pebworks/steelquote-backend/internal/bom"
)

// sheetingScrews appends the fastener line for a sheeted area. Shared with
// the add-on calculators so canopies and partitions fasten at the same
// density as the main envelope.
func sheetingScrews(ctx context.Context, b *bom.Builder, salesCode int, area float64) error {
	if area <= 0 {
		return nil
	}
	qty := math.Ceil(area * ScrewsPerSquareMeter)
	return b.AddCode(ctx, "", codeScrew, salesCode, 0, qty)
}

// RoofSheeting covers the roof plane, carving out the skylight percentage.
func RoofSheeting(ctx context.Context, c *Context, b *bom.Builder) error {
	area := c.Dim.RoofArea
	if area <= 0 {
		return nil
	}

	skyPct := c.Input.SkylightPct.F() / 100
	if skyPct < 0 {
		skyPct = 0
	}
	if skyPct > 1 {
		skyPct = 1
	}
	skyArea := area * skyPct
	panelArea := area - skyArea

	if err := b.AddCode(ctx, "ROOF SHEETING", c.RoofPanel, 2, 0, panelArea); err != nil {
		return err
	}
	if skyArea > 0 {
		if err := b.AddCode(ctx, "", codeSkylight, 2, 0, skyArea); err != nil {
			return err
		}
	}
	if err := sheetingScrews(ctx, b, 2, area); err != nil {
		return err
	}
	// Foam closures seal both eaves.
	return b.AddCode(ctx, "", codeFoamClosure, 2, 2*c.Dim.Length, 1)
}

// WallSheeting covers both sidewalls plus the two gable ends.
func WallSheeting(ctx context.Context, c *Context, b *bom.Builder) error {
	area := c.Dim.WallArea + 2*c.Dim.GableArea
	if area <= 0 {
		return nil
	}
	if err := b.AddCode(ctx, "WALL SHEETING", c.WallPanel, 2, 0, area); err != nil {
		return err
	}
	if err := sheetingScrews(ctx, b, 2, area); err != nil {
		return err
	}
	base := 2*c.Dim.Length + 2*c.Dim.Width
	return b.AddCode(ctx, "", codeFoamClosure, 2, base, 1)
}
