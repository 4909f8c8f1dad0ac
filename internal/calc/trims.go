package calc

import (
	"context"
	"math"

	"github.com/pebworks/steelquote-backend/internal/bom"
)

// Trims takes off the flashing and rainware around the envelope.
func Trims(ctx context.Context, c *Context, b *bom.Builder) error {
	if c.Dim.Length <= 0 && c.Dim.Width <= 0 {
		return nil
	}

	if c.Dim.Length > 0 {
		if err := b.AddCode(ctx, "TRIM & FLASHING", codeEaveTrim, 2, c.Dim.Length, 2); err != nil {
			return err
		}
		if err := b.AddCode(ctx, "", codeRidgeCap, 2, c.Dim.Length, 1); err != nil {
			return err
		}
		if err := b.AddCode(ctx, "", codeGutter, 2, c.Dim.Length, 2); err != nil {
			return err
		}

		spouts := math.Ceil(c.Dim.Length/DownspoutSpacing) * 2
		spoutDrop := c.Dim.EaveHeight + 0.5
		if err := b.AddCode(ctx, "", codeDownspout, 2, spoutDrop, spouts); err != nil {
			return err
		}
	}

	if c.Dim.RafterLength > 0 {
		if err := b.AddCode(ctx, "", codeGableTrim, 2, c.Dim.RafterLength, 2); err != nil {
			return err
		}
	}
	if c.Dim.EaveHeight > 0 {
		if err := b.AddCode(ctx, "", codeCornerTrim, 2, c.Dim.EaveHeight, 4); err != nil {
			return err
		}
	}
	return nil
}
