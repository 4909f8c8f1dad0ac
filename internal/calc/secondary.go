package calc

import (
	"context"
	"math"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/internal/engineering"
)

// purlinLineCount is the number of purlin lines across the full roof slope.
func purlinLineCount(c *Context) int {
	if c.Dim.RafterLength <= 0 {
		return 0
	}
	return int(math.Ceil(c.Dim.RafterLength/PurlinSpacing)) + 1
}

// girtLineCount is the number of girt lines up one wall.
func girtLineCount(c *Context) int {
	if c.Dim.EaveHeight <= 0 {
		return 0
	}
	return int(math.Ceil(c.Dim.EaveHeight / GirtSpacing))
}

// Purlins lays out the roof purlin lines plus their sag rods and clips.
func Purlins(ctx context.Context, c *Context, b *bom.Builder) error {
	lines := purlinLineCount(c)
	if lines == 0 || c.Dim.Length <= 0 {
		return nil
	}

	index := engineering.PurlinDesignIndex(engineering.KSimpleSpan, c.Loads.MainFrame, c.Dim.MaxBay)
	code := engineering.LookupPurlinCode(index)

	if err := b.AddCode(ctx, "ROOF PURLINS", code, 1, c.Dim.Length, float64(lines)); err != nil {
		return err
	}

	// One pair of sag rods per purlin line per bay, clips at every frame.
	sagRods := float64(lines * c.Dim.BayCount * 2)
	if err := b.AddCode(ctx, "", codeSagRod, 1, 0, sagRods); err != nil {
		return err
	}
	clips := float64(lines * c.FrameCount() * 2)
	return b.AddCode(ctx, "", codePurlinClip, 1, 0, clips)
}

// Girts lays out sidewall girt lines and the eave struts that close the top
// of both sidewalls.
func Girts(ctx context.Context, c *Context, b *bom.Builder) error {
	lines := girtLineCount(c)
	if lines == 0 || c.Dim.Length <= 0 {
		return nil
	}

	index := engineering.PurlinDesignIndex(engineering.KSimpleSpan, c.Loads.MainFrame, c.Dim.MaxBay)
	code := engineering.LookupGirtCode(index)

	if err := b.AddCode(ctx, "WALL GIRTS", code, 1, c.Dim.Length, float64(lines*2)); err != nil {
		return err
	}
	if err := b.AddCode(ctx, "", codeEaveStrut, 1, c.Dim.Length, 2); err != nil {
		return err
	}
	clips := float64(lines * 2 * c.FrameCount() * 2)
	return b.AddCode(ctx, "", codePurlinClip, 1, 0, clips)
}
