package calc

import (
	"context"
	"math"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/internal/engineering"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// endwallPostCount is the number of interior posts across the endwall at
// the target spacing, corner columns excluded.
func endwallPostCount(width float64) int {
	if width <= EndwallColumnSpacing {
		return 0
	}
	return int(math.Ceil(width/EndwallColumnSpacing)) - 1
}

// LeftEndwall and RightEndwall wrap the shared endwall takeoff so the
// pipeline lists both walls as distinct steps.
func LeftEndwall(ctx context.Context, c *Context, b *bom.Builder) error {
	return endwall(ctx, c, b, c.Input.LeftEndwall, "LEFT ENDWALL")
}

func RightEndwall(ctx context.Context, c *Context, b *bom.Builder) error {
	return endwall(ctx, c, b, c.Input.RightEndwall, "RIGHT ENDWALL")
}

// endwall takes off one endwall. A rigid endwall is already counted as a
// frame line by the main frame calculator, so only the girt grid is added
// here; a bearing endwall gets posts and rake beams of its own.
func endwall(ctx context.Context, c *Context, b *bom.Builder, kind enums.EndwallType, header string) error {
	if c.Dim.Width <= 0 {
		return nil
	}

	if kind != enums.EndwallRigid {
		wpm := engineering.MainFrameWeightPerMeter(
			c.Loads.MainFrame,
			engineering.EndwallTribBay(c.Dim.EndBay),
			c.Dim.MaxSpan,
			c.MinThickness,
		)

		posts := endwallPostCount(c.Dim.Width)
		avgHeight := (c.Dim.EaveHeight + c.Dim.PeakHeight) / 2
		columnKg := wpm * avgHeight * float64(posts+2)
		rakeKg := wpm * c.Dim.RafterLength

		if err := b.AddCode(ctx, header, codeEndwallColumn, 1, 0, columnKg+rakeKg); err != nil {
			return err
		}
		header = ""
	}

	lines := girtLineCount(c)
	if lines == 0 {
		return nil
	}

	// Bearing-endwall girts run continuous across the interior posts; a
	// rigid endwall has none, so its girts span the full width simply.
	k := engineering.KSimpleSpan
	if kind != enums.EndwallRigid && endwallPostCount(c.Dim.Width) > 0 {
		k = engineering.KContinuousInterior
	}
	index := engineering.PurlinDesignIndex(
		k,
		c.Loads.MainFrame,
		engineering.EndwallTribBay(c.Dim.EndBay),
	)
	code := engineering.LookupGirtCode(index)
	return b.AddCode(ctx, header, code, 1, c.Dim.Width, float64(lines))
}
