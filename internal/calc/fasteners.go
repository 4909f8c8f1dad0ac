package calc

import (
	"context"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/internal/engineering"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// pinnedBase is the default anchorage when the column base is not fixed.
var pinnedBase = engineering.FixedBase{ConnType: 16, BoltCount: 4, BoltDia: 24}

// anchorBoltCode maps a bolt diameter to the catalog row carrying it.
func anchorBoltCode(dia int) string {
	switch {
	case dia <= 24:
		return "ABOLT"
	case dia <= 30:
		return "ABT30"
	default:
		return "ABT36"
	}
}

// Fasteners takes off the anchor bolts and the frame splice bolts. Anchor
// bolt size follows the base selection; splice bolt count follows the
// connection type derived from frame weight.
func Fasteners(ctx context.Context, c *Context, b *bom.Builder) error {
	if c.FrameCount() == 0 || c.Dim.Width <= 0 {
		return nil
	}

	base := pinnedBase
	if c.Input.BaseType == enums.BaseFixed {
		base = engineering.LookupFixedBase(c.Dim.Width)
	}

	columnsPerFrame := c.Dim.SpanCount + 1
	anchorQty := float64(base.BoltCount * columnsPerFrame * c.FrameCount())
	if err := b.AddCode(ctx, "ANCHOR BOLTS & HARDWARE", anchorBoltCode(base.BoltDia), 1, 0, anchorQty); err != nil {
		return err
	}

	conn := engineering.LookupConnectionType(mainFrameWeightPerMeter(c))
	splicesPerFrame := columnsPerFrame + 3
	boltQty := float64(conn * splicesPerFrame * c.InteriorFrameCount())
	if boltQty == 0 {
		return nil
	}
	return b.AddCode(ctx, "", codeMachineBolt, 1, 0, boltQty)
}
