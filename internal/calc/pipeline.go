package calc

import (
	"context"

	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// Calculator is one takeoff step. Calculators are stateless and idempotent:
// the same context always appends the same rows.
type Calculator func(ctx context.Context, c *Context, b *bom.Builder) error

type step struct {
	name string
	fn   Calculator
}

// structuralSteps is the fixed takeoff order for the main building.
var structuralSteps = []step{
	{"main_frames", MainFrames},
	{"purlins", Purlins},
	{"girts", Girts},
	{"bracing", Bracing},
	{"roof_sheeting", RoofSheeting},
	{"wall_sheeting", WallSheeting},
	{"left_endwall", LeftEndwall},
	{"right_endwall", RightEndwall},
	{"trims", Trims},
	{"fasteners", Fasteners},
	{"accessories", Accessories},
}

// addonSteps maps each add-on kind to its calculator. Every add-on is
// runnable on its own through RunAddon.
var addonSteps = map[enums.AddonKind]step{
	enums.AddonMezzanine:   {"mezzanine", Mezzanine},
	enums.AddonCrane:       {"crane", Crane},
	enums.AddonCanopy:      {"canopy", Canopy},
	enums.AddonPartition:   {"partition", Partition},
	enums.AddonRoofMonitor: {"roof_monitor", RoofMonitor},
	enums.AddonLiner:       {"liner", Liner},
	enums.AddonAccessories: {"accessories", Accessories},
}

// addonOrder keeps merged output deterministic.
var addonOrder = []enums.AddonKind{
	enums.AddonMezzanine,
	enums.AddonCrane,
	enums.AddonCanopy,
	enums.AddonPartition,
	enums.AddonRoofMonitor,
	enums.AddonLiner,
}

// Result is the output of one calculation pass.
type Result struct {
	Items      []bom.Item  `json:"items"`
	Summary    bom.Summary `json:"summary"`
	Dimensions Dimensions  `json:"dimensions"`
	Loads      Loads       `json:"loads"`
}

func (in *Input) enabledAddon(kind enums.AddonKind) bool {
	switch kind {
	case enums.AddonMezzanine:
		return in.Mezzanine != nil
	case enums.AddonCrane:
		return in.Crane != nil
	case enums.AddonCanopy:
		return in.Canopy != nil
	case enums.AddonPartition:
		return in.Partition != nil
	case enums.AddonRoofMonitor:
		return in.RoofMonitor != nil
	case enums.AddonLiner:
		return in.Liner != nil
	}
	return false
}

// Run executes the full pass: the structural calculators in fixed order,
// then each enabled add-on, then the lump-sum charges. The returned result
// carries the bill plus the derived geometry the estimation writes back.
func Run(ctx context.Context, input *Input, source bom.ProductSource) (*Result, error) {
	c := BuildContext(input)
	b := bom.NewBuilder(source)

	for _, s := range structuralSteps {
		if err := s.fn(ctx, c, b); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "calculator "+s.name+" failed")
		}
	}

	for _, kind := range addonOrder {
		if !input.enabledAddon(kind) {
			continue
		}
		s := addonSteps[kind]
		b.AddSeparator()
		if err := s.fn(ctx, c, b); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "calculator "+s.name+" failed")
		}
	}

	if err := HandlingPacking(ctx, c, b, source); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "calculator charges failed")
	}

	items := b.Items()
	return &Result{
		Items:      items,
		Summary:    bom.Summarize(items),
		Dimensions: c.Dim,
		Loads:      c.Loads,
	}, nil
}

// RunAddon executes a single add-on calculator against the same input,
// producing an independent bill the caller can merge.
func RunAddon(ctx context.Context, kind enums.AddonKind, input *Input, source bom.ProductSource) (*Result, error) {
	s, ok := addonSteps[kind]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown addon kind")
	}

	c := BuildContext(input)
	b := bom.NewBuilder(source)
	if err := s.fn(ctx, c, b); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "calculator "+s.name+" failed")
	}

	items := b.Items()
	return &Result{
		Items:      items,
		Summary:    bom.Summarize(items),
		Dimensions: c.Dim,
		Loads:      c.Loads,
	}, nil
}
