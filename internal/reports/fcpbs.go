package reports

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pebworks/steelquote-backend/internal/bom"
)

// Markup groups. Steel and panels carry configurable ratios; everything
// else passes through at face value.
const (
	GroupSteel  = "steel"
	GroupPanels = "panels"
	GroupOther  = "other"
)

// Category is one rollup bucket keyed by cost code.
type Category struct {
	Key   string
	Name  string
	Group string
}

// categoryTable is the fixed cost-code order of the rollup sheet.
var categoryTable = []Category{
	{"A", "Primary Framing Steel", GroupSteel},
	{"B", "Secondary Framing Steel", GroupSteel},
	{"C", "Bracing & Crane Steel", GroupSteel},
	{"D", "Anchorage", GroupSteel},
	{"E", "Fasteners & Hardware", GroupSteel},
	{"F", "Roof Panels", GroupPanels},
	{"G", "Wall Panels", GroupPanels},
	{"H", "Trim & Flashing", GroupPanels},
	{"I", "Doors, Windows & Vents", GroupPanels},
	{"J", "Liner Panels", GroupPanels},
	{"M", "Miscellaneous", GroupOther},
	{"O", "Other Materials", GroupOther},
	{"Q", "Freight & Packing", GroupOther},
	{"T", "Erection", GroupOther},
}

// steelSubtotalKeys and panelsSubtotalKeys bound the two subtotal bands on
// the sheet. Fastener category E rides outside both bands but inside the
// grand total.
var (
	steelSubtotalKeys  = map[string]bool{"A": true, "B": true, "C": true, "D": true}
	panelsSubtotalKeys = map[string]bool{"F": true, "G": true, "H": true, "I": true, "J": true}
)

// fallbackCategoryKey absorbs line items whose cost code is not mapped.
const fallbackCategoryKey = "O"

// Markups are the resolved ratios for one rollup. An explicit zero is a
// real override and zeroes the selling prices of that group.
type Markups struct {
	Steel  float64
	Panels float64
}

func (m Markups) forGroup(group string) decimal.Decimal {
	switch group {
	case GroupSteel:
		return decimal.NewFromFloat(m.Steel)
	case GroupPanels:
		return decimal.NewFromFloat(m.Panels)
	default:
		return decimal.NewFromInt(1)
	}
}

// FCPBSRow is one category line of the rollup sheet.
type FCPBSRow struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	Group             string  `json:"group"`
	WeightKg          float64 `json:"weight_kg"`
	MaterialCost      float64 `json:"material_cost"`
	ManufacturingCost float64 `json:"manufacturing_cost"`
	OverheadCost      float64 `json:"overhead_cost"`
	TotalCost         float64 `json:"total_cost"`
	SellingPrice      float64 `json:"selling_price"`
	WeightPct         float64 `json:"weight_pct"`
	PricePerMT        float64 `json:"price_per_mt"`
}

// FCPBS is the full cost/price rollup.
type FCPBS struct {
	Rows           []FCPBSRow `json:"rows"`
	SteelSubtotal  FCPBSRow   `json:"steel_subtotal"`
	PanelsSubtotal FCPBSRow   `json:"panels_subtotal"`
	FOBPrice       float64    `json:"fob_price"`
	TotalWeight    float64    `json:"total_weight"`
	TotalCost      float64    `json:"total_cost"`
	TotalPrice     float64    `json:"total_price"`
	Markups        Markups    `json:"markups"`
}

// CategoryByKey resolves a cost code to its rollup category, absorbing
// unmapped codes into the fallback rather than failing the sheet.
func CategoryByKey(costCode string) Category {
	key := strings.ToUpper(strings.TrimSpace(costCode))
	for _, cat := range categoryTable {
		if cat.Key == key {
			return cat
		}
	}
	for _, cat := range categoryTable {
		if cat.Key == fallbackCategoryKey {
			return cat
		}
	}
	return Category{}
}

type catAcc struct {
	weight decimal.Decimal
	mat    decimal.Decimal
	manu   decimal.Decimal
	ovh    decimal.Decimal
}

// BuildFCPBS rolls the data rows up into the fixed category table, applies
// the per-group markups, and computes the subtotal bands.
func BuildFCPBS(items []bom.Item, markups Markups) *FCPBS {
	accs := make(map[string]*catAcc, len(categoryTable))
	for _, cat := range categoryTable {
		accs[cat.Key] = &catAcc{}
	}

	for _, item := range items {
		if !item.IsData() {
			continue
		}
		cat := CategoryByKey(item.CostCode)
		a := accs[cat.Key]
		mult := decimal.NewFromFloat(item.Multiplier())
		a.weight = a.weight.Add(decimal.NewFromFloat(item.TotalWeight))
		a.mat = a.mat.Add(decimal.NewFromFloat(item.MaterialCost).Mul(mult))
		a.manu = a.manu.Add(decimal.NewFromFloat(item.ManufacturingCost).Mul(mult))
		a.ovh = a.ovh.Add(decimal.NewFromFloat(item.OverheadCost).Mul(mult))
	}

	out := &FCPBS{Markups: markups}
	out.SteelSubtotal = FCPBSRow{Key: "SUB-S", Name: "Steel Subtotal", Group: GroupSteel}
	out.PanelsSubtotal = FCPBSRow{Key: "SUB-P", Name: "Panels Subtotal", Group: GroupPanels}

	totalWeight := decimal.Decimal{}
	for _, cat := range categoryTable {
		totalWeight = totalWeight.Add(accs[cat.Key].weight)
	}
	totalWeightF, _ := totalWeight.Float64()
	out.TotalWeight = totalWeightF

	var totalCost, totalPrice decimal.Decimal
	for _, cat := range categoryTable {
		a := accs[cat.Key]
		cost := a.mat.Add(a.manu).Add(a.ovh)
		selling := cost.Mul(markups.forGroup(cat.Group))

		row := FCPBSRow{Key: cat.Key, Name: cat.Name, Group: cat.Group}
		row.WeightKg, _ = a.weight.Float64()
		row.MaterialCost, _ = a.mat.Float64()
		row.ManufacturingCost, _ = a.manu.Float64()
		row.OverheadCost, _ = a.ovh.Float64()
		row.TotalCost, _ = cost.Float64()
		row.SellingPrice, _ = selling.Float64()
		if totalWeightF > 0 {
			row.WeightPct = row.WeightKg / totalWeightF * 100
		}
		if row.WeightKg > 0 {
			row.PricePerMT = row.SellingPrice / (row.WeightKg / 1000)
		}
		out.Rows = append(out.Rows, row)

		totalCost = totalCost.Add(cost)
		totalPrice = totalPrice.Add(selling)

		if steelSubtotalKeys[cat.Key] {
			addInto(&out.SteelSubtotal, row)
		}
		if panelsSubtotalKeys[cat.Key] {
			addInto(&out.PanelsSubtotal, row)
		}
	}

	if totalWeightF > 0 {
		out.SteelSubtotal.WeightPct = out.SteelSubtotal.WeightKg / totalWeightF * 100
		out.PanelsSubtotal.WeightPct = out.PanelsSubtotal.WeightKg / totalWeightF * 100
	}
	out.TotalCost, _ = totalCost.Float64()
	out.TotalPrice, _ = totalPrice.Float64()
	out.FOBPrice = out.SteelSubtotal.SellingPrice + out.PanelsSubtotal.SellingPrice
	return out
}

func addInto(dst *FCPBSRow, src FCPBSRow) {
	dst.WeightKg += src.WeightKg
	dst.MaterialCost += src.MaterialCost
	dst.ManufacturingCost += src.ManufacturingCost
	dst.OverheadCost += src.OverheadCost
	dst.TotalCost += src.TotalCost
	dst.SellingPrice += src.SellingPrice
}
