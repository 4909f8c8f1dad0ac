package reports

import (
	"sort"

	"github.com/pebworks/steelquote-backend/internal/bom"
)

// SALRow is one sales-code group line.
type SALRow struct {
	SalesCode    int     `json:"sales_code"`
	WeightKg     float64 `json:"weight_kg"`
	Cost         float64 `json:"cost"`
	Price        float64 `json:"price"`
	OtherCharges float64 `json:"other_charges"`
	TotalPrice   float64 `json:"total_price"`
	PricePerMT   float64 `json:"price_per_mt"`
}

// SAL is the sales-line aggregation.
type SAL struct {
	Rows        []SALRow `json:"rows"`
	TotalWeight float64  `json:"total_weight"`
	TotalCost   float64  `json:"total_cost"`
	TotalPrice  float64  `json:"total_price"`
	MarkupRatio float64  `json:"markup_ratio"`
}

// BuildSAL regroups the data rows by sales code and folds the rollup's
// freight-and-packing category across the groups in proportion to weight,
// or evenly when no group carries any weight. The distribution is exact:
// the residual lands on the last eligible group so the distributed sum
// equals the category total to the bit.
func BuildSAL(items []bom.Item, rollup *FCPBS) *SAL {
	byCode := make(map[int]*SALRow)
	codes := make([]int, 0)

	for _, item := range items {
		if !item.IsData() {
			continue
		}
		cat := CategoryByKey(item.CostCode)
		if cat.Key == "Q" {
			// Freight and packing redistributes across the material groups
			// below instead of standing as its own line.
			continue
		}

		row, ok := byCode[item.SalesCode]
		if !ok {
			row = &SALRow{SalesCode: item.SalesCode}
			byCode[item.SalesCode] = row
			codes = append(codes, item.SalesCode)
		}

		cost := item.TotalCost()
		markup, _ := rollup.Markups.forGroup(cat.Group).Float64()
		row.WeightKg += item.TotalWeight
		row.Cost += cost
		row.Price += cost * markup
	}

	sort.Ints(codes)
	out := &SAL{Rows: make([]SALRow, 0, len(codes))}

	var totalWeight float64
	for _, code := range codes {
		totalWeight += byCode[code].WeightKg
	}

	var qTotal float64
	for _, row := range rollup.Rows {
		if row.Key == "Q" {
			qTotal = row.SellingPrice
		}
	}

	distributed := 0.0
	lastWithWeight := -1
	for i, code := range codes {
		if byCode[code].WeightKg > 0 {
			lastWithWeight = i
		}
	}
	for i, code := range codes {
		row := byCode[code]
		switch {
		case totalWeight > 0 && row.WeightKg > 0:
			if i == lastWithWeight {
				row.OtherCharges = qTotal - distributed
			} else {
				row.OtherCharges = qTotal * (row.WeightKg / totalWeight)
				distributed += row.OtherCharges
			}
		case totalWeight == 0:
			// A charges-only bill has no weight to key on; split the
			// category evenly so its total still lands in the lines.
			if i == len(codes)-1 {
				row.OtherCharges = qTotal - distributed
			} else {
				row.OtherCharges = qTotal / float64(len(codes))
				distributed += row.OtherCharges
			}
		}
		row.TotalPrice = row.Price + row.OtherCharges
		if row.WeightKg > 0 {
			row.PricePerMT = row.TotalPrice / (row.WeightKg / 1000)
		}

		out.Rows = append(out.Rows, *row)
		out.TotalWeight += row.WeightKg
		out.TotalCost += row.Cost
		out.TotalPrice += row.TotalPrice
	}

	if out.TotalCost > 0 {
		out.MarkupRatio = out.TotalPrice / out.TotalCost
	}
	return out
}
