// Package reports derives the reporting views from a stored bill of
// materials: the raw-material consumption summary, the categorized cost and
// price rollup, and the sales-line aggregation.
package reports

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// Raw-material category names.
const (
	CatPrimarySteel   = "Primary Steel"
	CatSecondarySteel = "Secondary Steel"
	CatRoofSheeting   = "Roof Sheeting"
	CatWallSheeting   = "Wall Sheeting"
	CatFasteners      = "Fasteners & Bolts"
	CatTrim           = "Trim & Flashing"
	CatDoorsWindows   = "Doors & Windows"
	CatGutters        = "Gutters & Downspouts"
	CatCrane          = "Crane Components"
	CatMezzanine      = "Mezzanine"
	CatLinerPanels    = "Liner Panels"
	CatOther          = "Other"
)

// prefixRule assigns a category by code prefix. Rules are ordered: the
// first matching prefix wins, so MZ must come before Z and CRN before CR.
type prefixRule struct {
	Prefix   string
	Category string
}

var prefixRules = []prefixRule{
	{"BU", CatPrimarySteel},
	{"MZD", CatMezzanine},
	{"MZ", CatMezzanine},
	{"Z", CatSecondarySteel},
	{"EAV", CatSecondarySteel},
	{"ROD", CatSecondarySteel},
	{"CAB", CatSecondarySteel},
	{"PRT", CatSecondarySteel},
	{"RMCF", CatSecondarySteel},
	{"RMHR", CatPrimarySteel},
	{"PNLR", CatRoofSheeting},
	{"SKY", CatRoofSheeting},
	{"PNLW", CatWallSheeting},
	{"LIN", CatLinerPanels},
	{"TRM", CatTrim},
	{"FOAM", CatTrim},
	{"GUT", CatGutters},
	{"DWN", CatGutters},
	{"AB", CatFasteners},
	{"SDS", CatFasteners},
	{"MBOLT", CatFasteners},
	{"CLIP", CatFasteners},
	{"SAG", CatFasteners},
	{"CB", CatCrane},
	{"CRN", CatCrane},
	{"PDOOR", CatDoorsWindows},
	{"SLD", CatDoorsWindows},
	{"WIND", CatDoorsWindows},
	{"LOUV", CatDoorsWindows},
	{"RIDG", CatDoorsWindows},
}

// costCodeCategories backs up the prefix table for codes it does not know.
var costCodeCategories = map[string]string{
	"A": CatPrimarySteel,
	"B": CatSecondarySteel,
	"C": CatSecondarySteel,
	"D": CatFasteners,
	"E": CatFasteners,
	"F": CatRoofSheeting,
	"G": CatWallSheeting,
	"H": CatTrim,
	"I": CatDoorsWindows,
	"J": CatLinerPanels,
}

// materialCategory dispatches a product code to its raw-material category,
// falling back to the cost code and finally to Other.
func materialCategory(code, costCode string) string {
	upper := strings.ToUpper(code)
	for _, rule := range prefixRules {
		if strings.HasPrefix(upper, rule.Prefix) {
			return rule.Category
		}
	}
	if cat, ok := costCodeCategories[strings.ToUpper(costCode)]; ok {
		return cat
	}
	return CatOther
}

// RawMatRow is one deduplicated material line.
type RawMatRow struct {
	No          int        `json:"no"`
	Category    string     `json:"category"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	Unit        enums.Unit `json:"unit"`
	Quantity    float64    `json:"quantity"`
	TotalWeight float64    `json:"total_weight"`
	Sources     string     `json:"sources"`
}

// effectiveSize makes per-count hardware with size zero count as one unit.
func effectiveSize(size float64) float64 {
	if size < 1 {
		return 1
	}
	return size
}

// BuildRawMat collapses the data rows by product code. Quantity and weight
// both scale by quantity times max(size, 1); sources list the contributing
// sales codes comma-joined in first-seen order. Output rows sort by
// (category, code) and number from 1.
func BuildRawMat(items []bom.Item) []RawMatRow {
	type acc struct {
		row     RawMatRow
		sources []int
	}
	byCode := make(map[string]*acc)
	order := make([]string, 0)

	for _, item := range items {
		if !item.IsData() {
			continue
		}
		mult := item.Quantity * effectiveSize(item.Size)

		a, ok := byCode[item.Code]
		if !ok {
			a = &acc{row: RawMatRow{
				Category:    materialCategory(item.Code, item.CostCode),
				Code:        item.Code,
				Description: item.Description,
				Unit:        item.Unit,
			}}
			byCode[item.Code] = a
			order = append(order, item.Code)
		}
		a.row.Quantity += mult
		a.row.TotalWeight += item.UnitWeight * mult

		seen := false
		for _, s := range a.sources {
			if s == item.SalesCode {
				seen = true
				break
			}
		}
		if !seen {
			a.sources = append(a.sources, item.SalesCode)
		}
	}

	rows := make([]RawMatRow, 0, len(order))
	for _, code := range order {
		a := byCode[code]
		parts := make([]string, 0, len(a.sources))
		for _, s := range a.sources {
			parts = append(parts, strconv.Itoa(s))
		}
		a.row.Sources = strings.Join(parts, ",")
		rows = append(rows, a.row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Code < rows[j].Code
	})
	for i := range rows {
		rows[i].No = i + 1
	}
	return rows
}
