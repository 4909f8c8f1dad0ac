package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

const defaultSteelMarkup = 0.80885358250258

func defaultMarkups() Markups {
	return Markups{Steel: defaultSteelMarkup, Panels: 0.85}
}

func costedItem(code, costCode string, unit enums.Unit, mat, size, qty, weight float64) bom.Item {
	return bom.Item{
		Kind: bom.KindData, Code: code, CostCode: costCode, SalesCode: 1,
		Unit: unit, MaterialCost: mat, Size: size, Quantity: qty, TotalWeight: weight,
	}
}

func findRow(t *testing.T, f *FCPBS, key string) FCPBSRow {
	t.Helper()
	for _, row := range f.Rows {
		if row.Key == key {
			return row
		}
	}
	t.Fatalf("category %s missing", key)
	return FCPBSRow{}
}

func TestBuildFCPBS_DefaultSteelMarkup(t *testing.T) {
	items := []bom.Item{
		costedItem("BUPLT", "A", enums.UnitKilogram, 100, 1, 1, 10),
	}
	f := BuildFCPBS(items, defaultMarkups())

	a := findRow(t, f, "A")
	assert.InDelta(t, 100, a.TotalCost, 1e-9)
	assert.InDelta(t, defaultSteelMarkup, a.SellingPrice/a.TotalCost, 1e-12)
	assert.InDelta(t, 10, a.WeightKg, 1e-9)
}

func TestBuildFCPBS_ExplicitZeroMarkupIsHonored(t *testing.T) {
	items := []bom.Item{
		costedItem("BUPLT", "A", enums.UnitKilogram, 100, 1, 1, 10),
	}
	f := BuildFCPBS(items, Markups{Steel: 0, Panels: 0.85})

	a := findRow(t, f, "A")
	assert.InDelta(t, 100, a.TotalCost, 1e-9)
	assert.Zero(t, a.SellingPrice)
	assert.Zero(t, f.SteelSubtotal.SellingPrice)
}

func TestBuildFCPBS_MeterRowsExtendBySize(t *testing.T) {
	items := []bom.Item{
		{
			Kind: bom.KindData, Code: "Z20G", CostCode: "B", Unit: enums.UnitMeter,
			MaterialCost: 4.58, ManufacturingCost: 0.68, OverheadCost: 0.33,
			Size: 9.144, Quantity: 10, TotalWeight: 5.85 * 9.144 * 10,
		},
	}
	f := BuildFCPBS(items, defaultMarkups())

	b := findRow(t, f, "B")
	mult := 9.144 * 10.0
	assert.InDelta(t, 4.58*mult, b.MaterialCost, 1e-9)
	assert.InDelta(t, 0.68*mult, b.ManufacturingCost, 1e-9)
	assert.InDelta(t, 0.33*mult, b.OverheadCost, 1e-9)
	assert.InDelta(t, (4.58+0.68+0.33)*mult, b.TotalCost, 1e-9)
}

func TestBuildFCPBS_WeightPctSumsToHundred(t *testing.T) {
	items := []bom.Item{
		costedItem("BUPLT", "A", enums.UnitKilogram, 1.2, 0, 1800, 1800),
		costedItem("Z20G", "B", enums.UnitMeter, 4.58, 9, 40, 5.85*9*40),
		costedItem("PNLR45", "F", enums.UnitSquareMeter, 5.85, 0, 900, 4.35*900),
		costedItem("TRMEV", "H", enums.UnitMeter, 1.82, 38, 2, 1.35*38*2),
	}
	f := BuildFCPBS(items, defaultMarkups())

	var pct float64
	for _, row := range f.Rows {
		pct += row.WeightPct
	}
	assert.InDelta(t, 100, pct, 1)
	assert.Greater(t, f.TotalWeight, 0.0)
}

func TestBuildFCPBS_SubtotalsAndFOB(t *testing.T) {
	items := []bom.Item{
		costedItem("BUPLT", "A", enums.UnitKilogram, 1.2, 0, 1000, 1000),
		costedItem("Z20G", "B", enums.UnitMeter, 4.58, 9, 40, 2106),
		costedItem("SDS55", "E", enums.UnitEach, 0.05, 0, 500, 10),
		costedItem("PNLR45", "F", enums.UnitSquareMeter, 5.85, 0, 900, 3915),
		costedItem("PACKG", "Q", enums.UnitSet, 1800, 0, 1, 0),
	}
	f := BuildFCPBS(items, defaultMarkups())

	a := findRow(t, f, "A")
	b := findRow(t, f, "B")
	assert.InDelta(t, a.SellingPrice+b.SellingPrice, f.SteelSubtotal.SellingPrice, 1e-9)
	assert.InDelta(t, findRow(t, f, "F").SellingPrice, f.PanelsSubtotal.SellingPrice, 1e-9)
	assert.InDelta(t, f.SteelSubtotal.SellingPrice+f.PanelsSubtotal.SellingPrice, f.FOBPrice, 1e-9)

	// Fasteners and the lump-sum charges sit outside FOB but inside total.
	e := findRow(t, f, "E")
	q := findRow(t, f, "Q")
	assert.InDelta(t, 1800, q.SellingPrice, 1e-9)
	assert.InDelta(t, f.FOBPrice+e.SellingPrice+q.SellingPrice, f.TotalPrice, 1e-9)
}

func TestBuildFCPBS_UnmappedCostCodeFallsBack(t *testing.T) {
	items := []bom.Item{
		costedItem("XYZ99", "Z9", enums.UnitEach, 50, 0, 2, 0),
	}
	f := BuildFCPBS(items, defaultMarkups())

	o := findRow(t, f, "O")
	assert.InDelta(t, 100, o.TotalCost, 1e-9)
	// Other charges pass through at face value.
	assert.InDelta(t, 100, o.SellingPrice, 1e-9)
}

func TestBuildFCPBS_PricePerMT(t *testing.T) {
	items := []bom.Item{
		costedItem("BUPLT", "A", enums.UnitKilogram, 1.5, 0, 2000, 2000),
	}
	f := BuildFCPBS(items, defaultMarkups())

	a := findRow(t, f, "A")
	require.Greater(t, a.WeightKg, 0.0)
	assert.InDelta(t, a.SellingPrice/2, a.PricePerMT, 1e-9)
}

func TestBuildFCPBS_SkipsHeaderRows(t *testing.T) {
	items := []bom.Item{
		{Kind: bom.KindHeader, Description: "MAIN FRAMES"},
		{Kind: bom.KindSeparator, Code: "-"},
		costedItem("BUPLT", "A", enums.UnitKilogram, 1, 0, 100, 100),
	}
	f := BuildFCPBS(items, defaultMarkups())
	assert.InDelta(t, 100, findRow(t, f, "A").TotalCost, 1e-9)
	assert.InDelta(t, 100, f.TotalWeight, 1e-9)
}
