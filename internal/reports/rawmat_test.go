package reports

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

func dataItem(code, costCode string, salesCode int, unit enums.Unit, uw, size, qty float64) bom.Item {
	item := bom.Item{
		Kind: bom.KindData, Code: code, CostCode: costCode, SalesCode: salesCode,
		Unit: unit, UnitWeight: uw, Size: size, Quantity: qty,
	}
	switch unit {
	case enums.UnitMeter:
		item.TotalWeight = uw * size * qty
	case enums.UnitKilogram:
		item.TotalWeight = qty
	default:
		item.TotalWeight = uw * qty
	}
	return item
}

func TestBuildRawMat_GroupsByCode(t *testing.T) {
	items := []bom.Item{
		{Kind: bom.KindHeader, Description: "PURLINS"},
		dataItem("Z20G", "B", 1, enums.UnitMeter, 5.85, 9.144, 10),
		dataItem("Z20G", "B", 7, enums.UnitMeter, 5.85, 6.0, 4),
		dataItem("SDS55", "E", 2, enums.UnitEach, 0.02, 0, 500),
		{Kind: bom.KindSeparator, Code: "-"},
	}
	rows := BuildRawMat(items)
	require.Len(t, rows, 2)

	var z *RawMatRow
	for i := range rows {
		if rows[i].Code == "Z20G" {
			z = &rows[i]
		}
	}
	require.NotNil(t, z)
	assert.Equal(t, CatSecondarySteel, z.Category)
	assert.InDelta(t, 9.144*10+6.0*4, z.Quantity, 1e-9)
	assert.InDelta(t, 5.85*(9.144*10+6.0*4), z.TotalWeight, 1e-9)
	assert.Equal(t, "1,7", z.Sources)
}

func TestBuildRawMat_MaxSizeOneRule(t *testing.T) {
	// Per-count hardware with size 0 still counts as quantity 1 per piece.
	rows := BuildRawMat([]bom.Item{
		dataItem("SDS55", "E", 1, enums.UnitEach, 0.02, 0, 500),
	})
	require.Len(t, rows, 1)
	assert.InDelta(t, 500, rows[0].Quantity, 1e-9)
	assert.InDelta(t, 0.02*500, rows[0].TotalWeight, 1e-9)
}

func TestBuildRawMat_SortAndNumbering(t *testing.T) {
	rows := BuildRawMat([]bom.Item{
		dataItem("Z20G", "B", 1, enums.UnitMeter, 5.85, 9, 10),
		dataItem("BUPLT", "A", 1, enums.UnitKilogram, 1, 0, 1200),
		dataItem("Z15G", "B", 1, enums.UnitMeter, 3.95, 9, 10),
	})
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"BUPLT", "Z15G", "Z20G"}, []string{rows[0].Code, rows[1].Code, rows[2].Code})
	for i, row := range rows {
		assert.Equal(t, i+1, row.No)
	}
}

func TestBuildRawMat_OrderCommutative(t *testing.T) {
	items := []bom.Item{
		dataItem("Z20G", "B", 1, enums.UnitMeter, 5.85, 9.144, 10),
		dataItem("BUPLT", "A", 1, enums.UnitKilogram, 1, 0, 1200),
		dataItem("SDS55", "E", 2, enums.UnitEach, 0.02, 0, 500),
		dataItem("Z20G", "B", 1, enums.UnitMeter, 5.85, 6.0, 4),
		dataItem("TRMEV", "H", 2, enums.UnitMeter, 1.35, 38.1, 2),
	}
	want := BuildRawMat(items)

	shuffled := make([]bom.Item, len(items))
	copy(shuffled, items)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	got := BuildRawMat(shuffled)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].No, got[i].No)
		assert.Equal(t, want[i].Code, got[i].Code)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.InDelta(t, want[i].Quantity, got[i].Quantity, 1e-9)
		assert.InDelta(t, want[i].TotalWeight, got[i].TotalWeight, 1e-9)
	}
}

func TestMaterialCategory_PrefixThenCostCode(t *testing.T) {
	tests := []struct {
		code, costCode, want string
	}{
		{"BUPLT", "A", CatPrimarySteel},
		{"Z25G", "B", CatSecondarySteel},
		{"MZDCK", "F", CatMezzanine},
		{"MZJST", "B", CatMezzanine},
		{"CB410", "C", CatCrane},
		{"CABBR", "C", CatSecondarySteel},
		{"PNLR45", "F", CatRoofSheeting},
		{"PNLW45", "G", CatWallSheeting},
		{"LINP35", "J", CatLinerPanels},
		{"GUTTR", "H", CatGutters},
		{"ABOLT", "D", CatFasteners},
		{"PDOOR", "I", CatDoorsWindows},
		{"XYZ99", "G", CatWallSheeting}, // unknown prefix, cost code dispatch
		{"XYZ99", "", CatOther},
		{"PACKG", "Q", CatOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, materialCategory(tt.code, tt.costCode), "%s/%s", tt.code, tt.costCode)
	}
}
