package bom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

type fakeSource struct {
	products map[string]*models.Product
	lookups  int
}

func (f *fakeSource) FindProduct(_ context.Context, code string) (*models.Product, error) {
	f.lookups++
	return f.products[code], nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{products: map[string]*models.Product{
		"Z20G": {
			Code: "Z20G", Description: "Z Section 200x2.0 G", Unit: enums.UnitMeter,
			UnitWeight: 5.85, UnitPrice: 4.2, MaterialCost: 2.9, ManufacturingCost: 0.4,
			OverheadCost: 0.2, CostCode: "B", SalesCode: 1,
		},
		"SDS55": {
			Code: "SDS55", Description: "Self Drilling Screw 5.5", Unit: enums.UnitEach,
			UnitWeight: 0.02, UnitPrice: 0.08, MaterialCost: 0.05, CostCode: "E", SalesCode: 1,
		},
		"BUPLT": {
			Code: "BUPLT", Description: "Built-Up Plate", Unit: enums.UnitKilogram,
			UnitWeight: 1, UnitPrice: 1.35, MaterialCost: 0.9, CostCode: "A", SalesCode: 1,
		},
	}}
}

func TestAddCode_MeterUnitExtendsBySize(t *testing.T) {
	b := NewBuilder(newFakeSource())
	require.NoError(t, b.AddCode(context.Background(), "", "Z20G", 1, 8.5, 24))

	items := b.Items()
	require.Len(t, items, 1)
	row := items[0]
	assert.True(t, row.IsData())
	assert.InDelta(t, 5.85*8.5*24, row.TotalWeight, 1e-9)
	assert.InDelta(t, 4.2*8.5*24, row.TotalPrice, 1e-9)
	assert.InDelta(t, (2.9+0.4+0.2)*8.5*24, row.TotalCost(), 1e-9)
}

func TestAddCode_CountUnitIgnoresSize(t *testing.T) {
	b := NewBuilder(newFakeSource())
	require.NoError(t, b.AddCode(context.Background(), "", "SDS55", 1, 99, 500))

	row := b.Items()[0]
	assert.InDelta(t, 0.02*500, row.TotalWeight, 1e-9)
	assert.InDelta(t, 0.08*500, row.TotalPrice, 1e-9)
}

func TestAddCode_KilogramQuantityIsWeight(t *testing.T) {
	b := NewBuilder(newFakeSource())
	require.NoError(t, b.AddCode(context.Background(), "", "BUPLT", 1, 0, 1250))

	row := b.Items()[0]
	assert.Equal(t, 1250.0, row.TotalWeight)
	assert.InDelta(t, 1.35*1250, row.TotalPrice, 1e-9)
}

func TestAddCode_HeaderAndSeparator(t *testing.T) {
	b := NewBuilder(newFakeSource())
	ctx := context.Background()
	require.NoError(t, b.AddCode(ctx, "PURLINS", "Z20G", 1, 8.5, 24))
	require.NoError(t, b.AddCode(ctx, "", SeparatorCode, 0, 0, 0))
	require.NoError(t, b.AddCode(ctx, "", "", 0, 0, 0))

	items := b.Items()
	require.Len(t, items, 3)
	assert.Equal(t, KindHeader, items[0].Kind)
	assert.Equal(t, "PURLINS", items[0].Description)
	assert.Equal(t, KindData, items[1].Kind)
	assert.Equal(t, KindSeparator, items[2].Kind)
	assert.False(t, items[0].IsData())
	assert.False(t, items[2].IsData())
}

func TestAddCode_UnknownCodeYieldsZeroCostRow(t *testing.T) {
	b := NewBuilder(newFakeSource())
	require.NoError(t, b.AddCode(context.Background(), "", "NOPE1", 1, 3, 7))

	items := b.Items()
	require.Len(t, items, 1)
	row := items[0]
	assert.Equal(t, "NOPE1", row.Code)
	assert.Zero(t, row.TotalWeight)
	assert.Zero(t, row.TotalPrice)
	assert.True(t, row.IsData())
}

func TestLineNumbersAreSequentialAcrossMerge(t *testing.T) {
	ctx := context.Background()
	main := NewBuilder(newFakeSource())
	require.NoError(t, main.AddCode(ctx, "PURLINS", "Z20G", 1, 8.5, 24))

	addon := NewBuilder(newFakeSource())
	require.NoError(t, addon.AddCode(ctx, "", "SDS55", 3, 0, 100))

	main.Merge(addon.Items())

	items := main.Items()
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, i+1, item.LineNumber)
	}
}

func TestSummarize_SkipsNonDataRows(t *testing.T) {
	ctx := context.Background()
	b := NewBuilder(newFakeSource())
	require.NoError(t, b.AddCode(ctx, "PURLINS", "Z20G", 1, 8.5, 24))
	require.NoError(t, b.AddCode(ctx, "", SeparatorCode, 0, 0, 0))
	require.NoError(t, b.AddCode(ctx, "", "SDS55", 1, 0, 100))

	s := Summarize(b.Items())
	assert.Equal(t, 2, s.ItemCount)
	assert.InDelta(t, 5.85*8.5*24+0.02*100, s.TotalWeight, 1e-9)
	assert.InDelta(t, 4.2*8.5*24+0.08*100, s.TotalPrice, 1e-9)
}
