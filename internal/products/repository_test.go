package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

func testProduct(code, costCode string) models.Product {
	return models.Product{
		Code: code, Description: "Test " + code, Unit: enums.UnitMeter,
		UnitWeight: 5.85, MaterialCost: 4.58, ManufacturingCost: 0.68, OverheadCost: 0.33,
		UnitPrice: 7.9, CostCode: costCode, SalesCode: 1, IsActive: true,
	}
}

func TestRepository_FindByCode(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	row := testProduct("Z20G", "B")
	_, err := repo.Create(ctx, &row)
	require.NoError(t, err)

	found, err := repo.FindByCode(ctx, "z20g ")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Z20G", found.Code)
	assert.Equal(t, enums.UnitMeter, found.Unit)

	missing, err := repo.FindByCode(ctx, "NOPE1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_FindByCode_SkipsInactive(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	row := testProduct("Z20G", "B")
	_, err := repo.Create(ctx, &row)
	require.NoError(t, err)
	require.NoError(t, repo.SetActive(ctx, "Z20G", false))

	found, err := repo.FindByCode(ctx, "Z20G")
	require.NoError(t, err)
	assert.Nil(t, found)

	still, err := repo.Get(ctx, "Z20G")
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.False(t, still.IsActive)
}

func TestRepository_ListFilters(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	for _, row := range []models.Product{
		testProduct("Z15G", "B"),
		testProduct("Z20G", "B"),
		testProduct("TRMEV", "H"),
	} {
		r := row
		_, err := repo.Create(ctx, &r)
		require.NoError(t, err)
	}

	zs, err := repo.List(ctx, ListFilter{Prefix: "Z"})
	require.NoError(t, err)
	require.Len(t, zs, 2)
	assert.Equal(t, "Z15G", zs[0].Code)
	assert.Equal(t, "Z20G", zs[1].Code)

	trims, err := repo.List(ctx, ListFilter{CostCode: "H"})
	require.NoError(t, err)
	require.Len(t, trims, 1)
	assert.Equal(t, "TRMEV", trims[0].Code)
}

func TestRepository_UpsertAllRefreshesRates(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	row := testProduct("Z20G", "B")
	require.NoError(t, repo.UpsertAll(ctx, []models.Product{row}))

	row.UnitPrice = 9.5
	require.NoError(t, repo.UpsertAll(ctx, []models.Product{row}))

	found, err := repo.Get(ctx, "Z20G")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 9.5, found.UnitPrice)
}
