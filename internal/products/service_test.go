package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebworks/steelquote-backend/pkg/db"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn), db.NewFromConn(conn))
	require.NoError(t, err)
	return svc
}

func TestService_CreateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.CreateProduct(ctx, CreateProductInput{
		Code:        "z20g",
		Description: "Z Section 200x2.0",
		Unit:        enums.Unit("m"),
		UnitWeight:  5.85,
		UnitPrice:   7.9,
		ErpCode:     "100203",
	})
	require.NoError(t, err)
	assert.Equal(t, "Z20G", dto.Code)
	assert.Equal(t, enums.UnitMeter, dto.Unit)
	assert.Equal(t, "A", dto.CostCode)
	assert.Equal(t, 1, dto.SalesCode)
	assert.True(t, dto.IsActive)
}

func TestService_CreateProduct_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Code: "  "})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.CreateProduct(ctx, CreateProductInput{Code: "Z20G", ErpCode: "12345"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestService_CreateProduct_DuplicateConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	input := CreateProductInput{Code: "Z20G", Description: "Z Section", Unit: enums.UnitMeter}
	_, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestService_UpdateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Code: "Z20G", Description: "Z Section", Unit: enums.UnitMeter})
	require.NoError(t, err)

	price := 9.5
	costCode := "B"
	dto, err := svc.UpdateProduct(ctx, "Z20G", UpdateProductInput{UnitPrice: &price, CostCode: &costCode})
	require.NoError(t, err)
	assert.Equal(t, 9.5, dto.UnitPrice)
	assert.Equal(t, "B", dto.CostCode)

	_, err = svc.UpdateProduct(ctx, "NOPE1", UpdateProductInput{UnitPrice: &price})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestService_DeactivateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Code: "Z20G", Description: "Z Section", Unit: enums.UnitMeter})
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateProduct(ctx, "Z20G"))

	dto, err := svc.GetProduct(ctx, "Z20G")
	require.NoError(t, err)
	assert.False(t, dto.IsActive)
}

func TestDefaultCatalog_Integrity(t *testing.T) {
	seen := map[string]bool{}
	for _, row := range DefaultCatalog() {
		assert.False(t, seen[row.Code], "duplicate code %s", row.Code)
		seen[row.Code] = true
		assert.NotEmpty(t, row.Description, row.Code)
		assert.Len(t, row.ErpCode, 6, row.Code)
		assert.NotEmpty(t, row.CostCode, row.Code)
		assert.Greater(t, row.SalesCode, 0, row.Code)
	}
	assert.Greater(t, len(seen), 40)
}
