package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/pebworks/steelquote-backend/pkg/db"
	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
)

// Service exposes product master management operations.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, code string, input UpdateProductInput) (*ProductDTO, error)
	DeactivateProduct(ctx context.Context, code string) error
	GetProduct(ctx context.Context, code string) (*ProductDTO, error)
	ListProducts(ctx context.Context, filter ListFilter) ([]ProductDTO, error)
}

// CreateProductInput holds the validated payload to create a catalog row.
type CreateProductInput struct {
	Code              string
	Description       string
	Unit              enums.Unit
	UnitWeight        float64
	MaterialCost      float64
	ManufacturingCost float64
	OverheadCost      float64
	UnitPrice         float64
	CostCode          string
	SalesCode         int
	ErpCode           string
	PhaseNumber       int
}

// UpdateProductInput holds optional mutation values for a catalog row.
type UpdateProductInput struct {
	Description       *string
	Unit              *enums.Unit
	UnitWeight        *float64
	MaterialCost      *float64
	ManufacturingCost *float64
	OverheadCost      *float64
	UnitPrice         *float64
	CostCode          *string
	SalesCode         *int
	ErpCode           *string
	PhaseNumber       *int
	IsActive          *bool
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" || code == "-" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product code is required")
	}
	if input.ErpCode != "" && len(input.ErpCode) != 6 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "erp_code must be exactly 6 digits")
	}

	existing, err := s.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product code already exists")
	}

	row := &models.Product{
		Code:              code,
		Description:       strings.TrimSpace(input.Description),
		Unit:              enums.NormalizeUnit(string(input.Unit)),
		UnitWeight:        input.UnitWeight,
		MaterialCost:      input.MaterialCost,
		ManufacturingCost: input.ManufacturingCost,
		OverheadCost:      input.OverheadCost,
		UnitPrice:         input.UnitPrice,
		CostCode:          defaultString(input.CostCode, "A"),
		SalesCode:         defaultInt(input.SalesCode, 1),
		ErpCode:           input.ErpCode,
		PhaseNumber:       input.PhaseNumber,
		IsActive:          true,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product code already exists")
		}
		return nil, err
	}
	dto := toProductDTO(created)
	return &dto, nil
}

func (s *service) UpdateProduct(ctx context.Context, code string, input UpdateProductInput) (*ProductDTO, error) {
	row, err := s.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if input.Description != nil {
		row.Description = strings.TrimSpace(*input.Description)
	}
	if input.Unit != nil {
		row.Unit = enums.NormalizeUnit(string(*input.Unit))
	}
	if input.UnitWeight != nil {
		row.UnitWeight = *input.UnitWeight
	}
	if input.MaterialCost != nil {
		row.MaterialCost = *input.MaterialCost
	}
	if input.ManufacturingCost != nil {
		row.ManufacturingCost = *input.ManufacturingCost
	}
	if input.OverheadCost != nil {
		row.OverheadCost = *input.OverheadCost
	}
	if input.UnitPrice != nil {
		row.UnitPrice = *input.UnitPrice
	}
	if input.CostCode != nil {
		row.CostCode = *input.CostCode
	}
	if input.SalesCode != nil {
		row.SalesCode = *input.SalesCode
	}
	if input.ErpCode != nil {
		if *input.ErpCode != "" && len(*input.ErpCode) != 6 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "erp_code must be exactly 6 digits")
		}
		row.ErpCode = *input.ErpCode
	}
	if input.PhaseNumber != nil {
		row.PhaseNumber = *input.PhaseNumber
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, err
	}
	dto := toProductDTO(updated)
	return &dto, nil
}

func (s *service) DeactivateProduct(ctx context.Context, code string) error {
	row, err := s.repo.Get(ctx, code)
	if err != nil {
		return err
	}
	if row == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return s.repo.SetActive(ctx, code, false)
}

func (s *service) GetProduct(ctx context.Context, code string) (*ProductDTO, error) {
	row, err := s.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	dto := toProductDTO(row)
	return &dto, nil
}

func (s *service) ListProducts(ctx context.Context, filter ListFilter) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toProductDTO(&rows[i]))
	}
	return dtos, nil
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
