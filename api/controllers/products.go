package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pebworks/steelquote-backend/api/responses"
	"github.com/pebworks/steelquote-backend/api/validators"
	product "github.com/pebworks/steelquote-backend/internal/products"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
	"github.com/pebworks/steelquote-backend/pkg/logger"
)

// ProductList serves the catalog with optional prefix and cost code filters.
func ProductList(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := product.ListFilter{
			Prefix:     strings.TrimSpace(r.URL.Query().Get("prefix")),
			CostCode:   strings.TrimSpace(r.URL.Query().Get("cost_code")),
			OnlyActive: r.URL.Query().Get("include_inactive") == "",
			Limit:      limit,
		}

		result, err := svc.ListProducts(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": result})
	}
}

func ProductGet(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		result, err := svc.GetProduct(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func ProductCreate(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var body productRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateProduct(r.Context(), body.toCreateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func ProductUpdate(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var body productUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateProduct(r.Context(), chi.URLParam(r, "code"), body.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func ProductDeactivate(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		if err := svc.DeactivateProduct(r.Context(), chi.URLParam(r, "code")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deactivated"})
	}
}

type productRequest struct {
	Code              string  `json:"code" validate:"required,max=16"`
	Description       string  `json:"description" validate:"required"`
	Unit              string  `json:"unit" validate:"required"`
	UnitWeight        float64 `json:"unit_weight" validate:"gte=0"`
	MaterialCost      float64 `json:"material_cost" validate:"gte=0"`
	ManufacturingCost float64 `json:"manufacturing_cost" validate:"gte=0"`
	OverheadCost      float64 `json:"overhead_cost" validate:"gte=0"`
	UnitPrice         float64 `json:"unit_price" validate:"gte=0"`
	CostCode          string  `json:"cost_code,omitempty" validate:"omitempty,len=1"`
	SalesCode         int     `json:"sales_code,omitempty" validate:"omitempty,min=1,max=9"`
	ErpCode           string  `json:"erp_code,omitempty"`
	PhaseNumber       int     `json:"phase_number,omitempty" validate:"omitempty,min=0"`
}

func (r productRequest) toCreateInput() product.CreateProductInput {
	return product.CreateProductInput{
		Code:              r.Code,
		Description:       r.Description,
		Unit:              enums.NormalizeUnit(r.Unit),
		UnitWeight:        r.UnitWeight,
		MaterialCost:      r.MaterialCost,
		ManufacturingCost: r.ManufacturingCost,
		OverheadCost:      r.OverheadCost,
		UnitPrice:         r.UnitPrice,
		CostCode:          r.CostCode,
		SalesCode:         r.SalesCode,
		ErpCode:           r.ErpCode,
		PhaseNumber:       r.PhaseNumber,
	}
}

type productUpdateRequest struct {
	Description       *string  `json:"description,omitempty"`
	Unit              *string  `json:"unit,omitempty"`
	UnitWeight        *float64 `json:"unit_weight,omitempty" validate:"omitempty,gte=0"`
	MaterialCost      *float64 `json:"material_cost,omitempty" validate:"omitempty,gte=0"`
	ManufacturingCost *float64 `json:"manufacturing_cost,omitempty" validate:"omitempty,gte=0"`
	OverheadCost      *float64 `json:"overhead_cost,omitempty" validate:"omitempty,gte=0"`
	UnitPrice         *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	CostCode          *string  `json:"cost_code,omitempty" validate:"omitempty,len=1"`
	SalesCode         *int     `json:"sales_code,omitempty" validate:"omitempty,min=1,max=9"`
	ErpCode           *string  `json:"erp_code,omitempty"`
	PhaseNumber       *int     `json:"phase_number,omitempty" validate:"omitempty,min=0"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

func (r productUpdateRequest) toUpdateInput() product.UpdateProductInput {
	input := product.UpdateProductInput{
		Description:       r.Description,
		UnitWeight:        r.UnitWeight,
		MaterialCost:      r.MaterialCost,
		ManufacturingCost: r.ManufacturingCost,
		OverheadCost:      r.OverheadCost,
		UnitPrice:         r.UnitPrice,
		CostCode:          r.CostCode,
		SalesCode:         r.SalesCode,
		ErpCode:           r.ErpCode,
		PhaseNumber:       r.PhaseNumber,
		IsActive:          r.IsActive,
	}
	if r.Unit != nil {
		unit := enums.NormalizeUnit(*r.Unit)
		input.Unit = &unit
	}
	return input
}
