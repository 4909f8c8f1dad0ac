package product

import (
	"time"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// ProductDTO is the catalog row shape returned by the API.
type ProductDTO struct {
	Code              string     `json:"code"`
	Description       string     `json:"description"`
	Unit              enums.Unit `json:"unit"`
	UnitWeight        float64    `json:"unit_weight"`
	MaterialCost      float64    `json:"material_cost"`
	ManufacturingCost float64    `json:"manufacturing_cost"`
	OverheadCost      float64    `json:"overhead_cost"`
	UnitPrice         float64    `json:"unit_price"`
	CostCode          string     `json:"cost_code"`
	SalesCode         int        `json:"sales_code"`
	ErpCode           string     `json:"erp_code,omitempty"`
	PhaseNumber       int        `json:"phase_number"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toProductDTO(row *models.Product) ProductDTO {
	return ProductDTO{
		Code:              row.Code,
		Description:       row.Description,
		Unit:              row.Unit,
		UnitWeight:        row.UnitWeight,
		MaterialCost:      row.MaterialCost,
		ManufacturingCost: row.ManufacturingCost,
		OverheadCost:      row.OverheadCost,
		UnitPrice:         row.UnitPrice,
		CostCode:          row.CostCode,
		SalesCode:         row.SalesCode,
		ErpCode:           row.ErpCode,
		PhaseNumber:       row.PhaseNumber,
		IsActive:          row.IsActive,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
