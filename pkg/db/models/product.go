package models

import (
	"time"

	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// Product is one product master record. Unit weight is kg per unit of
// measure; the three cost columns are per-unit book costs and UnitPrice is
// the per-unit book selling price. ErpCode must be six digits for export.
type Product struct {
	Code              string     `gorm:"column:code;primaryKey"`
	Description       string     `gorm:"column:description;not null"`
	Unit              enums.Unit `gorm:"column:unit;not null"`
	UnitWeight        float64    `gorm:"column:unit_weight;not null;default:0"`
	MaterialCost      float64    `gorm:"column:material_cost;not null;default:0"`
	ManufacturingCost float64    `gorm:"column:manufacturing_cost;not null;default:0"`
	OverheadCost      float64    `gorm:"column:overhead_cost;not null;default:0"`
	UnitPrice         float64    `gorm:"column:unit_price;not null;default:0"`
	CostCode          string     `gorm:"column:cost_code;not null;default:A"`
	SalesCode         int        `gorm:"column:sales_code;not null;default:1"`
	ErpCode           string     `gorm:"column:erp_code"`
	PhaseNumber       int        `gorm:"column:phase_number;not null;default:0"`
	IsActive          bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the GORM default.
func (Product) TableName() string {
	return "products"
}
