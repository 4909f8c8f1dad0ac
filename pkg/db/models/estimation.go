package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// Estimation is one costed building quotation. InputData holds the raw
// parameter record exactly as submitted; ResultsData holds the serialized
// bill of materials once a calculation pass completes. Mutating InputData
// after calculation resets the row to draft and clears the derived fields.
type Estimation struct {
	ID           uuid.UUID              `gorm:"column:id;type:uuid;primaryKey"`
	ProjectName  string                 `gorm:"column:project_name;not null"`
	CustomerName string                 `gorm:"column:customer_name"`
	JobNumber    string                 `gorm:"column:job_number;not null"`
	FiscalYear   int                    `gorm:"column:fiscal_year;not null"`
	Currency     string                 `gorm:"column:currency;not null;default:USD"`
	ContractDate *time.Time             `gorm:"column:contract_date"`
	Status       enums.EstimationStatus `gorm:"column:status;not null;default:draft"`

	InputData   string `gorm:"column:input_data;type:jsonb;not null;default:'{}'"`
	ResultsData string `gorm:"column:results_data;type:jsonb"`

	ItemCount   int     `gorm:"column:item_count;not null;default:0"`
	TotalWeight float64 `gorm:"column:total_weight;not null;default:0"`
	TotalPrice  float64 `gorm:"column:total_price;not null;default:0"`

	SteelMarkup  *float64 `gorm:"column:steel_markup;type:numeric(18,14)"`
	PanelsMarkup *float64 `gorm:"column:panels_markup;type:numeric(18,14)"`

	CreatedBy    *uuid.UUID `gorm:"column:created_by;type:uuid"`
	CalculatedAt *time.Time `gorm:"column:calculated_at"`
	FinalizedAt  *time.Time `gorm:"column:finalized_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the GORM default.
func (Estimation) TableName() string {
	return "estimations"
}

// HasResults reports whether a completed calculation is stored on the row.
func (e *Estimation) HasResults() bool {
	return e.ResultsData != "" && e.ResultsData != "{}" &&
		(e.Status == enums.EstimationStatusCalculated || e.Status == enums.EstimationStatusFinalized)
}
