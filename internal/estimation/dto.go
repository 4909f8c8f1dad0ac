package estimation

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// EstimationDTO is the estimation shape returned by the API. InputData is
// passed through verbatim; results are served by the report endpoints.
type EstimationDTO struct {
	ID           uuid.UUID              `json:"id"`
	ProjectName  string                 `json:"project_name"`
	CustomerName string                 `json:"customer_name,omitempty"`
	JobNumber    string                 `json:"job_number"`
	FiscalYear   int                    `json:"fiscal_year"`
	Currency     string                 `json:"currency"`
	ContractDate *time.Time             `json:"contract_date,omitempty"`
	Status       enums.EstimationStatus `json:"status"`
	InputData    json.RawMessage        `json:"input_data,omitempty"`
	ItemCount    int                    `json:"item_count"`
	TotalWeight  float64                `json:"total_weight"`
	TotalPrice   float64                `json:"total_price"`
	SteelMarkup  *float64               `json:"steel_markup,omitempty"`
	PanelsMarkup *float64               `json:"panels_markup,omitempty"`
	CalculatedAt *time.Time             `json:"calculated_at,omitempty"`
	FinalizedAt  *time.Time             `json:"finalized_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// CreateEstimationInput holds the validated payload to open an estimation.
type CreateEstimationInput struct {
	ProjectName  string
	CustomerName string
	JobNumber    string
	FiscalYear   int
	Currency     string
	ContractDate *time.Time
	InputData    json.RawMessage
	CreatedBy    *uuid.UUID
}

// UpdateEstimationInput holds optional mutation values. A non-nil InputData
// replaces the building record and resets any calculated results.
type UpdateEstimationInput struct {
	ProjectName  *string
	CustomerName *string
	JobNumber    *string
	FiscalYear   *int
	Currency     *string
	ContractDate *time.Time
	InputData    json.RawMessage
	SteelMarkup  *float64
	PanelsMarkup *float64
}

// ListResult is one page of estimations.
type ListResult struct {
	Estimations []EstimationDTO `json:"estimations"`
	NextCursor  string          `json:"next_cursor,omitempty"`
}

func toEstimationDTO(row *models.Estimation, includeInput bool) EstimationDTO {
	dto := EstimationDTO{
		ID:           row.ID,
		ProjectName:  row.ProjectName,
		CustomerName: row.CustomerName,
		JobNumber:    row.JobNumber,
		FiscalYear:   row.FiscalYear,
		Currency:     row.Currency,
		ContractDate: row.ContractDate,
		Status:       row.Status,
		ItemCount:    row.ItemCount,
		TotalWeight:  row.TotalWeight,
		TotalPrice:   row.TotalPrice,
		SteelMarkup:  row.SteelMarkup,
		PanelsMarkup: row.PanelsMarkup,
		CalculatedAt: row.CalculatedAt,
		FinalizedAt:  row.FinalizedAt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if includeInput && row.InputData != "" {
		dto.InputData = json.RawMessage(row.InputData)
	}
	return dto
}
