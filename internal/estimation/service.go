package estimation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pebworks/steelquote-backend/internal/calc"
	product "github.com/pebworks/steelquote-backend/internal/products"
	"github.com/pebworks/steelquote-backend/pkg/config"
	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
	"github.com/pebworks/steelquote-backend/pkg/metrics"
)

// Service exposes the estimation lifecycle: CRUD, the calculation state
// machine, and access to stored results for the report surfaces.
type Service interface {
	CreateEstimation(ctx context.Context, input CreateEstimationInput) (*EstimationDTO, error)
	GetEstimation(ctx context.Context, id uuid.UUID) (*EstimationDTO, error)
	ListEstimations(ctx context.Context, filter ListFilter) (*ListResult, error)
	UpdateEstimation(ctx context.Context, id uuid.UUID, input UpdateEstimationInput) (*EstimationDTO, error)
	DeleteEstimation(ctx context.Context, id uuid.UUID) error

	Calculate(ctx context.Context, id uuid.UUID) (*EstimationDTO, error)
	Finalize(ctx context.Context, id uuid.UUID) (*EstimationDTO, error)
	Unlock(ctx context.Context, id uuid.UUID) (*EstimationDTO, error)

	PreviewAddon(ctx context.Context, id uuid.UUID, kind enums.AddonKind) (*calc.Result, error)
	Result(ctx context.Context, id uuid.UUID) (*models.Estimation, *calc.Result, error)
}

type productFinder interface {
	FindByCode(ctx context.Context, code string) (*models.Product, error)
}

type service struct {
	repo     *Repository
	products productFinder
	cfg      config.EstimationConfig
	metrics  *metrics.EstimationMetrics
}

// NewService constructs an estimation service instance.
func NewService(repo *Repository, products productFinder, cfg config.EstimationConfig, m *metrics.EstimationMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("estimation repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, products: products, cfg: cfg, metrics: m}, nil
}

func (s *service) CreateEstimation(ctx context.Context, input CreateEstimationInput) (*EstimationDTO, error) {
	if strings.TrimSpace(input.ProjectName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "project_name is required")
	}
	if strings.TrimSpace(input.JobNumber) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "job_number is required")
	}

	fiscalYear := input.FiscalYear
	if fiscalYear == 0 {
		fiscalYear = s.cfg.FiscalYear
	}
	if fiscalYear == 0 {
		fiscalYear = time.Now().UTC().Year()
	}
	currency := input.Currency
	if currency == "" {
		currency = s.cfg.Currency
	}

	inputData := "{}"
	if len(input.InputData) > 0 {
		if !json.Valid(input.InputData) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "input_data must be a JSON object")
		}
		inputData = string(input.InputData)
	}

	row := &models.Estimation{
		ID:           uuid.New(),
		ProjectName:  strings.TrimSpace(input.ProjectName),
		CustomerName: strings.TrimSpace(input.CustomerName),
		JobNumber:    strings.TrimSpace(input.JobNumber),
		FiscalYear:   fiscalYear,
		Currency:     currency,
		ContractDate: input.ContractDate,
		Status:       enums.EstimationStatusDraft,
		InputData:    inputData,
		CreatedBy:    input.CreatedBy,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	dto := toEstimationDTO(created, true)
	return &dto, nil
}

func (s *service) GetEstimation(ctx context.Context, id uuid.UUID) (*EstimationDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toEstimationDTO(row, true)
	return &dto, nil
}

func (s *service) ListEstimations(ctx context.Context, filter ListFilter) (*ListResult, error) {
	rows, next, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := ListResult{NextCursor: next, Estimations: make([]EstimationDTO, 0, len(rows))}
	for i := range rows {
		out.Estimations = append(out.Estimations, toEstimationDTO(&rows[i], false))
	}
	return &out, nil
}

func (s *service) UpdateEstimation(ctx context.Context, id uuid.UUID, input UpdateEstimationInput) (*EstimationDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Status == enums.EstimationStatusCalculating {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "estimation is calculating")
	}

	if input.ProjectName != nil {
		row.ProjectName = strings.TrimSpace(*input.ProjectName)
	}
	if input.CustomerName != nil {
		row.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.JobNumber != nil {
		row.JobNumber = strings.TrimSpace(*input.JobNumber)
	}
	if input.FiscalYear != nil {
		row.FiscalYear = *input.FiscalYear
	}
	if input.Currency != nil {
		row.Currency = *input.Currency
	}
	if input.ContractDate != nil {
		row.ContractDate = input.ContractDate
	}
	if input.SteelMarkup != nil {
		row.SteelMarkup = input.SteelMarkup
	}
	if input.PanelsMarkup != nil {
		row.PanelsMarkup = input.PanelsMarkup
	}

	if len(input.InputData) > 0 {
		if !json.Valid(input.InputData) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "input_data must be a JSON object")
		}
		row.InputData = string(input.InputData)
		// Changing the building record invalidates any stored results.
		resetResults(row)
	}

	updated, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, err
	}
	dto := toEstimationDTO(updated, true)
	return &dto, nil
}

func (s *service) DeleteEstimation(ctx context.Context, id uuid.UUID) error {
	row, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if row.Status == enums.EstimationStatusFinalized {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "finalized estimation cannot be deleted; unlock first")
	}
	return s.repo.Delete(ctx, id)
}

// Calculate runs a full pass. The status row acts as the concurrency gate:
// only one caller can move the row into calculating at a time.
func (s *service) Calculate(ctx context.Context, id uuid.UUID) (*EstimationDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Status == enums.EstimationStatusFinalized {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "estimation is finalized; unlock first")
	}

	input, err := calc.ParseInput(row.InputData)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.TransitionStatus(ctx, id, enums.EstimationStatusCalculating,
		enums.EstimationStatusDraft, enums.EstimationStatusCalculated)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "calculation already in progress")
	}

	started := time.Now()
	source := product.NewCache(s.products, s.cfg.ProductCacheLimit)
	result, err := calc.Run(ctx, input, source)
	if err != nil {
		_, _ = s.repo.TransitionStatus(ctx, id, enums.EstimationStatusDraft, enums.EstimationStatusCalculating)
		if s.metrics != nil {
			s.metrics.IncFailure("full")
		}
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		_, _ = s.repo.TransitionStatus(ctx, id, enums.EstimationStatusDraft, enums.EstimationStatusCalculating)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding calculation results")
	}

	now := time.Now().UTC()
	row.Status = enums.EstimationStatusCalculated
	row.ResultsData = string(payload)
	row.ItemCount = result.Summary.ItemCount
	row.TotalWeight = result.Summary.TotalWeight
	row.TotalPrice = result.Summary.TotalPrice
	row.CalculatedAt = &now
	row.FinalizedAt = nil

	updated, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveDuration("full", time.Since(started))
		s.metrics.ObserveBOMLines("full", len(result.Items))
		s.metrics.IncSuccess("full")
	}

	dto := toEstimationDTO(updated, false)
	return &dto, nil
}

func (s *service) Finalize(ctx context.Context, id uuid.UUID) (*EstimationDTO, error) {
	ok, err := s.repo.TransitionStatus(ctx, id, enums.EstimationStatusFinalized, enums.EstimationStatusCalculated)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only a calculated estimation can be finalized")
	}

	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	row.FinalizedAt = &now
	updated, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, err
	}
	dto := toEstimationDTO(updated, false)
	return &dto, nil
}

// Unlock reopens a finalized estimation. Stored results and the aggregated
// totals are discarded; the building input survives.
func (s *service) Unlock(ctx context.Context, id uuid.UUID) (*EstimationDTO, error) {
	ok, err := s.repo.TransitionStatus(ctx, id, enums.EstimationStatusDraft, enums.EstimationStatusFinalized)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only a finalized estimation can be unlocked")
	}

	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resetResults(row)
	updated, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, err
	}
	dto := toEstimationDTO(updated, true)
	return &dto, nil
}

// PreviewAddon runs a single add-on calculator against the stored input
// without persisting anything.
func (s *service) PreviewAddon(ctx context.Context, id uuid.UUID, kind enums.AddonKind) (*calc.Result, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	input, err := calc.ParseInput(row.InputData)
	if err != nil {
		return nil, err
	}
	source := product.NewCache(s.products, s.cfg.ProductCacheLimit)
	return calc.RunAddon(ctx, kind, input, source)
}

// Result loads the stored calculation for the report and export surfaces.
// Requesting results before a pass completes is a precondition failure.
func (s *service) Result(ctx context.Context, id uuid.UUID) (*models.Estimation, *calc.Result, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !row.HasResults() {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "estimation has no calculated results")
	}
	var result calc.Result
	if err := json.Unmarshal([]byte(row.ResultsData), &result); err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding stored results")
	}
	return row, &result, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Estimation, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "estimation not found")
	}
	return row, nil
}

func resetResults(row *models.Estimation) {
	row.Status = enums.EstimationStatusDraft
	row.ResultsData = ""
	row.ItemCount = 0
	row.TotalWeight = 0
	row.TotalPrice = 0
	row.CalculatedAt = nil
	row.FinalizedAt = nil
}
