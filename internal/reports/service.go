package reports

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pebworks/steelquote-backend/internal/calc"
	"github.com/pebworks/steelquote-backend/pkg/config"
	"github.com/pebworks/steelquote-backend/pkg/db/models"
)

// ResultProvider loads a calculated estimation and its stored result.
type ResultProvider interface {
	Result(ctx context.Context, id uuid.UUID) (*models.Estimation, *calc.Result, error)
}

// Service serves the derived report views for one estimation.
type Service interface {
	BOM(ctx context.Context, id uuid.UUID) (*calc.Result, error)
	RawMat(ctx context.Context, id uuid.UUID) ([]RawMatRow, error)
	FCPBS(ctx context.Context, id uuid.UUID) (*FCPBS, error)
	SAL(ctx context.Context, id uuid.UUID) (*SAL, error)
}

type service struct {
	results ResultProvider
	cfg     config.EstimationConfig
}

// NewService constructs a reports service instance.
func NewService(results ResultProvider, cfg config.EstimationConfig) (Service, error) {
	if results == nil {
		return nil, fmt.Errorf("result provider required")
	}
	return &service{results: results, cfg: cfg}, nil
}

// ResolveMarkups applies the estimation's overrides on top of the
// configured defaults. A stored zero is honored as a real override.
func ResolveMarkups(row *models.Estimation, cfg config.EstimationConfig) Markups {
	m := Markups{Steel: cfg.SteelMarkup, Panels: cfg.PanelsMarkup}
	if row.SteelMarkup != nil {
		m.Steel = *row.SteelMarkup
	}
	if row.PanelsMarkup != nil {
		m.Panels = *row.PanelsMarkup
	}
	return m
}

func (s *service) BOM(ctx context.Context, id uuid.UUID) (*calc.Result, error) {
	_, result, err := s.results.Result(ctx, id)
	return result, err
}

func (s *service) RawMat(ctx context.Context, id uuid.UUID) ([]RawMatRow, error) {
	_, result, err := s.results.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	return BuildRawMat(result.Items), nil
}

func (s *service) FCPBS(ctx context.Context, id uuid.UUID) (*FCPBS, error) {
	row, result, err := s.results.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	return BuildFCPBS(result.Items, ResolveMarkups(row, s.cfg)), nil
}

func (s *service) SAL(ctx context.Context, id uuid.UUID) (*SAL, error) {
	row, result, err := s.results.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	markups := ResolveMarkups(row, s.cfg)
	return BuildSAL(result.Items, BuildFCPBS(result.Items, markups)), nil
}
