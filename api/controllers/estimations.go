package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pebworks/steelquote-backend/api/middleware"
	"github.com/pebworks/steelquote-backend/api/responses"
	"github.com/pebworks/steelquote-backend/api/validators"
	"github.com/pebworks/steelquote-backend/internal/estimation"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
	"github.com/pebworks/steelquote-backend/pkg/logger"
	"github.com/pebworks/steelquote-backend/pkg/pagination"
)

func EstimationCreate(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "estimation service unavailable"))
			return
		}

		var body estimationCreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := body.toCreateInput()
		if userID := middleware.UserIDFromContext(r.Context()); userID != "" {
			if uid, err := uuid.Parse(userID); err == nil {
				input.CreatedBy = &uid
			}
		}

		result, err := svc.CreateEstimation(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func EstimationList(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "estimation service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := estimation.ListFilter{
			JobNumber: strings.TrimSpace(r.URL.Query().Get("job_number")),
			Page: pagination.Params{
				Limit:  limit,
				Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
			},
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, parseErr := enums.ParseEstimationStatus(raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid status"))
				return
			}
			filter.Status = status
		}

		result, err := svc.ListEstimations(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func EstimationGet(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return estimationByID(svc, logg, func(r *http.Request, svc estimation.Service, id uuid.UUID) (any, error) {
		return svc.GetEstimation(r.Context(), id)
	})
}

func EstimationUpdate(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "estimation service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "estimationId"), "estimationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body estimationUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateEstimation(r.Context(), id, body.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func EstimationDelete(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return estimationByID(svc, logg, func(r *http.Request, svc estimation.Service, id uuid.UUID) (any, error) {
		if err := svc.DeleteEstimation(r.Context(), id); err != nil {
			return nil, err
		}
		return map[string]string{"status": "deleted"}, nil
	})
}

// EstimationCalculate runs the full costing pipeline for the estimation.
func EstimationCalculate(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return estimationByID(svc, logg, func(r *http.Request, svc estimation.Service, id uuid.UUID) (any, error) {
		return svc.Calculate(r.Context(), id)
	})
}

func EstimationFinalize(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return estimationByID(svc, logg, func(r *http.Request, svc estimation.Service, id uuid.UUID) (any, error) {
		return svc.Finalize(r.Context(), id)
	})
}

func EstimationUnlock(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return estimationByID(svc, logg, func(r *http.Request, svc estimation.Service, id uuid.UUID) (any, error) {
		return svc.Unlock(r.Context(), id)
	})
}

// EstimationAddonPreview calculates a single add-on in isolation without
// persisting anything on the estimation.
func EstimationAddonPreview(svc estimation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "estimation service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "estimationId"), "estimationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		kind := enums.AddonKind(strings.TrimSpace(chi.URLParam(r, "kind")))
		if !kind.IsValid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown addon kind"))
			return
		}

		result, err := svc.PreviewAddon(r.Context(), id, kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func estimationByID(svc estimation.Service, logg *logger.Logger, fn func(*http.Request, estimation.Service, uuid.UUID) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "estimation service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "estimationId"), "estimationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if logg != nil {
			r = r.WithContext(logg.WithEstimationID(r.Context(), id.String()))
		}

		result, err := fn(r, svc, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type estimationCreateRequest struct {
	ProjectName  string          `json:"project_name" validate:"required"`
	CustomerName string          `json:"customer_name,omitempty"`
	JobNumber    string          `json:"job_number" validate:"required"`
	FiscalYear   int             `json:"fiscal_year,omitempty" validate:"omitempty,min=2000,max=2100"`
	Currency     string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	ContractDate *time.Time      `json:"contract_date,omitempty"`
	InputData    json.RawMessage `json:"input_data,omitempty"`
}

func (r estimationCreateRequest) toCreateInput() estimation.CreateEstimationInput {
	return estimation.CreateEstimationInput{
		ProjectName:  r.ProjectName,
		CustomerName: r.CustomerName,
		JobNumber:    r.JobNumber,
		FiscalYear:   r.FiscalYear,
		Currency:     r.Currency,
		ContractDate: r.ContractDate,
		InputData:    r.InputData,
	}
}

type estimationUpdateRequest struct {
	ProjectName  *string         `json:"project_name,omitempty"`
	CustomerName *string         `json:"customer_name,omitempty"`
	JobNumber    *string         `json:"job_number,omitempty"`
	FiscalYear   *int            `json:"fiscal_year,omitempty" validate:"omitempty,min=2000,max=2100"`
	Currency     *string         `json:"currency,omitempty" validate:"omitempty,len=3"`
	ContractDate *time.Time      `json:"contract_date,omitempty"`
	InputData    json.RawMessage `json:"input_data,omitempty"`
	SteelMarkup  *float64        `json:"steel_markup,omitempty" validate:"omitempty,gte=0"`
	PanelsMarkup *float64        `json:"panels_markup,omitempty" validate:"omitempty,gte=0"`
}

func (r estimationUpdateRequest) toUpdateInput() estimation.UpdateEstimationInput {
	return estimation.UpdateEstimationInput{
		ProjectName:  r.ProjectName,
		CustomerName: r.CustomerName,
		JobNumber:    r.JobNumber,
		FiscalYear:   r.FiscalYear,
		Currency:     r.Currency,
		ContractDate: r.ContractDate,
		InputData:    r.InputData,
		SteelMarkup:  r.SteelMarkup,
		PanelsMarkup: r.PanelsMarkup,
	}
}
