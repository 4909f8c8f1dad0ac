package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pebworks/steelquote-backend/api/responses"
	"github.com/pebworks/steelquote-backend/api/validators"
	"github.com/pebworks/steelquote-backend/internal/reports"
	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
	"github.com/pebworks/steelquote-backend/pkg/logger"
)

// ReportBOM serves the full calculated bill of materials.
func ReportBOM(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportByID(svc, logg, func(r *http.Request, svc reports.Service, id uuid.UUID) (any, error) {
		return svc.BOM(r.Context(), id)
	})
}

// ReportRawMat serves the raw material procurement rollup.
func ReportRawMat(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportByID(svc, logg, func(r *http.Request, svc reports.Service, id uuid.UUID) (any, error) {
		rows, err := svc.RawMat(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return map[string]any{"rows": rows}, nil
	})
}

// ReportFCPBS serves the cost/price breakdown by category.
func ReportFCPBS(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportByID(svc, logg, func(r *http.Request, svc reports.Service, id uuid.UUID) (any, error) {
		return svc.FCPBS(r.Context(), id)
	})
}

// ReportSAL serves the sales analysis grouped by sales code.
func ReportSAL(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportByID(svc, logg, func(r *http.Request, svc reports.Service, id uuid.UUID) (any, error) {
		return svc.SAL(r.Context(), id)
	})
}

func reportByID(svc reports.Service, logg *logger.Logger, fn func(*http.Request, reports.Service, uuid.UUID) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "estimationId"), "estimationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := fn(r, svc, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
