package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pebworks/steelquote-backend/api/responses"
	"github.com/pebworks/steelquote-backend/api/validators"
	"github.com/pebworks/steelquote-backend/internal/erp"
	"github.com/pebworks/steelquote-backend/internal/estimation"
	"github.com/pebworks/steelquote-backend/internal/reports"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
	"github.com/pebworks/steelquote-backend/pkg/logger"
)

// ErpExport renders the estimation's cost rollup as the flat file the
// downstream ERP imports. Only finalized estimations can be exported.
func ErpExport(estimations estimation.Service, reportsSvc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if estimations == nil || reportsSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "export unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "estimationId"), "estimationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, _, err := estimations.Result(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if logg != nil {
			r = r.WithContext(logg.WithJobNumber(r.Context(), row.JobNumber))
		}
		if row.Status != enums.EstimationStatusFinalized {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "estimation must be finalized before export"))
			return
		}

		rollup, err := reportsSvc.FCPBS(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filename := fmt.Sprintf("%s-erp.txt", row.JobNumber)
		responses.WriteText(w, filename, erp.Encode(row, rollup))
	}
}
