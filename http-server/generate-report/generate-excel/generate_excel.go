package generate_excel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"bizdash/internal/dashboard"
	"bizdash/internal/service"
	genexcel "bizdash/internal/service/generate-excel"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, path string, q dashboard.Query) (genexcel.Report, error)
}

// GenerateReportExcel - GET /api/report/excel?path=...&search=...&status=...
func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		path := r.URL.Query().Get("path")
		if path == "" {
			http.Error(w, "path is required", http.StatusBadRequest)
			return
		}

		// на Excel можно побольше времени
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report, err := gen.GenerateExcel(ctx, path, dashboard.ParseQuery(r.URL.Query()))
		if errors.Is(err, service.ErrSectionNotFound) {
			http.Error(w, "section not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to generate excel", slog.String("path", path), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
		if _, err := w.Write(report.Data); err != nil {
			log.Error("failed to write excel", slog.String("error", err.Error()))
		}
	}
}
