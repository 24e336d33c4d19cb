package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"bizdash/internal/dashboard"
	"bizdash/internal/section"
	"bizdash/internal/service"
)

type ViewProvider interface {
	Sections() []section.Section
	Resolve(path string) (service.Resolution, error)
	Page(ctx context.Context, path string, q dashboard.Query) (service.Page, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Sections(log *slog.Logger, views ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, views.Sections())
	}
}

// Resolve - GET /api/resolve?path=/crm/sales
func Resolve(log *slog.Logger, views ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.view.Resolve"

		path := r.URL.Query().Get("path")
		if path == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "path is required"})
			return
		}

		res, err := views.Resolve(path)
		if err != nil {
			log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			).Debug("раздел не найден", slog.String("path", path))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, ErrorResponse{Error: "section not found"})
			return
		}

		render.JSON(w, r, res)
	}
}

// View - GET /api/view?path=...&search=...&status=..., вся модель страницы в JSON.
func View(log *slog.Logger, views ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.view.View"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		path := r.URL.Query().Get("path")
		if path == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "path is required"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		page, err := views.Page(ctx, path, dashboard.ParseQuery(r.URL.Query()))
		if errors.Is(err, service.ErrSectionNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, ErrorResponse{Error: "section not found"})
			return
		}
		if err != nil {
			log.Error("ошибка сборки страницы", slog.String("path", path), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, ErrorResponse{Error: "internal error"})
			return
		}

		render.JSON(w, r, page)
	}
}
