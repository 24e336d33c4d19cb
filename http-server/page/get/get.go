package get

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"bizdash/internal/dashboard"
	"bizdash/internal/service"
)

type PageProvider interface {
	Page(ctx context.Context, path string, q dashboard.Query) (service.Page, error)
}

type PageRenderer interface {
	Page(w io.Writer, p service.Page) error
}

// Page отдаёт html-страницу раздела. Вкладка определяется по r.URL.Path.
func Page(log *slog.Logger, pages PageProvider, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.Page"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		page, err := pages.Page(ctx, r.URL.Path, dashboard.ParseQuery(r.URL.Query()))
		if errors.Is(err, service.ErrSectionNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			log.Error("ошибка сборки страницы", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Page(w, page); err != nil {
			log.Error("ошибка рендера страницы", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}
}
