package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"bizdash/internal/storage"
)

type SettingsProvider interface {
	Integrations(ctx context.Context) ([]storage.Integration, error)
	Notifications(ctx context.Context) ([]storage.NotificationPref, error)
}

func GetIntegrations(log *slog.Logger, settings SettingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.GetIntegrations"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		integrations, err := settings.Integrations(ctx)
		if err != nil {
			log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			).Error("ошибка получения интеграций", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, integrations)
	}
}

func GetNotifications(log *slog.Logger, settings SettingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.GetNotifications"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		prefs, err := settings.Notifications(ctx)
		if err != nil {
			log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			).Error("ошибка получения настроек уведомлений", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, prefs)
	}
}
