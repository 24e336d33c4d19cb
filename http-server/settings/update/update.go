package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"bizdash/internal/storage"
)

type SettingsUpdater interface {
	ToggleIntegration(ctx context.Context, id string) (storage.Integration, error)
	SetNotification(ctx context.Context, id string, enabled bool) (storage.NotificationPref, error)
}

type NotificationRequest struct {
	Enabled *bool `json:"enabled"`
}

func (n *NotificationRequest) Bind(r *http.Request) error {
	if n.Enabled == nil {
		return errors.New("enabled is required")
	}
	return nil
}

// ToggleIntegration - POST /api/settings/integrations/{id}/toggle
func ToggleIntegration(log *slog.Logger, settings SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.ToggleIntegration"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "integration id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		integration, err := settings.ToggleIntegration(ctx, id)
		if errors.Is(err, storage.ErrIntegrationNotFound) {
			http.Error(w, "integration not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("ошибка переключения интеграции", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("интеграция переключена", slog.String("id", id), slog.String("status", integration.Status))

		render.JSON(w, r, integration)
	}
}

// SetNotification - PUT /api/settings/notifications/{id}, body {"enabled": bool}
func SetNotification(log *slog.Logger, settings SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.SetNotification"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "notification id is required", http.StatusBadRequest)
			return
		}

		var req NotificationRequest
		if err := render.Bind(r, &req); err != nil {
			http.Error(w, "Некорректный JSON: "+err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		pref, err := settings.SetNotification(ctx, id, *req.Enabled)
		if errors.Is(err, storage.ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("ошибка сохранения уведомления", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, pref)
	}
}
