package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	generate_excel "bizdash/http-server/generate-report/generate-excel"
	getpage "bizdash/http-server/page/get"
	getsettings "bizdash/http-server/settings/get"
	upsettings "bizdash/http-server/settings/update"
	getview "bizdash/http-server/view/get"
	"bizdash/internal/config"
	"bizdash/internal/service"
	genexcel "bizdash/internal/service/generate-excel"
	"bizdash/internal/web"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	dashboard *service.DashboardService,
	settings *service.SettingsService,
	excel *genexcel.GenerateExcelService,
	renderer *web.Renderer,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	//ip пользователя
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/sections", getview.Sections(log, dashboard))
		r.Get("/resolve", getview.Resolve(log, dashboard))
		r.Get("/view", getview.View(log, dashboard))

		r.Get("/report/excel", generate_excel.GenerateReportExcel(log, excel))

		r.Get("/settings/integrations", getsettings.GetIntegrations(log, settings))
		r.Post("/settings/integrations/{id}/toggle", upsettings.ToggleIntegration(log, settings))
		r.Get("/settings/notifications", getsettings.GetNotifications(log, settings))
		r.Put("/settings/notifications/{id}", upsettings.SetNotification(log, settings))
	})

	router.Handle("/static/*", web.Static())

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/crm", http.StatusFound)
	})

	// страницы разделов, вкладка определяется по пути
	page := getpage.Page(log, dashboard, renderer)
	router.Get("/{section}", page)
	router.Get("/{section}/*", page)

	return router
}
