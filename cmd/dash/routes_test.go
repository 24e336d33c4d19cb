package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/config"
	"bizdash/internal/logger"
	"bizdash/internal/service"
	genexcel "bizdash/internal/service/generate-excel"
	"bizdash/internal/storage/memory"
	"bizdash/internal/storage/sample"
	"bizdash/internal/web"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	ds := sample.Default()
	settings := service.NewSettingsService(memory.New(ds.Integrations, ds.Notifications))
	dash := service.NewDashboardService(ds, settings)

	renderer, err := web.New()
	require.NoError(t, err)

	cfg := config.Config{CORS: config.CORS{AllowedOrigins: []string{"http://localhost:5173"}}}
	return routes(cfg, logger.Discard(), dash, settings, genexcel.NewGenerateService(dash), renderer)
}

func TestRoutes_RootRedirectsToCRM(t *testing.T) {
	rr := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/crm", rr.Header().Get("Location"))
}

func TestRoutes_Pages(t *testing.T) {
	h := newRouter(t)

	tests := []struct {
		path string
		code int
		want string
	}{
		{"/crm", http.StatusOK, "CRM Overview"},
		{"/manufacturing/quality", http.StatusOK, `aria-current="page">Quality Control`},
		{"/crm/unknown", http.StatusOK, "CRM Overview"},
		{"/projects/tasks?search=api", http.StatusOK, "Task List"},
		{"/billing", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, rr.Code)
			if tt.want != "" {
				assert.Contains(t, rr.Body.String(), tt.want)
			}
		})
	}
}

func TestRoutes_ToggleThenView(t *testing.T) {
	h := newRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/settings/integrations/quickbooks/toggle", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/view?path=/settings/integrations&status=connected", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var page service.Page
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 3, page.View.Table.Shown)
}

func TestRoutes_NotificationUpdate(t *testing.T) {
	h := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/settings/notifications/sms-alerts", strings.NewReader(`{"enabled":false}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/settings/notifications", nil))
	assert.Contains(t, rr.Body.String(), `"id":"sms-alerts","label":"Critical alerts"`)
	assert.NotContains(t, rr.Body.String(), `"channel":"SMS","enabled":true`)
}

func TestRoutes_HealthAndExcel(t *testing.T) {
	h := newRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/report/excel?path=/crm/customers", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "crm_customers.xlsx")
}

func TestRoutes_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/settings/notifications/sms-alerts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	rr := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}
