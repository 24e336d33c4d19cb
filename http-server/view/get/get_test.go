package get

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/section"
	"bizdash/internal/service"
	"bizdash/internal/storage/memory"
	"bizdash/internal/storage/sample"
)

func newViews() *service.DashboardService {
	ds := sample.Default()
	return service.NewDashboardService(ds, service.NewSettingsService(memory.New(ds.Integrations, ds.Notifications)))
}

func TestResolve_MatchesSectionRouter(t *testing.T) {
	views := newViews()
	handler := Resolve(slog.Default(), views)

	paths := []string{"/crm", "/crm/sales", "/crm/salesforce", "/crm/unknown", "/manufacturing/quality", "/settings"}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/resolve?path="+p, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var got service.Resolution
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))

			sec, ok := section.Lookup(p)
			require.True(t, ok)
			assert.Equal(t, sec.ID, got.Section)
			assert.Equal(t, sec.Resolve(p), got.ID)
		})
	}
}

func TestResolve_BadRequests(t *testing.T) {
	handler := Resolve(slog.Default(), newViews())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/resolve", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/resolve?path=/billing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "section not found")
}

func TestSections(t *testing.T) {
	rr := httptest.NewRecorder()
	Sections(slog.Default(), newViews()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sections", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got []section.Section
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "crm", got[0].ID)
	assert.Len(t, got[1].Tabs, 5)
}

func TestView_FilteredJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/view?path=/crm/customers&status=Active", nil)
	View(slog.Default(), newViews()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got service.Page
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "customers", got.ActiveID)
	require.NotNil(t, got.View.Table)
	assert.Equal(t, 2, got.View.Table.Shown)
	assert.Equal(t, 3, got.View.Table.Total)
}

func TestView_Errors(t *testing.T) {
	handler := View(slog.Default(), newViews())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/view", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/view?path=/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
