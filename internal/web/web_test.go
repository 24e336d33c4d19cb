package web

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/dashboard"
	"bizdash/internal/service"
	"bizdash/internal/storage/memory"
	"bizdash/internal/storage/sample"
)

func renderPath(t *testing.T, path string, q dashboard.Query) string {
	t.Helper()

	ds := sample.Default()
	svc := service.NewDashboardService(ds, service.NewSettingsService(memory.New(ds.Integrations, ds.Notifications)))
	page, err := svc.Page(context.Background(), path, q)
	require.NoError(t, err)

	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, page))
	return buf.String()
}

func TestRenderer_HighlightsResolvedTab(t *testing.T) {
	out := renderPath(t, "/manufacturing/quality", dashboard.Query{})

	assert.Contains(t, out, `data-tab="quality" data-icon="clipboard-check" aria-current="page">Quality Control</a>`)
	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
	assert.Contains(t, out, `data-view="manufacturing.quality"`)
}

func TestRenderer_FilteredTable(t *testing.T) {
	out := renderPath(t, "/crm/customers", dashboard.Query{Search: "tech", Status: "All"})

	assert.Contains(t, out, "Tech Solutions Ltd")
	assert.NotContains(t, out, "Acme Corporation")
	assert.Contains(t, out, "Showing 1 of 3")
	assert.Contains(t, out, `<option value="All" selected>`)
	assert.Contains(t, out, `value="tech"`)
}

func TestRenderer_EmptyTable(t *testing.T) {
	out := renderPath(t, "/crm/customers", dashboard.Query{Search: "no such company"})
	assert.Contains(t, out, "No records found")
}

func TestRenderer_CardsAndCells(t *testing.T) {
	out := renderPath(t, "/settings/integrations", dashboard.Query{})
	assert.Contains(t, out, `class="badge badge-green"`)
	assert.Contains(t, out, `class="toggle on"`)
	assert.Contains(t, out, "Never")

	out = renderPath(t, "/settings", dashboard.Query{})
	assert.Contains(t, out, `<div class="card">`)
	assert.Contains(t, out, "<dt>Company Name</dt>")
}

func TestRenderer_ProgressAndCharts(t *testing.T) {
	out := renderPath(t, "/projects/active", dashboard.Query{})
	assert.Contains(t, out, `class="progress-bar" style="width: `)
	assert.Contains(t, out, `data-kind="bar"`)
	assert.Contains(t, out, `data-values="50000,120000,250000"`)
}

func TestRenderer_ExportLinkKeepsFilter(t *testing.T) {
	out := renderPath(t, "/crm/sales", dashboard.Query{Status: "Pending"})
	assert.Contains(t, out, "/api/report/excel?path=%2Fcrm%2Fsales&amp;status=Pending")
}

func TestStatic(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/dashboard.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".sidebar")
}
