package get

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bizdash/internal/dashboard"
	"bizdash/internal/service"
)

type MockPages struct {
	mock.Mock
}

func (m *MockPages) Page(ctx context.Context, path string, q dashboard.Query) (service.Page, error) {
	args := m.Called(ctx, path, q)
	return args.Get(0).(service.Page), args.Error(1)
}

type stubRenderer struct {
	err error
}

func (s stubRenderer) Page(w io.Writer, p service.Page) error {
	if s.err != nil {
		return s.err
	}
	_, err := fmt.Fprintf(w, "<h1>%s</h1><p>%s</p>", p.Title, p.ActiveID)
	return err
}

func TestPage_Success(t *testing.T) {
	pages := new(MockPages)
	pages.On("Page", mock.Anything, "/crm/customers", dashboard.Query{Search: "tech", Status: "All"}).
		Return(service.Page{Title: "CRM", ActiveID: "customers"}, nil)

	handler := Page(slog.Default(), pages, stubRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/crm/customers?search=tech&status=All", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<p>customers</p>")
	pages.AssertExpectations(t)
}

func TestPage_UnknownSection(t *testing.T) {
	pages := new(MockPages)
	pages.On("Page", mock.Anything, "/billing", dashboard.Query{}).
		Return(service.Page{}, fmt.Errorf("wrap: %w", service.ErrSectionNotFound))

	rr := httptest.NewRecorder()
	Page(slog.Default(), pages, stubRenderer{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/billing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPage_ServiceError(t *testing.T) {
	pages := new(MockPages)
	pages.On("Page", mock.Anything, "/settings/integrations", dashboard.Query{}).
		Return(service.Page{}, assert.AnError)

	rr := httptest.NewRecorder()
	Page(slog.Default(), pages, stubRenderer{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/settings/integrations", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal error")
}

func TestPage_RenderError(t *testing.T) {
	pages := new(MockPages)
	pages.On("Page", mock.Anything, "/crm", dashboard.Query{}).Return(service.Page{}, nil)

	rr := httptest.NewRecorder()
	Page(slog.Default(), pages, stubRenderer{err: errors.New("bad template")}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/crm", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
