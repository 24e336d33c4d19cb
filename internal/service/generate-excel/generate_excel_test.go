package generate_excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bizdash/internal/dashboard"
	"bizdash/internal/service"
	"bizdash/internal/storage/memory"
	"bizdash/internal/storage/sample"
)

func newService() *GenerateExcelService {
	ds := sample.Default()
	settings := service.NewSettingsService(memory.New(ds.Integrations, ds.Notifications))
	return NewGenerateService(service.NewDashboardService(ds, settings))
}

func readRows(t *testing.T, data []byte) (string, [][]string) {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return sheet, rows
}

func TestGenerateExcel_FilteredTable(t *testing.T) {
	rep, err := newService().GenerateExcel(context.Background(), "/crm/customers", dashboard.Query{Status: "Active"})
	require.NoError(t, err)

	assert.Equal(t, "crm_customers.xlsx", rep.FileName)
	assert.Equal(t, 2, rep.Rows)

	sheet, rows := readRows(t, rep.Data)
	assert.Equal(t, "Customers", sheet)
	// шапка + отфильтрованные строки
	require.Len(t, rows, 3)
	assert.Equal(t, "Company", rows[0][0])
	assert.Equal(t, "Acme Corporation", rows[1][0])
	assert.Equal(t, "Global Industries", rows[2][0])
}

func TestGenerateExcel_ProgressIsNumeric(t *testing.T) {
	rep, err := newService().GenerateExcel(context.Background(), "/projects/active", dashboard.Query{})
	require.NoError(t, err)

	_, rows := readRows(t, rep.Data)
	require.Greater(t, len(rows), 1)
	// колонка Progress - третья
	assert.Equal(t, "Progress", rows[0][2])
	assert.NotContains(t, rows[1][2], "%")
}

func TestGenerateExcel_CardsView(t *testing.T) {
	rep, err := newService().GenerateExcel(context.Background(), "/settings/profile", dashboard.Query{})
	require.NoError(t, err)

	_, rows := readRows(t, rep.Data)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Section", "Field", "Value"}, rows[0])
	assert.Equal(t, rep.Rows+1, len(rows))
}

func TestGenerateExcel_UnknownSection(t *testing.T) {
	_, err := newService().GenerateExcel(context.Background(), "/billing", dashboard.Query{})
	assert.ErrorIs(t, err, service.ErrSectionNotFound)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Budget - Spent", sheetName("Budget / Spent"))
	assert.Equal(t, "Report", sheetName(""))
	assert.Len(t, sheetName("A very long view title that excel would reject"), maxSheetName)
}
