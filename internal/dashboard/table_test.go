package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
)

func TestNewTable_ProjectsFilteredRows(t *testing.T) {
	tbl := NewTable(customerFixture(), Query{Status: constants.CustomerActive}, customerColumns)

	assert.Equal(t, []string{"Company", "Contact", "Email", "Phone", "Status", "Last Purchase", "Total Spent"}, tbl.Columns)
	assert.Equal(t, 3, tbl.Total)
	assert.Equal(t, 2, tbl.Shown)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "1", tbl.Rows[0].Key)
	assert.Equal(t, Cell{Kind: CellBadge, Text: "Active", Tone: "green"}, tbl.Rows[0].Cells[4])
}

func TestNewTable_NoMatchesIsEmptyNotNil(t *testing.T) {
	tbl := NewTable(customerFixture(), Query{Search: "nothing matches"}, customerColumns)
	assert.NotNil(t, tbl.Rows)
	assert.Empty(t, tbl.Rows)
	assert.Equal(t, 0, tbl.Shown)
}

func TestTable_Plain(t *testing.T) {
	orders := []storage.ProductionOrder{{ID: 7, Product: "Pump", Line: "L1", Quantity: 1500, Progress: 40, Status: constants.OrderRunning}}
	tbl := NewTable(orders, Query{}, orderColumns)

	assert.Equal(t, [][]string{{"Pump", "L1", "1,500", "40%", "Running", "", ""}}, tbl.Plain())
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(-5))
	assert.Equal(t, 0, Percent(0))
	assert.Equal(t, 55, Percent(55))
	assert.Equal(t, 100, Percent(100))
	assert.Equal(t, 100, Percent(140))
}

func TestProgressCell(t *testing.T) {
	c := Progress(120)
	assert.Equal(t, CellProgress, c.Kind)
	assert.Equal(t, 100, c.Percent)
	assert.Equal(t, "100%", c.String())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$25,000", FormatMoney(25000))
	assert.Equal(t, "$1,234.5", FormatMoney(1234.5))
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "-$300", FormatMoney(-300))
}

func TestBadge_UnknownStatusIsGray(t *testing.T) {
	assert.Equal(t, "gray", Badge("Something Else").Tone)
}

func TestToggleCell(t *testing.T) {
	assert.Equal(t, "on", Toggle(true).String())
	assert.Equal(t, "off", Toggle(false).String())
}
