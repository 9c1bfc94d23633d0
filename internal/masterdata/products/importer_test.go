package products

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/supplyline/supplyline/internal/inventory"
	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/store"
	"github.com/supplyline/supplyline/internal/store/memstore"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportMapsColumns(t *testing.T) {
	st := memstore.New()
	svc := NewService(st, nil, nil)
	buf := workbook(t, [][]any{
		{"Name", "SKU", "Category", "Stock", "Min Stock", "Price", "Supplier", "Shelf-Code"},
		{"Bolt", "B-1", "Hardware", 3, 10, 1.5, "Acme", "A4"},
		{"", "", "", "", "", "", "", ""},
		{"Nut", "N-1", "Hardware", "40", "10", "0.25", "Acme", ""},
	})

	n, err := svc.Import(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	bolt := items[0]
	assert.Equal(t, "Bolt", bolt.Name)
	assert.Equal(t, int64(3), bolt.Stock)
	assert.Equal(t, int64(10), bolt.MinStock)
	assert.Equal(t, 1.5, bolt.Price)
	assert.Equal(t, inventory.StatusCritical, bolt.Status)
	assert.Equal(t, map[string]string{"shelf_code": "A4"}, bolt.Attributes)

	nut := items[1]
	assert.Equal(t, int64(40), nut.Stock)
	assert.Equal(t, inventory.StatusInStock, nut.Status)
	assert.Nil(t, nut.Attributes)

	count, err := st.Collection(store.Products).Count(context.Background(), store.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestImportReadsStoredValuesOfFormattedCells(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "Stock", "Min Stock", "Price"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Crate", 1500, 10, 1234.5}))
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "D2", thousands))
	shown, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	require.Equal(t, "1,500.00", shown)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	svc := NewService(memstore.New(), nil, nil)
	n, err := svc.Import(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1500), items[0].Stock)
	assert.Equal(t, int64(10), items[0].MinStock)
	assert.Equal(t, 1234.5, items[0].Price)
}

func TestImportRejectsNonNumericCell(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	buf := workbook(t, [][]any{
		{"name", "stock"},
		{"Bolt", "5"},
		{"Nut", "plenty"},
	})
	_, err := svc.Import(context.Background(), buf)
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Contains(t, err.Error(), "row 3 column stock")

	items, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, items, "nothing is inserted when a row fails")
}

func TestImportHeaderOnly(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	n, err := svc.Import(context.Background(), workbook(t, [][]any{{"name", "sku"}}))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImportRejectsGarbage(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	_, err := svc.Import(context.Background(), bytes.NewBufferString("not a workbook"))
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestHeaderKey(t *testing.T) {
	cases := map[string]string{
		"Min Stock":       "min_stock",
		" SKU ":           "sku",
		"Last-Restocked":  "last_restocked",
		"Warehouse Bin 2": "warehouse_bin_2",
	}
	for in, want := range cases {
		assert.Equal(t, want, headerKey(in), fmt.Sprintf("header %q", in))
	}
}
