package products

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/shared"
)

type column int

const (
	colAttribute column = iota
	colIgnored
	colName
	colSKU
	colCategory
	colStock
	colMinStock
	colPrice
	colSupplier
	colLastRestocked
)

var knownColumns = map[string]column{
	"name":           colName,
	"product":        colName,
	"sku":            colSKU,
	"category":       colCategory,
	"stock":          colStock,
	"min_stock":      colMinStock,
	"minstock":       colMinStock,
	"price":          colPrice,
	"supplier":       colSupplier,
	"last_restocked": colLastRestocked,
	"lastrestocked":  colLastRestocked,
	"id":             colIgnored,
	"_id":            colIgnored,
	"status":         colIgnored,
}

var folder = cases.Fold()

// headerKey folds a header cell and joins words with underscores.
func headerKey(raw string) string {
	key := folder.String(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	return key
}

// Import reads the first sheet of an xlsx workbook and inserts one product
// per non-empty row. The first row names the columns.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return 0, httpx.Invalidf("cannot read workbook: %v", err)
	}
	defer func() { _ = book.Close() }()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return 0, httpx.Invalidf("workbook has no sheets")
	}
	rows, err := book.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, httpx.Invalidf("cannot read sheet %s: %v", sheets[0], err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	items, err := parseRows(rows)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	for i := range items {
		items[i] = s.prepare(items[i])
	}
	ids, err := s.records.CreateMany(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("products: import: %w", err)
	}
	return len(ids), nil
}

func parseRows(rows [][]string) ([]Product, error) {
	header := rows[0]
	keys := make([]string, len(header))
	kinds := make([]column, len(header))
	for i, h := range header {
		keys[i] = headerKey(h)
		kinds[i] = colAttribute
		if k, ok := knownColumns[keys[i]]; ok {
			kinds[i] = k
		}
	}

	out := make([]Product, 0, len(rows)-1)
	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}
		sheetRow := r + 2
		var p Product
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if err := assign(&p, kinds[i], keys[i], cell); err != nil {
				return nil, httpx.Invalidf("row %d column %s: %v", sheetRow, strings.TrimSpace(header[i]), err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func assign(p *Product, kind column, key, cell string) error {
	switch kind {
	case colName:
		p.Name = cell
	case colSKU:
		p.SKU = cell
	case colCategory:
		p.Category = cell
	case colSupplier:
		p.Supplier = cell
	case colLastRestocked:
		p.LastRestocked = cell
	case colStock, colMinStock:
		if cell == "" {
			return nil
		}
		q, err := shared.ParseQuantity(cell)
		if err != nil {
			return err
		}
		if q < 0 {
			return fmt.Errorf("%d is negative", q)
		}
		if kind == colStock {
			p.Stock = int64(q)
		} else {
			p.MinStock = int64(q)
		}
	case colPrice:
		if cell == "" {
			return nil
		}
		d, err := decimal.NewFromString(cell)
		if err != nil {
			return fmt.Errorf("%q is not a number", cell)
		}
		if d.IsNegative() {
			return fmt.Errorf("%s is negative", d.String())
		}
		p.Price = d.InexactFloat64()
	case colAttribute:
		if cell == "" || key == "" {
			return nil
		}
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes[key] = cell
	}
	return nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
