package generate_excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"bizdash/internal/dashboard"
	"bizdash/internal/service"
)

const maxSheetName = 31

type PageSource interface {
	Page(ctx context.Context, path string, q dashboard.Query) (service.Page, error)
}

type GenerateExcelService struct {
	pages PageSource
}

func NewGenerateService(pages PageSource) *GenerateExcelService {
	return &GenerateExcelService{pages: pages}
}

// Report - готовый xlsx и имя файла для него.
type Report struct {
	FileName string
	Data     []byte
	Rows     int
}

// GenerateExcel выгружает таблицу активной вкладки для path с тем же фильтром,
// что и на странице. Вкладки без таблицы (general, profile) выгружаются
// как пары "поле - значение" из карточек.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, path string, q dashboard.Query) (Report, error) {
	const op = "service.generate_excel.GenerateExcel"

	page, err := g.pages.Page(ctx, path, q)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", op, err)
	}

	headers, rows := sheetData(page.View)

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(page.View.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return Report{}, fmt.Errorf("%s: rename sheet: %w", op, err)
	}

	// шапка: жирный шрифт, серая заливка, линия снизу
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return Report{}, fmt.Errorf("%s: header style: %w", op, err)
	}

	for i, name := range headers {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), name); err != nil {
			return Report{}, fmt.Errorf("%s: header: %w", op, err)
		}
	}
	if len(headers) > 0 {
		if err := f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle); err != nil {
			return Report{}, fmt.Errorf("%s: header style: %w", op, err)
		}
	}

	for r, row := range rows {
		for c, v := range row {
			if err := f.SetCellValue(sheet, cellName(c+1, r+2), v); err != nil {
				return Report{}, fmt.Errorf("%s: row %d: %w", op, r+1, err)
			}
		}
	}

	// закрепляем первую строку
	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return Report{}, fmt.Errorf("%s: panes: %w", op, err)
	}

	if len(headers) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(headers))
		if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
			return Report{}, fmt.Errorf("%s: col width: %w", op, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Report{}, fmt.Errorf("%s: write: %w", op, err)
	}

	return Report{
		FileName: fileName(page),
		Data:     buf.Bytes(),
		Rows:     len(rows),
	}, nil
}

func sheetData(v dashboard.View) ([]string, [][]any) {
	if v.Table != nil {
		rows := make([][]any, len(v.Table.Rows))
		for i, row := range v.Table.Rows {
			rows[i] = make([]any, len(row.Cells))
			for j, c := range row.Cells {
				rows[i][j] = cellValue(c)
			}
		}
		return v.Table.Columns, rows
	}

	var rows [][]any
	for _, card := range v.Cards {
		for _, fld := range card.Fields {
			rows = append(rows, []any{card.Title, fld.Label, fld.Value})
		}
	}
	return []string{"Section", "Field", "Value"}, rows
}

// Прогресс пишем числом, чтобы в Excel по нему можно было считать.
func cellValue(c dashboard.Cell) any {
	if c.Kind == dashboard.CellProgress {
		return c.Percent
	}
	return c.String()
}

func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, title)
	if name == "" {
		name = "Report"
	}
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}

func fileName(p service.Page) string {
	return fmt.Sprintf("%s_%s.xlsx", p.Section, p.ActiveID)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
