package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	gospreadsheet "github.com/VantageDataChat/GoExcel"
)

// Table is a literal table of figures shown on a slide.
type Table struct {
	Name   string // sheet name, at most 31 characters
	Header []string
	Rows   [][]string
}

// WorkbookOptions sets workbook metadata.
type WorkbookOptions struct {
	Title       string
	Creator     string
	Description string
	Subject     string
}

// 共通の枠線
func thinBorders(color string) *gospreadsheet.Borders {
	b := gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: color}
	return &gospreadsheet.Borders{Left: b, Top: b, Bottom: b, Right: b}
}

// WorkbookBytes renders the tables into an .xlsx, one sheet per table in
// order.
func WorkbookBytes(tables []Table, opts WorkbookOptions) ([]byte, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables to export")
	}

	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  "Meiryo",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "1A5490",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(thinBorders("FFFFFF"))

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: "Meiryo",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(thinBorders("D9D9D9"))

	for i, t := range tables {
		if len(t.Header) == 0 {
			return nil, fmt.Errorf("table %q has no header", t.Name)
		}

		var ws *gospreadsheet.Worksheet
		if i == 0 {
			ws = wb.GetActiveSheet()
			ws.SetTitle(t.Name)
		} else {
			var err error
			ws, err = wb.AddSheet(t.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", t.Name, err)
			}
		}

		widths := make([]int, len(t.Header))
		for col, title := range t.Header {
			cellName, _ := gospreadsheet.CellName(0, col)
			ws.SetCellValue(cellName, title)
			ws.SetCellStyle(cellName, headerStyle)
			widths[col] = DisplayWidth(title)
		}
		ws.SetRowHeight(0, 25)

		for r, row := range t.Rows {
			excelRow := r + 1
			for col := 0; col < len(t.Header) && col < len(row); col++ {
				cellName, _ := gospreadsheet.CellName(excelRow, col)
				ws.SetCellValue(cellName, row[col])
				ws.SetCellStyle(cellName, dataStyle)
				if w := DisplayWidth(row[col]); w > widths[col] {
					widths[col] = w
				}
			}
			ws.SetRowHeight(excelRow, 20)
		}

		for col, w := range widths {
			width := float64(w) * 1.2
			if width < 12 {
				width = 12
			}
			if width > 60 {
				width = 60
			}
			ws.SetColumnWidth(col, width)
		}

		ws.FreezePane("A2")
	}

	wb.Properties.Title = opts.Title
	wb.Properties.Creator = opts.Creator
	wb.Properties.Description = opts.Description
	wb.Properties.Subject = opts.Subject
	wb.Properties.Keywords = "物流,投資対効果,財務シミュレーション"
	wb.Properties.Category = "提案書付録"
	wb.Properties.LastModifiedBy = opts.Creator

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteWorkbook saves the tables as an .xlsx file.
func WriteWorkbook(path string, tables []Table, opts WorkbookOptions) error {
	data, err := WorkbookBytes(tables, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
