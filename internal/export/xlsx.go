package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
)

const xlsxSheetName = "Call Log"

// renderXLSX builds a workbook of the raw log rows in memory. Same content
// as the CSV export, spreadsheet shaped.
func (e *Exporter) renderXLSX(snapshot []calllog.Record) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths.

	index, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("export: create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("export: header style: %w", err)
	}

	header := e.columns.header()
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(xlsxSheetName, cell, name); err != nil {
			f.Close()
			return nil, err
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(xlsxSheetName, "A1", endHeader, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	for i, rec := range snapshot {
		for col, value := range e.row(rec) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(xlsxSheetName, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
