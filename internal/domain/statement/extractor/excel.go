package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// SheetRows reads an .xlsx workbook and emits one RawRow per sheet row.
// Blank cells come back from excelize as empty strings and are mapped to
// absent fields. When sheetName is empty the first sheet is used; a named
// sheet is matched case-insensitively for institutions that export
// multiple worksheets.
func SheetRows(data []byte, sheetName string) ([]model.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	target := sheets[0]
	if sheetName != "" {
		target = ""
		for _, s := range sheets {
			if strings.EqualFold(s, sheetName) {
				target = s
				break
			}
		}
		if target == "" {
			return nil, fmt.Errorf("%w: sheet %q", ErrNoSheets, sheetName)
		}
	}

	cells, err := f.GetRows(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	rows := make([]model.RawRow, 0, len(cells))
	for _, cell := range cells {
		rows = append(rows, model.NewRawRow(cell...))
	}
	return rows, nil
}

// LegacySheetRows reads a legacy .xls workbook (BIFF format) from the
// first sheet. Some institutions still export these.
func LegacySheetRows(data []byte) ([]model.RawRow, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	if wb.GetNumberSheets() == 0 {
		return nil, ErrNoSheets
	}

	sheet, err := wb.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSheets, err)
	}

	var rows []model.RawRow
	for _, sheetRow := range sheet.GetRows() {
		var values []string
		for _, col := range sheetRow.GetCols() {
			values = append(values, col.GetString())
		}
		rows = append(rows, model.NewRawRow(values...))
	}
	return rows, nil
}
