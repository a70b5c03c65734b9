package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

func init() {
	// Kuda headers arrive as "Date/Time", "Money In", etc.
	gocsv.SetHeaderNormalizer(strings.ToLower)
}

// delimitedRows reads delimited text line by line with quote-aware field
// splitting: a quoted field may contain the delimiter, and stray quotes
// inside fields are tolerated. Fields are trimmed; empty fields map to
// absent. Malformed lines are skipped rather than failing the document.
func delimitedRows(data []byte) ([]model.RawRow, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var rows []model.RawRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, model.NewRawRow(record...))
	}
	return rows, nil
}

// kudaRow mirrors the headers of a Kuda CSV export. gocsv matches columns
// by header name so column order in the export does not matter.
type kudaRow struct {
	DateTime    string `csv:"date/time"`
	Category    string `csv:"category"`
	MoneyIn     string `csv:"money in"`
	MoneyOut    string `csv:"money out"`
	ToFrom      string `csv:"to / from"`
	Description string `csv:"description"`
	Reference   string `csv:"payment reference"`
}

// Kuda column positions in the RawRows produced by KudaRows and
// KudaRowsFromSheet. The canonicalizer layout depends on this order.
const (
	KudaColDate = iota
	KudaColCategory
	KudaColMoneyIn
	KudaColMoneyOut
	KudaColToFrom
	KudaColDescription
	KudaColReference
	kudaColCount
)

// KudaRows parses a Kuda CSV export into positional RawRows. App exports
// carry a header row and are matched by name, so column order does not
// matter; copies with the header stripped fall back to positional reads
// in the standard export order.
func KudaRows(data []byte) ([]model.RawRow, error) {
	if !hasKudaHeader(data) {
		return delimitedRows(data)
	}

	var records []kudaRow
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	rows := make([]model.RawRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.NewRawRow(
			rec.DateTime, rec.Category, rec.MoneyIn, rec.MoneyOut,
			rec.ToFrom, rec.Description, rec.Reference,
		))
	}
	return rows, nil
}

func hasKudaHeader(data []byte) bool {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	return bytes.Contains(bytes.ToLower(line), []byte("date/time"))
}

// KudaRowsFromSheet adapts a spreadsheet export of the same statement:
// Kuda allows either, with identical column order after the header row.
func KudaRowsFromSheet(data []byte) ([]model.RawRow, error) {
	rows, err := SheetRows(data, "")
	if err != nil {
		return nil, err
	}
	out := make([]model.RawRow, 0, len(rows))
	for _, row := range rows {
		// Pad to the full arity so positional reads stay in range.
		for len(row) < kudaColCount {
			row = append(row, model.Absent())
		}
		out = append(out, row)
	}
	return out, nil
}
