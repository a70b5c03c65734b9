package pipeline

import (
	"regexp"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// Zenith workbook exports are irregular: a title block above the header,
// a leading serial-number column, and long narrations spilling onto
// continuation rows with no date. normalizeZenithRows reshapes that into
// the clean [date, value date, description, reference, debit, credit,
// balance] layout the canonicalizer expects.

var zenithDateCell = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}`)

func normalizeZenithRows(rows []model.RawRow) []model.RawRow {
	var out []model.RawRow

	for _, row := range rows {
		// Strip the serial-number column when the export carries one.
		if len(row) >= 8 && row.Present(1) && zenithDateCell.MatchString(row.Value(1)) {
			row = row[1:]
		}

		date, present := row.Get(0)
		if present && zenithDateCell.MatchString(date) {
			out = append(out, row)
			continue
		}

		// Not a dated row: either title/header noise or a narration
		// continuation belonging to the previous transaction.
		if len(out) == 0 || isZenithHeader(row) {
			continue
		}
		if frag := continuationText(row); frag != "" {
			last := out[len(out)-1]
			if desc, ok := last.Get(2); ok {
				last[2] = model.Cell(desc + " " + frag)
			}
		}
	}

	return out
}

// continuationText joins the populated cells of an undated row. Rows with
// amounts are not continuations, they are summary lines; skip those, and
// skip bare serial numbers.
func continuationText(row model.RawRow) string {
	text := ""
	for _, f := range row {
		if !f.Present || serialCell.MatchString(f.Value) {
			continue
		}
		if amountCell.MatchString(f.Value) {
			return ""
		}
		if text != "" {
			text += " "
		}
		text += f.Value
	}
	return text
}

var (
	amountCell = regexp.MustCompile(`^[\d,]+\.\d{2}$`)
	serialCell = regexp.MustCompile(`^\d{1,5}$`)
)

var zenithHeaderCell = regexp.MustCompile(`(?i)^(s/n|effective date|value date|description|reference|debit|credit|balance)$`)

// isZenithHeader recognizes repeated per-page column header rows.
func isZenithHeader(row model.RawRow) bool {
	for _, f := range row {
		if f.Present && zenithHeaderCell.MatchString(f.Value) {
			return true
		}
	}
	return false
}
