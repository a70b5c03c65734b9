package segmenter

import (
	"regexp"
	"strings"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// Access Bank statements carry explicit debit and credit columns, with "-"
// filling whichever side is unused, and end each transaction line with a
// reference token before the amounts:
//
//	TransDate  ValueDate  Narration...  Reference  Debit  Credit  Balance
//
// Row order: [date, value date, description, reference, debit, credit, balance].
var accessTxnPattern = regexp.MustCompile(
	`^(\d{1,2}/\d{1,2}/\d{4})\s+(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+(\S+)\s+([\d,]+\.\d{2}|-)\s+([\d,]+\.\d{2}|-)\s+([\d,]+\.\d{2})$`,
)

var accessNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^trans\.?\s*date\b`),
	regexp.MustCompile(`(?i)access bank`),
	regexp.MustCompile(`(?i)statement of account`),
	regexp.MustCompile(`(?i)account (no|number|name)\b`),
	regexp.MustCompile(`(?i)closing balance`),
	regexp.MustCompile(`(?i)^page \d+( of \d+)?$`),
	regexp.MustCompile(`(?i)^(summary|total)\b`),
	regexp.MustCompile(`(?i)this statement (is|was)`),
}

// SegmentAccess extracts transaction rows from flattened Access Bank page
// text. "-" placeholders in the debit/credit columns become absent fields.
func SegmentAccess(text string) ([]model.RawRow, Summary) {
	var (
		rows    []model.RawRow
		summary Summary
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if bal, ok := extractOpeningBalance(line); ok || openingBalanceLine.MatchString(line) {
			summary.OpeningBalance = bal
			summary.HasOpening = true
			continue
		}

		if m := accessTxnPattern.FindStringSubmatch(line); m != nil {
			row := model.NewRawRow(m[1], m[2], m[3], m[4],
				dashToBlank(m[5]), dashToBlank(m[6]), m[7])
			rows = append(rows, row)
			continue
		}

		if matchesAny(line, accessNoisePatterns) {
			continue
		}

		if !amountToken.MatchString(line) {
			appendContinuation(rows, 2, line)
		}
	}

	return rows, summary
}

func dashToBlank(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
