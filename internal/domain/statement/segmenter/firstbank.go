package segmenter

import (
	"regexp"
	"strings"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// First Bank statements use dd-Mon-yy dates and print both the debit and
// credit columns on every line, zero-filling the unused side:
//
//	Date  Description...  Debit  Credit  Balance
//
// Row order: [date, description, debit, credit, balance]. A "0.00" column
// reads as no amount downstream, so only the populated side counts.
var firstbankTxnPattern = regexp.MustCompile(
	`^(\d{1,2}-[A-Za-z]{3,9}-\d{2,4})\s+(.+?)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`,
)

var firstbankNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(trans\.?\s*)?date\b`),
	regexp.MustCompile(`(?i)first bank`),
	regexp.MustCompile(`(?i)statement of account`),
	regexp.MustCompile(`(?i)account (no|number|name)\b`),
	regexp.MustCompile(`(?i)closing balance`),
	regexp.MustCompile(`(?i)^page \d+( of \d+)?$`),
	regexp.MustCompile(`(?i)dispense error`),
	regexp.MustCompile(`(?i)^(summary|total)\b`),
}

// SegmentFirstBank extracts transaction rows from flattened First Bank
// page text.
func SegmentFirstBank(text string) ([]model.RawRow, Summary) {
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

		if m := firstbankTxnPattern.FindStringSubmatch(line); m != nil {
			rows = append(rows, model.NewRawRow(m[1], m[2], m[3], m[4], m[5]))
			continue
		}

		if matchesAny(line, firstbankNoisePatterns) {
			continue
		}

		if !amountToken.MatchString(line) {
			appendContinuation(rows, 1, line)
		}
	}

	return rows, summary
}
