package segmenter

import (
	"regexp"
	"strings"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// GTBank statements flatten to lines of the shape
//
//	TransDate  ValueDate  Description...  Amount  Balance
//
// with dd-Mon-yyyy dates and a single unsigned amount column; the sign is
// reconciled later against the running balance. Long narrations wrap onto
// the following line.
//
// Row order: [date, value date, description, amount, balance].
var gtbankTxnPattern = regexp.MustCompile(
	`^(\d{1,2}-[A-Za-z]{3,9}-\d{2,4})\s+(\d{1,2}-[A-Za-z]{3,9}-\d{2,4})\s+(.+?)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`,
)

var gtbankNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^trans\.?\s*date\b`),
	regexp.MustCompile(`(?i)^value\s*date\b`),
	regexp.MustCompile(`(?i)guaranty trust`),
	regexp.MustCompile(`(?i)statement of account`),
	regexp.MustCompile(`(?i)account (no|number|name)\b`),
	regexp.MustCompile(`(?i)closing balance`),
	regexp.MustCompile(`(?i)^page \d+( of \d+)?$`),
	regexp.MustCompile(`(?i)^total (debit|credit)`),
	regexp.MustCompile(`(?i)for (enquiries|complaints)`),
}

// SegmentGTBank extracts transaction rows from flattened GTBank page text.
func SegmentGTBank(text string) ([]model.RawRow, Summary) {
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

		if m := gtbankTxnPattern.FindStringSubmatch(line); m != nil {
			rows = append(rows, model.NewRawRow(m[1], m[2], m[3], m[4], m[5]))
			continue
		}

		if matchesAny(line, gtbankNoisePatterns) {
			continue
		}

		// Anything else without an amount is a wrapped narration line.
		if !amountToken.MatchString(line) {
			appendContinuation(rows, 2, line)
		}
	}

	return rows, summary
}
