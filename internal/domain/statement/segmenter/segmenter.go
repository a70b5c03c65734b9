// Package segmenter extracts structured transaction rows from the
// flattened page text of PDF statements. Each supported page-oriented
// institution gets one pure segmentation function: dialect regex patterns
// capture the fixed fields of a transaction line, exclusion patterns drop
// header/footer noise, and continuation lines are folded into the
// previous row's description. A statement with no matching lines yields
// an empty row set, which is valid input, not an error.
package segmenter

import (
	"regexp"
	"strings"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// Summary carries statement-level facts a dialect surfaces alongside its
// rows. Only the opening balance is used today: it seeds the running
// balance for sign reconciliation.
type Summary struct {
	OpeningBalance int64
	HasOpening     bool
}

// Func is one dialect's segmentation function.
type Func func(text string) ([]model.RawRow, Summary)

// ForBank returns the segmenter for a page-oriented institution, or false
// for row-shaped (spreadsheet/CSV) institutions that need none.
func ForBank(bank model.Bank) (Func, bool) {
	switch bank {
	case model.BankGTBank:
		return SegmentGTBank, true
	case model.BankAccess:
		return SegmentAccess, true
	case model.BankFirstBank:
		return SegmentFirstBank, true
	}
	return nil, false
}

// DetectBank guesses the issuing institution from page text, for callers
// that have a PDF but no bank selector.
func DetectBank(text string) (model.Bank, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "guaranty trust") || strings.Contains(lower, "gtbank") || strings.Contains(lower, "gtworld"):
		return model.BankGTBank, true
	case strings.Contains(lower, "access bank"):
		return model.BankAccess, true
	case strings.Contains(lower, "first bank of nigeria") || strings.Contains(lower, "firstbank") || strings.Contains(lower, "firstmobile"):
		return model.BankFirstBank, true
	}
	return "", false
}

var (
	amountToken        = regexp.MustCompile(`[\d,]+\.\d{2}`)
	openingBalanceLine = regexp.MustCompile(`(?i)\b(opening balance|balance b/f|brought forward)\b`)
)

// extractOpeningBalance pulls the last amount off an opening-balance line.
func extractOpeningBalance(line string) (int64, bool) {
	if !openingBalanceLine.MatchString(line) {
		return 0, false
	}
	amounts := amountToken.FindAllString(line, -1)
	if len(amounts) == 0 {
		return 0, false
	}
	kobo, ok := primitives.ParseAmount(amounts[len(amounts)-1])
	if !ok {
		// A genuinely zero opening balance still counts as seeded.
		return 0, openingBalanceLine.MatchString(line)
	}
	return kobo, true
}

// matchesAny reports whether line matches any exclusion pattern.
func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// appendContinuation folds a free-text line into the description field of
// the most recent row, preserving multi-line narrations.
func appendContinuation(rows []model.RawRow, descIdx int, line string) {
	if len(rows) == 0 {
		return
	}
	last := rows[len(rows)-1]
	if desc, ok := last.Get(descIdx); ok {
		last[descIdx] = model.Cell(desc + " " + line)
	}
}
