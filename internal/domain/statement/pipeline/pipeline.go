// Package pipeline drives one whole statement document through
// extraction, segmentation, and canonicalization, in bounded chunks with
// advisory progress, and returns the time-sorted ledger slice for the
// storage collaborator. Row-level failures are recovered locally;
// document-level failures and empty results terminate the run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/apexledger/statement-engine/internal/domain/statement/canonicalizer"
	"github.com/apexledger/statement-engine/internal/domain/statement/extractor"
	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/segmenter"
)

var (
	// ErrNoTransactions reports a fully processed document that produced
	// zero canonical transactions. Distinct from unreadable input so
	// callers can message "nothing found" differently.
	ErrNoTransactions = errors.New("no transactions found")
	// ErrUnsupportedBank reports an institution outside the dialect set.
	ErrUnsupportedBank = errors.New("unsupported institution")
)

// Document is one uploaded statement: the raw bytes plus a filename hint
// used to disambiguate spreadsheet vs delimited-text sources.
type Document struct {
	Data     []byte
	Filename string
}

// Options tunes one run. The zero value is usable.
type Options struct {
	// Password decrypts protected PDF statements.
	Password string
	// SheetName overrides the worksheet for multi-sheet workbooks.
	SheetName string
	// ChunkSize bounds how many rows are canonicalized between progress
	// reports; defaults to 200.
	ChunkSize int
	Progress  ProgressFunc
	Logger    *slog.Logger
}

const defaultChunkSize = 200

// opaySheetName is where OPay app exports place the transaction table.
const opaySheetName = "TransactionHistory"

// Run converts one statement document into the sorted canonical ledger
// slice. Each invocation owns its extractor, segmenter and canonicalizer
// state, so concurrent runs need no coordination.
func Run(ctx context.Context, doc Document, bank model.Bank, opts Options) ([]model.Transaction, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	runID := uuid.New()
	log = log.With("run_id", runID, "bank", bank)

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	progress := newProgressReporter(opts.Progress)

	progress.report(5, fmt.Sprintf("reading %s statement", bank.DisplayName()))

	rows, summary, err := extractRows(doc, bank, opts)
	if err != nil {
		log.Warn("extraction failed", "error", err)
		return nil, err
	}
	progress.report(20, fmt.Sprintf("found %d rows", len(rows)))
	log.Debug("rows extracted", "rows", len(rows))

	canon, err := canonicalizer.New(bank)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedBank, err)
	}
	if seeder, ok := canon.(canonicalizer.BalanceSeeder); ok && summary.HasOpening {
		seeder.SeedBalance(summary.OpeningBalance)
	}

	var (
		transactions []model.Transaction
		skipped      int
	)
	for start := 0; start < len(rows); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + chunkSize
		if end > len(rows) {
			end = len(rows)
		}
		for _, row := range rows[start:end] {
			tx, ok := canon.Canonicalize(row)
			if !ok {
				skipped++
				continue
			}
			transactions = append(transactions, *tx)
		}

		percent := 20 + (70*end)/len(rows)
		progress.report(percent, fmt.Sprintf("processed %d of %d rows", end, len(rows)))
		// Let the host scheduler breathe between chunks on very large
		// statements.
		runtime.Gosched()
	}

	if len(transactions) == 0 {
		log.Info("run produced no transactions", "rows", len(rows), "skipped", skipped)
		return nil, ErrNoTransactions
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	progress.report(100, fmt.Sprintf("parsed %d transactions", len(transactions)))
	log.Info("run complete", "transactions", len(transactions), "skipped", skipped)
	return transactions, nil
}

// extractRows obtains RawRows for the institution: segmented page text
// for PDF dialects, sheet or CSV rows for the rest. The filename
// extension hint only matters where a bank's conventions allow more than
// one container format.
func extractRows(doc Document, bank model.Bank, opts Options) ([]model.RawRow, segmenter.Summary, error) {
	ext := strings.ToLower(filepath.Ext(doc.Filename))

	switch bank {
	case model.BankGTBank, model.BankAccess, model.BankFirstBank:
		text, err := extractor.PageText(doc.Data, opts.Password)
		if err != nil {
			return nil, segmenter.Summary{}, err
		}
		segment, _ := segmenter.ForBank(bank)
		rows, summary := segment(text)
		return rows, summary, nil

	case model.BankKuda:
		// Kuda exports either CSV or a spreadsheet of the same table.
		if ext == ".xlsx" || ext == ".xls" {
			rows, err := extractor.KudaRowsFromSheet(doc.Data)
			return rows, segmenter.Summary{}, err
		}
		rows, err := extractor.KudaRows(doc.Data)
		return rows, segmenter.Summary{}, err

	case model.BankOPay:
		sheet := opts.SheetName
		if sheet == "" {
			sheet = opaySheetName
		}
		rows, err := extractor.SheetRows(doc.Data, sheet)
		if errors.Is(err, extractor.ErrNoSheets) && opts.SheetName == "" {
			// Older exports have a single unnamed sheet.
			rows, err = extractor.SheetRows(doc.Data, "")
		}
		return rows, segmenter.Summary{}, err

	case model.BankZenith:
		var (
			rows []model.RawRow
			err  error
		)
		if ext == ".xls" {
			rows, err = extractor.LegacySheetRows(doc.Data)
		} else {
			rows, err = extractor.SheetRows(doc.Data, opts.SheetName)
		}
		if err != nil {
			return nil, segmenter.Summary{}, err
		}
		return normalizeZenithRows(rows), segmenter.Summary{}, nil
	}

	return nil, segmenter.Summary{}, fmt.Errorf("%w: %q", ErrUnsupportedBank, bank)
}
