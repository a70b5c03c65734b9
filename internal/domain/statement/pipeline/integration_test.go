package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexledger/statement-engine/internal/domain/statement/canonicalizer"
	"github.com/apexledger/statement-engine/internal/domain/statement/segmenter"
)

// Exercises the page-oriented path the way Run wires it, from flattened
// statement text onward. PDF byte fixtures are not practical to embed, so
// the extraction step is covered separately in the extractor package.
func TestGTBankTextToLedger(t *testing.T) {
	text := `Guaranty Trust Bank Plc
Statement of Account
Trans Date Value Date Description Amount Balance
Opening Balance 100,000.00
01-Feb-2024 01-Feb-2024 NIP TRANSFER TO OPAY - JOHN DOE 50,000.00 150,000.00
03-Feb-2024 03-Feb-2024 POS PURCHASE SHOPRITE LEKKI 12,500.00 137,500.00
Closing Balance 137,500.00`

	rows, summary := segmenter.SegmentGTBank(text)
	require.Len(t, rows, 2)
	require.True(t, summary.HasOpening)

	canon, err := canonicalizer.New("gtbank")
	require.NoError(t, err)
	canon.(canonicalizer.BalanceSeeder).SeedBalance(summary.OpeningBalance)

	var amounts []int64
	for _, row := range rows {
		tx, ok := canon.Canonicalize(row)
		require.True(t, ok)
		amounts = append(amounts, tx.Amount)
	}

	// Credit inferred from the rising balance, then debit from the fall.
	assert.Equal(t, []int64{5000000, -1250000}, amounts)
}
