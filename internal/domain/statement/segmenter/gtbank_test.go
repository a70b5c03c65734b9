package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gtbankStatement = `Guaranty Trust Bank Plc
Statement of Account
Account No: 0123456789
Trans Date Value Date Description Amount Balance
Opening Balance 100,000.00
01-Feb-2024 01-Feb-2024 NIP TRANSFER TO OPAY - JOHN DOE 50,000.00 150,000.00
03-Feb-2024 03-Feb-2024 POS PURCHASE SHOPRITE LEKKI 12,500.00 137,500.00
via GTWorld mobile app
Closing Balance 137,500.00
Page 1 of 1`

func TestSegmentGTBank(t *testing.T) {
	rows, summary := SegmentGTBank(gtbankStatement)

	require.Len(t, rows, 2)

	assert.True(t, summary.HasOpening)
	assert.Equal(t, int64(10000000), summary.OpeningBalance)

	assert.Equal(t, "01-Feb-2024", rows[0].Value(0))
	assert.Equal(t, "01-Feb-2024", rows[0].Value(1))
	assert.Equal(t, "NIP TRANSFER TO OPAY - JOHN DOE", rows[0].Value(2))
	assert.Equal(t, "50,000.00", rows[0].Value(3))
	assert.Equal(t, "150,000.00", rows[0].Value(4))

	// The wrapped narration line folds into the previous description.
	assert.Equal(t, "POS PURCHASE SHOPRITE LEKKI via GTWorld mobile app", rows[1].Value(2))
}

func TestSegmentGTBank_NoActivity(t *testing.T) {
	rows, summary := SegmentGTBank(`Guaranty Trust Bank Plc
Statement of Account
Opening Balance 0.00
Closing Balance 0.00`)

	assert.Empty(t, rows, "a statement with no activity is valid input")
	assert.True(t, summary.HasOpening)
	assert.Zero(t, summary.OpeningBalance)
}

func TestDetectBank(t *testing.T) {
	bank, ok := DetectBank(gtbankStatement)
	require.True(t, ok)
	assert.Equal(t, "gtbank", string(bank))

	_, ok = DetectBank("some unrelated document")
	assert.False(t, ok)
}
