package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentAccess(t *testing.T) {
	text := `Access Bank Plc
Statement of Account
Trans Date Value Date Narration Reference Debit Credit Balance
01/02/2024 01/02/2024 NIP/OPAY/JOHN DOE/rent payment S00112233 5,000.00 - 95,000.00
02/02/2024 02/02/2024 SALARY FEB GROUPPAY C00445566 - 250,000.00 345,000.00
03/02/2024 03/02/2024 ELECTRONIC MONEY TRANSFER LEVY L00778899 50.00 - 344,950.00
Closing Balance 344,950.00`

	rows, summary := SegmentAccess(text)

	require.Len(t, rows, 3)
	assert.False(t, summary.HasOpening)

	// Debit row: credit column was "-", must be absent.
	_, present := rows[0].Get(5)
	assert.False(t, present)
	assert.Equal(t, "5,000.00", rows[0].Value(4))
	assert.Equal(t, "S00112233", rows[0].Value(3))
	assert.Equal(t, "NIP/OPAY/JOHN DOE/rent payment", rows[0].Value(2))

	// Credit row: debit column was "-", must be absent.
	_, present = rows[1].Get(4)
	assert.False(t, present)
	assert.Equal(t, "250,000.00", rows[1].Value(5))
	assert.Equal(t, "95,000.00", rows[0].Value(6))
}

func TestSegmentFirstBank(t *testing.T) {
	text := `FirstBank of Nigeria Limited
Statement of Account
Date Description Debit Credit Balance
05-Feb-24 ATM WITHDRAWAL FBN IKEJA 20,000.00 0.00 80,000.00
06-Feb-24 TRF FROM ADAOBI OKEKE 0.00 15,000.00 95,000.00
Closing Balance 95,000.00`

	rows, _ := SegmentFirstBank(text)

	require.Len(t, rows, 2)
	assert.Equal(t, "05-Feb-24", rows[0].Value(0))
	assert.Equal(t, "ATM WITHDRAWAL FBN IKEJA", rows[0].Value(1))
	assert.Equal(t, "20,000.00", rows[0].Value(2))
	assert.Equal(t, "0.00", rows[0].Value(3))
	assert.Equal(t, "80,000.00", rows[0].Value(4))
}

func TestSegment_EmptyInput(t *testing.T) {
	for name, fn := range map[string]Func{
		"gtbank":    SegmentGTBank,
		"access":    SegmentAccess,
		"firstbank": SegmentFirstBank,
	} {
		rows, _ := fn("")
		assert.Empty(t, rows, name)
	}
}
