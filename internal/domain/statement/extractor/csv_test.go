package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelimitedRows(t *testing.T) {
	t.Run("quoted fields may contain the delimiter", func(t *testing.T) {
		data := []byte(`01/02/2024,"TRANSFER, RENT",5000.00,,100000.00
02/02/2024,AIRTIME,,500.00,99500.00`)

		rows, err := delimitedRows(data)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		desc, ok := rows[0].Get(1)
		require.True(t, ok)
		assert.Equal(t, "TRANSFER, RENT", desc)
	})

	t.Run("empty fields read as absent", func(t *testing.T) {
		rows, err := delimitedRows([]byte("a,,c\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)

		_, present := rows[0].Get(1)
		assert.False(t, present)
		v, present := rows[0].Get(2)
		assert.True(t, present)
		assert.Equal(t, "c", v)
	})

	t.Run("out-of-range reads are absent", func(t *testing.T) {
		rows, err := delimitedRows([]byte("a,b\n"))
		require.NoError(t, err)
		_, present := rows[0].Get(5)
		assert.False(t, present)
	})
}

func TestKudaRows(t *testing.T) {
	data := []byte(`Date/Time,Category,Money In,Money Out,To / From,Description,Payment Reference
01/02/2024 09:15:00,Transfer,,"2,500.00",JOHN DOE,Transfer to JOHN DOE,REF123
02/02/2024 10:00:00,Deposit,"10,000.00",,JANE ROE,Transfer from JANE ROE,`)

	rows, err := KudaRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	out, ok := rows[0].Get(KudaColMoneyOut)
	require.True(t, ok)
	assert.Equal(t, "2,500.00", out)

	_, present := rows[0].Get(KudaColMoneyIn)
	assert.False(t, present, "blank money-in cell should be absent")

	_, present = rows[1].Get(KudaColReference)
	assert.False(t, present, "blank reference should be absent")

	in, ok := rows[1].Get(KudaColMoneyIn)
	require.True(t, ok)
	assert.Equal(t, "10,000.00", in)
}

func TestKudaRows_HeaderlessFallback(t *testing.T) {
	data := []byte(`01/02/2024 09:15:00,Transfer,,"2,500.00",JOHN DOE,Transfer to JOHN DOE,REF123`)

	rows, err := KudaRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 1, "the data row must not be eaten as a header")

	out, ok := rows[0].Get(KudaColMoneyOut)
	require.True(t, ok)
	assert.Equal(t, "2,500.00", out)
	assert.Equal(t, "Transfer to JOHN DOE", rows[0].Value(KudaColDescription))
}
