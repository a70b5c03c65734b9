package canonicalizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

func newCanonicalizer(t *testing.T, bank model.Bank) Canonicalizer {
	t.Helper()
	c, err := New(bank)
	require.NoError(t, err)
	return c
}

func TestCanonicalize_DirectDebitCredit(t *testing.T) {
	c := newCanonicalizer(t, model.BankAccess)

	t.Run("credit column wins as inflow", func(t *testing.T) {
		row := model.NewRawRow("02/02/2024", "02/02/2024", "SALARY FEB GROUPPAY", "C00445566", "", "250,000.00", "345,000.00")
		tx, ok := c.Canonicalize(row)
		require.True(t, ok)

		assert.Equal(t, int64(25000000), tx.Amount)
		assert.Equal(t, model.Inflow, tx.Category())
		assert.Equal(t, "C00445566", tx.Reference)
		assert.Equal(t, int64(34500000), tx.Meta.BalanceAfter)
	})

	t.Run("debit column becomes outflow", func(t *testing.T) {
		row := model.NewRawRow("01/02/2024", "01/02/2024", "POS PURCHASE SHOPRITE", "P001", "5,000.00", "", "95,000.00")
		tx, ok := c.Canonicalize(row)
		require.True(t, ok)

		assert.Equal(t, int64(-500000), tx.Amount)
		assert.Equal(t, model.Outflow, tx.Category())
		assert.Equal(t, model.TypeCardPayment, tx.Meta.Type)
	})

	t.Run("both columns absent is not a transaction", func(t *testing.T) {
		row := model.NewRawRow("01/02/2024", "01/02/2024", "NOTHING HAPPENED", "R001", "", "", "95,000.00")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok)
	})

	t.Run("unparseable date is not a transaction", func(t *testing.T) {
		row := model.NewRawRow("soon", "02/02/2024", "SALARY", "R002", "", "1,000.00", "96,000.00")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok)
	})

	t.Run("structurally short row is not a transaction", func(t *testing.T) {
		_, ok := c.Canonicalize(model.NewRawRow("01/02/2024", "desc"))
		assert.False(t, ok)
	})

	t.Run("zero amounts are not transactions", func(t *testing.T) {
		row := model.NewRawRow("01/02/2024", "01/02/2024", "NOOP", "R003", "0.00", "0.00", "95,000.00")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok)
	})
}

func TestCanonicalize_FirstBankZeroFilled(t *testing.T) {
	c := newCanonicalizer(t, model.BankFirstBank)

	t.Run("zero-filled credit reads as debit", func(t *testing.T) {
		row := model.NewRawRow("05-Feb-24", "ATM WITHDRAWAL FBN IKEJA", "20,000.00", "0.00", "80,000.00")
		tx, ok := c.Canonicalize(row)
		require.True(t, ok)

		assert.Equal(t, int64(-2000000), tx.Amount)
		assert.Equal(t, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), tx.Date)
		assert.Equal(t, model.TypeAtmWithdrawal, tx.Meta.Type)
		assert.Equal(t, int64(8000000), tx.Meta.BalanceAfter)
	})

	t.Run("zero-filled debit reads as credit", func(t *testing.T) {
		row := model.NewRawRow("06-Feb-24", "TRF FROM ADAOBI OKEKE", "0.00", "15,000.00", "95,000.00")
		tx, ok := c.Canonicalize(row)
		require.True(t, ok)

		assert.Equal(t, int64(1500000), tx.Amount)
		assert.Equal(t, "ADAOBI OKEKE", tx.Meta.CounterpartyName)
	})

	t.Run("both sides zero is not a transaction", func(t *testing.T) {
		row := model.NewRawRow("07-Feb-24", "NO MOVEMENT", "0.00", "0.00", "95,000.00")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok)
	})
}

func TestCanonicalize_ZenithRow(t *testing.T) {
	c := newCanonicalizer(t, model.BankZenith)

	t.Run("debit row with nip counterparty", func(t *testing.T) {
		row := model.NewRawRow("05/02/2024", "05/02/2024", "NIP/JOHN DOE/KUDA/groceries", "Z001", "7,500.00", "", "92,500.00")
		tx, ok := c.Canonicalize(row)
		require.True(t, ok)

		assert.Equal(t, int64(-750000), tx.Amount)
		assert.Equal(t, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), tx.Date)
		assert.Equal(t, "JOHN DOE", tx.Meta.CounterpartyName)
		assert.Equal(t, "Kuda", tx.Meta.CounterpartyBank)
		assert.Equal(t, "groceries", tx.Meta.Narration)
		assert.Equal(t, "Z001", tx.Reference)
	})

	t.Run("credit row", func(t *testing.T) {
		row := model.NewRawRow("06/02/2024", "06/02/2024", "SALARY FEB", "Z002", "", "300,000.00", "392,500.00")
		tx, ok := c.Canonicalize(row)
		require.True(t, ok)

		assert.Equal(t, int64(30000000), tx.Amount)
		assert.Equal(t, int64(39250000), tx.Meta.BalanceAfter)
	})

	t.Run("levy row is dropped", func(t *testing.T) {
		row := model.NewRawRow("07/02/2024", "07/02/2024", "ELECTRONIC MONEY TRANSFER LEVY", "Z003", "50.00", "", "392,450.00")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok)
	})
}

func TestCanonicalize_BalanceReconciliation(t *testing.T) {
	gtRow := func(desc, amount, balance string) model.RawRow {
		return model.NewRawRow("01-Feb-2024", "01-Feb-2024", desc, amount, balance)
	}

	t.Run("balance moves up: credit", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		c.(BalanceSeeder).SeedBalance(10000000) // ₦100,000.00

		tx, ok := c.Canonicalize(gtRow("NIP TRANSFER TO OPAY - JOHN DOE", "50,000.00", "150,000.00"))
		require.True(t, ok)
		assert.Equal(t, int64(5000000), tx.Amount)
		assert.Equal(t, model.Inflow, tx.Category())
	})

	t.Run("balance moves down: debit", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		c.(BalanceSeeder).SeedBalance(10000000)

		tx, ok := c.Canonicalize(gtRow("POS PURCHASE", "50,000.00", "50,000.00"))
		require.True(t, ok)
		assert.Equal(t, int64(-5000000), tx.Amount)
	})

	t.Run("exact tie classifies as credit", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		c.(BalanceSeeder).SeedBalance(10000000)

		// Reported balance equals the previous balance: both hypotheses
		// are off by the same error.
		tx, ok := c.Canonicalize(gtRow("AMBIGUOUS", "50,000.00", "100,000.00"))
		require.True(t, ok)
		assert.Equal(t, int64(5000000), tx.Amount)
	})

	t.Run("running balance tracks across rows", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		c.(BalanceSeeder).SeedBalance(10000000)

		tx1, ok := c.Canonicalize(gtRow("SALARY JAN", "200,000.00", "300,000.00"))
		require.True(t, ok)
		assert.Equal(t, int64(20000000), tx1.Amount)

		// Previous balance is now 300,000; this row spends 20,000.
		tx2, ok := c.Canonicalize(gtRow("ATM WITHDRAWAL IKEJA", "20,000.00", "280,000.00"))
		require.True(t, ok)
		assert.Equal(t, int64(-2000000), tx2.Amount)
		assert.Equal(t, model.TypeAtmWithdrawal, tx2.Meta.Type)
	})

	t.Run("unseeded runs reconcile from zero", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)

		tx, ok := c.Canonicalize(gtRow("FIRST DEPOSIT", "10,000.00", "10,000.00"))
		require.True(t, ok)
		assert.Equal(t, int64(1000000), tx.Amount)
	})

	t.Run("missing balance cannot be reconciled", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		_, ok := c.Canonicalize(model.NewRawRow("01-Feb-2024", "01-Feb-2024", "NO BALANCE", "50,000.00", ""))
		assert.False(t, ok)
	})
}

func TestCanonicalize_Counterparty(t *testing.T) {
	t.Run("nip transfer with bank and name", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		c.(BalanceSeeder).SeedBalance(10000000)

		tx, ok := c.Canonicalize(model.NewRawRow(
			"01-Feb-2024", "01-Feb-2024", "NIP TRANSFER TO OPAY - JOHN DOE", "50,000.00", "150,000.00"))
		require.True(t, ok)

		assert.Equal(t, "OPay", tx.Meta.CounterpartyBank)
		assert.Equal(t, "JOHN DOE", tx.Meta.CounterpartyName)
		assert.Equal(t, model.TypeTransfer, tx.Meta.Type)
	})

	t.Run("nip bank code resolves to a display name", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		c.(BalanceSeeder).SeedBalance(10000000)

		tx, ok := c.Canonicalize(model.NewRawRow(
			"02-Feb-2024", "02-Feb-2024", "TRANSFER TO 058/ADEBAYO JOHN", "10,000.00", "90,000.00"))
		require.True(t, ok)

		assert.Equal(t, "GTBank", tx.Meta.CounterpartyBank)
		assert.Equal(t, "ADEBAYO JOHN", tx.Meta.CounterpartyName)
	})

	t.Run("opay pipe narration", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankOPay)

		tx, ok := c.Canonicalize(model.NewRawRow(
			"01 Feb 2024 09:15:00", "Transfer", "", "5,000.00", "100,000.00",
			"JOHN DOE | GTBank | 0123456789 | rent for february"))
		require.True(t, ok)

		assert.Equal(t, "JOHN DOE", tx.Meta.CounterpartyName)
		assert.Equal(t, "GTBank", tx.Meta.CounterpartyBank)
		assert.Equal(t, "0123456789", tx.Meta.CounterpartyAccount)
		assert.Equal(t, "rent for february", tx.Meta.Narration)
	})

	t.Run("no pattern leaves counterparty unset", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankGTBank)
		c.(BalanceSeeder).SeedBalance(10000000)

		tx, ok := c.Canonicalize(model.NewRawRow(
			"03-Feb-2024", "03-Feb-2024", "SMS ALERT CHARGE", "52.50", "99,947.50"))
		require.True(t, ok)
		assert.Empty(t, tx.Meta.CounterpartyName)
		assert.Equal(t, model.TypeBankCharge, tx.Meta.Type)
	})
}

func TestCanonicalize_Exclusions(t *testing.T) {
	t.Run("kuda spend+save sweep is dropped", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankKuda)

		row := model.NewRawRow("01/02/2024 09:15:00", "Savings", "", "1,000.00", "", "Spend+Save weekly sweep", "REF1")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok, "sweep has valid date and amount, must still be excluded")
	})

	t.Run("access levy row is dropped", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankAccess)

		row := model.NewRawRow("03/02/2024", "03/02/2024", "ELECTRONIC MONEY TRANSFER LEVY", "L001", "50.00", "", "344,950.00")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok)
	})

	t.Run("opay owealth sweep is dropped", func(t *testing.T) {
		c := newCanonicalizer(t, model.BankOPay)

		row := model.NewRawRow("01 Feb 2024 00:00:00", "Savings", "500.00", "", "99,500.00", "OWealth daily auto save")
		_, ok := c.Canonicalize(row)
		assert.False(t, ok)
	})
}

func TestCanonicalize_Determinism(t *testing.T) {
	row := model.NewRawRow("01/02/2024 09:15:00", "Transfer", "", "2,500.00", "JOHN DOE", "Transfer to JOHN DOE", "")

	c1 := newCanonicalizer(t, model.BankKuda)
	tx1, ok := c1.Canonicalize(row)
	require.True(t, ok)

	c2 := newCanonicalizer(t, model.BankKuda)
	tx2, ok := c2.Canonicalize(row)
	require.True(t, ok)

	assert.Equal(t, tx1.ID, tx2.ID)
	assert.Equal(t, tx1.Reference, tx2.Reference, "synthesized references are deterministic")
	assert.NotEmpty(t, tx1.Reference)
	assert.Equal(t, int64(-250000), tx1.Amount, "money out is negative")
	assert.Equal(t, "JOHN DOE", tx1.Meta.CounterpartyName)
	assert.Equal(t, time.Date(2024, 2, 1, 9, 15, 0, 0, time.UTC), tx1.Date)
}

func TestNew_UnsupportedBank(t *testing.T) {
	_, err := New(model.Bank("unknown"))
	assert.Error(t, err)
}
