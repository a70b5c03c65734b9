package canonicalizer

import (
	"regexp"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// Kuda rows arrive from the CSV extractor as
// [date/time, category, money in, money out, to/from, description, reference].
// Internal Spend+Save sweeps move money between a user's own wallet and
// savings pocket and are not transactions.
var kudaDialect = &dialect{
	bank: model.BankKuda,
	cols: columns{
		minFields:    7,
		date:         0,
		valueDate:    -1,
		description:  5,
		reference:    6,
		debit:        3,
		credit:       2,
		amount:       -1,
		balance:      -1,
		rawCategory:  1,
		counterparty: 4,
	},
	dateLayouts: primitives.LayoutsDaySlashMonthYear,
	sign:        signDirect,
	exclusions:  []string{"spend+save"},
	types: newTypeTable([]typeKeyword{
		{"reversal", model.TypeReversal},
		{"airtime", model.TypeAirtime},
		{"atm", model.TypeAtmWithdrawal},
		{"withdrawal", model.TypeAtmWithdrawal},
		{"card", model.TypeCardPayment},
		{"bill", model.TypeBillPayment},
		{"electricity", model.TypeBillPayment},
		{"charge", model.TypeBankCharge},
		{"stamp duty", model.TypeBankCharge},
		{"interest", model.TypeInterest},
		{"transfer", model.TypeTransfer},
		{"trf", model.TypeTransfer},
	}),
	counterparty: []counterpartyPattern{
		{
			// "Transfer to JOHN DOE" / "Transfer from JANE ROE"
			re:   regexp.MustCompile(`(?i)^transfer (?:to|from) (.+)$`),
			name: 1,
		},
	},
}
