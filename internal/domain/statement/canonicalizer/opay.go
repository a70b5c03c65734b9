package canonicalizer

import (
	"regexp"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// OPay rows arrive from the spreadsheet extractor as
// [transaction time, category, debit, credit, balance, narration], with
// counterparty metadata packed into the narration as
// "<name> | <bank> | <account> | <free text>". OWealth sweeps are the
// wallet's automatic savings moves and are not transactions.
var opayDialect = &dialect{
	bank: model.BankOPay,
	cols: columns{
		minFields:    6,
		date:         0,
		valueDate:    -1,
		description:  5,
		reference:    -1,
		debit:        2,
		credit:       3,
		amount:       -1,
		balance:      4,
		rawCategory:  1,
		counterparty: -1,
	},
	dateLayouts: primitives.LayoutsDayMonthNameYearTime,
	sign:        signDirect,
	exclusions:  []string{"owealth", "auto save"},
	types: newTypeTable([]typeKeyword{
		{"reversal", model.TypeReversal},
		{"refund", model.TypeReversal},
		{"airtime", model.TypeAirtime},
		{"data bundle", model.TypeAirtime},
		{"atm", model.TypeAtmWithdrawal},
		{"withdrawal", model.TypeAtmWithdrawal},
		{"card", model.TypeCardPayment},
		{"pos ", model.TypeCardPayment},
		{"betting", model.TypeBillPayment},
		{"electricity", model.TypeBillPayment},
		{"tv subscription", model.TypeBillPayment},
		{"bill", model.TypeBillPayment},
		{"charge", model.TypeBankCharge},
		{"levy", model.TypeBankCharge},
		{"interest", model.TypeInterest},
		{"transfer", model.TypeTransfer},
	}),
	counterparty: []counterpartyPattern{
		{
			// "JOHN DOE | GTBank | 0123456789 | rent for february"
			re:        regexp.MustCompile(`^([^|]+)\|([^|]+)\|\s*(\d{6,})\s*\|(.*)$`),
			name:      1,
			bank:      2,
			account:   3,
			narration: 4,
		},
		{
			// Shorter variant without an account: "JOHN DOE | OPay"
			re:   regexp.MustCompile(`^([^|]+)\|([^|]+)$`),
			name: 1,
			bank: 2,
		},
	},
}
