package canonicalizer

import (
	"regexp"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// Zenith Bank rows arrive from the spreadsheet extractor after the
// pipeline's layout pre-processing as
// [effective date, value date, description, reference, debit, credit, balance].
// Like Access, levy lines are dropped wholesale.
var zenithDialect = &dialect{
	bank: model.BankZenith,
	cols: columns{
		minFields:    7,
		date:         0,
		valueDate:    1,
		description:  2,
		reference:    3,
		debit:        4,
		credit:       5,
		amount:       -1,
		balance:      6,
		rawCategory:  -1,
		counterparty: -1,
	},
	dateLayouts: primitives.LayoutsDaySlashMonthYear,
	sign:        signDirect,
	exclusions:  []string{"levy"},
	types: newTypeTable([]typeKeyword{
		{"reversal", model.TypeReversal},
		{"airtime", model.TypeAirtime},
		{"vtu", model.TypeAirtime},
		{"atm", model.TypeAtmWithdrawal},
		{"withdrawal", model.TypeAtmWithdrawal},
		{"pos ", model.TypeCardPayment},
		{"card", model.TypeCardPayment},
		{"dstv", model.TypeBillPayment},
		{"bill", model.TypeBillPayment},
		{"sms", model.TypeBankCharge},
		{"stamp duty", model.TypeBankCharge},
		{"charge", model.TypeBankCharge},
		{"commission", model.TypeBankCharge},
		{"interest", model.TypeInterest},
		{"nip", model.TypeTransfer},
		{"transfer", model.TypeTransfer},
		{"trf", model.TypeTransfer},
	}),
	counterparty: []counterpartyPattern{
		{
			// "NIP/JOHN DOE/KUDA/groceries"
			re:        regexp.MustCompile(`(?i)^NIP/([^/]+)/([A-Za-z ]{2,20})(?:/(.*))?$`),
			name:      1,
			bank:      2,
			narration: 3,
		},
		{
			// "TRANSFER TO 058/ADEBAYO JOHN"
			re:       regexp.MustCompile(`(?i)\bTRANSFER TO (\d{3,6})/([^/]+)`),
			bankCode: 1,
			name:     2,
		},
	},
}
