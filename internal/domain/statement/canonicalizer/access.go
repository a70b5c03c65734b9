package canonicalizer

import (
	"regexp"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// Access Bank rows arrive from the PDF segmenter as
// [date, value date, description, reference, debit, credit, balance].
// Electronic-transfer levy lines are dropped wholesale.
var accessDialect = &dialect{
	bank: model.BankAccess,
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
		{"rvsl", model.TypeReversal},
		{"airtime", model.TypeAirtime},
		{"vtu", model.TypeAirtime},
		{"atm", model.TypeAtmWithdrawal},
		{"withdrawal", model.TypeAtmWithdrawal},
		{"pos ", model.TypeCardPayment},
		{"card", model.TypeCardPayment},
		{"dstv", model.TypeBillPayment},
		{"bill", model.TypeBillPayment},
		{"sms alert", model.TypeBankCharge},
		{"stamp duty", model.TypeBankCharge},
		{"charge", model.TypeBankCharge},
		{"commission", model.TypeBankCharge},
		{"interest", model.TypeInterest},
		{"nip", model.TypeTransfer},
		{"transfer", model.TypeTransfer},
		{"trf", model.TypeTransfer},
		{"salary", model.TypeTransfer},
	}),
	counterparty: []counterpartyPattern{
		{
			// "NIP/OPAY/JOHN DOE/rent payment"
			re:        regexp.MustCompile(`(?i)^NIP/([A-Za-z ]{2,20})/([^/]+)(?:/(.*))?$`),
			bank:      1,
			name:      2,
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
