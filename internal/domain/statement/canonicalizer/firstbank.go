package canonicalizer

import (
	"regexp"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// First Bank rows arrive from the PDF segmenter as
// [date, description, debit, credit, balance], with the unused side of
// the debit/credit pair zero-filled.
var firstbankDialect = &dialect{
	bank: model.BankFirstBank,
	cols: columns{
		minFields:    5,
		date:         0,
		valueDate:    -1,
		description:  1,
		reference:    -1,
		debit:        2,
		credit:       3,
		amount:       -1,
		balance:      4,
		rawCategory:  -1,
		counterparty: -1,
	},
	dateLayouts: primitives.LayoutsDayMonthNameYear,
	sign:        signDirect,
	types: newTypeTable([]typeKeyword{
		{"reversal", model.TypeReversal},
		{"airtime", model.TypeAirtime},
		{"recharge", model.TypeAirtime},
		{"atm", model.TypeAtmWithdrawal},
		{"withdrawal", model.TypeAtmWithdrawal},
		{"pos ", model.TypeCardPayment},
		{"card", model.TypeCardPayment},
		{"bill", model.TypeBillPayment},
		{"phcn", model.TypeBillPayment},
		{"stamp duty", model.TypeBankCharge},
		{"sms alert", model.TypeBankCharge},
		{"charge", model.TypeBankCharge},
		{"maintenance", model.TypeBankCharge},
		{"interest", model.TypeInterest},
		{"nip", model.TypeTransfer},
		{"transfer", model.TypeTransfer},
		{"trf", model.TypeTransfer},
	}),
	counterparty: []counterpartyPattern{
		{
			// "TRF FROM ADAOBI OKEKE"
			re:   regexp.MustCompile(`(?i)^TRF FROM (.+)$`),
			name: 1,
		},
		{
			// "TRANSFER TO KUDA - MUSA BELLO"
			re:   regexp.MustCompile(`(?i)^TRANSFER TO ([A-Za-z][\w ]*?)\s*-\s*(.+)$`),
			bank: 1,
			name: 2,
		},
	},
}
