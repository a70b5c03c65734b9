package canonicalizer

import (
	"regexp"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// GTBank rows arrive from the PDF segmenter as
// [date, value date, description, amount, balance]. The amount column is
// unsigned, so the sign is reconciled against the running balance.
var gtbankDialect = &dialect{
	bank: model.BankGTBank,
	cols: columns{
		minFields:    5,
		date:         0,
		valueDate:    1,
		description:  2,
		reference:    -1,
		debit:        -1,
		credit:       -1,
		amount:       3,
		balance:      4,
		rawCategory:  -1,
		counterparty: -1,
	},
	dateLayouts: primitives.LayoutsDayMonthNameYear,
	sign:        signBalance,
	types: newTypeTable([]typeKeyword{
		{"reversal", model.TypeReversal},
		{"rvsl", model.TypeReversal},
		{"airtime", model.TypeAirtime},
		{"vtu", model.TypeAirtime},
		{"recharge", model.TypeAirtime},
		{"atm", model.TypeAtmWithdrawal},
		{"withdrawal", model.TypeAtmWithdrawal},
		{"pos ", model.TypeCardPayment},
		{"card", model.TypeCardPayment},
		{"dstv", model.TypeBillPayment},
		{"gotv", model.TypeBillPayment},
		{"electricity", model.TypeBillPayment},
		{"bill", model.TypeBillPayment},
		{"sms alert", model.TypeBankCharge},
		{"stamp duty", model.TypeBankCharge},
		{"commission", model.TypeBankCharge},
		{"charge", model.TypeBankCharge},
		{"levy", model.TypeBankCharge},
		{"interest", model.TypeInterest},
		{"nip", model.TypeTransfer},
		{"transfer", model.TypeTransfer},
		{"trf", model.TypeTransfer},
	}),
	counterparty: []counterpartyPattern{
		{
			// "NIP TRANSFER TO OPAY - JOHN DOE"
			re:   regexp.MustCompile(`(?i)^NIP TRANSFER TO ([A-Za-z][\w ]*?)\s*-\s*(.+)$`),
			bank: 1,
			name: 2,
		},
		{
			// "TRANSFER TO 058/ADEBAYO JOHN"
			re:       regexp.MustCompile(`(?i)\bTRANSFER TO (\d{3,6})/([^/]+)`),
			bankCode: 1,
			name:     2,
		},
		{
			// "TRF FROM ADAOBI OKEKE/rent"
			re:        regexp.MustCompile(`(?i)^TRF FROM ([^/]+)(?:/(.*))?$`),
			name:      1,
			narration: 2,
		},
	},
}
