package model

import (
	"fmt"
	"strings"
)

// Bank identifies one of the supported institutions. The set is closed:
// the engine refuses documents from banks it has no dialect for.
type Bank string

const (
	BankGTBank    Bank = "gtbank"
	BankAccess    Bank = "access"
	BankFirstBank Bank = "firstbank"
	BankKuda      Bank = "kuda"
	BankOPay      Bank = "opay"
	BankZenith    Bank = "zenith"
)

// Banks lists every supported institution in a stable order.
func Banks() []Bank {
	return []Bank{BankGTBank, BankAccess, BankFirstBank, BankKuda, BankOPay, BankZenith}
}

// ParseBank maps a user-supplied selector ("gtbank", "GTBank", "opay", ...)
// to a Bank, or fails for anything outside the supported set.
func ParseBank(s string) (Bank, error) {
	b := Bank(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Banks() {
		if b == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unsupported bank %q", s)
}

// DisplayName returns the human-readable institution name.
func (b Bank) DisplayName() string {
	switch b {
	case BankGTBank:
		return "GTBank"
	case BankAccess:
		return "Access Bank"
	case BankFirstBank:
		return "First Bank"
	case BankKuda:
		return "Kuda"
	case BankOPay:
		return "OPay"
	case BankZenith:
		return "Zenith Bank"
	}
	return string(b)
}

// TransactionType is the closed classification inferred from a row's
// description. Unrecognized descriptions fall back to TypeOther.
type TransactionType string

const (
	TypeTransfer      TransactionType = "transfer"
	TypeAirtime       TransactionType = "airtime"
	TypeCardPayment   TransactionType = "card_payment"
	TypeAtmWithdrawal TransactionType = "atm_withdrawal"
	TypeBillPayment   TransactionType = "bill_payment"
	TypeBankCharge    TransactionType = "bank_charge"
	TypeReversal      TransactionType = "reversal"
	TypeInterest      TransactionType = "interest"
	TypeOther         TransactionType = "other"
)
