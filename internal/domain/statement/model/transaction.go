// Package model defines the canonical transaction record produced by the
// statement engine, together with the closed bank and transaction-type
// enumerations shared by every dialect parser.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/apexledger/statement-engine/pkg/money"
)

// Category buckets a transaction by the sign of its amount. It is always
// derived, never stored, so it can never disagree with the amount.
type Category string

const (
	Inflow  Category = "inflow"
	Outflow Category = "outflow"
)

// Transaction is the canonical, institution-independent record emitted for
// one statement row. Amount is signed integer kobo (minor units): positive
// means money in, negative means money out, and zero never occurs.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Amount      int64     `json:"amount"`
	Bank        Bank      `json:"bank_source"`
	Reference   string    `json:"reference"`
	Description string    `json:"description"`
	Meta        *Meta     `json:"meta,omitempty"`
}

// Meta carries the optional structured extras a dialect can recover from a
// row: counterparty details, the inferred transaction type, the raw
// narration, a session/value-date identifier, and the balance after the
// transaction (unsigned kobo, 0 when the source reports none).
type Meta struct {
	CounterpartyName    string          `json:"counterparty_name,omitempty"`
	CounterpartyAccount string          `json:"counterparty_account,omitempty"`
	CounterpartyBank    string          `json:"counterparty_bank,omitempty"`
	Type                TransactionType `json:"type,omitempty"`
	Narration           string          `json:"narration,omitempty"`
	SessionID           string          `json:"session_id,omitempty"`
	BalanceAfter        int64           `json:"balance_after,omitempty"`
	RawCategory         string          `json:"raw_category,omitempty"`
}

// Category derives the inflow/outflow bucket from the amount sign.
func (t *Transaction) Category() Category {
	if t.Amount > 0 {
		return Inflow
	}
	return Outflow
}

// DisplayAmount formats the signed amount as naira for logs and UIs.
func (t *Transaction) DisplayAmount() string {
	return money.FormatKobo(t.Amount)
}

// ComputeID derives the stable content hash used as a transaction ID.
// The same (bank, date, amount, description, reference) tuple always maps
// to the same ID, which is what makes re-imports idempotent.
func ComputeID(bank Bank, date time.Time, amount int64, description, reference string) string {
	payload := fmt.Sprintf("%s|%d|%d|%s|%s", bank, date.UTC().Unix(), amount, description, reference)
	sum := sha256.Sum256([]byte(payload))
	return strings.ToLower(string(bank)) + "-" + hex.EncodeToString(sum[:])
}

// SynthesizeReference builds a deterministic fallback reference for sources
// that do not carry one of their own.
func SynthesizeReference(bank Bank, date time.Time, description string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", date.UTC().Unix(), description)))
	return fmt.Sprintf("%s-%s-%s", strings.ToLower(string(bank)), date.UTC().Format("20060102"), hex.EncodeToString(sum[:4]))
}
