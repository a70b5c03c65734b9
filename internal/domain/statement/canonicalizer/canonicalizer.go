// Package canonicalizer maps dialect-specific raw statement rows to
// canonical transactions. One shared algorithm consumes per-institution
// declarative configuration (column layout, date layouts, sign strategy,
// exclusion keywords, type-keyword tables, counterparty patterns), so the
// control flow is written exactly once and each bank is pure data.
package canonicalizer

import (
	"fmt"
	"strings"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
	"github.com/apexledger/statement-engine/internal/domain/statement/primitives"
)

// placeholderDescription stands in for rows whose description field is
// empty in the source.
const placeholderDescription = "Unknown transaction"

// Canonicalizer consumes one raw row and produces one canonical
// transaction, or reports false for rows that are not transactions
// (structurally short, unparseable date, no usable amount, or an excluded
// internal row). It never errors: row-level failures are silent skips.
type Canonicalizer interface {
	Canonicalize(row model.RawRow) (*model.Transaction, bool)
	Bank() model.Bank
}

// BalanceSeeder is implemented by canonicalizers whose sign strategy
// reconciles against a running balance; the pipeline seeds it from a
// statement-level opening balance when the segmenter finds one.
type BalanceSeeder interface {
	SeedBalance(kobo int64)
}

// New builds a fresh canonicalizer for one pipeline run. Instances carry
// per-run state (the running balance for sign reconciliation) and must
// not be shared across documents.
func New(bank model.Bank) (Canonicalizer, error) {
	cfg, ok := dialects[bank]
	if !ok {
		return nil, fmt.Errorf("no canonicalizer for bank %q", bank)
	}
	return &dialectCanonicalizer{cfg: cfg}, nil
}

type signStrategy int

const (
	// signDirect takes the sign from dedicated debit/credit columns.
	signDirect signStrategy = iota
	// signBalance reconciles an unsigned amount against the running balance.
	signBalance
)

// columns maps the semantic fields onto a dialect's row positions.
// -1 marks a column the dialect does not carry.
type columns struct {
	minFields    int
	date         int
	valueDate    int
	description  int
	reference    int
	debit        int
	credit       int
	amount       int
	balance      int
	rawCategory  int
	counterparty int
}

// dialect is the full declarative configuration for one institution.
type dialect struct {
	bank         model.Bank
	cols         columns
	dateLayouts  []string
	sign         signStrategy
	exclusions   []string // lower-case substrings dropped before parsing
	types        *typeTable
	counterparty []counterpartyPattern
}

// dialects is the closed institution registry. Configurations are built
// once and never mutated; all mutable state lives on the canonicalizer
// instances New hands out.
var dialects = map[model.Bank]*dialect{
	model.BankGTBank:    gtbankDialect,
	model.BankAccess:    accessDialect,
	model.BankFirstBank: firstbankDialect,
	model.BankKuda:      kudaDialect,
	model.BankOPay:      opayDialect,
	model.BankZenith:    zenithDialect,
}

type dialectCanonicalizer struct {
	cfg *dialect

	// Running balance for signBalance dialects, scoped to this instance
	// (one pipeline run). Seeded from the statement opening balance when
	// available, else zero.
	prevBalance int64
}

func (c *dialectCanonicalizer) Bank() model.Bank { return c.cfg.bank }

func (c *dialectCanonicalizer) SeedBalance(kobo int64) { c.prevBalance = kobo }

func (c *dialectCanonicalizer) Canonicalize(row model.RawRow) (*model.Transaction, bool) {
	cfg := c.cfg

	if len(row) < cfg.cols.minFields {
		return nil, false
	}

	rawDesc := row.Value(cfg.cols.description)
	if cfg.isExcluded(rawDesc) {
		return nil, false
	}

	dateStr, ok := row.Get(cfg.cols.date)
	if !ok {
		return nil, false
	}
	date, ok := primitives.ParseDate(dateStr, cfg.dateLayouts)
	if !ok {
		return nil, false
	}

	amount, balanceAfter, ok := c.resolveAmount(row)
	if !ok {
		return nil, false
	}

	desc := cleanDescription(rawDesc)

	meta := &model.Meta{
		Type:         cfg.types.classify(desc),
		Narration:    desc,
		BalanceAfter: balanceAfter,
	}
	if cfg.cols.rawCategory >= 0 {
		meta.RawCategory = row.Value(cfg.cols.rawCategory)
	}
	if cfg.cols.valueDate >= 0 {
		meta.SessionID = row.Value(cfg.cols.valueDate)
	}
	applyCounterparty(cfg.counterparty, desc, meta)
	if meta.CounterpartyName == "" && cfg.cols.counterparty >= 0 {
		meta.CounterpartyName = row.Value(cfg.cols.counterparty)
	}

	sourceRef := ""
	if cfg.cols.reference >= 0 {
		sourceRef = row.Value(cfg.cols.reference)
	}
	reference := sourceRef
	if reference == "" {
		reference = model.SynthesizeReference(cfg.bank, date, desc)
	}

	return &model.Transaction{
		ID:          model.ComputeID(cfg.bank, date, amount, desc, sourceRef),
		Date:        date,
		Amount:      amount,
		Bank:        cfg.bank,
		Reference:   reference,
		Description: desc,
		Meta:        meta,
	}, true
}

// resolveAmount determines the signed amount and the balance-after value
// (unsigned kobo, 0 when the dialect has no balance column or the field
// did not parse).
func (c *dialectCanonicalizer) resolveAmount(row model.RawRow) (amount, balanceAfter int64, ok bool) {
	cfg := c.cfg

	balanceAfter = 0
	balanceKobo, balanceOK := int64(0), false
	if cfg.cols.balance >= 0 {
		if v, present := row.Get(cfg.cols.balance); present {
			if kobo, parsed := primitives.ParseAmount(v); parsed {
				balanceKobo, balanceOK = kobo, true
			}
		}
		if balanceOK {
			balanceAfter = abs(balanceKobo)
		}
	}

	switch cfg.sign {
	case signBalance:
		return c.reconcileAmount(row, balanceKobo, balanceOK)
	default:
		if v, present := row.Get(cfg.cols.credit); present {
			if kobo, parsed := primitives.ParseAmount(v); parsed {
				return abs(kobo), balanceAfter, true
			}
		}
		if v, present := row.Get(cfg.cols.debit); present {
			if kobo, parsed := primitives.ParseAmount(v); parsed {
				return -abs(kobo), balanceAfter, true
			}
		}
		return 0, 0, false
	}
}

// reconcileAmount classifies an unsigned amount as credit or debit by
// testing which hypothesis lands closer to the reported balance. The
// running balance is updated from every row that reports one, whether or
// not the row canonicalizes, so a single bad row cannot skew the rest of
// the statement.
func (c *dialectCanonicalizer) reconcileAmount(row model.RawRow, balanceKobo int64, balanceOK bool) (int64, int64, bool) {
	if !balanceOK {
		// Without a reported balance there is nothing to reconcile against.
		return 0, 0, false
	}
	defer func() { c.prevBalance = balanceKobo }()

	v, present := row.Get(c.cfg.cols.amount)
	if !present {
		return 0, 0, false
	}
	kobo, parsed := primitives.ParseAmount(v)
	if !parsed {
		return 0, 0, false
	}
	a := abs(kobo)

	creditErr := abs(c.prevBalance + a - balanceKobo)
	debitErr := abs(c.prevBalance - a - balanceKobo)

	// Exact ties classify as credit: debit wins only on a strictly
	// smaller error.
	if debitErr < creditErr {
		return -a, abs(balanceKobo), true
	}
	return a, abs(balanceKobo), true
}

func (d *dialect) isExcluded(description string) bool {
	lower := strings.ToLower(description)
	for _, kw := range d.exclusions {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cleanDescription trims, collapses runs of whitespace, and substitutes
// the placeholder for empty source descriptions.
func cleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return placeholderDescription
	}
	return s
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
