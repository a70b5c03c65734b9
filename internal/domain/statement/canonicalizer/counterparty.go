package canonicalizer

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// counterpartyPattern is one structural pattern over a description. The
// int fields are capture-group indexes into the compiled expression;
// zero means the pattern does not capture that field.
type counterpartyPattern struct {
	re        *regexp.Regexp
	name      int
	bank      int
	bankCode  int
	account   int
	narration int
}

// applyCounterparty tries the dialect's patterns in priority order and
// populates counterparty metadata from the first one that matches. No
// match leaves the fields unset, which is not an error.
func applyCounterparty(patterns []counterpartyPattern, description string, meta *model.Meta) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		if p.name > 0 {
			meta.CounterpartyName = strings.TrimSpace(m[p.name])
		}
		if p.bank > 0 {
			meta.CounterpartyBank = normalizeBankName(m[p.bank])
		}
		if p.bankCode > 0 {
			if bank, ok := nipBankNames[strings.TrimSpace(m[p.bankCode])]; ok {
				meta.CounterpartyBank = bank
			}
		}
		if p.account > 0 {
			meta.CounterpartyAccount = strings.TrimSpace(m[p.account])
		}
		if p.narration > 0 {
			if n := strings.TrimSpace(m[p.narration]); n != "" {
				meta.Narration = n
			}
		}
		return
	}
}

// nipBankNames maps NIP institution codes, as they appear in transfer
// narrations, to display names.
var nipBankNames = map[string]string{
	"011":    "First Bank",
	"032":    "Union Bank",
	"033":    "UBA",
	"035":    "Wema Bank",
	"044":    "Access Bank",
	"057":    "Zenith Bank",
	"058":    "GTBank",
	"070":    "Fidelity Bank",
	"214":    "FCMB",
	"221":    "Stanbic IBTC",
	"232":    "Sterling Bank",
	"50211":  "Kuda",
	"50515":  "Moniepoint",
	"999991": "PalmPay",
	"999992": "OPay",
}

// knownBankNames is the normalization target list for bank tokens pulled
// out of narrations ("OPAY", "gtb", "ZENITH BANK" and friends).
var knownBankNames = []string{
	"Access Bank",
	"Ecobank",
	"FCMB",
	"Fidelity Bank",
	"First Bank",
	"GTBank",
	"Jaiz Bank",
	"Keystone Bank",
	"Kuda",
	"Moniepoint",
	"OPay",
	"PalmPay",
	"Polaris Bank",
	"Providus Bank",
	"Stanbic IBTC",
	"Sterling Bank",
	"UBA",
	"Union Bank",
	"Wema Bank",
	"Zenith Bank",
}

// normalizeBankName maps a raw bank token to its canonical display name.
// Exact case-insensitive matches win; otherwise the closest fuzzy match
// is used, and an unrecognized token passes through untouched.
func normalizeBankName(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if bank, ok := nipBankNames[token]; ok {
		return bank
	}
	for _, name := range knownBankNames {
		if strings.EqualFold(token, name) || strings.EqualFold(token, strings.ReplaceAll(name, " ", "")) {
			return name
		}
	}

	best, bestDistance := "", -1
	for _, rank := range fuzzy.RankFindFold(token, knownBankNames) {
		if rank.Distance < 0 {
			continue
		}
		if bestDistance == -1 || rank.Distance < bestDistance {
			best, bestDistance = rank.Target, rank.Distance
		}
	}
	if best != "" {
		return best
	}
	return token
}
