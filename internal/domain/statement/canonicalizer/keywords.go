package canonicalizer

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/apexledger/statement-engine/internal/domain/statement/model"
)

// typeKeyword binds one lower-cased keyword to a transaction type. Order
// in the table is priority: when several keywords hit the same
// description, the earliest entry wins.
type typeKeyword struct {
	keyword string
	t       model.TransactionType
}

// typeTable classifies descriptions with a single Aho-Corasick pass over
// all keywords at once, then resolves collisions by table order so the
// first-match-wins semantics of a plain ordered scan are preserved.
type typeTable struct {
	entries []typeKeyword
	matcher *ahocorasick.Matcher
}

func newTypeTable(entries []typeKeyword) *typeTable {
	keywords := make([]string, len(entries))
	for i, e := range entries {
		keywords[i] = e.keyword
	}
	return &typeTable{
		entries: entries,
		matcher: ahocorasick.NewStringMatcher(keywords),
	}
}

func (tt *typeTable) classify(description string) model.TransactionType {
	hits := tt.matcher.Match([]byte(strings.ToLower(description)))
	best := -1
	for _, h := range hits {
		if best == -1 || h < best {
			best = h
		}
	}
	if best == -1 {
		return model.TypeOther
	}
	return tt.entries[best].t
}
