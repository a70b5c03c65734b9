package model

import "strings"

// Field is one cell of a raw statement row. Present distinguishes a cell
// the source genuinely carried from one that was missing entirely, so
// column-presence checks downstream stay unambiguous.
type Field struct {
	Value   string
	Present bool
}

// RawRow is the ordered sequence of fields extracted from one source row.
// Positional meaning is dialect-specific; rows only live for the duration
// of a single pipeline pass.
type RawRow []Field

// Cell wraps a trimmed value as a present field; blank values become absent.
func Cell(v string) Field {
	v = strings.TrimSpace(v)
	if v == "" {
		return Field{}
	}
	return Field{Value: v, Present: true}
}

// Absent is the missing-field marker.
func Absent() Field { return Field{} }

// NewRawRow builds a row from raw cell values, mapping blanks to absent.
func NewRawRow(values ...string) RawRow {
	row := make(RawRow, 0, len(values))
	for _, v := range values {
		row = append(row, Cell(v))
	}
	return row
}

// Get returns the value at index i and whether the field is present.
// Out-of-range indexes read as absent.
func (r RawRow) Get(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i].Value, r[i].Present
}

// Value returns the field value at i, or "" when absent or out of range.
func (r RawRow) Value(i int) string {
	v, _ := r.Get(i)
	return v
}

// Present reports whether the field at i was carried by the source.
func (r RawRow) Present(i int) bool {
	_, ok := r.Get(i)
	return ok
}
