package table

import "strings"

// Row is one data record: an ordered, growable sequence of cells aligned with
// its table's header.
type Row []string

// Extend returns r with n empty cells appended.
func (r Row) Extend(n int) Row {
	if n <= 0 {
		return r
	}
	return append(r, make([]string, n)...)
}

// InsertAt returns r with n empty cells inserted at index at. A row shorter
// than at is padded to at first.
func (r Row) InsertAt(at, n int) Row {
	r = r.PadTo(at)
	if n <= 0 {
		return r
	}
	out := make(Row, 0, len(r)+n)
	out = append(out, r[:at]...)
	out = append(out, make([]string, n)...)
	return append(out, r[at:]...)
}

// PadTo returns r extended with empty cells up to width. Longer rows are
// returned unchanged.
func (r Row) PadTo(width int) Row {
	return r.Extend(width - len(r))
}

// Cell returns the cell at i, or "" when i is Absent or out of range.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Set writes v at i. It is a no-op when i is Absent or out of range.
func (r Row) Set(i int, v string) {
	if i < 0 || i >= len(r) {
		return
	}
	r[i] = v
}

// IsBlank reports whether the cell at i is empty after trimming whitespace.
func (r Row) IsBlank(i int) bool {
	return strings.TrimSpace(r.Cell(i)) == ""
}
