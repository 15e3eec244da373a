package table

// Augment decides the header shape for one table. When every media.* column
// is already present anywhere in header, it returns header unchanged and true.
// Otherwise it returns a new header with all four columns appended in
// DerivedHeaders order and false. A header carrying only some of them gets
// all four appended again, which leaves duplicate names; ResolveHeader then
// addresses the appended copies.
func Augment(header []string) ([]string, bool) {
	if hasAllDerived(header) {
		return header, true
	}
	out := make([]string, 0, len(header)+len(DerivedHeaders))
	out = append(out, header...)
	out = append(out, DerivedHeaders...)
	return out, false
}

func hasAllDerived(header []string) bool {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, name := range DerivedHeaders {
		if !present[name] {
			return false
		}
	}
	return true
}

// Prepare augments t in place and returns the column map for its final
// header. When columns are appended, every data row is padded to the old
// header width and the new empty cells are inserted there, so cells beyond
// the header stay past it and never land under a media.* name. Rows are then
// padded to the header width so that every resolved index is addressable.
func (t *Table) Prepare() (ColumnMap, bool) {
	header, present := Augment(t.Header)
	if !present {
		width := len(t.Header)
		added := len(header) - width
		for i := range t.Rows {
			t.Rows[i] = t.Rows[i].InsertAt(width, added)
		}
		t.Header = header
	}
	for i := range t.Rows {
		t.Rows[i] = t.Rows[i].PadTo(len(t.Header))
	}
	return ResolveHeader(t.Header), present
}
