// Package table holds the tabular side of enrichment: the CSV reader and
// atomic writer, the header-driven [ColumnMap], the schema augmentation that
// adds the four media.* columns, and the growable [Row] container.
//
// Derived values are always written by the index resolved from the header,
// never by counting back from the end of a row.
package table
