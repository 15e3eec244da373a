package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// utf8BOM is stripped from the first header cell; spreadsheet exports often
// start with one, and it would otherwise hide a leading 'File Name' column.
const utf8BOM = "\ufeff"

// Table is one CSV file held in memory: a header row and its data rows.
type Table struct {
	Header []string
	Rows   []Row
}

// Read loads the whole CSV at path. Rows may have differing field counts;
// [Table.Prepare] pads them. An empty file yields a Table with no header.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads every record from r.
func Decode(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	t := &Table{}
	if len(records) == 0 {
		return t, nil
	}
	t.Header = records[0]
	if len(t.Header) > 0 {
		t.Header[0] = strings.TrimPrefix(t.Header[0], utf8BOM)
	}
	t.Rows = make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, Row(rec))
	}
	return t, nil
}

// Encode writes the header and all rows to w.
func (t *Table) Encode(w io.Writer) error {
	cw := csv.NewWriter(w)
	if t.Header != nil {
		if err := cw.Write(t.Header); err != nil {
			return err
		}
	}
	for _, r := range t.Rows {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes t to dir/name through a temp file in dir that is renamed
// into place only after the full table has been written and synced. A failed
// write never leaves a partial file under name.
func WriteFile(dir, name string, t *Table) error {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, filepath.Join(dir, name))
}
