package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RaggedRows(t *testing.T) {
	in := "File Name,Title,Object Type\n" +
		"a.wav,\"Song, with comma\",Work\n" +
		"b.mp4\n"
	tbl, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"File Name", "Title", "Object Type"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Song, with comma", tbl.Rows[0].Cell(1))
	assert.Len(t, tbl.Rows[1], 1)
}

func TestDecode_StripsBOM(t *testing.T) {
	tbl, err := Decode(strings.NewReader("\ufeffFile Name,Title\na.wav,x\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, ResolveHeader(tbl.Header).FileNameIndex())
}

func TestDecode_Empty(t *testing.T) {
	tbl, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, tbl.Header)
	assert.Empty(t, tbl.Rows)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("a,\"b\n"))
	assert.Error(t, err)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	tbl := &Table{
		Header: []string{"File Name", "media.duration"},
		Rows:   []Row{{"a.wav", "757"}, {"b,c.mp4", ""}},
	}
	require.NoError(t, WriteFile(dir, "sales.csv", tbl))

	got, err := Read(filepath.Join(dir, "sales.csv"))
	require.NoError(t, err)
	assert.Equal(t, tbl.Header, got.Header)
	assert.Equal(t, tbl.Rows, got.Rows)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales.csv"), []byte("old\n"), 0o644))

	require.NoError(t, WriteFile(dir, "sales.csv", &Table{Header: []string{"new"}}))
	b, err := os.ReadFile(filepath.Join(dir, "sales.csv"))
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(b))
}
