package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugment_NonePresentAppendsFourInOrder(t *testing.T) {
	got, present := Augment([]string{"File Name", "Title"})
	assert.False(t, present)
	assert.Equal(t, []string{"File Name", "Title", "media.width", "media.height", "media.duration", "media.format"}, got)
}

func TestAugment_AllPresentUnchanged(t *testing.T) {
	header := []string{"media.duration", "File Name", "media.format", "media.width", "media.height"}
	got, present := Augment(header)
	assert.True(t, present)
	assert.Equal(t, header, got)
}

func TestAugment_Idempotent(t *testing.T) {
	once, _ := Augment([]string{"File Name"})
	twice, present := Augment(once)
	assert.True(t, present)
	assert.Equal(t, once, twice)
	assert.Len(t, twice, 5)
}

func TestAugment_PartialPresentAppendsAllFour(t *testing.T) {
	got, present := Augment([]string{"File Name", "media.width", "media.duration"})
	assert.False(t, present)
	require.Len(t, got, 7)
	assert.Equal(t, 2, countOf(got, "media.width"), "partial header keeps the stale column and gains a new one")

	m := ResolveHeader(got)
	assert.Equal(t, 3, m.Index(MediaWidth))
	assert.Equal(t, 5, m.Index(MediaDuration))
}

func TestPrepare_ExtendsRowsWhenAppending(t *testing.T) {
	tbl := &Table{
		Header: []string{"Title", "File Name"},
		Rows:   []Row{{"a", "a.wav"}, {"b"}},
	}
	m, present := tbl.Prepare()
	assert.False(t, present)
	assert.Len(t, tbl.Header, 6)
	for _, r := range tbl.Rows {
		assert.Len(t, r, 6)
	}
	assert.Equal(t, 2, m.Index(MediaWidth))
	assert.Equal(t, 5, m.Index(MediaFormat))
}

func TestPrepare_DoesNotExtendWhenPresent(t *testing.T) {
	tbl := &Table{
		Header: []string{"File Name", "media.width", "media.height", "media.duration", "media.format"},
		Rows:   []Row{{"a.wav", "", "", "757", "audio/wav"}},
	}
	m, present := tbl.Prepare()
	assert.True(t, present)
	assert.Len(t, tbl.Header, 5)
	assert.Len(t, tbl.Rows[0], 5)
	assert.Equal(t, "757", tbl.Rows[0].Cell(m.Index(MediaDuration)))
}

func TestPrepare_RunTwiceAddsNothing(t *testing.T) {
	tbl := &Table{Header: []string{"File Name"}, Rows: []Row{{"a.wav"}}}
	tbl.Prepare()
	tbl.Prepare()
	assert.Len(t, tbl.Header, 5)
	assert.Len(t, tbl.Rows[0], 5)
}

func countOf(header []string, name string) int {
	n := 0
	for _, h := range header {
		if strings.EqualFold(h, name) {
			n++
		}
	}
	return n
}

func TestPrepare_LongRowKeepsStrayCellsPastHeader(t *testing.T) {
	tbl := &Table{
		Header: []string{"File Name", "Object Type"},
		Rows:   []Row{{"v.mov", "Work", "stray"}},
	}
	m, _ := tbl.Prepare()

	row := tbl.Rows[0]
	require.Len(t, row, 7)
	for _, f := range DerivedFields {
		assert.True(t, row.IsBlank(m.Index(f)), "%s must start blank", f)
	}
	assert.Equal(t, Row{"v.mov", "Work", "", "", "", "", "stray"}, row)
}
