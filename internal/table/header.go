package table

// Recognized header names. Matching is exact and case-sensitive.
const (
	HeaderFileName   = "File Name"
	HeaderObjectType = "Object Type"
	HeaderExtent     = "Format.extent"
	HeaderWidth      = "media.width"
	HeaderHeight     = "media.height"
	HeaderDuration   = "media.duration"
	HeaderFormat     = "media.format"
)

// DerivedHeaders are the columns this tool populates, in the order they are
// appended to a header that lacks them.
var DerivedHeaders = []string{HeaderWidth, HeaderHeight, HeaderDuration, HeaderFormat}

// Absent is the index of a field whose header name is missing.
const Absent = -1

// Field is a logical column the enricher knows about.
type Field int

const (
	FileName Field = iota
	ObjectType
	Extent
	MediaWidth
	MediaHeight
	MediaDuration
	MediaFormat
	numFields
)

var fieldHeaders = [numFields]string{
	FileName:      HeaderFileName,
	ObjectType:    HeaderObjectType,
	Extent:        HeaderExtent,
	MediaWidth:    HeaderWidth,
	MediaHeight:   HeaderHeight,
	MediaDuration: HeaderDuration,
	MediaFormat:   HeaderFormat,
}

// DerivedFields lists the media.* fields in DerivedHeaders order.
var DerivedFields = []Field{MediaWidth, MediaHeight, MediaDuration, MediaFormat}

// String returns the header name of f.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldHeaders[f]
}

// ColumnMap maps each Field to its zero-based index in one table's header, or
// Absent. It is a value type and never changes after [ResolveHeader].
type ColumnMap struct {
	idx [numFields]int
}

// ResolveHeader scans a header row and records the index of every recognized
// name. Unrecognized cells are ignored. When a name repeats, the last
// occurrence wins, so re-appended media.* columns take precedence over stale
// ones earlier in the row.
func ResolveHeader(header []string) ColumnMap {
	var m ColumnMap
	for i := range m.idx {
		m.idx[i] = Absent
	}
	for i, name := range header {
		for f, want := range fieldHeaders {
			if name == want {
				m.idx[f] = i
			}
		}
	}
	return m
}

// Index returns the column index of f, or Absent.
func (m ColumnMap) Index(f Field) int {
	if f < 0 || f >= numFields {
		return Absent
	}
	return m.idx[f]
}

// Has reports whether the header contains f.
func (m ColumnMap) Has(f Field) bool { return m.Index(f) != Absent }

// FileNameIndex returns the index of the 'File Name' column, or Absent.
func (m ColumnMap) FileNameIndex() int { return m.Index(FileName) }

// HasFileNameIndex reports whether the header has a 'File Name' column.
func (m ColumnMap) HasFileNameIndex() bool { return m.Has(FileName) }

// ObjectTypeIndex returns the index of the 'Object Type' column, or Absent.
func (m ColumnMap) ObjectTypeIndex() int { return m.Index(ObjectType) }

// ExtentIndex returns the index of the 'Format.extent' column, or Absent.
func (m ColumnMap) ExtentIndex() int { return m.Index(Extent) }

// HasAllDerived reports whether all four media.* columns resolved.
func (m ColumnMap) HasAllDerived() bool {
	for _, f := range DerivedFields {
		if !m.Has(f) {
			return false
		}
	}
	return true
}
