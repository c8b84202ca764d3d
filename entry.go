package fatdecode

import (
	"strings"
	"time"
)

// Attribute is the attribute byte of a directory record.
type Attribute uint8

const (
	AttrReadOnly Attribute = 1 << iota
	AttrHidden
	AttrSystem
	AttrVolumeID
	AttrDirectory
	AttrArchive
)

const (
	// attrReserved are the two high bits which have no meaning and are masked off.
	attrReserved Attribute = 0xC0
	attrMask               = ^attrReserved

	// attrLongName marks a long file name fragment. No real file can have all of these bits.
	attrLongName = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeID
)

// Has reports whether all bits of flag are set.
func (a Attribute) Has(flag Attribute) bool {
	return a&flag == flag
}

// EntryKind tells what a directory entry describes.
type EntryKind uint8

const (
	KindFile EntryKind = iota
	KindDirectory
	KindVolumeLabel
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectory:
		return "Directory"
	case KindVolumeLabel:
		return "VolumeLabel"
	default:
		return "Unknown"
	}
}

// kindOf classifies a short entry. The volume id bit wins over the directory bit.
func kindOf(attr Attribute) EntryKind {
	switch {
	case attr&AttrVolumeID != 0:
		return KindVolumeLabel
	case attr&AttrDirectory != 0:
		return KindDirectory
	default:
		return KindFile
	}
}

// Entry is one decoded directory entry.
// It references the FS it was read from, which therefore has to outlive it.
type Entry struct {
	fs *FS

	kind    EntryKind
	name    string
	size    uint32
	cluster uint32

	attr      Attribute
	writeDate uint16
	writeTime uint16
}

func newEntry(fs *FS, header EntryHeader, name string) *Entry {
	attr := Attribute(header.Attribute) & attrMask
	return &Entry{
		fs:        fs,
		kind:      kindOf(attr),
		name:      name,
		size:      header.FileSize,
		cluster:   header.FirstCluster(),
		attr:      attr,
		writeDate: header.WriteDate,
		writeTime: header.WriteTime,
	}
}

// shortName builds the display name of an 8.3 record: base and extension are right trimmed
// and joined by a dot only if there is an extension. The case is kept as stored.
func shortName(raw [11]byte) string {
	name := strings.TrimRight(string(raw[:8]), " ")
	ext := strings.TrimRight(string(raw[8:11]), " ")

	if ext != "" {
		name += "." + ext
	}

	return name
}

func (e *Entry) Kind() EntryKind {
	return e.kind
}

// Name returns the long file name if there is one and the 8.3 name otherwise.
func (e *Entry) Name() string {
	return e.name
}

// Size is the declared size in bytes. It is 0 for directories.
func (e *Entry) Size() uint32 {
	return e.size
}

// Cluster returns the first cluster of the entry's data.
func (e *Entry) Cluster() uint32 {
	return e.cluster
}

func (e *Entry) Attributes() Attribute {
	return e.attr
}

func (e *Entry) IsDir() bool {
	return e.kind == KindDirectory
}

// ModTime combines the last write date and time. It returns time.Time{} if the date is invalid.
func (e *Entry) ModTime() time.Time {
	date := ParseDate(e.writeDate)
	if date.IsZero() {
		return time.Time{}
	}

	clock := ParseTime(e.writeTime)
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}

// Chain returns a new reader over the raw cluster chain of the entry.
// Unlike Open it is not limited by the declared size.
func (e *Entry) Chain() *ClusterChain {
	return e.fs.chainAt(e.cluster)
}

// ReadDir opens the entry as directory.
// It returns ErrNotDirectory if the entry is a file or a volume label.
func (e *Entry) ReadDir() (*Dir, error) {
	if e.kind != KindDirectory {
		return nil, ErrNotDirectory
	}

	// ".." of a directory directly below the root stores cluster 0.
	cluster := e.cluster
	if cluster == 0 {
		cluster = e.fs.geometry.RootCluster
	}

	return newDir(e.fs.chainAt(cluster)), nil
}

// Open opens the entry as file.
// It returns ErrNotDirectory if the entry is a directory or a volume label.
func (e *Entry) Open() (*File, error) {
	if e.kind != KindFile {
		return nil, ErrNotDirectory
	}

	return newFile(e.fs.chainAt(e.cluster), e.size), nil
}
