package fatdecode

import (
	"os"
	"time"
)

// FileInfo describes the entry as os.FileInfo. Sys returns the *Entry.
func (e *Entry) FileInfo() os.FileInfo {
	return entryFileInfo{entry: e}
}

type entryFileInfo struct {
	entry *Entry
}

func (i entryFileInfo) Name() string {
	if i.entry.name == "" {
		// Only the root has no name.
		return "/"
	}
	return i.entry.name
}

func (i entryFileInfo) Size() int64 {
	return int64(i.entry.size)
}

// Mode reports everything as read only, as nothing can be written.
func (i entryFileInfo) Mode() os.FileMode {
	if i.IsDir() {
		return os.ModeDir | 0555
	}
	return 0444
}

func (i entryFileInfo) ModTime() time.Time {
	return i.entry.ModTime()
}

func (i entryFileInfo) IsDir() bool {
	return i.entry.IsDir()
}

func (i entryFileInfo) Sys() interface{} {
	return i.entry
}
