package fatdecode

import (
	"os"
	"testing"
)

func Test_entryFileInfo(t *testing.T) {
	tests := []struct {
		name     string
		entry    *Entry
		wantName string
		wantSize int64
		wantMode os.FileMode
	}{
		{
			name:     "file",
			entry:    &Entry{kind: KindFile, name: "hello.txt", size: 9, attr: AttrArchive},
			wantName: "hello.txt",
			wantSize: 9,
			wantMode: 0444,
		},
		{
			name:     "directory",
			entry:    &Entry{kind: KindDirectory, name: "dir", attr: AttrDirectory},
			wantName: "dir",
			wantMode: os.ModeDir | 0555,
		},
		{
			name:     "root has no name",
			entry:    &Entry{kind: KindDirectory, attr: AttrDirectory},
			wantName: "/",
			wantMode: os.ModeDir | 0555,
		},
		{
			name:     "read only flag does not matter",
			entry:    &Entry{kind: KindFile, name: "ro", size: 1, attr: AttrReadOnly},
			wantName: "ro",
			wantSize: 1,
			wantMode: 0444,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.entry.FileInfo()

			if got := info.Name(); got != tt.wantName {
				t.Errorf("entryFileInfo.Name() = %v, want %v", got, tt.wantName)
			}
			if got := info.Size(); got != tt.wantSize {
				t.Errorf("entryFileInfo.Size() = %v, want %v", got, tt.wantSize)
			}
			if got := info.Mode(); got != tt.wantMode {
				t.Errorf("entryFileInfo.Mode() = %v, want %v", got, tt.wantMode)
			}
			if got := info.IsDir(); got != tt.wantMode.IsDir() {
				t.Errorf("entryFileInfo.IsDir() = %v, want %v", got, tt.wantMode.IsDir())
			}
			if got := info.Sys(); got != tt.entry {
				t.Errorf("entryFileInfo.Sys() = %v, want %v", got, tt.entry)
			}
		})
	}
}

func TestAttribute_Has(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		flag Attribute
		want bool
	}{
		{name: "single bit", attr: AttrDirectory | AttrHidden, flag: AttrHidden, want: true},
		{name: "missing bit", attr: AttrDirectory, flag: AttrHidden, want: false},
		{name: "all bits needed", attr: AttrReadOnly | AttrHidden, flag: attrLongName, want: false},
		{name: "long name", attr: attrLongName, flag: attrLongName, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.Has(tt.flag); got != tt.want {
				t.Errorf("Attribute.Has() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntryKind_String(t *testing.T) {
	tests := []struct {
		kind EntryKind
		want string
	}{
		{kind: KindFile, want: "File"},
		{kind: KindDirectory, want: "Directory"},
		{kind: KindVolumeLabel, want: "VolumeLabel"},
		{kind: EntryKind(42), want: "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("EntryKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
