package fattest

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
)

// Content of the files of the sample image.
var (
	ReadmeContent = []byte("hello fat32\n")
	BravoContent  = []byte("bravo\n")
	// LongContent spans three clusters which are not stored in order.
	LongContent = bytes.Repeat([]byte("0123456789abcdef"), 80)
)

const (
	SampleLabel    = "TESTVOL"
	LongFileName   = "HelloWorldThisIsALoongFileName.txt"
	SampleFileName = "/image.img"
)

// Sample builds the following volume with 512 byte clusters:
//
//  /                                        cluster 2
//  ├── TESTVOL (volume label)
//  ├── a/                                   cluster 3, long name "a"
//  │   ├── .
//  │   ├── ..                               cluster 0
//  │   └── b.txt                            cluster 8, long name "b.txt"
//  ├── README.TXT                           cluster 4, short name only
//  ├── (deleted record)
//  ├── HelloWorldThisIsALoongFileName.txt   clusters 5, 9, 6
//  ├── EMPTY                                no cluster, size 0
//  └── SUB/                                 cluster 7, empty, short name only
func Sample() *Image {
	img := New(16)
	img.SetLabel(SampleLabel)

	img.WriteDir([]uint32{2},
		Short(SampleLabel, AttrVolumeID, 0, 0),
		Long("a", "A", AttrDirectory, 3, 0),
		Short("README.TXT", AttrArchive, 4, uint32(len(ReadmeContent))),
		Free(),
		Long(LongFileName, "HELLOW~1.TXT", AttrArchive, 5, uint32(len(LongContent))),
		Short("EMPTY", AttrArchive, 0, 0),
		Short("SUB", AttrDirectory, 7, 0),
		End(),
	)

	img.WriteDir([]uint32{3},
		Short(".", AttrDirectory, 3, 0),
		Short("..", AttrDirectory, 0, 0),
		Long("b.txt", "B.TXT", AttrArchive, 8, uint32(len(BravoContent))),
		End(),
	)

	img.WriteDir([]uint32{7},
		Short(".", AttrDirectory, 7, 0),
		Short("..", AttrDirectory, 0, 0),
		End(),
	)

	img.WriteData(ReadmeContent, 4)
	img.WriteData(BravoContent, 8)
	img.WriteData(LongContent, 5, 9, 6)

	return img
}

// SampleFs stores the sample image as SampleFileName in a new afero.MemMapFs.
func SampleFs(t testing.TB) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, SampleFileName, Sample().Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return fs
}
