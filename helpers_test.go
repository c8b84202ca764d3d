package fatdecode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/aligator/fatdecode/internal/fattest"
	"go.uber.org/zap"
)

// testsError is just an error used to simulate a failing Reader.
var testsError = errors.New("a super error")

// testGeometry matches the layout of fattest.New.
var testGeometry = Geometry{
	BytesPerSector:    512,
	SectorsPerCluster: 1,
	ReservedSectors:   32,
	FirstDataSector:   34,
	RootCluster:       2,
	NumFATs:           2,
	FATSize:           1,
}

func testingNew(t *testing.T, img *fattest.Image) *FS {
	t.Helper()

	fs, err := New(FromReaderAt(bytes.NewReader(img.Bytes())))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return fs
}

// mockFs creates an FS without reading a boot sector, so every read of r is under control
// of the test.
func mockFs(r Reader) *FS {
	return &FS{
		reader:   r,
		geometry: testGeometry,
		log:      zap.NewNop().Sugar(),
	}
}

// fill returns a gomock action which writes data into the buffer passed to ReadExactAt.
func fill(data []byte) func(p []byte, off int64) error {
	return func(p []byte, off int64) error {
		copy(p, data)
		return nil
	}
}

// fatValue returns the little endian bytes of a FAT entry.
func fatValue(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// failingAt wraps a Reader so that every read at or behind offset fails.
func failingAt(r Reader, offset int64) Reader {
	return ReaderFunc(func(p []byte, off int64) error {
		if off >= offset {
			return testsError
		}
		return r.ReadExactAt(p, off)
	})
}

// countingReader counts the calls to the wrapped Reader.
type countingReader struct {
	r     Reader
	calls int
}

func (c *countingReader) ReadExactAt(p []byte, off int64) error {
	c.calls++
	return c.r.ReadExactAt(p, off)
}
