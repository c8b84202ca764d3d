package fatdecode

import (
	"context"
	"io"

	"github.com/spf13/afero"
)

// Reader is the byte source a FAT32 volume gets decoded from.
//
// ReadExactAt fills p with the bytes starting at the absolute offset off. It must fail if
// fewer than len(p) bytes are available. No position is kept between calls.
//
// Generated mock using mockgen:
//  mockgen -source=reader.go -destination=mock_reader_test.go -package fatdecode Reader
type Reader interface {
	ReadExactAt(p []byte, off int64) error
}

// ReaderFunc adapts a plain function to the Reader interface.
type ReaderFunc func(p []byte, off int64) error

func (f ReaderFunc) ReadExactAt(p []byte, off int64) error {
	return f(p, off)
}

type readerAt struct {
	r io.ReaderAt
}

// FromReaderAt turns any io.ReaderAt (os.File, afero.File, bytes.Reader, io.SectionReader...)
// into a Reader. A short read is reported as io.ErrUnexpectedEOF.
func FromReaderAt(r io.ReaderAt) Reader {
	return readerAt{r: r}
}

func (r readerAt) ReadExactAt(p []byte, off int64) error {
	n, err := r.r.ReadAt(p, off)
	if n == len(p) {
		// io.ReaderAt may report io.EOF together with a full buffer.
		return nil
	}

	if err == nil || err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

type contextReader struct {
	ctx context.Context
	r   Reader
}

// WithContext returns a Reader which refuses to read as soon as ctx is done.
// The decoder itself is not cancellable, so this is the place to put deadlines.
func WithContext(ctx context.Context, r Reader) Reader {
	return contextReader{ctx: ctx, r: r}
}

func (c contextReader) ReadExactAt(p []byte, off int64) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	return c.r.ReadExactAt(p, off)
}

// Image is a partition image opened from an afero filesystem.
type Image struct {
	file afero.File
	size int64
}

// OpenImage opens the file name of fsys for reading. Use afero.NewOsFs() for real files.
// The returned Image has to be closed by the caller.
func OpenImage(fsys afero.Fs, name string) (*Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Image{
		file: f,
		size: stat.Size(),
	}, nil
}

// Size of the whole image in bytes.
func (i *Image) Size() int64 {
	return i.size
}

func (i *Image) ReadExactAt(p []byte, off int64) error {
	return FromReaderAt(i.file).ReadExactAt(p, off)
}

// Window returns a Reader which only sees size bytes starting at off, e.g. one partition of a
// whole disk image. Offset 0 of the returned Reader is off in the image.
func (i *Image) Window(off, size int64) Reader {
	return FromReaderAt(io.NewSectionReader(i.file, off, size))
}

func (i *Image) Close() error {
	return i.file.Close()
}
