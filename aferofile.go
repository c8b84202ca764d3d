package fatdecode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/aligator/fatdecode/checkpoint"
	"github.com/spf13/afero"
)

// These errors may occur while processing a file through the afero adapter.
var (
	ErrReadFile = errors.New("could not read file completely")
	ErrSeekFile = errors.New("could not seek inside of the file")
	ErrReadDir  = errors.New("could not read the directory")
)

// aferoFile implements afero.File on top of an Entry.
// Seeking backwards restarts the cluster chain, as there is no cache.
type aferoFile struct {
	entry *Entry
	name  string

	// file is nil for directories.
	file   *File
	offset int64

	dirEntries []os.FileInfo
	dirLoaded  bool
	dirOffset  int

	closed bool
}

func newAferoFile(entry *Entry, name string) (*aferoFile, error) {
	f := &aferoFile{
		entry: entry,
		name:  name,
	}

	switch entry.Kind() {
	case KindDirectory:
	case KindFile:
		file, err := entry.Open()
		if err != nil {
			return nil, pathError("open", name, err)
		}
		f.file = file
	default:
		return nil, pathError("open", name, ErrNotFound)
	}

	return f, nil
}

func (f *aferoFile) check(op string) error {
	if f.closed {
		return afero.ErrFileClosed
	}
	if f.file == nil {
		return &os.PathError{Op: op, Path: f.name, Err: syscall.EISDIR}
	}
	return nil
}

func (f *aferoFile) Close() error {
	f.closed = true
	f.dirEntries = nil
	return nil
}

func (f *aferoFile) Read(p []byte) (int, error) {
	if err := f.check("read"); err != nil {
		return 0, err
	}

	n, err := f.file.Read(p)
	f.offset += int64(n)

	if err != nil && err != io.EOF {
		return n, checkpoint.Wrap(err, ErrReadFile)
	}
	return n, err
}

// ReadAt reads from a fresh handle, so it does not affect the offset used by Read.
func (f *aferoFile) ReadAt(p []byte, off int64) (int, error) {
	if err := f.check("read"); err != nil {
		return 0, err
	}

	if off >= int64(f.entry.Size()) {
		return 0, io.EOF
	}

	file, err := f.entry.Open()
	if err != nil {
		return 0, checkpoint.Wrap(err, ErrReadFile)
	}

	if _, err := io.CopyN(io.Discard, file, off); err != nil {
		return 0, checkpoint.Wrap(err, ErrReadFile)
	}

	n, err := io.ReadFull(file, p)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, io.EOF
	}
	if err != nil {
		return n, checkpoint.Wrap(err, ErrReadFile)
	}
	return n, nil
}

// Seek jumps to a specific offset in the file. This affects all Read operations except ReadAt.
// May return a syscall.EINVAL error if the whence value is invalid.
// May return an afero.ErrOutOfRange error if the offset is out of range.
func (f *aferoFile) Seek(offset int64, whence int) (int64, error) {
	if err := f.check("seek"); err != nil {
		return 0, err
	}

	size := int64(f.entry.Size())

	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset = f.offset + offset
	case io.SeekEnd:
		offset = size + offset
	default:
		return 0, checkpoint.Wrap(ErrSeekFile, fmt.Errorf("%w, offset: %v, whence: %v", syscall.EINVAL, offset, whence))
	}

	if offset < 0 || offset > size {
		return 0, checkpoint.Wrap(afero.ErrOutOfRange, fmt.Errorf("%w, offset: %v, whence: %v", ErrSeekFile, offset, whence))
	}

	if offset < f.offset {
		f.file.Rewind()
		f.offset = 0
	}

	skipped, err := io.CopyN(io.Discard, f.file, offset-f.offset)
	f.offset += skipped
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return f.offset, checkpoint.Wrap(err, ErrSeekFile)
	}

	return f.offset, nil
}

func (f *aferoFile) loadDir() error {
	if f.dirLoaded {
		return nil
	}

	dir, err := f.entry.ReadDir()
	if err != nil {
		return err
	}

	entries, err := dir.Entries()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Kind() == KindVolumeLabel || entry.Name() == "." || entry.Name() == ".." {
			continue
		}
		f.dirEntries = append(f.dirEntries, entry.FileInfo())
	}

	f.dirLoaded = true
	return nil
}

// Readdir reads the contents of a directory.
// May return syscall.ENOTDIR if the current file is no directory.
func (f *aferoFile) Readdir(count int) ([]os.FileInfo, error) {
	if f.closed {
		return nil, afero.ErrFileClosed
	}

	if !f.entry.IsDir() {
		return nil, checkpoint.Wrap(syscall.ENOTDIR, ErrReadDir)
	}

	if err := f.loadDir(); err != nil {
		return nil, checkpoint.Wrap(err, ErrReadDir)
	}

	rest := f.dirEntries[f.dirOffset:]
	if count <= 0 {
		f.dirOffset = len(f.dirEntries)
		return rest, nil
	}

	if len(rest) == 0 {
		return nil, io.EOF
	}

	if count > len(rest) {
		count = len(rest)
	}
	f.dirOffset += count
	return rest[:count], nil
}

func (f *aferoFile) Readdirnames(count int) ([]string, error) {
	content, err := f.Readdir(count)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(content))
	for i, entry := range content {
		names[i] = entry.Name()
	}

	return names, nil
}

func (f *aferoFile) Stat() (os.FileInfo, error) {
	return f.entry.FileInfo(), nil
}

func (f *aferoFile) Name() string {
	return f.name
}

func (f *aferoFile) Sync() error {
	return nil
}

func (f *aferoFile) Write(p []byte) (int, error) {
	return 0, readOnly("write", f.name)
}

func (f *aferoFile) WriteAt(p []byte, off int64) (int, error) {
	return 0, readOnly("write", f.name)
}

func (f *aferoFile) WriteString(s string) (int, error) {
	return 0, readOnly("write", f.name)
}

func (f *aferoFile) Truncate(size int64) error {
	return readOnly("truncate", f.name)
}
