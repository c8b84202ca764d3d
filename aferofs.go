package fatdecode

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aligator/fatdecode/checkpoint"
	"github.com/spf13/afero"
)

// aferoFs exposes an FS as read only afero.Fs.
// Every modifying operation fails with syscall.EROFS.
type aferoFs struct {
	fs *FS
}

// NewAferoFs wraps fs into an afero.Fs.
func NewAferoFs(fs *FS) afero.Fs {
	return &aferoFs{fs: fs}
}

// cleanPath turns any afero or io/fs style name into an absolute path.
// "", "." and "/" all mean the root directory.
func cleanPath(name string) string {
	return path.Clean("/" + filepath.ToSlash(name))
}

// pathError translates decoder errors into errnos, so that os.IsNotExist and the afero
// helpers built on it work. Any other error is passed on with a checkpoint.
func pathError(op, name string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		err = syscall.ENOENT
	case errors.Is(err, ErrNotDirectory):
		err = syscall.ENOTDIR
	default:
		err = checkpoint.From(err)
	}

	return &os.PathError{Op: op, Path: name, Err: err}
}

func readOnly(op, name string) error {
	return &os.PathError{Op: op, Path: name, Err: syscall.EROFS}
}

func (a *aferoFs) find(op, name string) (*Entry, error) {
	entry, err := a.fs.Find(cleanPath(name))
	if err != nil {
		return nil, pathError(op, name, err)
	}
	return entry, nil
}

func (a *aferoFs) Open(name string) (afero.File, error) {
	entry, err := a.find("open", name)
	if err != nil {
		return nil, err
	}

	file, err := newAferoFile(entry, name)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// OpenFile only supports read only access.
func (a *aferoFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND|os.O_CREATE|os.O_TRUNC) != 0 {
		return nil, readOnly("open", name)
	}
	return a.Open(name)
}

func (a *aferoFs) Stat(name string) (os.FileInfo, error) {
	entry, err := a.find("stat", name)
	if err != nil {
		return nil, err
	}
	return entry.FileInfo(), nil
}

func (a *aferoFs) Name() string {
	return "fatdecode"
}

func (a *aferoFs) Create(name string) (afero.File, error) {
	return nil, readOnly("create", name)
}

func (a *aferoFs) Mkdir(name string, perm os.FileMode) error {
	return readOnly("mkdir", name)
}

func (a *aferoFs) MkdirAll(path string, perm os.FileMode) error {
	return readOnly("mkdir", path)
}

func (a *aferoFs) Remove(name string) error {
	return readOnly("remove", name)
}

func (a *aferoFs) RemoveAll(path string) error {
	return readOnly("remove", path)
}

func (a *aferoFs) Rename(oldname, newname string) error {
	return readOnly("rename", oldname)
}

func (a *aferoFs) Chmod(name string, mode os.FileMode) error {
	return readOnly("chmod", name)
}

func (a *aferoFs) Chown(name string, uid, gid int) error {
	return readOnly("chown", name)
}

func (a *aferoFs) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return readOnly("chtimes", name)
}
