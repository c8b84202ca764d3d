package fatdecode

import (
	"strings"

	"go.uber.org/zap"
)

// FS is an opened FAT32 volume. It owns nothing but the geometry; the Reader stays
// owned by the caller and has to stay usable as long as the FS or anything derived
// from it is in use.
type FS struct {
	reader   Reader
	geometry Geometry
	log      *zap.SugaredLogger
}

// Option configures an FS.
type Option func(fs *FS)

// WithLogger sets the logger used for debug output. By default nothing is logged.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(fs *FS) {
		if log != nil {
			fs.log = log
		}
	}
}

// New opens the FAT32 volume provided by reader.
// It fails with ErrNotFat32 if the boot sector describes a FAT12 or FAT16 volume.
func New(reader Reader, opts ...Option) (*FS, error) {
	fs := &FS{
		reader: reader,
		log:    zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(fs)
	}

	geometry, err := readGeometry(reader)
	if err != nil {
		return nil, err
	}
	fs.geometry = geometry

	fs.log.Debugw("opened FAT32 volume",
		"label", geometry.VolumeLabel,
		"bytesPerSector", geometry.BytesPerSector,
		"sectorsPerCluster", geometry.SectorsPerCluster,
		"reservedSectors", geometry.ReservedSectors,
		"firstDataSector", geometry.FirstDataSector,
		"rootCluster", geometry.RootCluster,
	)

	return fs, nil
}

func (fs *FS) Geometry() Geometry {
	return fs.geometry
}

// Label returns the volume label stored in the boot sector.
func (fs *FS) Label() string {
	return fs.geometry.VolumeLabel
}

// Root returns the root directory.
func (fs *FS) Root() *Dir {
	return newDir(fs.chainAt(fs.geometry.RootCluster))
}

func (fs *FS) rootEntry() *Entry {
	return &Entry{
		fs:      fs,
		kind:    KindDirectory,
		cluster: fs.geometry.RootCluster,
		attr:    AttrDirectory,
	}
}

// Find resolves path to its entry. Components are separated by '/' and compared
// byte by byte. Empty components are ignored, so "//a//b" is the same as "/a/b"
// and "" or "/" is the root directory itself.
func (fs *FS) Find(path string) (*Entry, error) {
	path = strings.TrimPrefix(path, "/")

	entry := fs.rootEntry()
	for _, component := range strings.Split(path, "/") {
		if component == "" {
			continue
		}

		dir, err := entry.ReadDir()
		if err != nil {
			return nil, err
		}

		entry, err = dir.lookup(component)
		if err != nil {
			return nil, err
		}
	}

	return entry, nil
}

// ReadDir opens the directory at path.
func (fs *FS) ReadDir(path string) (*Dir, error) {
	entry, err := fs.Find(path)
	if err != nil {
		return nil, err
	}
	return entry.ReadDir()
}

// Open opens the file at path.
// It returns ErrNotDirectory if path is not a file.
func (fs *FS) Open(path string) (*File, error) {
	entry, err := fs.Find(path)
	if err != nil {
		return nil, err
	}
	return entry.Open()
}
