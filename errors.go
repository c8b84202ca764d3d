package fatdecode

import "errors"

// These errors are returned by the decoder. Errors coming from the Reader
// are passed through unchanged.
var (
	// ErrNotFat32 is returned by New if the boot sector does not describe a FAT32 volume.
	ErrNotFat32 = errors.New("not fat32")

	// ErrNotDirectory is returned if a directory operation is applied to something else
	// and also if a file operation is applied to a directory or volume label.
	ErrNotDirectory = errors.New("not a directory")

	// ErrNotFound is returned if a path component does not exist.
	ErrNotFound = errors.New("not found")
)
