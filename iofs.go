package fatdecode

import (
	"io/fs"

	"github.com/spf13/afero"
)

// NewIOFS exposes fsys as io/fs.FS by way of the afero adapter.
func NewIOFS(fsys *FS) fs.FS {
	return afero.NewIOFS(NewAferoFs(fsys))
}
