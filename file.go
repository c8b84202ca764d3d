package fatdecode

import "io"

// File reads the content of one file. It never returns more than the declared size even if
// the cluster chain is longer.
type File struct {
	chain     *ClusterChain
	size      uint32
	remaining uint32
}

func newFile(chain *ClusterChain, size uint32) *File {
	return &File{
		chain:     chain,
		size:      size,
		remaining: size,
	}
}

// Read implements io.Reader. After the declared size is reached it returns io.EOF
// without touching the Reader again.
func (f *File) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if f.remaining == 0 {
		return 0, io.EOF
	}

	if uint64(len(p)) > uint64(f.remaining) {
		p = p[:f.remaining]
	}

	n, err := f.chain.Read(p)
	f.remaining -= uint32(n)
	return n, err
}

// Size returns the declared size of the file.
func (f *File) Size() uint32 {
	return f.size
}

// Rewind starts reading from the beginning again.
func (f *File) Rewind() {
	f.chain.Rewind()
	f.remaining = f.size
}
