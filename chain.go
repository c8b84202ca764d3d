package fatdecode

import "io"

// ClusterChain reads the clusters of one file or directory in order, following the FAT.
// It is not safe for concurrent use, but separate chains of the same FS are independent.
type ClusterChain struct {
	fs *FS

	firstCluster   uint32
	currentCluster fatEntry
	// offset is the position inside the current cluster.
	offset uint32
}

func (fs *FS) chainAt(cluster uint32) *ClusterChain {
	return &ClusterChain{
		fs:             fs,
		firstCluster:   cluster,
		currentCluster: fatEntry(cluster),
	}
}

// FirstCluster returns the cluster the chain starts at.
func (c *ClusterChain) FirstCluster() uint32 {
	return c.firstCluster
}

// Read fills p completely as long as the chain has enough data.
// Only if the end of the chain is reached first, fewer bytes are returned together with io.EOF.
// If the Reader fails, the error is returned unchanged and n is 0, even if parts of p were
// already filled.
func (c *ClusterChain) Read(p []byte) (n int, err error) {
	geometry := c.fs.geometry
	bytesPerCluster := geometry.BytesPerCluster()

	for n < len(p) && !c.currentCluster.IsEOF() {
		offset := geometry.ClusterOffset(uint32(c.currentCluster)) + int64(c.offset)

		size := len(p) - n
		if left := int(bytesPerCluster - c.offset); left < size {
			size = left
		}

		if err := c.fs.reader.ReadExactAt(p[n:n+size], offset); err != nil {
			return 0, err
		}

		n += size
		c.offset += uint32(size)

		if c.offset == bytesPerCluster {
			next, err := c.fs.nextCluster(uint32(c.currentCluster))
			if err != nil {
				return 0, err
			}
			c.currentCluster = next
			c.offset = 0
		}
	}

	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Rewind jumps back to the start of the chain. It does not read anything.
func (c *ClusterChain) Rewind() {
	c.currentCluster = fatEntry(c.firstCluster)
	c.offset = 0
}
