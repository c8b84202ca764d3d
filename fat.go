package fatdecode

import (
	"encoding/binary"
	"fmt"
)

const (
	fatEntrySize = 4

	// The upper 4 bits of a FAT32 entry are reserved and must be ignored.
	fatEntryMask = 0x0FFFFFFF

	firstDataCluster = 2
)

// fatEntry is the masked value of one FAT32 table entry.
type fatEntry uint32

const (
	fatEntryFree fatEntry = 0x00000000
	fatEntryBad  fatEntry = 0x0FFFFFF7
	fatEntryEOF  fatEntry = 0x0FFFFFF8
)

// IsEOF reports whether the entry terminates a cluster chain.
func (e fatEntry) IsEOF() bool {
	return e >= fatEntryEOF
}

func (e fatEntry) String() string {
	switch {
	case e == fatEntryFree:
		return "free"
	case e == fatEntryBad:
		return "bad"
	case e.IsEOF():
		return "eof"
	default:
		return fmt.Sprintf("cluster %d", uint32(e))
	}
}

// nextCluster looks up the successor of cluster in the first FAT.
// Bad cluster markers are returned like any other value.
func (fs *FS) nextCluster(cluster uint32) (fatEntry, error) {
	var buf [fatEntrySize]byte
	if err := fs.reader.ReadExactAt(buf[:], fs.geometry.FATOffset(cluster)); err != nil {
		return 0, err
	}

	return fatEntry(binary.LittleEndian.Uint32(buf[:]) & fatEntryMask), nil
}
