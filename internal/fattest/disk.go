package fattest

import (
	"encoding/binary"
)

const sectorSize = 512

// MBRPartition describes one primary partition of Disk.
type MBRPartition struct {
	Type     byte
	StartLBA uint32
	Volume   []byte
}

// Disk builds a whole-disk image with a classic MBR partition table of up to four
// partitions. The disk is just large enough to hold all of them.
func Disk(partitions ...MBRPartition) []byte {
	if len(partitions) > 4 {
		panic("fattest: an MBR holds at most four partitions")
	}

	size := sectorSize
	for _, p := range partitions {
		end := int(p.StartLBA)*sectorSize + len(p.Volume)
		if end > size {
			size = end
		}
	}
	// Round up to whole sectors.
	size = (size + sectorSize - 1) / sectorSize * sectorSize

	disk := make([]byte, size)
	for i, p := range partitions {
		entry := disk[446+i*16 : 446+(i+1)*16]
		entry[4] = p.Type
		binary.LittleEndian.PutUint32(entry[8:], p.StartLBA)
		binary.LittleEndian.PutUint32(entry[12:], uint32((len(p.Volume)+sectorSize-1)/sectorSize))

		copy(disk[int(p.StartLBA)*sectorSize:], p.Volume)
	}
	disk[510] = 0x55
	disk[511] = 0xAA

	return disk
}
