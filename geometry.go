package fatdecode

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// bpbSize is the number of bytes of the first sector needed to decode the geometry.
var bpbSize = binary.Size(BPB{})

// Geometry contains the fixed layout parameters of a FAT32 volume.
// It is read once from the boot sector and never changes afterwards.
type Geometry struct {
	BytesPerSector    uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	FirstDataSector   uint32
	RootCluster       uint32

	NumFATs      uint8
	FATSize      uint32
	TotalSectors uint32
	OEMName      string
	VolumeLabel  string
}

// readGeometry decodes the boot sector provided by r.
// It returns ErrNotFat32 if the legacy FAT12/16 fields are in use or the sector or cluster
// size is zero.
func readGeometry(r Reader) (Geometry, error) {
	buf := make([]byte, bpbSize)
	if err := r.ReadExactAt(buf, 0); err != nil {
		return Geometry{}, err
	}

	bpb := BPB{}
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &bpb); err != nil {
		return Geometry{}, err
	}

	fat32 := FAT32SpecificData{}
	if err := binary.Read(bytes.NewReader(bpb.FATSpecificData[:]), binary.LittleEndian, &fat32); err != nil {
		return Geometry{}, err
	}

	// Both fields are only used by FAT12 and FAT16.
	if bpb.FATSize16 != 0 || bpb.RootEntryCount != 0 {
		return Geometry{}, ErrNotFat32
	}

	// Zero sized sectors or clusters would never advance a cluster chain.
	if bpb.BytesPerSector == 0 || bpb.SectorsPerCluster == 0 {
		return Geometry{}, ErrNotFat32
	}

	totalSectors := bpb.TotalSectors32
	if bpb.TotalSectors16 != 0 {
		totalSectors = uint32(bpb.TotalSectors16)
	}

	return Geometry{
		BytesPerSector:    bpb.BytesPerSector,
		SectorsPerCluster: bpb.SectorsPerCluster,
		ReservedSectors:   bpb.ReservedSectorCount,
		FirstDataSector:   uint32(bpb.ReservedSectorCount) + uint32(bpb.NumFATs)*fat32.FATSize,
		RootCluster:       fat32.RootCluster,

		NumFATs:      bpb.NumFATs,
		FATSize:      fat32.FATSize,
		TotalSectors: totalSectors,
		OEMName:      strings.TrimRight(string(bpb.BSOEMName[:]), " \x00"),
		VolumeLabel:  strings.TrimRight(string(fat32.BSVolumeLabel[:]), " \x00"),
	}, nil
}

// FATOffset returns the byte offset of the FAT entry of the given cluster.
// Only the first FAT is ever used.
func (g Geometry) FATOffset(cluster uint32) int64 {
	return int64(g.ReservedSectors)*int64(g.BytesPerSector) + int64(cluster)*fatEntrySize
}

// FirstSector returns the first sector of the given cluster.
// Cluster numbering starts at 2, passing 0 or 1 is not valid.
func (g Geometry) FirstSector(cluster uint32) uint32 {
	return (cluster-firstDataCluster)*uint32(g.SectorsPerCluster) + g.FirstDataSector
}

// ClusterOffset returns the byte offset of the first byte of the given cluster.
func (g Geometry) ClusterOffset(cluster uint32) int64 {
	return int64(g.FirstSector(cluster)) * int64(g.BytesPerSector)
}

func (g Geometry) BytesPerCluster() uint32 {
	return uint32(g.SectorsPerCluster) * uint32(g.BytesPerSector)
}
