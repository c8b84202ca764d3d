// Package fattest builds small synthetic FAT32 images for tests.
//
// The layout is written byte by byte from the on-disk format and does not use the
// decoder, so tests can compare both against each other.
package fattest

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
)

// Attribute bits of a directory record.
const (
	AttrReadOnly  byte = 0x01
	AttrHidden    byte = 0x02
	AttrSystem    byte = 0x04
	AttrVolumeID  byte = 0x08
	AttrDirectory byte = 0x10
	AttrArchive   byte = 0x20
	AttrLongName       = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeID
)

const (
	// EndOfChain is written into the FAT for the last cluster of a chain.
	EndOfChain uint32 = 0x0FFFFFFF

	fatEntrySize = 4
)

// Record is one 32 byte directory record.
type Record [32]byte

// Image is an in-memory FAT32 volume.
type Image struct {
	BytesPerSector    uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	NumFATs           uint8
	FATSize           uint32
	RootCluster       uint32
	Clusters          uint32

	data []byte
}

// New creates an empty volume with 512 byte sectors, one sector per cluster, 32
// reserved sectors, two FATs of one sector each and the given number of data clusters.
// The root directory is cluster 2 and already terminated in the FAT.
func New(clusters uint32) *Image {
	return NewWithGeometry(512, 1, clusters)
}

// NewWithGeometry is like New but allows other sector and cluster sizes.
func NewWithGeometry(bytesPerSector uint16, sectorsPerCluster uint8, clusters uint32) *Image {
	img := &Image{
		BytesPerSector:    bytesPerSector,
		SectorsPerCluster: sectorsPerCluster,
		ReservedSectors:   32,
		NumFATs:           2,
		RootCluster:       2,
		Clusters:          clusters,
	}

	entriesPerSector := uint32(bytesPerSector) / fatEntrySize
	img.FATSize = (clusters + 2 + entriesPerSector - 1) / entriesPerSector

	img.data = make([]byte, int(img.TotalSectors())*int(bytesPerSector))
	img.writeBootSector()

	img.SetFAT(0, 0x0FFFFFF8)
	img.SetFAT(1, EndOfChain)
	img.SetFAT(img.RootCluster, EndOfChain)

	return img
}

func (img *Image) FirstDataSector() uint32 {
	return uint32(img.ReservedSectors) + uint32(img.NumFATs)*img.FATSize
}

func (img *Image) TotalSectors() uint32 {
	return img.FirstDataSector() + img.Clusters*uint32(img.SectorsPerCluster)
}

func (img *Image) BytesPerCluster() int {
	return int(img.BytesPerSector) * int(img.SectorsPerCluster)
}

func (img *Image) writeBootSector() {
	b := img.data
	copy(b[0:3], []byte{0xEB, 0x58, 0x90})
	copy(b[3:11], "FATTEST ")
	binary.LittleEndian.PutUint16(b[11:], img.BytesPerSector)
	b[13] = img.SectorsPerCluster
	binary.LittleEndian.PutUint16(b[14:], img.ReservedSectors)
	b[16] = img.NumFATs
	binary.LittleEndian.PutUint16(b[17:], 0)
	binary.LittleEndian.PutUint16(b[19:], 0)
	b[21] = 0xF8
	binary.LittleEndian.PutUint16(b[22:], 0)
	binary.LittleEndian.PutUint32(b[32:], img.TotalSectors())
	binary.LittleEndian.PutUint32(b[36:], img.FATSize)
	binary.LittleEndian.PutUint32(b[44:], img.RootCluster)
	binary.LittleEndian.PutUint16(b[48:], 1)
	binary.LittleEndian.PutUint16(b[50:], 6)
	b[66] = 0x29
	copy(b[71:82], "NO NAME    ")
	copy(b[82:90], "FAT32   ")
	b[510] = 0x55
	b[511] = 0xAA
}

// SetLabel writes the volume label of the boot sector.
func (img *Image) SetLabel(label string) {
	copy(img.data[71:82], pad(label, 11))
}

// PutUint16 overwrites a little endian value of the boot sector, e.g. to fake FAT16 fields.
func (img *Image) PutUint16(offset int, value uint16) {
	binary.LittleEndian.PutUint16(img.data[offset:], value)
}

// SetFAT sets the entry of cluster in every FAT.
func (img *Image) SetFAT(cluster, value uint32) {
	for i := 0; i < int(img.NumFATs); i++ {
		start := (int(img.ReservedSectors) + i*int(img.FATSize)) * int(img.BytesPerSector)
		binary.LittleEndian.PutUint32(img.data[start+int(cluster)*fatEntrySize:], value)
	}
}

// Chain links the clusters in the given order and terminates the chain.
func (img *Image) Chain(clusters ...uint32) {
	for i, cluster := range clusters {
		next := EndOfChain
		if i+1 < len(clusters) {
			next = clusters[i+1]
		}
		img.SetFAT(cluster, next)
	}
}

// ClusterOffset returns the byte offset of cluster inside the image.
func (img *Image) ClusterOffset(cluster uint32) int {
	sector := (cluster-2)*uint32(img.SectorsPerCluster) + img.FirstDataSector()
	return int(sector) * int(img.BytesPerSector)
}

// WriteData chains the clusters and spreads data over them in order.
// data must fit into the clusters.
func (img *Image) WriteData(data []byte, clusters ...uint32) {
	if len(data) > len(clusters)*img.BytesPerCluster() {
		panic("fattest: data does not fit into the clusters")
	}

	img.Chain(clusters...)

	size := img.BytesPerCluster()
	for i, cluster := range clusters {
		if i*size >= len(data) {
			break
		}
		end := (i + 1) * size
		if end > len(data) {
			end = len(data)
		}
		copy(img.data[img.ClusterOffset(cluster):], data[i*size:end])
	}
}

// WriteDir writes the directory records into the given clusters.
func (img *Image) WriteDir(clusters []uint32, records ...[]Record) {
	var data []byte
	for _, group := range records {
		for _, record := range group {
			data = append(data, record[:]...)
		}
	}
	img.WriteData(data, clusters...)
}

// Bytes returns the raw image. It is not copied.
func (img *Image) Bytes() []byte {
	return img.data
}

func pad(s string, n int) []byte {
	b := []byte(strings.Repeat(" ", n))
	copy(b, s)
	return b
}

// ShortName converts "README.TXT" into its 11 byte on-disk form.
// "." and ".." are kept as they are. Nothing gets upper cased.
func ShortName(name string) [11]byte {
	var raw [11]byte
	base, ext := name, ""
	if name != "." && name != ".." {
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			base, ext = name[:i], name[i+1:]
		}
	}
	copy(raw[:8], pad(base, 8))
	copy(raw[8:], pad(ext, 3))
	return raw
}

// Short returns a single 8.3 record.
func Short(name string, attr byte, cluster, size uint32) []Record {
	var r Record
	raw := ShortName(name)
	copy(r[0:11], raw[:])
	r[11] = attr
	// 2021-03-04 05:06:08
	binary.LittleEndian.PutUint16(r[22:], 5<<11|6<<5|4)
	binary.LittleEndian.PutUint16(r[24:], 41<<9|3<<5|4)
	binary.LittleEndian.PutUint16(r[20:], uint16(cluster>>16))
	binary.LittleEndian.PutUint16(r[26:], uint16(cluster))
	binary.LittleEndian.PutUint32(r[28:], size)
	return []Record{r}
}

// Checksum computes the short name checksum stored in long name fragments.
func Checksum(short [11]byte) byte {
	var sum byte
	for _, b := range short {
		sum = (sum>>1 | sum<<7) + b
	}
	return sum
}

// LongFragments encodes name into long name records in on-disk order:
// the fragment with the highest sequence number (flagged with 0x40) comes first.
func LongFragments(name string, checksum byte) []Record {
	units := utf16.Encode([]rune(name))
	count := (len(units) + 12) / 13

	// Terminate with NUL and pad with 0xFFFF if there is room left.
	padded := make([]uint16, count*13)
	for i := range padded {
		switch {
		case i < len(units):
			padded[i] = units[i]
		case i == len(units):
			padded[i] = 0
		default:
			padded[i] = 0xFFFF
		}
	}

	records := make([]Record, 0, count)
	for seq := count; seq >= 1; seq-- {
		var r Record
		r[0] = byte(seq)
		if seq == count {
			r[0] |= 0x40
		}
		r[11] = AttrLongName
		r[13] = checksum

		chunk := padded[(seq-1)*13 : seq*13]
		for i, u := range chunk {
			var off int
			switch {
			case i < 5:
				off = 1 + i*2
			case i < 11:
				off = 14 + (i-5)*2
			default:
				off = 28 + (i-11)*2
			}
			binary.LittleEndian.PutUint16(r[off:], u)
		}
		records = append(records, r)
	}

	return records
}

// Long returns the long name fragments of name followed by the short record.
func Long(name, short string, attr byte, cluster, size uint32) []Record {
	records := LongFragments(name, Checksum(ShortName(short)))
	return append(records, Short(short, attr, cluster, size)...)
}

// Free returns a deleted record.
func Free() []Record {
	r := Short("DELETED.TXT", AttrArchive, 0, 0)
	r[0][0] = 0xE5
	return r
}

// End returns the record which terminates a directory.
func End() []Record {
	return []Record{{}}
}
