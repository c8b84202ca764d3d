// Package partition finds the partitions inside a whole-disk image, so that a single
// FAT32 partition can be decoded out of it.
package partition

import (
	"errors"
	"fmt"
	"sort"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/partition"
)

var ErrNoPartition = errors.New("partition does not exist")

// Partition is the byte range of one partition of a disk image.
type Partition struct {
	// Index starts at 1 in the order of the start offsets.
	Index int   `json:"index" yaml:"index"`
	Start int64 `json:"start" yaml:"start"`
	Size  int64 `json:"size" yaml:"size"`
}

// Table lists the used partitions of a disk image.
type Table struct {
	Type       string      `json:"type" yaml:"type"`
	Partitions []Partition `json:"partitions" yaml:"partitions"`
}

// Read opens the disk image at path read only and returns its partition table.
func Read(path string) (*Table, error) {
	disk, err := diskfs.Open(path, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return nil, fmt.Errorf("open disk image: %w", err)
	}
	defer disk.Close()

	pt, err := disk.GetPartitionTable()
	if err != nil {
		return nil, fmt.Errorf("get partition table: %w", err)
	}

	return fromTable(pt), nil
}

func fromTable(pt partition.Table) *Table {
	return &Table{
		Type:       pt.Type(),
		Partitions: collect(pt.GetPartitions()),
	}
}

// extent is the part of a diskfs partition which is needed here.
type extent interface {
	GetStart() int64
	GetSize() int64
}

// collect skips unused slots and numbers the rest by start offset.
func collect[P extent](parts []P) []Partition {
	result := make([]Partition, 0, len(parts))
	for _, p := range parts {
		if p.GetStart() <= 0 || p.GetSize() <= 0 {
			continue
		}

		result = append(result, Partition{
			Start: p.GetStart(),
			Size:  p.GetSize(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})
	for i := range result {
		result[i].Index = i + 1
	}

	return result
}

// Get returns the partition with the given 1-based index.
func (t *Table) Get(index int) (Partition, error) {
	if index < 1 || index > len(t.Partitions) {
		return Partition{}, fmt.Errorf("%w: %d of %d", ErrNoPartition, index, len(t.Partitions))
	}
	return t.Partitions[index-1], nil
}
