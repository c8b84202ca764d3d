package fatdecode

import (
	"bytes"
	"encoding/binary"
	"io"
)

const (
	dirEntrySize = 32

	// entryLast marks the end of a directory, nothing valid follows.
	entryLast = 0x00
	// entryFree marks a deleted record.
	entryFree = 0xE5
)

// Dir lazily decodes the entries of one directory.
// Once the end is reached it keeps returning io.EOF until Rewind is called.
type Dir struct {
	chain *ClusterChain
	fused bool
}

func newDir(chain *ClusterChain) *Dir {
	return &Dir{chain: chain}
}

// Next returns the next entry of the directory or io.EOF if there is none.
// Free records and abandoned long name fragments are skipped silently.
func (d *Dir) Next() (*Entry, error) {
	if d.fused {
		return nil, io.EOF
	}

	var (
		name   longName
		record [dirEntrySize]byte
	)

	for {
		n, err := d.chain.Read(record[:])
		if err != nil && err != io.EOF {
			return nil, err
		}

		if n < len(record) {
			d.fused = true
			return nil, io.EOF
		}

		switch record[0] {
		case entryLast:
			d.fused = true
			return nil, io.EOF
		case entryFree:
			d.drop(&name)
			continue
		}

		attr := Attribute(record[11]) & attrMask
		if attr == attrLongName {
			fragment := LongFilenameEntry{}
			if err := binary.Read(bytes.NewReader(record[:]), binary.LittleEndian, &fragment); err != nil {
				return nil, err
			}

			// A new sequence starts while an older one is still pending.
			if fragment.Sequence&lfnLastFragment != 0 {
				d.drop(&name)
			}

			name.push(decodeFragment(fragment))
			continue
		}

		header := EntryHeader{}
		if err := binary.Read(bytes.NewReader(record[:]), binary.LittleEndian, &header); err != nil {
			return nil, err
		}

		if name.empty() {
			return newEntry(d.chain.fs, header, shortName(header.Name)), nil
		}
		return newEntry(d.chain.fs, header, name.String()), nil
	}
}

// drop forgets collected long name fragments which have no short entry.
func (d *Dir) drop(name *longName) {
	if name.empty() {
		return
	}

	d.chain.fs.log.Debugw("dropping incomplete long file name",
		"name", name.String(),
		"directoryCluster", d.chain.FirstCluster(),
	)
	name.reset()
}

// Entries reads all remaining entries.
func (d *Dir) Entries() ([]*Entry, error) {
	var entries []*Entry
	for {
		entry, err := d.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
}

// Rewind restarts the directory from its first entry.
func (d *Dir) Rewind() {
	d.chain.Rewind()
	d.fused = false
}

// lookup scans the directory for the first entry named exactly name.
func (d *Dir) lookup(name string) (*Entry, error) {
	for {
		entry, err := d.Next()
		if err == io.EOF {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		if entry.name == name {
			return entry, nil
		}
	}
}
