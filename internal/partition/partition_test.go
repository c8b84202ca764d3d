package partition

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aligator/fatdecode/internal/fattest"
)

type fakePartition struct {
	start, size int64
}

func (f fakePartition) GetStart() int64 { return f.start }
func (f fakePartition) GetSize() int64  { return f.size }

func Test_collect(t *testing.T) {
	tests := []struct {
		name  string
		parts []fakePartition
		want  []Partition
	}{
		{
			name:  "empty",
			parts: nil,
			want:  []Partition{},
		},
		{
			name: "sorted by start",
			parts: []fakePartition{
				{start: 4096, size: 100},
				{start: 1024, size: 200},
			},
			want: []Partition{
				{Index: 1, Start: 1024, Size: 200},
				{Index: 2, Start: 4096, Size: 100},
			},
		},
		{
			name: "unused slots",
			parts: []fakePartition{
				{start: 0, size: 0},
				{start: 2048, size: 0},
				{start: 1024, size: 512},
			},
			want: []Partition{
				{Index: 1, Start: 1024, Size: 512},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(tt.parts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("collect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTable_Get(t *testing.T) {
	table := &Table{
		Type: "mbr",
		Partitions: []Partition{
			{Index: 1, Start: 1024, Size: 200},
			{Index: 2, Start: 4096, Size: 100},
		},
	}

	tests := []struct {
		name    string
		index   int
		want    Partition
		wantErr error
	}{
		{name: "first", index: 1, want: table.Partitions[0]},
		{name: "second", index: 2, want: table.Partitions[1]},
		{name: "zero", index: 0, wantErr: ErrNoPartition},
		{name: "behind the last", index: 3, wantErr: ErrNoPartition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Get(tt.index)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Table.Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Table.Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	volume := fattest.Sample().Bytes()
	disk := fattest.Disk(
		fattest.MBRPartition{Type: 0x0C, StartLBA: 2048, Volume: volume},
		fattest.MBRPartition{Type: 0x83, StartLBA: 64, Volume: make([]byte, 64*512)},
	)

	path := filepath.Join(t.TempDir(), "disk.img")
	if err := os.WriteFile(path, disk, 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []Partition{
		{Index: 1, Start: 64 * 512, Size: 64 * 512},
		{Index: 2, Start: 2048 * 512, Size: int64(len(volume))},
	}
	if !reflect.DeepEqual(table.Partitions, want) {
		t.Errorf("Read() partitions = %v, want %v", table.Partitions, want)
	}
}

func TestRead_Missing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.img")); err == nil {
		t.Errorf("Read() of a missing file did not fail")
	}
}
