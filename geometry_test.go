package fatdecode

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/aligator/fatdecode/internal/fattest"
)

func Test_readGeometry(t *testing.T) {
	fat16Size := fattest.New(4)
	fat16Size.PutUint16(22, 9)

	rootEntries := fattest.New(4)
	rootEntries.PutUint16(17, 512)

	bigClusters := fattest.NewWithGeometry(4096, 8, 4)
	bigClusters.SetLabel("BIG")

	tests := []struct {
		name    string
		reader  Reader
		want    Geometry
		wantErr error
	}{
		{
			name:   "FAT32 test image",
			reader: FromReaderAt(bytes.NewReader(fattest.New(16).Bytes())),
			want: Geometry{
				BytesPerSector:    512,
				SectorsPerCluster: 1,
				ReservedSectors:   32,
				FirstDataSector:   34,
				RootCluster:       2,
				NumFATs:           2,
				FATSize:           1,
				TotalSectors:      50,
				OEMName:           "FATTEST",
				VolumeLabel:       "NO NAME",
			},
		},
		{
			name:   "larger sectors and clusters",
			reader: FromReaderAt(bytes.NewReader(bigClusters.Bytes())),
			want: Geometry{
				BytesPerSector:    4096,
				SectorsPerCluster: 8,
				ReservedSectors:   32,
				FirstDataSector:   34,
				RootCluster:       2,
				NumFATs:           2,
				FATSize:           1,
				TotalSectors:      66,
				OEMName:           "FATTEST",
				VolumeLabel:       "BIG",
			},
		},
		{
			name:    "16 bit FAT size set",
			reader:  FromReaderAt(bytes.NewReader(fat16Size.Bytes())),
			wantErr: ErrNotFat32,
		},
		{
			name:    "legacy root entries set",
			reader:  FromReaderAt(bytes.NewReader(rootEntries.Bytes())),
			wantErr: ErrNotFat32,
		},
		{
			name:    "zeroed boot sector",
			reader:  FromReaderAt(bytes.NewReader(make([]byte, 512))),
			wantErr: ErrNotFat32,
		},
		{
			name:    "no FAT file",
			reader:  FromReaderAt(bytes.NewReader([]byte("This is no FAT file"))),
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name:    "reader fails",
			reader:  ReaderFunc(func(p []byte, off int64) error { return testsError }),
			wantErr: testsError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readGeometry(tt.reader)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("readGeometry() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("readGeometry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeometry_FirstDataSector(t *testing.T) {
	for _, numFATs := range []byte{1, 2, 3} {
		img := fattest.New(300)
		img.Bytes()[16] = numFATs

		got, err := readGeometry(FromReaderAt(bytes.NewReader(img.Bytes())))
		if err != nil {
			t.Fatalf("readGeometry() error = %v", err)
		}

		want := uint32(img.ReservedSectors) + uint32(numFATs)*img.FATSize
		if got.FirstDataSector != want {
			t.Errorf("FirstDataSector = %v, want %v (numFATs %v)", got.FirstDataSector, want, numFATs)
		}
	}
}

func TestGeometry_FirstSector(t *testing.T) {
	g := Geometry{
		BytesPerSector:    512,
		SectorsPerCluster: 8,
		ReservedSectors:   32,
		FirstDataSector:   2080,
	}

	if got := g.FirstSector(2); got != 2080 {
		t.Errorf("FirstSector(2) = %v, want 2080", got)
	}

	prev := g.FirstSector(2)
	for cluster := uint32(3); cluster < 5000; cluster++ {
		got := g.FirstSector(cluster)
		if want := (cluster-2)*8 + 2080; got != want {
			t.Fatalf("FirstSector(%v) = %v, want %v", cluster, got, want)
		}
		if got <= prev {
			t.Fatalf("FirstSector(%v) = %v is not greater than FirstSector(%v) = %v", cluster, got, cluster-1, prev)
		}
		prev = got
	}
}

func TestGeometry_Offsets(t *testing.T) {
	g := Geometry{
		BytesPerSector:    512,
		SectorsPerCluster: 4,
		ReservedSectors:   32,
		FirstDataSector:   100,
	}

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{name: "FAT offset of cluster 0", got: g.FATOffset(0), want: 32 * 512},
		{name: "FAT offset of cluster 7", got: g.FATOffset(7), want: 32*512 + 7*4},
		{name: "cluster offset of cluster 2", got: g.ClusterOffset(2), want: 100 * 512},
		{name: "cluster offset of cluster 3", got: g.ClusterOffset(3), want: 104 * 512},
		{name: "bytes per cluster", got: int64(g.BytesPerCluster()), want: 2048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
