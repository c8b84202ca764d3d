package fatdecode

import (
	"testing"

	"github.com/aligator/fatdecode/internal/fattest"
)

func Test_fatEntry(t *testing.T) {
	tests := []struct {
		entry      fatEntry
		wantEOF    bool
		wantString string
	}{
		{entry: fatEntryFree, wantEOF: false, wantString: "free"},
		{entry: 3, wantEOF: false, wantString: "cluster 3"},
		{entry: fatEntryBad, wantEOF: false, wantString: "bad"},
		{entry: fatEntryEOF, wantEOF: true, wantString: "eof"},
		{entry: 0x0FFFFFFF, wantEOF: true, wantString: "eof"},
	}
	for _, tt := range tests {
		t.Run(tt.wantString, func(t *testing.T) {
			if got := tt.entry.IsEOF(); got != tt.wantEOF {
				t.Errorf("fatEntry.IsEOF() = %v, want %v", got, tt.wantEOF)
			}
			if got := tt.entry.String(); got != tt.wantString {
				t.Errorf("fatEntry.String() = %v, want %v", got, tt.wantString)
			}
		})
	}
}

func TestFS_nextCluster(t *testing.T) {
	img := fattest.New(16)
	img.Chain(3, 7, 5)
	img.SetFAT(8, 0xF000000A)
	img.SetFAT(9, 0x0FFFFFF8)

	fs := testingNew(t, img)

	tests := []struct {
		cluster uint32
		want    fatEntry
	}{
		{cluster: 3, want: 7},
		{cluster: 7, want: 5},
		{cluster: 5, want: 0x0FFFFFFF},
		{cluster: 8, want: 10},
		{cluster: 9, want: fatEntryEOF},
		{cluster: 10, want: fatEntryFree},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := fs.nextCluster(tt.cluster)
			if err != nil {
				t.Fatalf("FS.nextCluster() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FS.nextCluster(%v) = %v, want %v", tt.cluster, got, tt.want)
			}
		})
	}
}
