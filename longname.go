package fatdecode

import (
	"strings"
	"unicode/utf16"
)

const (
	// lfnLastFragment is set in the sequence number of the fragment stored first on disk,
	// which holds the end of the name.
	lfnLastFragment = 0x40

	lfnUnitsPerFragment = 13
)

// longName collects the fragments of one long file name.
// Fragments precede their short entry on disk in descending order, so they get combined
// in reverse order of arrival.
type longName struct {
	fragments []string
	size      int
}

// decodeFragment returns the UTF-8 text of one long name record.
// The 13 code units are cut at the first NUL.
func decodeFragment(e LongFilenameEntry) string {
	units := make([]uint16, 0, lfnUnitsPerFragment)
	units = append(units, e.First[:]...)
	units = append(units, e.Second[:]...)
	units = append(units, e.Third[:]...)

	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}

	return string(utf16.Decode(units))
}

func (l *longName) push(fragment string) {
	l.fragments = append(l.fragments, fragment)
	l.size += len(fragment)
}

func (l *longName) empty() bool {
	return l.size == 0
}

func (l *longName) reset() {
	l.fragments = l.fragments[:0]
	l.size = 0
}

func (l *longName) String() string {
	var b strings.Builder
	b.Grow(l.size)
	for i := len(l.fragments) - 1; i >= 0; i-- {
		b.WriteString(l.fragments[i])
	}
	return b.String()
}
