package caseless

import (
	"fmt"
	"sort"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/npillmayer/caseless/internal/tracing"
)

// UnicodeVersion is the version of the Unicode Standard the case folding
// data conforms to. Exposed for diagnostic purposes.
//
// The fold table derives from the golang.org/x/text tables, so this is
// the x/text data version, not unicode.Version of the Go runtime (the
// two may differ). Keep in sync with the UCD pin in internal/testdata.
const UnicodeVersion = "12.0.0"

// Case folding a single code point yields at most this many code points.
const maxFoldExpansion = 3

// foldEntry maps a single code point onto its full case folding. The fold
// is at most maxFoldExpansion code points long; unused slots of folded
// stay zero. Only changing mappings are kept in the table, so n >= 1 holds
// for every entry.
type foldEntry struct {
	src    rune
	folded [maxFoldExpansion]rune
	n      int
}

// foldTable is the case folding table, sorted by source code point.
// It is created once by SetupFoldTable and never mutated afterwards,
// making it safe for concurrent lookups.
var foldTable []foldEntry

var setupOnce sync.Once

// SetupFoldTable is the top-level preparation function: it creates the
// case folding table used by all folding and matching operations. Clients
// normally need not call it themselves, as every transform and matcher
// does so on first use. (Concurrency-safe).
func SetupFoldTable() {
	setupOnce.Do(setupFoldTable)
}

// setupFoldTable derives the full (default) case folding of every Unicode
// scalar value from the golang.org/x/text/cases folder and records the
// changing mappings. Identity mappings stay out of the table; absent code
// points fold to themselves.
func setupFoldTable() {
	defer timeTrack(time.Now(), "building case folding table")
	folder := cases.Fold()
	table := make([]foldEntry, 0, 1600)
	var buf [utf8.UTFMax]byte
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if !utf8.ValidRune(r) { // skip surrogates
			continue
		}
		n := utf8.EncodeRune(buf[:], r)
		folded := folder.String(string(buf[:n]))
		if folded == string(buf[:n]) {
			continue
		}
		entry := foldEntry{src: r}
		for _, f := range folded {
			if entry.n == maxFoldExpansion {
				panic(fmt.Sprintf("caseless: case folding of %#U exceeds %d code points",
					r, maxFoldExpansion))
			}
			entry.folded[entry.n] = f
			entry.n++
		}
		if entry.n == 0 {
			panic(fmt.Sprintf("caseless: case folding of %#U is empty", r))
		}
		table = append(table, entry)
	}
	if !sort.SliceIsSorted(table, func(i, j int) bool { return table[i].src < table[j].src }) {
		panic("caseless: case folding table is not sorted")
	}
	foldTable = table
	tracing.Infof("caseless: case folding table holds %d entries", len(foldTable))
}

func timeTrack(start time.Time, name string) {
	tracing.Debugf("%s took %s", name, time.Since(start))
}

// lookupFold finds the fold entry for a code point, if any. The table is
// sorted by source code point, making the lookup a binary search.
func lookupFold(r rune) (foldEntry, bool) {
	i := sort.Search(len(foldTable), func(i int) bool {
		return foldTable[i].src >= r
	})
	if i < len(foldTable) && foldTable[i].src == r {
		return foldTable[i], true
	}
	return foldEntry{}, false
}
