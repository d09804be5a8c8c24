package caseless

import (
	"io"
	"strings"
	"unicode/utf8"
)

// A Folder reads code points from an upstream io.RuneReader and produces
// the default case folding of the input, one code point at a time.
// Concatenating everything a Folder emits yields the Unicode full case
// folding of the concatenated input.
//
// A fold may expand a single code point into up to three (e.g. 'ﬃ' folds
// to "ffi"). The overflow code points are held in a small fixed queue and
// emitted before the next upstream read, so a Folder never looks ahead in
// its input.
//
// Folders are not safe for concurrent use. A Folder holds no external
// resources and may simply be dropped when a client abandons a stream.
type Folder struct {
	in      io.RuneReader
	pending [maxFoldExpansion - 1]rune // overflow of a multi code-point fold
	npend   int
}

// NewFolder creates a Folder reading from in.
func NewFolder(in io.RuneReader) *Folder {
	SetupFoldTable()
	f := &Folder{}
	f.reset(in)
	return f
}

func (f *Folder) reset(in io.RuneReader) {
	f.in = in
	f.npend = 0
}

// ReadRune returns the next code point of the case-folded stream.
// It returns io.EOF (or the upstream error) after the folded stream is
// exhausted. Folding itself cannot fail.
func (f *Folder) ReadRune() (rune, int, error) {
	if f.npend > 0 {
		r := f.pending[0]
		f.pending[0] = f.pending[1]
		f.npend--
		return r, utf8.RuneLen(r), nil
	}
	r, _, err := f.in.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	entry, ok := lookupFold(r)
	if !ok {
		return r, utf8.RuneLen(r), nil
	}
	for i := 1; i < entry.n; i++ {
		f.pending[f.npend] = entry.folded[i]
		f.npend++
	}
	return entry.folded[0], utf8.RuneLen(entry.folded[0]), nil
}

// Fold returns the lazy case folding of the code-point stream in.
func Fold(in io.RuneReader) io.RuneReader {
	return NewFolder(in)
}

// FoldString returns the default case folding of s. This is the eager
// variant of Fold and the only operation in this package that builds a
// transformed copy of its input.
func FoldString(s string) string {
	folder := borrowFolder(strings.NewReader(s))
	defer releaseFolder(folder)
	var sb strings.Builder
	sb.Grow(len(s))
	for {
		r, _, err := folder.ReadRune()
		if err != nil {
			return sb.String()
		}
		sb.WriteRune(r)
	}
}
