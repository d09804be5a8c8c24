package caseless

import (
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// The matching functions in this file are fixed compositions of the two
// stream transforms Folder and Decomposer, per the Unicode Standard,
// section 3.13:
//
//    default       fold
//    canonical     NFD → fold → NFD
//    compatibility NFD → fold → NFKD → fold → NFKD
//
// Folding alone does not preserve normalization form (U+0345 COMBINING
// GREEK YPOGEGRAMMENI and characters decomposing to it denormalize under
// folding), hence the trailing NFD pass. Compatibility decomposition can
// surface new foldable letters (e.g. '㎒' decomposing to "MHz"), hence
// the second fold/NFKD cycle.
//
// Each operand gets its own transform instances; nothing is shared
// between the two sides of a comparison.

// Match reports whether a and b match caseless under default caseless
// matching, i.e. after case folding both operands. No normalization is
// applied: canonically equivalent but differently encoded operands do
// not match. Use CanonicalMatch for that.
func Match(a, b io.RuneReader) bool {
	ta, releaseA := pipeDefault(a)
	tb, releaseB := pipeDefault(b)
	defer releaseA()
	defer releaseB()
	return compareStreams(ta, tb) == 0
}

// CanonicalMatch reports whether a and b match caseless under canonical
// caseless matching, identifying canonically equivalent operands.
func CanonicalMatch(a, b io.RuneReader) bool {
	ta, releaseA := pipeCanonical(a)
	tb, releaseB := pipeCanonical(b)
	defer releaseA()
	defer releaseB()
	return compareStreams(ta, tb) == 0
}

// CompatibilityMatch reports whether a and b match caseless under
// compatibility caseless matching, additionally identifying
// compatibility equivalents such as fullwidth and squared forms.
func CompatibilityMatch(a, b io.RuneReader) bool {
	ta, releaseA := pipeCompatibility(a)
	tb, releaseB := pipeCompatibility(b)
	defer releaseA()
	defer releaseB()
	return compareStreams(ta, tb) == 0
}

// Compare compares the default case foldings of a and b code point by
// code point, returning 0 if they are equal, -1 if a sorts before b and
// +1 if a sorts after b. Code points compare by scalar value; when one
// folded stream is a proper prefix of the other, the shorter one sorts
// first.
func Compare(a, b io.RuneReader) int {
	ta, releaseA := pipeDefault(a)
	tb, releaseB := pipeDefault(b)
	defer releaseA()
	defer releaseB()
	return compareStreams(ta, tb)
}

// CanonicalCompare is Compare under canonical caseless matching.
func CanonicalCompare(a, b io.RuneReader) int {
	ta, releaseA := pipeCanonical(a)
	tb, releaseB := pipeCanonical(b)
	defer releaseA()
	defer releaseB()
	return compareStreams(ta, tb)
}

// CompatibilityCompare is Compare under compatibility caseless matching.
func CompatibilityCompare(a, b io.RuneReader) int {
	ta, releaseA := pipeCompatibility(a)
	tb, releaseB := pipeCompatibility(b)
	defer releaseA()
	defer releaseB()
	return compareStreams(ta, tb)
}

// HasPrefix reports whether the default case folding of prefix is a
// prefix of the default case folding of s. A stream is a prefix of
// itself.
func HasPrefix(s, prefix io.RuneReader) bool {
	ts, releaseS := pipeDefault(s)
	tp, releaseP := pipeDefault(prefix)
	defer releaseS()
	defer releaseP()
	return hasPrefixStreams(ts, tp)
}

// CanonicalHasPrefix is HasPrefix under canonical caseless matching.
func CanonicalHasPrefix(s, prefix io.RuneReader) bool {
	ts, releaseS := pipeCanonical(s)
	tp, releaseP := pipeCanonical(prefix)
	defer releaseS()
	defer releaseP()
	return hasPrefixStreams(ts, tp)
}

// CompatibilityHasPrefix is HasPrefix under compatibility caseless
// matching.
func CompatibilityHasPrefix(s, prefix io.RuneReader) bool {
	ts, releaseS := pipeCompatibility(s)
	tp, releaseP := pipeCompatibility(prefix)
	defer releaseS()
	defer releaseP()
	return hasPrefixStreams(ts, tp)
}

// --- String convenience wrappers -------------------------------------------

// MatchString is Match for Go strings.
func MatchString(a, b string) bool {
	return Match(strings.NewReader(a), strings.NewReader(b))
}

// CanonicalMatchString is CanonicalMatch for Go strings.
func CanonicalMatchString(a, b string) bool {
	return CanonicalMatch(strings.NewReader(a), strings.NewReader(b))
}

// CompatibilityMatchString is CompatibilityMatch for Go strings.
func CompatibilityMatchString(a, b string) bool {
	return CompatibilityMatch(strings.NewReader(a), strings.NewReader(b))
}

// CompareString is Compare for Go strings.
func CompareString(a, b string) int {
	return Compare(strings.NewReader(a), strings.NewReader(b))
}

// CanonicalCompareString is CanonicalCompare for Go strings.
func CanonicalCompareString(a, b string) int {
	return CanonicalCompare(strings.NewReader(a), strings.NewReader(b))
}

// CompatibilityCompareString is CompatibilityCompare for Go strings.
func CompatibilityCompareString(a, b string) int {
	return CompatibilityCompare(strings.NewReader(a), strings.NewReader(b))
}

// HasPrefixString is HasPrefix for Go strings.
func HasPrefixString(s, prefix string) bool {
	return HasPrefix(strings.NewReader(s), strings.NewReader(prefix))
}

// CanonicalHasPrefixString is CanonicalHasPrefix for Go strings.
func CanonicalHasPrefixString(s, prefix string) bool {
	return CanonicalHasPrefix(strings.NewReader(s), strings.NewReader(prefix))
}

// CompatibilityHasPrefixString is CompatibilityHasPrefix for Go strings.
func CompatibilityHasPrefixString(s, prefix string) bool {
	return CompatibilityHasPrefix(strings.NewReader(s), strings.NewReader(prefix))
}

// --- Transform pipelines ---------------------------------------------------

// Pipelines compose pooled transform instances. The returned teardown
// function puts the instances back into their pools; comparisons always
// run to completion within one matching function, so the lifetime of a
// pipeline is the enclosing call.

func pipeDefault(in io.RuneReader) (io.RuneReader, func()) {
	f := borrowFolder(in)
	return f, func() {
		releaseFolder(f)
	}
}

func pipeCanonical(in io.RuneReader) (io.RuneReader, func()) {
	d1 := borrowDecomposer(in, norm.NFD)
	f := borrowFolder(d1)
	d2 := borrowDecomposer(f, norm.NFD)
	return d2, func() {
		releaseDecomposer(d2)
		releaseFolder(f)
		releaseDecomposer(d1)
	}
}

func pipeCompatibility(in io.RuneReader) (io.RuneReader, func()) {
	d1 := borrowDecomposer(in, norm.NFD)
	f1 := borrowFolder(d1)
	d2 := borrowDecomposer(f1, norm.NFKD)
	f2 := borrowFolder(d2)
	d3 := borrowDecomposer(f2, norm.NFKD)
	return d3, func() {
		releaseDecomposer(d3)
		releaseFolder(f2)
		releaseDecomposer(d2)
		releaseFolder(f1)
		releaseDecomposer(d1)
	}
}

// --- Comparison primitives -------------------------------------------------

// compareStreams pulls one code point at a time from both transformed
// streams and compares by scalar value. The first mismatch decides; with
// no mismatch the shorter stream sorts first.
func compareStreams(a, b io.RuneReader) int {
	for {
		ra, _, errA := a.ReadRune()
		rb, _, errB := b.ReadRune()
		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return -1
		case errB != nil:
			return 1
		}
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
}

// hasPrefixStreams reports whether the transformed stream prefix is a
// prefix of the transformed stream s. Exhausting both streams together
// counts as a match: a stream is a prefix of itself.
func hasPrefixStreams(s, prefix io.RuneReader) bool {
	for {
		rp, _, errP := prefix.ReadRune()
		if errP != nil {
			return true
		}
		rs, _, errS := s.ReadRune()
		if errS != nil || rs != rp {
			return false
		}
	}
}
