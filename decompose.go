package caseless

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// A Decomposer reads code points from an upstream io.RuneReader and
// produces the canonical (NFD) or compatibility (NFKD) decomposition of
// the input in canonical order. The decomposition kind is selected with
// norm.NFD or norm.NFKD; the decomposition mappings and combining classes
// come from the golang.org/x/text/unicode/norm data tables, which carry
// the fully expanded decompositions (no recursive re-expansion needed).
// Hangul syllables, which norm decomposes arithmetically rather than by
// table, are expanded into their conjoining jamo here.
//
// A Decomposer buffers the run of combining marks between two starter
// (combining class 0) code points and re-emits it in non-decreasing
// combining-class order. The reordering is stable: marks of equal class
// keep their relative order, as required by the Unicode canonical
// ordering algorithm. A trailing run with no closing starter is flushed
// when the upstream is exhausted.
//
// Decomposers are not safe for concurrent use.
type Decomposer struct {
	in     io.RuneReader
	form   norm.Form
	buf    []markedRune // reorder buffer: pending run of decomposed code points
	sorted bool         // reorder buffer holds a canonically ordered run
	err    error        // sticky upstream termination
}

// markedRune pairs a code point with its canonical combining class.
type markedRune struct {
	r   rune
	ccc uint8
}

// NewDecomposer creates a Decomposer reading from in. form must be
// norm.NFD or norm.NFKD; the composing forms have no meaning here and
// NewDecomposer panics when one is passed.
func NewDecomposer(in io.RuneReader, form norm.Form) *Decomposer {
	if form != norm.NFD && form != norm.NFKD {
		panic("caseless: Decomposer supports norm.NFD and norm.NFKD only")
	}
	d := &Decomposer{form: form}
	d.reset(in, form)
	return d
}

func (d *Decomposer) reset(in io.RuneReader, form norm.Form) {
	d.in = in
	d.form = form
	d.buf = d.buf[:0]
	d.sorted = false
	d.err = nil
}

// ReadRune returns the next code point of the decomposed, canonically
// ordered stream. It returns io.EOF (or the upstream error) once the
// upstream is exhausted and the reorder buffer has been drained.
func (d *Decomposer) ReadRune() (rune, int, error) {
	for {
		if len(d.buf) > 0 {
			if d.buf[0].ccc == 0 {
				// a starter is a run boundary; whatever follows begins
				// a new, yet unordered run
				d.sorted = false
				return d.pop()
			}
			if d.sorted {
				return d.pop()
			}
		}
		// buffer is empty or holds an unordered run: pull more input
		if d.err != nil {
			if len(d.buf) == 0 {
				return 0, 0, d.err
			}
			d.reorder() // flush the trailing run
			d.sorted = true
			continue
		}
		r, _, err := d.in.ReadRune()
		if err != nil {
			d.err = err
			continue
		}
		d.decompose(r)
	}
}

func (d *Decomposer) pop() (rune, int, error) {
	r := d.buf[0].r
	d.buf = d.buf[1:]
	return r, utf8.RuneLen(r), nil
}

// decompose pushes the full decomposition of r onto the reorder buffer.
func (d *Decomposer) decompose(r rune) {
	if r >= hangulBase && r < hangulEnd {
		d.decomposeHangul(r)
		return
	}
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)
	dec := d.form.Properties(b[:n]).Decomposition()
	if dec == nil {
		d.push(r)
		return
	}
	for len(dec) > 0 {
		c, size := utf8.DecodeRune(dec)
		dec = dec[size:]
		d.push(c)
	}
}

// push appends a single decomposed code point to the reorder buffer.
// A starter closes the currently open run: the run is brought into
// canonical order before the starter goes in behind it.
func (d *Decomposer) push(r rune) {
	ccc := combiningClass(r)
	if ccc == 0 && !d.sorted {
		d.reorder()
		d.sorted = true
	}
	d.buf = append(d.buf, markedRune{r: r, ccc: ccc})
}

// reorder performs the canonical ordering pass over the reorder buffer:
// a stable bubble sort on combining classes. Only adjacent pairs with two
// non-zero classes are swapped, so starters never move and marks of equal
// class keep their relative order. Runs of combining marks are short in
// real-world text, which keeps the quadratic worst case irrelevant.
func (d *Decomposer) reorder() {
	b := d.buf
	for {
		swapped := false
		for i := 1; i < len(b); i++ {
			if b[i].ccc == 0 || b[i-1].ccc == 0 {
				continue
			}
			if b[i-1].ccc > b[i].ccc {
				b[i-1], b[i] = b[i], b[i-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// combiningClass returns the canonical combining class of a code point,
// 0 for starters.
func combiningClass(r rune) uint8 {
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)
	return norm.NFD.Properties(b[:n]).CCC()
}

// Hangul decomposition constants from the Unicode Standard, section 3.12
// (Conjoining Jamo Behavior).
const (
	hangulBase = 0xAC00
	hangulEnd  = hangulBase + jamoLCount*jamoVCount*jamoTCount

	jamoLBase = 0x1100
	jamoVBase = 0x1161
	jamoTBase = 0x11A7

	jamoLCount = 19
	jamoVCount = 21
	jamoTCount = 28
	jamoNCount = jamoVCount * jamoTCount
)

// decomposeHangul arithmetically decomposes a precomposed Hangul syllable
// into its conjoining jamo (all of which are starters).
func (d *Decomposer) decomposeHangul(r rune) {
	index := r - hangulBase
	d.push(jamoLBase + index/jamoNCount)
	d.push(jamoVBase + (index%jamoNCount)/jamoTCount)
	if t := index % jamoTCount; t > 0 {
		d.push(jamoTBase + t)
	}
}
