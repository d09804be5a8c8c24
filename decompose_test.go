package caseless

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/unicode/norm"
)

func decomposeString(t *testing.T, s string, form norm.Form) string {
	t.Helper()
	d := NewDecomposer(strings.NewReader(s), form)
	var sb strings.Builder
	for {
		r, _, err := d.ReadRune()
		if err == io.EOF {
			return sb.String()
		}
		if err != nil {
			t.Fatalf("decomposer failed with error: %s", err)
		}
		sb.WriteRune(r)
	}
}

func TestDecomposeCanonical(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []struct {
		in, out string
	}{
		{"café", "café"},        // é = e + combining acute
		{"Å", "Å"},              // Å = A + combining ring
		{"ế", "ế"},        // ế decomposes twice over
		{"㎒", "㎒"},               // ㎒ has no canonical decomposition
		{"À", "À"},             // already decomposed
	}
	for _, pair := range inputs {
		if have := decomposeString(t, pair.in, norm.NFD); have != pair.out {
			t.Errorf("expected NFD(%q) to be %q, is %q", pair.in, pair.out, have)
		}
	}
}

func TestDecomposeCompatibility(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []struct {
		in, out string
	}{
		{"㎒", "MHz"},        // squared MHz
		{"ﬃ", "ffi"},        // ffi ligature
		{"Ａ", "A"},          // fullwidth A
		{"é", "é"},    // NFKD includes canonical decompositions
	}
	for _, pair := range inputs {
		if have := decomposeString(t, pair.in, norm.NFKD); have != pair.out {
			t.Errorf("expected NFKD(%q) to be %q, is %q", pair.in, pair.out, have)
		}
	}
}

func TestDecomposeHangul(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Hangul syllables decompose arithmetically into conjoining jamo.
	if have := decomposeString(t, "가", norm.NFD); have != "가" {
		t.Errorf("expected LV syllable to decompose to 2 jamo, have %q", have)
	}
	if have := decomposeString(t, "각", norm.NFD); have != "각" {
		t.Errorf("expected LVT syllable to decompose to 3 jamo, have %q", have)
	}
}

// Combining marks between two starters must come out in non-decreasing
// combining-class order. U+0316 has class 220, U+0301 and U+0300 class 230,
// U+0334 class 1.
func TestDecomposeReordersCombiningMarks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []struct {
		in, out string
	}{
		{"á̖b", "á̖b"},             // 230,220 -> 220,230
		{"á̴̖b", "á̴̖b"}, // 230,220,1 -> 1,220,230
		{"á̖b", "á̖b"},             // already ordered
	}
	for _, pair := range inputs {
		if have := decomposeString(t, pair.in, norm.NFD); have != pair.out {
			t.Errorf("expected reordering of %q to be %q, is %q", pair.in, pair.out, have)
		}
	}
}

// Marks of equal combining class must keep their relative order; they are
// order-significant per the canonical ordering algorithm.
func TestDecomposeReorderIsStable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// 0301 and 0300 both have class 230. 0316 (220) has to move before
	// both without swapping them.
	if have := decomposeString(t, "á̖̀", norm.NFD); have != "á̖̀" {
		t.Errorf("expected stable reordering, have %q", have)
	}
}

// A trailing run of combining marks with no closing starter is flushed at
// end of input.
func TestDecomposeFlushAtEOF(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if have := decomposeString(t, "̖́", norm.NFD); have != "̖́" {
		t.Errorf("expected trailing run to be flushed in order, have %q", have)
	}
	if have := decomposeString(t, "", norm.NFD); have != "" {
		t.Errorf("expected empty stream to stay empty, have %q", have)
	}
}

func TestDecomposeStreamingSplit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "q̖́xế 각y"
	whole := decomposeString(t, input, norm.NFD)
	for split := 0; split <= len(input); split++ {
		if !utf8Boundary(input, split) {
			continue
		}
		d := NewDecomposer(&catRuneReader{parts: []io.RuneReader{
			strings.NewReader(input[:split]),
			strings.NewReader(input[split:]),
		}}, norm.NFD)
		var sb strings.Builder
		for {
			r, _, err := d.ReadRune()
			if err != nil {
				break
			}
			sb.WriteRune(r)
		}
		if sb.String() != whole {
			t.Errorf("split at %d: expected %q, have %q", split, whole, sb.String())
		}
	}
}

func TestDecomposerRejectsComposingForms(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Error("expected NewDecomposer to panic for norm.NFC")
		}
	}()
	NewDecomposer(strings.NewReader("x"), norm.NFC)
}
