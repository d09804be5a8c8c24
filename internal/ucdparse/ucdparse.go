/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

UCD files are line oriented: every data line carries a code point (or a
range of code points), followed by semicolon-separated data fields and an
optional '#'-prefixed comment. Comment-only and blank lines carry no data.
*/
package ucdparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token subsumes the properties of one data line of UCD input.
type Token struct {
	LineNo   int      // line number within the input source
	runeFrom rune     // first/single code point
	runeTo   rune     // final code point of range (may be identical to runeFrom)
	Fields   []string // data fields of the line, excluding the code-point field
	Comment  string   // rest-of-line comment, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if len(token.Fields) > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the code-point range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Runes parses field #i as a sequence of space-separated hexadecimal code
// points, the format UCD uses for mapping targets (e.g. the case folding
// field of CaseFolding.txt). A malformed or empty field yields nil.
func (token *Token) Runes(i int) []rune {
	field := token.Field(i)
	if field == "" {
		return nil
	}
	var runes []rune
	for _, hex := range strings.Fields(field) {
		n, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return nil
		}
		runes = append(runes, rune(n))
	}
	return runes
}

// Parse iterates over each data line of a UCD file and calls callback f
// on it. Comment-only and blank lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		token, err := parseLine(lineno, scanner.Text())
		if err != nil {
			return err
		}
		if token != nil {
			f(token)
		}
	}
	return scanner.Err()
}

// parseLine breaks one line of UCD input into a token. Lines without a
// data item produce a nil token.
func parseLine(lineno int, line string) (*Token, error) {
	token := &Token{LineNo: lineno}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	fields := strings.Split(line, ";")
	from, to, err := parseRuneRange(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("ucd line %d: %w", lineno, err)
	}
	token.runeFrom, token.runeTo = from, to
	for _, field := range fields[1:] {
		token.Fields = append(token.Fields, strings.TrimSpace(field))
	}
	return token, nil
}

// parseRuneRange parses "XXXX" or "XXXX..YYYY".
func parseRuneRange(s string) (from, to rune, err error) {
	parts := strings.SplitN(s, "..", 2)
	n, err := strconv.ParseInt(parts[0], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("hex decoding error: %w", err)
	}
	from, to = rune(n), rune(n)
	if len(parts) == 2 {
		n, err = strconv.ParseInt(parts[1], 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("hex decoding error: %w", err)
		}
		to = rune(n)
	}
	return from, to, nil
}
