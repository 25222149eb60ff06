package romanum

import (
	"regexp"
	"strings"
)

// Bounds of the representable range. The grammar's four-M thousands cap
// admits nothing above 4999, and there is no numeral for zero.
const (
	MinNumeral = 1
	MaxNumeral = 4999
)

// MaxEncodedLen is the length of the longest numeral Encode can produce,
// "MMMMDCCCLXXXVIII" (4888).
const MaxEncodedLen = 16

// digit is one row of the conversion table.
type digit struct {
	sym string
	val int
}

// digits is walked top to bottom by both Encode and Decode. The greedy
// scan is only correct because values are strictly descending.
var digits = [13]digit{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// numeralPattern accepts exactly the classical forms: 0-4 thousands, then
// hundreds, tens and ones groups that are either a subtractive pair or an
// optional half symbol followed by up to three units.
var numeralPattern = regexp.MustCompile(`^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// Encode converts n to its Roman numeral representation. n must lie in
// [MinNumeral, MaxNumeral]; anything else returns a *RangeError.
func Encode(n int) (string, error) {
	if n < MinNumeral || n > MaxNumeral {
		return "", &RangeError{N: int64(n)}
	}
	var b strings.Builder
	b.Grow(MaxEncodedLen)
	for _, d := range digits {
		for n >= d.val {
			b.WriteString(d.sym)
			n -= d.val
		}
	}
	// the table covers every residue down to 1, so n is 0 here
	return b.String(), nil
}

// Decode converts a Roman numeral to its integer value. Only canonical
// uppercase forms are accepted; anything else returns a *SyntaxError.
func Decode(s string) (int, error) {
	if !Valid(s) {
		return 0, &SyntaxError{Input: s}
	}
	result, idx := 0, 0
	for _, d := range digits {
		for strings.HasPrefix(s[idx:], d.sym) {
			result += d.val
			idx += len(d.sym)
		}
	}
	// validation guarantees the cursor consumed the whole string
	return result, nil
}

// Valid reports whether s is a well-formed uppercase Roman numeral.
// It never mutates state and may be called repeatedly on the same input.
func Valid(s string) bool {
	// every group in the pattern is optional, so it would match ""
	if s == "" {
		return false
	}
	return numeralPattern.MatchString(s)
}
