package code

import (
	"strings"
	"unicode/utf8"
)

// Code is an immutable, canonical representation of a textual code such as
// a bank, country or currency identifier. The underlying string is the
// compact form produced by Normalize: no whitespace, uppercase only.
//
// Code is a defined string type, so ==, < and map-key usage all operate on
// the compact form directly. Always construct values through New (or text
// unmarshaling); converting a raw string with Code(s) bypasses
// normalization.
type Code string

// New returns the Code for raw, normalized to its compact form.
// Construction never fails; an empty or whitespace-only input yields the
// empty Code.
func New(raw string) Code {
	return Code(Normalize(raw))
}

// String returns the compact form of the code.
func (c Code) String() string {
	return string(c)
}

// Compact returns the compact form of the code. It is equivalent to
// String and exists for call sites where the explicit name reads better.
func (c Code) Compact() string {
	return string(c)
}

// Length returns the number of characters (runes, not bytes) in the
// compact form.
func (c Code) Length() int {
	return utf8.RuneCountInString(string(c))
}

// IsEmpty reports whether the compact form is empty.
func (c Code) IsEmpty() bool {
	return c == ""
}

// Equal reports whether c and other have the same compact form. It is
// equivalent to c == other.
func (c Code) Equal(other Code) bool {
	return c == other
}

// Compare returns -1, 0 or +1 depending on whether c sorts before, equal
// to, or after other in lexicographic (codepoint-wise) order of the
// compact forms.
func (c Code) Compare(other Code) int {
	return strings.Compare(string(c), string(other))
}

// Less reports whether c sorts strictly before other.
func (c Code) Less(other Code) bool {
	return c < other
}

// GoString returns the diagnostic form "<Code=VALUE>". It is meant for
// debug output (%#v) only and never participates in equality or
// persistence.
func (c Code) GoString() string {
	return "<Code=" + string(c) + ">"
}

// Component returns the characters of the compact form in the half-open
// range [start, end), with offsets counted in runes. Out-of-range
// requests degrade to the empty string rather than failing: the result is
// "" when start is negative, start >= Length(), end > Length(), or
// end <= start.
func (c Code) Component(start, end int) string {
	if start < 0 || end <= start {
		return ""
	}
	r := []rune(string(c))
	if start >= len(r) || end > len(r) {
		return ""
	}
	return string(r[start:end])
}

// ComponentFrom returns the characters of the compact form from the rune
// offset start to the end of the code, or "" when start is negative or
// start >= Length().
func (c Code) ComponentFrom(start int) string {
	if start < 0 {
		return ""
	}
	r := []rune(string(c))
	if start >= len(r) {
		return ""
	}
	return string(r[start:])
}

// MarshalText encodes the code as its compact form.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText decodes text into c, normalizing it first so the decoded
// value holds the compact-form invariant regardless of how the text was
// produced.
func (c *Code) UnmarshalText(text []byte) error {
	*c = New(string(text))
	return nil
}
