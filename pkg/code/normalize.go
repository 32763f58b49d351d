package code

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Normalize converts a raw code string to its canonical compact form:
// every Unicode whitespace character is removed (not collapsed) and the
// remainder is uppercased using full case mapping, so "de 12 34" becomes
// "DE1234" and "straße" becomes "STRASSE".
//
// The function is pure and total: any input, including the empty string,
// normalizes successfully.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// cases.Caser carries per-use state, so the chain is built per call
	// to keep Normalize safe for concurrent use.
	t := transform.Chain(
		runes.Remove(runes.In(unicode.White_Space)),
		cases.Upper(language.Und),
	)

	// Neither transformer reports errors; invalid UTF-8 is replaced with
	// U+FFFD rather than rejected.
	out, _, _ := transform.String(t, raw)
	return out
}
