// Package code provides an immutable, normalized value type for textual
// codes such as bank, country and currency identifiers.
//
// Raw codes arrive from users and external systems with inconsistent
// casing and stray whitespace ("gb29 nwbk 6016 1331 9268 19", "de ut de
// ff"). The package reduces any such input to a single canonical "compact"
// form — every Unicode whitespace character removed, the remainder
// uppercased — and makes that form the basis of all comparison, ordering
// and extraction operations. Domain packages build their own code types on
// top of Code and add validation; this package deliberately performs none.
//
// # Usage
//
//	import "github.com/dmitrymomot/codekit/pkg/code"
//
//	bic := code.New("deut de ff")
//	bic.Compact()         // "DEUTDEFF"
//	bic.Length()          // 8
//	bic.Component(0, 4)   // "DEUT"
//	bic.ComponentFrom(4)  // "DEFF"
//
//	code.New("DEUTDEFF") == bic // true
//
// # Canonical Form
//
// Normalize is the pure function behind New. It removes whitespace rather
// than collapsing it, so internal spacing disappears entirely, and it
// applies full Unicode case mapping, so characters without a simple
// uppercase equivalent still fold correctly ("ß" becomes "SS"). It is
// idempotent and never fails; the empty string normalizes to itself.
//
// # Comparison and Ordering
//
// Code is a defined string type, so the language's own ==, < and map-key
// hashing already agree with the compact form. Equal, Less and Compare
// expose the same relations as methods for call sites that prefer them,
// and together they form a total order: for any two values exactly one of
// Less, Equal and the inverse Less holds.
//
// # Component Extraction
//
// Domain code formats pack sub-fields at fixed character positions (a BIC
// carries its country code at offsets 4..6, for example). Component and
// ComponentFrom slice the compact form by rune offsets and never fail:
// requests that fall outside the code degrade to the empty string, which
// keeps downstream field checks simple.
//
// # Defining Domain Code Types
//
// Build concrete code types as defined types over Code (or structs that
// embed it), construct them through New, and layer domain validation and
// extra construction options at that level:
//
//	type BIC struct{ code.Code }
//
//	func ParseBIC(raw string) (BIC, error) {
//	    c := code.New(raw)
//	    if c.Length() != 8 && c.Length() != 11 {
//	        return BIC{}, ErrInvalidLength
//	    }
//	    return BIC{c}, nil
//	}
//
// # Thread Safety
//
// Code is an immutable value with no internal state and Normalize is a
// pure function; everything in the package is safe for unrestricted
// concurrent use.
package code
