// Package codekit is a collection of small, dependency-light building
// blocks for working with textual identifiers in Go applications.
//
// Each package under pkg/ is standalone and importable on its own:
//
//   - pkg/code – an immutable, normalized value type for bank, country,
//     currency and similar codes, with canonical-form comparison, ordering
//     and fixed-position component extraction.
//
// The packages are stateless and safe for concurrent use; domain-specific
// validation is intentionally left to the code that consumes them.
package codekit
