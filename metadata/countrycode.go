package metadata

import (
	_ "embed"
)

// defaultDocument is the embedded metadata document shipped with this
// module (spec.md §6: "the document ships alongside a static
// country_code -> region map"). It is read once, at embed time, never at
// runtime — the core never performs file I/O.
//
//go:embed testdata/metadata.yaml
var defaultDocument []byte

// defaultCountryCallingCodes is the static country-calling-code -> ordered
// region-code table (spec.md §3's CountryCodeToRegions, system overview
// component 5). The first entry per code is its main/canonical region.
var defaultCountryCallingCodes = map[int][]string{
	1:   {"US", "CA"},
	7:   {"RU"},
	33:  {"FR"},
	39:  {"IT"},
	44:  {"GB"},
	49:  {"DE"},
	55:  {"BR"},
	61:  {"AU"},
	81:  {"JP"},
	86:  {"CN"},
	91:  {"IN"},
	998: {"UZ"},
	800: {"001"},
}

// defaultSource implements Source over the embedded document and table.
type defaultSource struct{}

func (defaultSource) Document() ([]byte, error) { return defaultDocument, nil }

func (defaultSource) CountryCallingCodes() map[int][]string {
	return defaultCountryCallingCodes
}

// DefaultSource returns the module's built-in Source: a representative
// slice of regions bundled at compile time via go:embed. Callers needing
// the full set of regions supply their own Source.
func DefaultSource() Source { return defaultSource{} }
