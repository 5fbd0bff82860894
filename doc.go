// Package phonenumber parses, validates, classifies and formats
// international telephone numbers.
//
// Given free-form text — with punctuation, vanity letters, extension
// markers or RFC 3966 tel: syntax — and a default region, Parse extracts a
// PhoneNumber: country calling code, national significant number, optional
// extension, leading-zero bookkeeping and the provenance of the country
// code. Format renders a PhoneNumber back to E.164, INTERNATIONAL, NATIONAL
// or RFC 3966 form; IsValidNumber and GetNumberType classify it against
// per-region metadata.
//
// Metadata
//
// Dialing rules live in the metadata package and are supplied by a
// metadata.Source; DefaultSource ships a representative slice of regions
// embedded at compile time. The core never reads a metadata document from
// disk itself.
//
// About
//
// Project page: https://github.com/xlab/phonenumber
package phonenumber
