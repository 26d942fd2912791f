package party

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/partysvc/backend/internal/domain/shared"
)

// usStateCodes is the closed set of accepted two-letter state/region codes:
// the fifty states, DC, and the inhabited territories.
var usStateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {}, "AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {},
}

// AddressFields carries the raw or normalized content of an address.
// It is the input to canonicalization on both the create and update paths
// so that deduplication is never path-dependent.
type AddressFields struct {
	StreetOne  string
	StreetTwo  string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Normalize applies the fixed per-field canonicalization rules: trim
// whitespace everywhere, title-case street lines and city, uppercase the
// state and country codes. The state code is validated against the closed
// two-letter set; an unknown code yields an INVALID_FIELD error naming the
// offending value. Normalize is pure and idempotent.
func (f AddressFields) Normalize() (AddressFields, error) {
	norm := AddressFields{
		StreetOne:  titleCase(strings.TrimSpace(f.StreetOne)),
		StreetTwo:  titleCase(strings.TrimSpace(f.StreetTwo)),
		City:       titleCase(strings.TrimSpace(f.City)),
		State:      strings.ToUpper(strings.TrimSpace(f.State)),
		PostalCode: strings.TrimSpace(f.PostalCode),
		Country:    strings.ToUpper(strings.TrimSpace(f.Country)),
	}

	if _, ok := usStateCodes[norm.State]; !ok {
		return AddressFields{}, shared.NewInvalidFieldError(
			fmt.Sprintf("invalid US state code: %q", strings.TrimSpace(f.State)))
	}

	return norm, nil
}

// Fingerprint computes the deterministic content hash over the normalized
// fields. Callers must normalize first; the hash is a hex-encoded SHA-256
// of the fields joined in a fixed order.
func (f AddressFields) Fingerprint() string {
	payload := strings.Join([]string{
		f.StreetOne,
		f.StreetTwo,
		f.City,
		f.State,
		f.PostalCode,
		f.Country,
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// titleCase uppercases every letter that starts a word and lowercases the
// rest, where a word starts after any non-letter. Unlike the Unicode
// title-casing tables this keeps unit designators like "4B" intact, which
// the fingerprint normalization depends on.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
