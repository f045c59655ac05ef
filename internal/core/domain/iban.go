package domain

import (
	"regexp"
	"strings"
	"unicode"

	"daes-settlement-engine/pkg/apperror"
)

// IBAN is a destination account identifier. Validation covers length and
// character class only; no ISO 7064 mod-97 checksum is performed.
type IBAN struct {
	value string
}

const (
	ibanMinLength = 15
	ibanMaxLength = 34
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]+$`)

// NewIBAN strips whitespace, upper-cases and validates the candidate IBAN.
func NewIBAN(value string) (IBAN, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	cleaned = strings.ToUpper(cleaned)

	if len(cleaned) < ibanMinLength || len(cleaned) > ibanMaxLength {
		return IBAN{}, apperror.ErrInvalidIBAN(value, "length must be between 15 and 34 characters")
	}
	if !ibanPattern.MatchString(cleaned) {
		return IBAN{}, apperror.ErrInvalidIBAN(value, "must start with a two-letter country code followed by alphanumerics")
	}
	return IBAN{value: cleaned}, nil
}

// String returns the normalized IBAN.
func (i IBAN) String() string {
	return i.value
}

// CountryCode returns the two-letter country prefix.
func (i IBAN) CountryCode() string {
	return i.value[:2]
}
