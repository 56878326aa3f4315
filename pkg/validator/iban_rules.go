package validator

import (
	"regexp"
	"slices"
	"strings"
)

// ibanRegex is the country-independent IBAN shape: country, check digits,
// then 13 to 20 alphanumeric characters.
var ibanRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{4}[A-Z0-9]{9,16}$`)

// ibanCountryFormats describes the BBAN (everything after the first four
// characters) for every supported country.
var ibanCountryFormats = map[string]*regexp.Regexp{
	"AD": regexp.MustCompile(`^\d{8}[A-Z0-9]{12}$`),
	"AL": regexp.MustCompile(`^\d{8}[A-Z0-9]{16}$`),
	"AT": regexp.MustCompile(`^\d{16}$`),
	"BA": regexp.MustCompile(`^\d{16}$`),
	"BE": regexp.MustCompile(`^\d{12}$`),
	"BG": regexp.MustCompile(`^[A-Z]{4}\d{6}[A-Z0-9]{8}$`),
	"CH": regexp.MustCompile(`^\d{5}[A-Z0-9]{12}$`),
	"CY": regexp.MustCompile(`^\d{8}[A-Z0-9]{16}$`),
	"CZ": regexp.MustCompile(`^\d{20}$`),
	"DE": regexp.MustCompile(`^\d{18}$`),
	"DK": regexp.MustCompile(`^\d{14}$`),
	"EE": regexp.MustCompile(`^\d{16}$`),
	"ES": regexp.MustCompile(`^\d{20}$`),
	"FI": regexp.MustCompile(`^\d{14}$`),
	"FO": regexp.MustCompile(`^\d{14}$`),
	"FR": regexp.MustCompile(`^\d{10}[A-Z0-9]{11}\d\d$`),
	"GB": regexp.MustCompile(`^[A-Z]{4}\d{14}$`),
	"GI": regexp.MustCompile(`^[A-Z]{4}[A-Z0-9]{15}$`),
	"GL": regexp.MustCompile(`^\d{14}$`),
	"GR": regexp.MustCompile(`^\d{7}[A-Z0-9]{16}$`),
	"HR": regexp.MustCompile(`^\d{17}$`),
	"HU": regexp.MustCompile(`^\d{24}$`),
	"IE": regexp.MustCompile(`^[A-Z]{4}\d{14}$`),
	"IL": regexp.MustCompile(`^\d{19}$`),
	"IS": regexp.MustCompile(`^\d{22}$`),
	"IT": regexp.MustCompile(`^[A-Z]\d{10}[A-Z0-9]{12}$`),
	"LB": regexp.MustCompile(`^\d{4}[A-Z0-9]{20}$`),
	"LI": regexp.MustCompile(`^\d{5}[A-Z0-9]{12}$`),
	"LT": regexp.MustCompile(`^\d{16}$`),
	"LU": regexp.MustCompile(`^\d{3}[A-Z0-9]{13}$`),
	"LV": regexp.MustCompile(`^[A-Z]{4}[A-Z0-9]{13}$`),
	"MC": regexp.MustCompile(`^\d{10}[A-Z0-9]{11}\d\d$`),
	"ME": regexp.MustCompile(`^\d{18}$`),
	"MK": regexp.MustCompile(`^\d{3}[A-Z0-9]{10}\d\d$`),
	"MT": regexp.MustCompile(`^[A-Z]{4}\d{5}[A-Z0-9]{18}$`),
	"MU": regexp.MustCompile(`^[A-Z]{4}\d{19}[A-Z]{3}$`),
	"NL": regexp.MustCompile(`^[A-Z]{4}\d{10}$`),
	"NO": regexp.MustCompile(`^\d{11}$`),
	"PL": regexp.MustCompile(`^\d{8}[A-Z0-9]{16}$`),
	"PT": regexp.MustCompile(`^\d{21}$`),
	"RO": regexp.MustCompile(`^[A-Z]{4}[A-Z0-9]{16}$`),
	"RS": regexp.MustCompile(`^\d{18}$`),
	"SA": regexp.MustCompile(`^\d{2}[A-Z0-9]{18}$`),
	"SE": regexp.MustCompile(`^\d{20}$`),
	"SI": regexp.MustCompile(`^\d{15}$`),
	"SK": regexp.MustCompile(`^\d{20}$`),
	"SM": regexp.MustCompile(`^[A-Z]\d{10}[A-Z0-9]{12}$`),
	"TN": regexp.MustCompile(`^\d{20}$`),
	"TR": regexp.MustCompile(`^\d{5}[A-Z0-9]{17}$`),
}

// ibanCountries is the allow-list of IBAN country prefixes.
var ibanCountries = []string{
	"AD", "AL", "AT", "BA", "BE", "BG", "CH", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FO", "FR", "GB",
	"GI", "GL", "GR", "HR", "HU", "IE", "IL", "IS", "IT", "LB", "LI", "LT", "LU", "LV", "MC", "ME", "MK",
	"MT", "MU", "NL", "NO", "PL", "PT", "RO", "RS", "SA", "SE", "SI", "SK", "SM", "TN", "TR",
}

// CheckIBAN reports whether v is a non-empty string. In strict mode it must
// also be a structurally valid IBAN for a supported country whose MOD-97
// checksum equals 1. Case, spaces and separators are ignored in strict mode.
func CheckIBAN(v any, strict bool) bool {
	if !CheckString(v, false) {
		return false
	}
	if !strict {
		return true
	}
	return IsIBAN(v.(string))
}

// IsIBAN runs the full IBAN check on s.
func IsIBAN(s string) bool {
	iban := NormalizeIBAN(s)
	if !ibanRegex.MatchString(iban) {
		return false
	}

	country := iban[:2]
	if format, ok := ibanCountryFormats[country]; ok && !format.MatchString(iban[4:]) {
		return false
	}
	if !slices.Contains(ibanCountries, country) {
		return false
	}

	return ibanChecksum(iban[4:]+iban[:4]) == 1
}

// NormalizeIBAN upper-cases ASCII letters and drops every character outside
// [0-9A-Z]. Non-ASCII letters are dropped rather than case-mapped.
func NormalizeIBAN(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if ('0' <= c && c <= '9') || ('A' <= c && c <= 'Z') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ibanChecksum computes the ISO 7064 MOD-97-10 remainder of a rearranged
// IBAN. The last four characters are the moved country code and check
// digits: the country positions must hold letters and the check positions
// digits, otherwise the remainder is reported as 0.
func ibanChecksum(rearranged string) int {
	n := len(rearranged)
	r := 0
	for i := 0; i < n; i++ {
		c := rearranged[i]
		var k int
		switch {
		case '0' <= c && c <= '9':
			if i == n-4 || i == n-3 {
				return 0
			}
			k = int(c - '0')
		case 'A' <= c && c <= 'Z':
			if i == n-2 || i == n-1 {
				return 0
			}
			k = int(c) - 55
		default:
			return 0
		}
		if k > 9 {
			r = (100*r + k) % 97
		} else {
			r = (10*r + k) % 97
		}
	}
	return r
}
