package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	cpfPattern   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cepPattern   = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	phonePattern = regexp.MustCompile(`^(\+55\s?)?(\(?\d{2}\)?\s?)?\d{4,5}-?\d{4}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// LengthBetween reports whether s has between min and max characters,
// counted in runes so accented names are not penalised.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// IsFormattedCPF reports whether s is a punctuated CPF (XXX.XXX.XXX-XX).
func IsFormattedCPF(s string) bool {
	return cpfPattern.MatchString(s)
}

// IsCEP reports whether s is a postal code, with or without the dash.
func IsCEP(s string) bool {
	return cepPattern.MatchString(s)
}

// IsPhone reports whether s looks like a Brazilian phone number as typed on
// the form: optional +55, optional area code, 8 or 9 digit subscriber number.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsEmail validates the address format, rejecting domains that start or end
// with a dot.
func IsEmail(s string) bool {
	if !emailPattern.MatchString(s) {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// IsISODate reports whether s has the YYYY-MM-DD shape.
func IsISODate(s string) bool {
	return datePattern.MatchString(s)
}
