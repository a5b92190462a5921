package utils

import (
	"strings"
)

const (
	cpfDigits = 11
	cepDigits = 8
)

// DigitsOnly strips every non-digit character.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatCPF masks raw input as XXX.XXX.XXX-XX. Extra digits are dropped and
// separators are only inserted once a digit follows them, so partial input
// yields a prefix of the full mask.
func FormatCPF(raw string) string {
	d := DigitsOnly(raw)
	if len(d) > cpfDigits {
		d = d[:cpfDigits]
	}

	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// FormatCEP masks raw input as XXXXX-XXX.
func FormatCEP(raw string) string {
	d := DigitsOnly(raw)
	if len(d) > cepDigits {
		d = d[:cepDigits]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}
