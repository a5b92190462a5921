package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678900", DigitsOnly("123.456.789-00"))
	assert.Equal(t, "", DigitsOnly("abc"))
	assert.Equal(t, "4520", DigitsOnly(" 45 2a0"))
}

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "123.4"},
		{"123456", "123.456"},
		{"1234567", "123.456.7"},
		{"123456789", "123.456.789"},
		{"1234567890", "123.456.789-0"},
		{"12345678900", "123.456.789-00"},
		{"1234567890012345", "123.456.789-00"},
		{"123.456.789-00", "123.456.789-00"},
		{"abc123def456", "123.456"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCPF(tt.raw))
		})
	}
}

func TestFormatCPF_PrefixOfMask(t *testing.T) {
	full := regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	digits := "98765432100777"

	for n := 0; n <= len(digits); n++ {
		got := FormatCPF(digits[:n])
		if n >= 11 {
			assert.Regexp(t, full, got)
		} else {
			assert.True(t, strings.HasPrefix("987.654.321-00", got), "%q is not a prefix of the full mask", got)
		}
	}
}

func TestFormatCEP(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"452", "452"},
		{"45200", "45200"},
		{"452000", "45200-0"},
		{"45200000", "45200-000"},
		{"45200-000", "45200-000"},
		{"4520000099999", "45200-000"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := FormatCEP(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 9)
		})
	}
}

func TestFormatters_Idempotent(t *testing.T) {
	inputs := []string{"", "1", "12345", "123456789", "12345678900", "123.456.789-00", "x9y8z7", "45200-000999"}

	for _, in := range inputs {
		once := FormatCPF(in)
		assert.Equal(t, once, FormatCPF(once), "FormatCPF(%q)", in)

		onceCEP := FormatCEP(in)
		assert.Equal(t, onceCEP, FormatCEP(onceCEP), "FormatCEP(%q)", in)
	}
}
