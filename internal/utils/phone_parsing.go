package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// PhoneComponents represents the parsed components of a phone number
type PhoneComponents struct {
	DDI   string `json:"ddi"`
	DDD   string `json:"ddd"`
	Valor string `json:"valor"`
	Full  string `json:"full"`
}

// ParsePhoneNumber parses a Brazilian phone number as typed on the form,
// e.g. "(73) 99999-9999" or "+55 73 99999-9999".
func ParsePhoneNumber(phoneString string) (*PhoneComponents, error) {
	cleanPhone := strings.TrimSpace(phoneString)
	if cleanPhone == "" {
		return nil, fmt.Errorf("empty phone number")
	}

	// Parse with Brazil as the default region
	num, err := phonenumbers.Parse(cleanPhone, "BR")
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number: %s", phoneString)
	}

	nationalNumber := phonenumbers.GetNationalSignificantNumber(num)
	components := &PhoneComponents{
		DDI:   fmt.Sprintf("%d", num.GetCountryCode()),
		Valor: nationalNumber,
		Full:  phonenumbers.Format(num, phonenumbers.E164),
	}
	// Split the area code for Brazilian numbers
	if num.GetCountryCode() == 55 && len(nationalNumber) > 2 {
		components.DDD = nationalNumber[:2]
		components.Valor = nationalNumber[2:]
	}
	return components, nil
}

// WhatsAppLink returns a wa.me link for the number, or "" when it cannot be
// parsed.
func WhatsAppLink(phoneString string) string {
	components, err := ParsePhoneNumber(phoneString)
	if err != nil {
		return ""
	}
	return "https://wa.me/" + strings.TrimPrefix(components.Full, "+")
}
