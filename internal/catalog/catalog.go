// Package catalog holds the fixed option sets offered by the application
// form and matches user input against them.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed options.yaml
var optionsYAML []byte

// Option is a selectable value with its display label.
type Option struct {
	Code  string `yaml:"code" json:"code"`
	Label string `yaml:"label" json:"label"`
}

// Catalog is the full set of form options.
type Catalog struct {
	Neighborhoods         []string `yaml:"neighborhoods" json:"neighborhoods"`
	CivilStatuses         []Option `yaml:"civil_statuses" json:"civilStatuses"`
	PaymentMethods        []Option `yaml:"payment_methods" json:"paymentMethods"`
	MonthlyPaymentMethods []Option `yaml:"monthly_payment_methods" json:"monthlyPaymentMethods"`
	DueDays               []Option `yaml:"due_days" json:"dueDays"`
	Kinships              []string `yaml:"kinships" json:"kinships"`
	UFs                   []string `yaml:"ufs" json:"ufs"`

	neighborhoodIndex map[string]string
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(optionsYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded options.yaml: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses a catalog document.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Neighborhoods) == 0 || len(c.PaymentMethods) == 0 ||
		len(c.MonthlyPaymentMethods) == 0 || len(c.DueDays) == 0 {
		return nil, fmt.Errorf("catalog is missing required option sets")
	}

	c.neighborhoodIndex = make(map[string]string, len(c.Neighborhoods))
	for _, n := range c.Neighborhoods {
		c.neighborhoodIndex[Fold(n)] = n
	}
	return &c, nil
}

// Neighborhood returns the catalog spelling of name, matched without regard
// to case, accents or repeated spaces.
func (c *Catalog) Neighborhood(name string) (string, bool) {
	canonical, ok := c.neighborhoodIndex[Fold(name)]
	return canonical, ok
}

// PaymentMethod resolves a one-time fee method code or label to its code.
func (c *Catalog) PaymentMethod(value string) (string, bool) {
	return resolve(c.PaymentMethods, value)
}

// MonthlyPaymentMethod resolves a recurring method code or label to its code.
func (c *Catalog) MonthlyPaymentMethod(value string) (string, bool) {
	return resolve(c.MonthlyPaymentMethods, value)
}

// DueDay resolves a due day ("4", "04", "Dia 04") to its code.
func (c *Catalog) DueDay(value string) (string, bool) {
	if len(value) == 1 && value[0] >= '0' && value[0] <= '9' {
		value = "0" + value
	}
	return resolve(c.DueDays, value)
}

// CivilStatus resolves a civil status code or label to its code.
func (c *Catalog) CivilStatus(value string) (string, bool) {
	return resolve(c.CivilStatuses, value)
}

// IsUF reports whether s is a federative unit abbreviation.
func (c *Catalog) IsUF(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, uf := range c.UFs {
		if uf == s {
			return true
		}
	}
	return false
}

// PaymentMethodLabel returns the display label of a one-time fee method.
func (c *Catalog) PaymentMethodLabel(code string) string {
	return label(c.PaymentMethods, code)
}

// MonthlyPaymentMethodLabel returns the display label of a recurring method.
func (c *Catalog) MonthlyPaymentMethodLabel(code string) string {
	return label(c.MonthlyPaymentMethods, code)
}

// DueDayLabel returns the display label of a due day.
func (c *Catalog) DueDayLabel(code string) string {
	return label(c.DueDays, code)
}

// CivilStatusLabel returns the display label of a civil status.
func (c *Catalog) CivilStatusLabel(code string) string {
	return label(c.CivilStatuses, code)
}

func resolve(options []Option, value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, o := range options {
		if o.Code == value {
			return o.Code, true
		}
	}
	folded := Fold(value)
	for _, o := range options {
		if Fold(o.Label) == folded || Fold(o.Code) == folded {
			return o.Code, true
		}
	}
	return "", false
}

// label falls back to the code itself so unknown values still print.
func label(options []Option, code string) string {
	for _, o := range options {
		if o.Code == code {
			return o.Label
		}
	}
	return code
}

// Fold lower-cases s, strips diacritics and collapses whitespace.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}
