package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Len(t, c.Neighborhoods, 22)
	assert.Len(t, c.UFs, 27)
	assert.Len(t, c.PaymentMethods, 4)
	assert.Len(t, c.MonthlyPaymentMethods, 3)
	assert.Len(t, c.DueDays, 4)
	assert.Same(t, c, Default())
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load([]byte("neighborhoods: [unterminated"))
	assert.Error(t, err)

	_, err = Load([]byte("neighborhoods: [Centro]"))
	assert.Error(t, err, "missing payment option sets")
}

func TestFold(t *testing.T) {
	assert.Equal(t, "sao judas tadeu", Fold("  São   Judas Tadeu "))
	assert.Equal(t, "cansancao", Fold("CANSANÇÃO"))
	assert.Equal(t, "vila ligia", Fold("Vila Lígia"))
}

func TestNeighborhood(t *testing.T) {
	c := Default()

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"Centro", "Centro", true},
		{"centro", "Centro", true},
		{"sao luiz", "São Luiz", true},
		{"JEQUIEZINHO", "Jequiezinho", true},
		{"Copacabana", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := c.Neighborhood(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaymentResolution(t *testing.T) {
	c := Default()

	code, ok := c.PaymentMethod("pix")
	assert.True(t, ok)
	assert.Equal(t, "pix", code)

	code, ok = c.PaymentMethod("Cartão de Crédito")
	assert.True(t, ok)
	assert.Equal(t, "credito", code)

	code, ok = c.MonthlyPaymentMethod("cartao de credito")
	assert.True(t, ok)
	assert.Equal(t, "cartao_credito", code)

	code, ok = c.MonthlyPaymentMethod("Boleto Bancário")
	assert.True(t, ok)
	assert.Equal(t, "boleto", code)

	_, ok = c.PaymentMethod("Cartão de Crédito Visa")
	assert.False(t, ok)

	_, ok = c.MonthlyPaymentMethod("")
	assert.False(t, ok)
}

func TestDueDay(t *testing.T) {
	c := Default()

	for input, want := range map[string]string{"04": "04", "4": "04", "Dia 12": "12", "31": "31"} {
		got, ok := c.DueDay(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	_, ok := c.DueDay("15")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	c := Default()

	assert.Equal(t, "PIX", c.PaymentMethodLabel("pix"))
	assert.Equal(t, "Boleto Bancário", c.MonthlyPaymentMethodLabel("boleto"))
	assert.Equal(t, "Dia 20", c.DueDayLabel("20"))
	assert.Equal(t, "Viúvo(a)", c.CivilStatusLabel("viuvo"))
	assert.Equal(t, "desconhecido", c.PaymentMethodLabel("desconhecido"))
}

func TestIsUF(t *testing.T) {
	c := Default()
	assert.True(t, c.IsUF("BA"))
	assert.True(t, c.IsUF("ba"))
	assert.False(t, c.IsUF("XX"))
}
