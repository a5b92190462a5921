package schemas

import (
	"strings"
	"testing"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/fixtures"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = fixtures.Now

func newValidator() *Validator {
	return NewValidator(nil, false)
}

func TestApplication_ValidPayload(t *testing.T) {
	r := newValidator().Application(fixtures.MariaForm(), now)
	assert.True(t, r.Valid(), "unexpected violations: %v", r.Details())
	assert.Nil(t, r.First())
	assert.NoError(t, r.Err())
}

func TestPersonal(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.FormData)
		field   string
		message string
	}{
		{"short name", func(f *models.FormData) { f.FullName = " Al " }, "fullName", "Nome deve ter pelo menos 3 caracteres"},
		{"long name", func(f *models.FormData) { f.FullName = strings.Repeat("a", 201) }, "fullName", "Nome muito longo"},
		{"future birth date", func(f *models.FormData) { f.BirthDate = "2030-01-01" }, "birthDate", "Data de nascimento inválida"},
		{"birth date on lower bound", func(f *models.FormData) { f.BirthDate = "1900-01-01" }, "birthDate", "Data de nascimento inválida"},
		{"malformed birth date", func(f *models.FormData) { f.BirthDate = "15/05/1985" }, "birthDate", "Data de nascimento inválida"},
		{"missing sex", func(f *models.FormData) { f.Sex = "" }, "sex", "Selecione o sexo"},
		{"invalid sex", func(f *models.FormData) { f.Sex = "X" }, "sex", "Selecione o sexo"},
		{"missing civil status", func(f *models.FormData) { f.CivilStatus = "  " }, "civilStatus", "Selecione o estado civil"},
		{"bare cpf digits", func(f *models.FormData) { f.CPF = "12345678900" }, "cpf", "CPF deve estar no formato XXX.XXX.XXX-XX"},
		{"short rg", func(f *models.FormData) { f.RG = "1234" }, "rg", "RG inválido"},
		{"long rg", func(f *models.FormData) { f.RG = strings.Repeat("1", 21) }, "rg", "RG inválido"},
		{"invalid uf", func(f *models.FormData) { f.UF = "XX" }, "uf", "UF inválida"},
		{"short emissor", func(f *models.FormData) { f.Emissor = "S" }, "emissor", "Órgão emissor inválido"},
		{"invalid email", func(f *models.FormData) { f.Email = "maria@" }, "email", "Email inválido"},
		{"long email", func(f *models.FormData) { f.Email = strings.Repeat("a", 250) + "@x.com" }, "email", "Email muito longo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixtures.MariaForm()
			tt.mutate(f)

			r := newValidator().Personal(f, now)
			require.False(t, r.Valid())
			assert.Equal(t, &Violation{Field: tt.field, Message: tt.message}, r.First())
		})
	}
}

func TestPersonal_OptionalIssuerFields(t *testing.T) {
	f := fixtures.MariaForm()
	f.Emissor = ""
	f.UF = ""
	assert.True(t, newValidator().Personal(f, now).Valid())
}

func TestPersonal_DeclarationOrder(t *testing.T) {
	f := &models.FormData{}
	r := newValidator().Personal(f, now)

	fields := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"fullName", "birthDate", "sex", "civilStatus", "cpf", "rg", "email"}, fields)
	assert.Equal(t, "fullName", r.First().Field)
}

func TestPersonal_StrictCPF(t *testing.T) {
	f := fixtures.MariaForm()

	assert.True(t, NewValidator(nil, false).Personal(f, now).Valid())

	r := NewValidator(nil, true).Personal(f, now)
	require.False(t, r.Valid())
	assert.Equal(t, "CPF inválido", r.First().Message)

	f.CPF = "529.982.247-25"
	assert.True(t, NewValidator(nil, true).Personal(f, now).Valid())
}

func TestResidential(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.FormData)
		field   string
		message string
	}{
		{"short street", func(f *models.FormData) { f.ResidentialStreet = "Ru" }, "residentialStreet", "Rua muito curta"},
		{"missing number", func(f *models.FormData) { f.ResidentialNumber = "" }, "residentialNumber", "Número obrigatório"},
		{"long number", func(f *models.FormData) { f.ResidentialNumber = "12345678901" }, "residentialNumber", "Número muito longo"},
		{"missing neighborhood", func(f *models.FormData) { f.ResidentialNeighborhood = "" }, "residentialNeighborhood", "Selecione o bairro"},
		{"neighborhood outside catalog", func(f *models.FormData) { f.ResidentialNeighborhood = "Copacabana" }, "residentialNeighborhood", "Selecione o bairro"},
		{"other without name", func(f *models.FormData) { f.ResidentialNeighborhood = "Outro" }, "residentialNeighborhoodOther", "Informe o nome do bairro"},
		{"bad cep", func(f *models.FormData) { f.ResidentialCEP = "4520-000" }, "residentialCep", "CEP deve estar no formato XXXXX-XXX"},
		{"short city", func(f *models.FormData) { f.ResidentialCity = "J" }, "residentialCity", "Cidade muito curta"},
		{"missing whatsapp", func(f *models.FormData) { f.ResidentialWhatsapp = "" }, "residentialWhatsapp", "Telefone/WhatsApp inválido"},
		{"bad secondary phone", func(f *models.FormData) { f.ResidentialPhone = "123" }, "residentialPhone", "Telefone inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixtures.MariaForm()
			tt.mutate(f)

			r := newValidator().Residential(f)
			require.False(t, r.Valid())
			assert.Equal(t, &Violation{Field: tt.field, Message: tt.message}, r.First())
		})
	}
}

func TestResidential_NeighborhoodMatching(t *testing.T) {
	f := fixtures.MariaForm()

	f.ResidentialNeighborhood = "sao judas tadeu"
	assert.True(t, newValidator().Residential(f).Valid())

	f.ResidentialNeighborhood = "Outro"
	f.ResidentialNeighborhoodOther = "Loteamento Novo Horizonte"
	assert.True(t, newValidator().Residential(f).Valid())
}

func TestCommercial(t *testing.T) {
	t.Run("absent block passes", func(t *testing.T) {
		f := fixtures.MariaForm()
		f.CommercialMode = ""
		f.CommercialStreet, f.CommercialNumber, f.CommercialNeighborhood = "", "", ""
		f.CommercialCEP, f.CommercialCity, f.CommercialWhatsapp = "", "", ""
		assert.True(t, newValidator().Commercial(f).Valid())
	})

	t.Run("not applicable mode passes", func(t *testing.T) {
		f := fixtures.MariaForm()
		f.CommercialMode = models.CommercialModeNotApplicable
		f.CommercialStreet = ""
		assert.True(t, newValidator().Commercial(f).Valid())
	})

	t.Run("sentinel values pass as own address", func(t *testing.T) {
		f := fixtures.MariaForm()
		f.CommercialMode = ""
		f.CommercialStreet = "N/A"
		f.CommercialNumber = "0"
		f.CommercialNeighborhood = "N/A"
		f.CommercialCEP = "00000-000"
		f.CommercialCity = "N/A"
		f.CommercialWhatsapp = ""
		assert.True(t, newValidator().Commercial(f).Valid())
	})

	t.Run("partial block fails", func(t *testing.T) {
		f := fixtures.MariaForm()
		f.CommercialStreet = "Av. Rio Branco"
		f.CommercialCEP = ""
		r := newValidator().Commercial(f)
		require.False(t, r.Valid())
		assert.Equal(t, "commercialCep", r.First().Field)
	})

	t.Run("neighborhood is not restricted to the catalog", func(t *testing.T) {
		f := fixtures.MariaForm()
		f.CommercialNeighborhood = "Pituba"
		assert.True(t, newValidator().Commercial(f).Valid())
	})

	t.Run("unknown mode fails", func(t *testing.T) {
		f := fixtures.MariaForm()
		f.CommercialMode = "sometimes"
		r := newValidator().Commercial(f)
		require.False(t, r.Valid())
		assert.Equal(t, "commercialMode", r.First().Field)
	})
}

func TestDependents(t *testing.T) {
	deps := []models.Dependent{
		{Name: "João Silva Santos", BirthDate: "2010-03-20", Sex: "M", Kinship: "Filho"},
		{Name: "Ana", BirthDate: "2030-01-01", Sex: "F", Kinship: "Filha", CPF: "123"},
		{Name: "Jo", BirthDate: "2012-01-01", Sex: "", Kinship: "", Email: "nope"},
	}

	r := newValidator().Dependents(deps, now)
	assert.Equal(t, []string{
		"dependents[1].cpf: CPF do dependente deve estar no formato XXX.XXX.XXX-XX",
		"dependents[1].birthDate: Data de nascimento do dependente inválida",
		"dependents[2].name: Nome do dependente deve ter pelo menos 3 caracteres",
		"dependents[2].sex: Selecione o sexo do dependente",
		"dependents[2].kinship: Informe o parentesco",
		"dependents[2].email: Email do dependente inválido",
	}, r.Details())
}

func TestDependent_BirthDateHasNoLowerBound(t *testing.T) {
	d := &models.Dependent{Name: "Avó Antiga", BirthDate: "1899-12-31", Sex: "F", Kinship: "Avó"}
	assert.True(t, newValidator().Dependent(d, now).Valid())
}

func TestPayment(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.FormData)
		field  string
	}{
		{"missing method", func(f *models.FormData) { f.PaymentMethod = "" }, "paymentMethod"},
		{"unknown method", func(f *models.FormData) { f.PaymentMethod = "cheque" }, "paymentMethod"},
		{"unknown monthly method", func(f *models.FormData) { f.MonthlyPaymentMethod = "debito_automatico" }, "monthlyPaymentMethod"},
		{"unknown due day", func(f *models.FormData) { f.DueDate = "15" }, "dueDate"},
		{"card number as token", func(f *models.FormData) { f.PaymentToken = "4111 1111 1111 1111" }, "paymentToken"},
		{"more than four digits", func(f *models.FormData) { f.LastFourDigits = "41111" }, "lastFourDigits"},
		{"non numeric last digits", func(f *models.FormData) { f.LastFourDigits = "ab12" }, "lastFourDigits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixtures.MariaForm()
			tt.mutate(f)

			r := newValidator().Payment(f)
			require.False(t, r.Valid())
			assert.Equal(t, tt.field, r.First().Field)
		})
	}
}

func TestPayment_LabelsAndProcessorFields(t *testing.T) {
	f := fixtures.MariaForm()
	f.PaymentMethod = "Cartão de Crédito"
	f.MonthlyPaymentMethod = "Boleto Bancário"
	f.DueDate = "4"
	f.PaymentToken = "tok_1NxAbc2eZvKYlo2C"
	f.PaymentProcessor = "stripe"
	f.LastFourDigits = "4242"

	r := newValidator().Payment(f)
	assert.True(t, r.Valid(), "unexpected violations: %v", r.Details())
}

func TestTerms(t *testing.T) {
	v := newValidator()

	assert.True(t, v.Terms(true, true).Valid())
	assert.Equal(t, "Você deve aceitar o estatuto", v.Terms(false, true).First().Message)
	assert.Equal(t, "Você deve aceitar o uso de imagem", v.Terms(true, false).First().Message)
	assert.Len(t, v.Terms(false, false).Violations, 2)
}

func TestApplication_ReportsEveryViolation(t *testing.T) {
	f := fixtures.MariaForm()
	f.BirthDate = "2030-01-01"
	f.ResidentialCEP = "x"
	f.AcceptImageUsage = false

	r := newValidator().Application(f, now)
	assert.Equal(t, []string{
		"birthDate: Data de nascimento inválida",
		"residentialCep: CEP deve estar no formato XXXXX-XXX",
		"acceptImageUsage: Você deve aceitar o uso de imagem",
	}, r.Details())

	var verr *ValidationError
	require.ErrorAs(t, r.Err(), &verr)
	assert.Len(t, verr.Violations, 3)
	assert.Contains(t, verr.Error(), "3 violations")
}

func TestStep(t *testing.T) {
	v := newValidator()
	f := fixtures.MariaForm()
	f.BirthDate = "2099-12-31"

	r := v.Step(StepPersonal, f, now)
	assert.Equal(t, "Data de nascimento inválida", r.First().Message)

	assert.True(t, v.Step(StepPayment, f, now).Valid())
	assert.False(t, v.Step(Step("unknown"), f, now).Valid())
}

func TestParseStep(t *testing.T) {
	step, err := ParseStep("residential")
	require.NoError(t, err)
	assert.Equal(t, StepResidential, step)

	_, err = ParseStep("billing")
	assert.Error(t, err)
}

func TestBirthDateUsesClock(t *testing.T) {
	f := fixtures.MariaForm()
	f.BirthDate = "2025-01-15"

	assert.True(t, newValidator().Personal(f, now).Valid(), "today at midnight is in the past")
	assert.False(t, newValidator().Personal(f, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)).Valid())
}
