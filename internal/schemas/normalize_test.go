package schemas

import (
	"testing"

	"github.com/aabb-jequie/app-inscricao/internal/fixtures"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	f := fixtures.MariaForm()
	f.FullName = "  Maria Silva Santos "
	f.UF = "ba"
	f.ResidentialCEP = "45200000"
	f.CommercialCEP = "123"
	f.ResidentialNeighborhood = "sao luiz"
	f.CivilStatus = "Casado(a)"
	f.PaymentMethod = "PIX"
	f.MonthlyPaymentMethod = "Conta Corrente BB"
	f.DueDate = "4"
	f.Dependents[0].Name = " João Silva Santos "

	newValidator().Normalize(f)

	assert.Equal(t, "Maria Silva Santos", f.FullName)
	assert.Equal(t, "BA", f.UF)
	assert.Equal(t, "45200-000", f.ResidentialCEP)
	assert.Equal(t, "123", f.CommercialCEP, "invalid values are left for the schema to reject")
	assert.Equal(t, "São Luiz", f.ResidentialNeighborhood)
	assert.Equal(t, "casado", f.CivilStatus)
	assert.Equal(t, "pix", f.PaymentMethod)
	assert.Equal(t, "conta_corrente", f.MonthlyPaymentMethod)
	assert.Equal(t, "04", f.DueDate)
	assert.Equal(t, "João Silva Santos", f.Dependents[0].Name)
}

func TestNormalizeRecord(t *testing.T) {
	rec := fixtures.MariaRecord("app-1")
	rec.FullName = " Maria Silva Santos  "
	rec.Emissor = "ssp"
	rec.Residential.CEP = "45200000"
	rec.Residential.Street = " Rua das Flores"
	rec.Residential.Neighborhood = "sao luiz"
	rec.Commercial.CEP = " 45203000 "
	rec.Payment.MonthlyMethod = "Conta Corrente BB"
	rec.Dependents[0].UF = "ba"

	newValidator().NormalizeRecord(rec)

	assert.Equal(t, "Maria Silva Santos", rec.FullName)
	assert.Equal(t, "SSP", rec.Emissor)
	assert.Equal(t, "45200-000", rec.Residential.CEP)
	assert.Equal(t, "Rua das Flores", rec.Residential.Street)
	assert.Equal(t, "São Luiz", rec.Residential.Neighborhood)
	assert.Equal(t, "45203-000", rec.Commercial.CEP)
	assert.Equal(t, "conta_corrente", rec.Payment.MonthlyMethod)
	assert.Equal(t, "BA", rec.Dependents[0].UF)
}

func TestRecord(t *testing.T) {
	v := newValidator()

	rec := fixtures.MariaRecord("id-1")
	assert.True(t, v.Record(rec, now).Valid())

	rec.Residential.Neighborhood = "Loteamento Novo Horizonte"
	assert.True(t, v.Record(rec, now).Valid(), "free-text neighborhoods are kept on edit")

	rec.AcceptStatute = false
	r := v.Record(rec, now)
	assert.Equal(t, "acceptStatute", r.First().Field)
}

func TestRecord_NotApplicableCommercial(t *testing.T) {
	f := fixtures.MariaForm()
	f.CommercialMode = models.CommercialModeNotApplicable
	rec := f.ToRecord("id-2", now)

	assert.True(t, newValidator().Record(rec, now).Valid())
}

func TestFormFromRecord_RoundTrip(t *testing.T) {
	f := fixtures.MariaForm()
	rec := f.ToRecord("id-3", now)

	back := FormFromRecord(rec)
	assert.Equal(t, f.FullName, back.FullName)
	assert.Equal(t, f.CommercialStreet, back.CommercialStreet)
	assert.Equal(t, models.CommercialModeOwn, back.CommercialMode)
	assert.Equal(t, f.Dependents, back.Dependents)
}
