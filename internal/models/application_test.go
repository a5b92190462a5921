package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func residentialForm() FormData {
	return FormData{
		FullName:                "Maria Silva Santos",
		CPF:                     "123.456.789-00",
		ResidentialStreet:       "Rua das Flores",
		ResidentialNumber:       "123",
		ResidentialNeighborhood: "Centro",
		ResidentialCEP:          "45200-000",
		ResidentialCity:         "Jequié",
		ResidentialWhatsapp:     "(73) 99999-9999",
	}
}

func TestFormData_CommercialAddress(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *FormData)
		wantMode string
		want     *Address
	}{
		{
			name:     "no fields and no mode yields nil",
			mutate:   func(f *FormData) {},
			wantMode: "",
			want:     nil,
		},
		{
			name: "filled fields default to own",
			mutate: func(f *FormData) {
				f.CommercialStreet = "Av. Rio Branco"
				f.CommercialNumber = "10"
			},
			wantMode: CommercialModeOwn,
			want:     &Address{Street: "Av. Rio Branco", Number: "10"},
		},
		{
			name: "not applicable writes sentinel block",
			mutate: func(f *FormData) {
				f.CommercialMode = CommercialModeNotApplicable
				f.CommercialStreet = "ignored"
			},
			wantMode: CommercialModeNotApplicable,
			want:     NotApplicableAddress(),
		},
		{
			name: "same as residential copies residential",
			mutate: func(f *FormData) {
				f.CommercialMode = CommercialModeSameAsResidential
			},
			wantMode: CommercialModeSameAsResidential,
			want: &Address{
				Street:       "Rua das Flores",
				Number:       "123",
				Neighborhood: "Centro",
				CEP:          "45200-000",
				City:         "Jequié",
				Whatsapp:     "(73) 99999-9999",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := residentialForm()
			tt.mutate(&f)
			assert.Equal(t, tt.wantMode, f.ResolvedCommercialMode())
			assert.Equal(t, tt.want, f.CommercialAddress())
		})
	}
}

func TestFormData_ResidentialNeighborhoodOther(t *testing.T) {
	f := residentialForm()
	f.ResidentialNeighborhood = NeighborhoodOther
	f.ResidentialNeighborhoodOther = "Loteamento Novo"

	assert.Equal(t, "Loteamento Novo", f.ResidentialAddress().Neighborhood)
}

func TestFormData_ToRecord(t *testing.T) {
	f := residentialForm()
	f.PaymentMethod = "pix"
	f.MonthlyPaymentMethod = "boleto"
	f.DueDate = "12"
	f.Dependents = []Dependent{{Name: "João Silva Santos", Kinship: "Filho", Sex: "M", BirthDate: "2010-03-20"}}
	f.AcceptStatute = true
	f.AcceptImageUsage = true

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	rec := f.ToRecord("id-1", now)

	assert.Equal(t, "id-1", rec.ID)
	assert.Equal(t, now, rec.CreatedAt)
	assert.Equal(t, "Maria Silva Santos", rec.FullName)
	assert.Nil(t, rec.Commercial)
	assert.Equal(t, "pix", rec.Payment.Method)
	require.Len(t, rec.Dependents, 1)
	assert.True(t, rec.AcceptStatute)

	// The record owns its dependents slice.
	f.Dependents[0].Name = "changed"
	assert.Equal(t, "João Silva Santos", rec.Dependents[0].Name)
}

func TestAddress_IsNotApplicable(t *testing.T) {
	var nilAddr *Address
	assert.False(t, nilAddr.IsNotApplicable())
	assert.True(t, NotApplicableAddress().IsNotApplicable())
	assert.False(t, (&Address{Street: "Rua A", Number: "1"}).IsNotApplicable())
}

func TestFormData_Clone(t *testing.T) {
	yes := true
	f := &FormData{
		FullName:          "Maria Silva Santos",
		Dependents:        []Dependent{{Name: "João Silva Santos"}},
		HasCriminalRecord: &yes,
	}

	c := f.Clone()
	c.FullName = "Outra"
	c.Dependents[0].Name = "Outro"
	*c.HasCriminalRecord = false

	assert.Equal(t, "Maria Silva Santos", f.FullName)
	assert.Equal(t, "João Silva Santos", f.Dependents[0].Name)
	assert.True(t, *f.HasCriminalRecord)

	var nilForm *FormData
	assert.Nil(t, nilForm.Clone())
}
