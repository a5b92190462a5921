// Package fixtures provides sample applications and throwaway backing
// services for tests.
package fixtures

import (
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/models"
)

// Now is the frozen clock used across tests.
var Now = time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

// MariaForm returns a complete, valid submission with one dependent.
func MariaForm() *models.FormData {
	return &models.FormData{
		FullName:    "Maria Silva Santos",
		BirthDate:   "1985-05-15",
		Sex:         "F",
		CivilStatus: "casado",
		CPF:         "123.456.789-00",
		RG:          "12.345.678",
		Emissor:     "SSP",
		UF:          "BA",
		Email:       "maria@email.com",

		ResidentialStreet:       "Rua das Flores",
		ResidentialNumber:       "123",
		ResidentialNeighborhood: "Centro",
		ResidentialCEP:          "45200-000",
		ResidentialCity:         "Jequié",
		ResidentialWhatsapp:     "(73) 99999-9999",

		CommercialMode:         models.CommercialModeOwn,
		CommercialStreet:       "Av. Rio Branco",
		CommercialNumber:       "456",
		CommercialNeighborhood: "São Luiz",
		CommercialCEP:          "45203-000",
		CommercialCity:         "Jequié",
		CommercialWhatsapp:     "(73) 3525-1234",

		PaymentMethod:        "pix",
		MonthlyPaymentMethod: "boleto",
		DueDate:              "12",

		Dependents: []models.Dependent{
			{
				Name:      "João Silva Santos",
				BirthDate: "2010-03-20",
				Sex:       "M",
				Kinship:   "Filho",
			},
		},

		AcceptStatute:    true,
		AcceptImageUsage: true,
	}
}

// MariaRecord returns the record stored for MariaForm.
func MariaRecord(id string) *models.ApplicationRecord {
	return MariaForm().ToRecord(id, Now)
}
