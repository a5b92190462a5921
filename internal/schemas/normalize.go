package schemas

import (
	"strings"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
)

// Normalize trims every text field and maps catalog labels to their codes.
// It never turns an invalid value into a valid one.
func (v *Validator) Normalize(f *models.FormData) {
	for _, p := range []*string{
		&f.FullName, &f.BirthDate, &f.CivilStatus, &f.CPF, &f.RG, &f.Emissor, &f.UF, &f.Email,
		&f.ResidentialStreet, &f.ResidentialNumber, &f.ResidentialNeighborhood,
		&f.ResidentialNeighborhoodOther, &f.ResidentialCEP, &f.ResidentialCity,
		&f.ResidentialWhatsapp, &f.ResidentialPhone,
		&f.CommercialMode, &f.CommercialStreet, &f.CommercialNumber, &f.CommercialNeighborhood,
		&f.CommercialCEP, &f.CommercialCity, &f.CommercialWhatsapp, &f.CommercialPhone,
		&f.PaymentMethod, &f.MonthlyPaymentMethod, &f.DueDate,
		&f.PaymentToken, &f.PaymentProcessor, &f.LastFourDigits,
	} {
		*p = strings.TrimSpace(*p)
	}

	f.UF = strings.ToUpper(f.UF)
	f.Emissor = strings.ToUpper(f.Emissor)
	f.ResidentialCEP = formatValidCEP(f.ResidentialCEP)
	f.CommercialCEP = formatValidCEP(f.CommercialCEP)

	if canonical, ok := v.catalog.Neighborhood(f.ResidentialNeighborhood); ok {
		f.ResidentialNeighborhood = canonical
	}
	if code, ok := v.catalog.CivilStatus(f.CivilStatus); ok {
		f.CivilStatus = code
	}
	if code, ok := v.catalog.PaymentMethod(f.PaymentMethod); ok {
		f.PaymentMethod = code
	}
	if code, ok := v.catalog.MonthlyPaymentMethod(f.MonthlyPaymentMethod); ok {
		f.MonthlyPaymentMethod = code
	}
	if code, ok := v.catalog.DueDay(f.DueDate); ok {
		f.DueDate = code
	}

	normalizeDependents(f.Dependents)
}

// NormalizeRecord applies the same trimming, masks and catalog mapping to a
// stored record, as after an administrative edit.
func (v *Validator) NormalizeRecord(rec *models.ApplicationRecord) {
	for _, p := range []*string{
		&rec.FullName, &rec.BirthDate, &rec.CivilStatus, &rec.CPF, &rec.RG, &rec.Emissor, &rec.UF, &rec.Email,
		&rec.Payment.Method, &rec.Payment.MonthlyMethod, &rec.Payment.DueDate,
	} {
		*p = strings.TrimSpace(*p)
	}
	rec.UF = strings.ToUpper(rec.UF)
	rec.Emissor = strings.ToUpper(rec.Emissor)

	normalizeAddress(&rec.Residential)
	if rec.Commercial != nil {
		normalizeAddress(rec.Commercial)
	}

	if canonical, ok := v.catalog.Neighborhood(rec.Residential.Neighborhood); ok {
		rec.Residential.Neighborhood = canonical
	}
	if code, ok := v.catalog.CivilStatus(rec.CivilStatus); ok {
		rec.CivilStatus = code
	}
	if code, ok := v.catalog.PaymentMethod(rec.Payment.Method); ok {
		rec.Payment.Method = code
	}
	if code, ok := v.catalog.MonthlyPaymentMethod(rec.Payment.MonthlyMethod); ok {
		rec.Payment.MonthlyMethod = code
	}
	if code, ok := v.catalog.DueDay(rec.Payment.DueDate); ok {
		rec.Payment.DueDate = code
	}

	if len(rec.Dependents) > 0 {
		rec.Dependents = append([]models.Dependent(nil), rec.Dependents...)
		normalizeDependents(rec.Dependents)
	}
}

func normalizeAddress(a *models.Address) {
	for _, p := range []*string{&a.Street, &a.Number, &a.Neighborhood, &a.CEP, &a.City, &a.Whatsapp, &a.Phone} {
		*p = strings.TrimSpace(*p)
	}
	a.CEP = formatValidCEP(a.CEP)
}

func normalizeDependents(deps []models.Dependent) {
	for i := range deps {
		d := &deps[i]
		for _, p := range []*string{&d.Name, &d.CPF, &d.RG, &d.Emissor, &d.UF, &d.BirthDate, &d.Kinship, &d.Email} {
			*p = strings.TrimSpace(*p)
		}
		d.UF = strings.ToUpper(d.UF)
		d.Emissor = strings.ToUpper(d.Emissor)
	}
}

func formatValidCEP(cep string) string {
	if utils.IsCEP(cep) {
		return utils.FormatCEP(cep)
	}
	return cep
}

// Record validates a stored record, as after an administrative edit. A
// neighborhood outside the catalog is accepted as a free-text entry.
func (v *Validator) Record(rec *models.ApplicationRecord, now time.Time) *Result {
	f := FormFromRecord(rec)
	if _, ok := v.catalog.Neighborhood(f.ResidentialNeighborhood); !ok && f.ResidentialNeighborhood != "" {
		f.ResidentialNeighborhoodOther = f.ResidentialNeighborhood
		f.ResidentialNeighborhood = models.NeighborhoodOther
	}
	return v.Application(f, now)
}

// FormFromRecord rebuilds form data from a stored record.
func FormFromRecord(rec *models.ApplicationRecord) *models.FormData {
	f := &models.FormData{
		FullName:    rec.FullName,
		BirthDate:   rec.BirthDate,
		Sex:         rec.Sex,
		CivilStatus: rec.CivilStatus,
		CPF:         rec.CPF,
		RG:          rec.RG,
		Emissor:     rec.Emissor,
		UF:          rec.UF,
		Email:       rec.Email,

		ResidentialStreet:       rec.Residential.Street,
		ResidentialNumber:       rec.Residential.Number,
		ResidentialNeighborhood: rec.Residential.Neighborhood,
		ResidentialCEP:          rec.Residential.CEP,
		ResidentialCity:         rec.Residential.City,
		ResidentialWhatsapp:     rec.Residential.Whatsapp,
		ResidentialPhone:        rec.Residential.Phone,

		CommercialMode: rec.CommercialMode,

		PaymentMethod:        rec.Payment.Method,
		MonthlyPaymentMethod: rec.Payment.MonthlyMethod,
		DueDate:              rec.Payment.DueDate,
		PaymentToken:         rec.Payment.Token,
		PaymentProcessor:     rec.Payment.Processor,
		LastFourDigits:       rec.Payment.LastFourDigits,

		Dependents: rec.Dependents,

		AcceptStatute:    rec.AcceptStatute,
		AcceptImageUsage: rec.AcceptImageUsage,
	}

	if c := rec.Commercial; c != nil {
		f.CommercialStreet = c.Street
		f.CommercialNumber = c.Number
		f.CommercialNeighborhood = c.Neighborhood
		f.CommercialCEP = c.CEP
		f.CommercialCity = c.City
		f.CommercialWhatsapp = c.Whatsapp
		f.CommercialPhone = c.Phone
		if f.CommercialMode == "" {
			f.CommercialMode = models.CommercialModeOwn
		}
	}
	return f
}
