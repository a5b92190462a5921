package models

// ApplicationUpdate is the whitelisted set of fields an administrator may
// change. Nil fields are left untouched.
type ApplicationUpdate struct {
	FullName    *string `json:"full_name,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	Sex         *string `json:"sex,omitempty"`
	CivilStatus *string `json:"civil_status,omitempty"`
	CPF         *string `json:"cpf,omitempty"`
	RG          *string `json:"rg,omitempty"`
	Emissor     *string `json:"emissor,omitempty"`
	UF          *string `json:"uf,omitempty"`
	Email       *string `json:"email,omitempty"`

	ResidentialStreet       *string `json:"residential_street,omitempty"`
	ResidentialNumber       *string `json:"residential_number,omitempty"`
	ResidentialNeighborhood *string `json:"residential_neighborhood,omitempty"`
	ResidentialCEP          *string `json:"residential_cep,omitempty"`
	ResidentialCity         *string `json:"residential_city,omitempty"`
	ResidentialWhatsapp     *string `json:"residential_whatsapp,omitempty"`
	ResidentialPhone        *string `json:"residential_phone,omitempty"`

	CommercialStreet       *string `json:"commercial_street,omitempty"`
	CommercialNumber       *string `json:"commercial_number,omitempty"`
	CommercialNeighborhood *string `json:"commercial_neighborhood,omitempty"`
	CommercialCEP          *string `json:"commercial_cep,omitempty"`
	CommercialCity         *string `json:"commercial_city,omitempty"`
	CommercialWhatsapp     *string `json:"commercial_whatsapp,omitempty"`
	CommercialPhone        *string `json:"commercial_phone,omitempty"`

	PaymentMethod        *string `json:"payment_method,omitempty"`
	MonthlyPaymentMethod *string `json:"monthly_payment_method,omitempty"`
	DueDate              *string `json:"due_date,omitempty"`

	Dependents       *[]Dependent `json:"dependents,omitempty"`
	AcceptStatute    *bool        `json:"accept_statute,omitempty"`
	AcceptImageUsage *bool        `json:"accept_image_usage,omitempty"`
}

func (u *ApplicationUpdate) touchesCommercial() bool {
	return u.CommercialStreet != nil || u.CommercialNumber != nil ||
		u.CommercialNeighborhood != nil || u.CommercialCEP != nil ||
		u.CommercialCity != nil || u.CommercialWhatsapp != nil || u.CommercialPhone != nil
}

// IsEmpty reports whether the update changes nothing.
func (u *ApplicationUpdate) IsEmpty() bool {
	return *u == ApplicationUpdate{}
}

// Apply writes the non-nil fields onto rec. Editing any commercial field on
// a record without a commercial block, or with one copied from the
// residential address, switches it to "own" mode.
func (u *ApplicationUpdate) Apply(rec *ApplicationRecord) {
	setString(&rec.FullName, u.FullName)
	setString(&rec.BirthDate, u.BirthDate)
	setString(&rec.Sex, u.Sex)
	setString(&rec.CivilStatus, u.CivilStatus)
	setString(&rec.CPF, u.CPF)
	setString(&rec.RG, u.RG)
	setString(&rec.Emissor, u.Emissor)
	setString(&rec.UF, u.UF)
	setString(&rec.Email, u.Email)

	setString(&rec.Residential.Street, u.ResidentialStreet)
	setString(&rec.Residential.Number, u.ResidentialNumber)
	setString(&rec.Residential.Neighborhood, u.ResidentialNeighborhood)
	setString(&rec.Residential.CEP, u.ResidentialCEP)
	setString(&rec.Residential.City, u.ResidentialCity)
	setString(&rec.Residential.Whatsapp, u.ResidentialWhatsapp)
	setString(&rec.Residential.Phone, u.ResidentialPhone)

	// A commercial block copied from the residential one follows its edits.
	if rec.CommercialMode == CommercialModeSameAsResidential && !u.touchesCommercial() {
		addr := rec.Residential
		rec.Commercial = &addr
	}

	if u.touchesCommercial() {
		if rec.Commercial == nil || rec.CommercialMode != CommercialModeOwn {
			var base Address
			if rec.Commercial != nil {
				base = *rec.Commercial
			}
			rec.Commercial = &base
			rec.CommercialMode = CommercialModeOwn
		}
		setString(&rec.Commercial.Street, u.CommercialStreet)
		setString(&rec.Commercial.Number, u.CommercialNumber)
		setString(&rec.Commercial.Neighborhood, u.CommercialNeighborhood)
		setString(&rec.Commercial.CEP, u.CommercialCEP)
		setString(&rec.Commercial.City, u.CommercialCity)
		setString(&rec.Commercial.Whatsapp, u.CommercialWhatsapp)
		setString(&rec.Commercial.Phone, u.CommercialPhone)
	}

	setString(&rec.Payment.Method, u.PaymentMethod)
	setString(&rec.Payment.MonthlyMethod, u.MonthlyPaymentMethod)
	setString(&rec.Payment.DueDate, u.DueDate)

	if u.Dependents != nil {
		rec.Dependents = append([]Dependent(nil), (*u.Dependents)...)
	}
	if u.AcceptStatute != nil {
		rec.AcceptStatute = *u.AcceptStatute
	}
	if u.AcceptImageUsage != nil {
		rec.AcceptImageUsage = *u.AcceptImageUsage
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
