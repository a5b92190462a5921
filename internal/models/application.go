package models

import (
	"time"
)

// Commercial address modes accepted on the form.
const (
	CommercialModeOwn               = "own"
	CommercialModeSameAsResidential = "same_as_residential"
	CommercialModeNotApplicable     = "not_applicable"
)

// Sentinel values written when the applicant has no commercial address.
const (
	NotApplicable       = "N/A"
	NotApplicableNumber = "0"
	NotApplicableCEP    = "00000-000"
)

// NeighborhoodOther is the escape value for a locality missing from the catalog.
const NeighborhoodOther = "Outro"

// Address is a postal address with its contact numbers.
type Address struct {
	Street       string `bson:"street" json:"street"`
	Number       string `bson:"number" json:"number"`
	Neighborhood string `bson:"neighborhood" json:"neighborhood"`
	CEP          string `bson:"cep" json:"cep"`
	City         string `bson:"city" json:"city"`
	Whatsapp     string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// NotApplicableAddress returns the sentinel block stored when the applicant
// opts out of the commercial address.
func NotApplicableAddress() *Address {
	return &Address{
		Street:       NotApplicable,
		Number:       NotApplicableNumber,
		Neighborhood: NotApplicable,
		CEP:          NotApplicableCEP,
		City:         NotApplicable,
	}
}

// IsNotApplicable reports whether the address is the opt-out sentinel.
func (a *Address) IsNotApplicable() bool {
	return a != nil && a.Street == NotApplicable && a.Number == NotApplicableNumber
}

// Payment holds the applicant's payment preferences. Raw card or bank
// numbers are never part of it.
type Payment struct {
	Method         string `bson:"method" json:"method"`
	MonthlyMethod  string `bson:"monthly_method" json:"monthly_method"`
	DueDate        string `bson:"due_date" json:"due_date"`
	Token          string `bson:"token,omitempty" json:"token,omitempty"`
	Processor      string `bson:"processor,omitempty" json:"processor,omitempty"`
	LastFourDigits string `bson:"last_four_digits,omitempty" json:"last_four_digits,omitempty"`
}

// Dependent is a secondary person attached to the membership.
type Dependent struct {
	Name         string `bson:"name" json:"name"`
	CPF          string `bson:"cpf,omitempty" json:"cpf,omitempty"`
	RG           string `bson:"rg,omitempty" json:"rg,omitempty"`
	Emissor      string `bson:"emissor,omitempty" json:"emissor,omitempty"`
	UF           string `bson:"uf,omitempty" json:"uf,omitempty"`
	BirthDate    string `bson:"birth_date" json:"birthDate"`
	Sex          string `bson:"sex" json:"sex"`
	Kinship      string `bson:"kinship" json:"kinship"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	IsUniversity bool   `bson:"is_university" json:"isUniversity"`
}

// ApplicationRecord is the persisted membership application.
type ApplicationRecord struct {
	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`

	FullName    string `bson:"full_name" json:"full_name"`
	BirthDate   string `bson:"birth_date" json:"birth_date"`
	Sex         string `bson:"sex" json:"sex"`
	CivilStatus string `bson:"civil_status" json:"civil_status"`
	CPF         string `bson:"cpf" json:"cpf"`
	RG          string `bson:"rg" json:"rg"`
	Emissor     string `bson:"emissor,omitempty" json:"emissor,omitempty"`
	UF          string `bson:"uf,omitempty" json:"uf,omitempty"`
	Email       string `bson:"email" json:"email"`

	Residential    Address  `bson:"residential" json:"residential"`
	Commercial     *Address `bson:"commercial" json:"commercial"`
	CommercialMode string   `bson:"commercial_mode,omitempty" json:"commercial_mode,omitempty"`

	Payment    Payment     `bson:"payment" json:"payment"`
	Dependents []Dependent `bson:"dependents" json:"dependents"`

	AcceptStatute    bool `bson:"accept_statute" json:"accept_statute"`
	AcceptImageUsage bool `bson:"accept_image_usage" json:"accept_image_usage"`
}

// FormData is the aggregate wizard state and the submission payload. Field
// names follow the camelCase shape the web client sends.
type FormData struct {
	FullName    string `json:"fullName"`
	BirthDate   string `json:"birthDate"`
	Sex         string `json:"sex"`
	CivilStatus string `json:"civilStatus"`
	CPF         string `json:"cpf"`
	RG          string `json:"rg"`
	Emissor     string `json:"emissor,omitempty"`
	UF          string `json:"uf,omitempty"`
	Email       string `json:"email"`

	ResidentialStreet            string `json:"residentialStreet"`
	ResidentialNumber            string `json:"residentialNumber"`
	ResidentialNeighborhood      string `json:"residentialNeighborhood"`
	ResidentialNeighborhoodOther string `json:"residentialNeighborhoodOther,omitempty"`
	ResidentialCEP               string `json:"residentialCep"`
	ResidentialCity              string `json:"residentialCity"`
	ResidentialWhatsapp          string `json:"residentialWhatsapp"`
	ResidentialPhone             string `json:"residentialPhone,omitempty"`

	CommercialMode         string `json:"commercialMode,omitempty"`
	CommercialStreet       string `json:"commercialStreet,omitempty"`
	CommercialNumber       string `json:"commercialNumber,omitempty"`
	CommercialNeighborhood string `json:"commercialNeighborhood,omitempty"`
	CommercialCEP          string `json:"commercialCep,omitempty"`
	CommercialCity         string `json:"commercialCity,omitempty"`
	CommercialWhatsapp     string `json:"commercialWhatsapp,omitempty"`
	CommercialPhone        string `json:"commercialPhone,omitempty"`

	PaymentMethod        string `json:"paymentMethod"`
	MonthlyPaymentMethod string `json:"monthlyPaymentMethod"`
	DueDate              string `json:"dueDate"`
	PaymentToken         string `json:"paymentToken,omitempty"`
	PaymentProcessor     string `json:"paymentProcessor,omitempty"`
	LastFourDigits       string `json:"lastFourDigits,omitempty"`

	Dependents []Dependent `json:"dependents"`

	AcceptStatute    bool `json:"acceptStatute"`
	AcceptImageUsage bool `json:"acceptImageUsage"`

	// Accepted for compatibility with older clients; neither enforced nor stored.
	HasCriminalRecord *bool `json:"hasCriminalRecord,omitempty"`
}

// HasCommercialFields reports whether any commercial address field is filled.
func (f *FormData) HasCommercialFields() bool {
	return f.CommercialStreet != "" || f.CommercialNumber != "" ||
		f.CommercialNeighborhood != "" || f.CommercialCEP != "" ||
		f.CommercialCity != "" || f.CommercialWhatsapp != "" || f.CommercialPhone != ""
}

// ResolvedCommercialMode returns the effective commercial mode. An empty mode
// means "own" when any field is filled and no address otherwise.
func (f *FormData) ResolvedCommercialMode() string {
	if f.CommercialMode != "" {
		return f.CommercialMode
	}
	if f.HasCommercialFields() {
		return CommercialModeOwn
	}
	return ""
}

// ResidentialAddress builds the residential block, resolving the free-text
// neighborhood when the escape value was chosen.
func (f *FormData) ResidentialAddress() Address {
	neighborhood := f.ResidentialNeighborhood
	if neighborhood == NeighborhoodOther && f.ResidentialNeighborhoodOther != "" {
		neighborhood = f.ResidentialNeighborhoodOther
	}
	return Address{
		Street:       f.ResidentialStreet,
		Number:       f.ResidentialNumber,
		Neighborhood: neighborhood,
		CEP:          f.ResidentialCEP,
		City:         f.ResidentialCity,
		Whatsapp:     f.ResidentialWhatsapp,
		Phone:        f.ResidentialPhone,
	}
}

// CommercialAddress builds the commercial block for the resolved mode, or
// nil when none was given.
func (f *FormData) CommercialAddress() *Address {
	switch f.ResolvedCommercialMode() {
	case CommercialModeSameAsResidential:
		addr := f.ResidentialAddress()
		return &addr
	case CommercialModeNotApplicable:
		return NotApplicableAddress()
	case CommercialModeOwn:
		return &Address{
			Street:       f.CommercialStreet,
			Number:       f.CommercialNumber,
			Neighborhood: f.CommercialNeighborhood,
			CEP:          f.CommercialCEP,
			City:         f.CommercialCity,
			Whatsapp:     f.CommercialWhatsapp,
			Phone:        f.CommercialPhone,
		}
	}
	return nil
}

// Clone returns a deep copy of the form data.
func (f *FormData) Clone() *FormData {
	if f == nil {
		return nil
	}
	c := *f
	if f.Dependents != nil {
		c.Dependents = make([]Dependent, len(f.Dependents))
		copy(c.Dependents, f.Dependents)
	}
	if f.HasCriminalRecord != nil {
		v := *f.HasCriminalRecord
		c.HasCriminalRecord = &v
	}
	return &c
}

// ToRecord converts validated form data into a record.
func (f *FormData) ToRecord(id string, createdAt time.Time) *ApplicationRecord {
	dependents := make([]Dependent, len(f.Dependents))
	copy(dependents, f.Dependents)

	return &ApplicationRecord{
		ID:          id,
		CreatedAt:   createdAt,
		FullName:    f.FullName,
		BirthDate:   f.BirthDate,
		Sex:         f.Sex,
		CivilStatus: f.CivilStatus,
		CPF:         f.CPF,
		RG:          f.RG,
		Emissor:     f.Emissor,
		UF:          f.UF,
		Email:       f.Email,

		Residential:    f.ResidentialAddress(),
		Commercial:     f.CommercialAddress(),
		CommercialMode: f.ResolvedCommercialMode(),

		Payment: Payment{
			Method:         f.PaymentMethod,
			MonthlyMethod:  f.MonthlyPaymentMethod,
			DueDate:        f.DueDate,
			Token:          f.PaymentToken,
			Processor:      f.PaymentProcessor,
			LastFourDigits: f.LastFourDigits,
		},
		Dependents: dependents,

		AcceptStatute:    f.AcceptStatute,
		AcceptImageUsage: f.AcceptImageUsage,
	}
}
