// Package schemas validates the membership application one wizard step at a
// time and as a whole.
package schemas

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aabb-jequie/app-inscricao/internal/catalog"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
)

// Step names a wizard page.
type Step string

const (
	StepPersonal    Step = "personal"
	StepResidential Step = "residential"
	StepCommercial  Step = "commercial"
	StepDependents  Step = "dependents"
	StepPayment     Step = "payment"
	StepTerms       Step = "terms"
)

// Steps lists every step schema in form order.
var Steps = []Step{StepPersonal, StepResidential, StepCommercial, StepDependents, StepPayment, StepTerms}

// ParseStep accepts a step name.
func ParseStep(s string) (Step, error) {
	for _, step := range Steps {
		if string(step) == s {
			return step, nil
		}
	}
	return "", fmt.Errorf("unknown step %q", s)
}

var (
	minBirthDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

	// Runs of digits long enough to be a card or account number.
	longDigitRun = regexp.MustCompile(`\d{12,}`)
	fourDigits   = regexp.MustCompile(`^\d{4}$`)

	cardSeparators = strings.NewReplacer(" ", "", "-", "", ".", "")
)

// Validator runs the step schemas against form data.
type Validator struct {
	catalog   *catalog.Catalog
	strictCPF bool
}

// NewValidator creates a validator. With strictCPF the CPF check digits are
// verified on top of the punctuation pattern.
func NewValidator(cat *catalog.Catalog, strictCPF bool) *Validator {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Validator{catalog: cat, strictCPF: strictCPF}
}

// Step runs a single step schema.
func (v *Validator) Step(step Step, f *models.FormData, now time.Time) *Result {
	switch step {
	case StepPersonal:
		return v.Personal(f, now)
	case StepResidential:
		return v.Residential(f)
	case StepCommercial:
		return v.Commercial(f)
	case StepDependents:
		return v.Dependents(f.Dependents, now)
	case StepPayment:
		return v.Payment(f)
	case StepTerms:
		return v.Terms(f.AcceptStatute, f.AcceptImageUsage)
	}
	r := &Result{}
	r.Add("step", fmt.Sprintf("etapa desconhecida: %s", step))
	return r
}

// Application runs every step schema and returns all violations.
func (v *Validator) Application(f *models.FormData, now time.Time) *Result {
	r := &Result{}
	for _, step := range Steps {
		r.Merge("", v.Step(step, f, now))
	}
	return r
}

// Personal validates the applicant's identity fields.
func (v *Validator) Personal(f *models.FormData, now time.Time) *Result {
	r := &Result{}

	switch n := runeLen(f.FullName); {
	case n < 3:
		r.Add("fullName", "Nome deve ter pelo menos 3 caracteres")
	case n > 200:
		r.Add("fullName", "Nome muito longo")
	}

	if !validBirthDate(f.BirthDate, minBirthDate, now) {
		r.Add("birthDate", "Data de nascimento inválida")
	}
	if f.Sex != "M" && f.Sex != "F" {
		r.Add("sex", "Selecione o sexo")
	}
	if strings.TrimSpace(f.CivilStatus) == "" {
		r.Add("civilStatus", "Selecione o estado civil")
	}

	v.checkCPF(r, "cpf", f.CPF, "CPF deve estar no formato XXX.XXX.XXX-XX")

	if !utils.LengthBetween(strings.TrimSpace(f.RG), 5, 20) {
		r.Add("rg", "RG inválido")
	}
	v.checkIssuer(r, f.Emissor, f.UF)

	email := strings.TrimSpace(f.Email)
	switch {
	case !utils.IsEmail(email):
		r.Add("email", "Email inválido")
	case len(email) > 255:
		r.Add("email", "Email muito longo")
	}
	return r
}

// Residential validates the residential address. The neighborhood must come
// from the catalog unless the escape value is chosen with a free-text name.
func (v *Validator) Residential(f *models.FormData) *Result {
	r := &Result{}
	addr := addressFields{
		prefix:       "residential",
		street:       f.ResidentialStreet,
		number:       f.ResidentialNumber,
		neighborhood: f.ResidentialNeighborhood,
		cep:          f.ResidentialCEP,
		city:         f.ResidentialCity,
		whatsapp:     f.ResidentialWhatsapp,
		phone:        f.ResidentialPhone,
	}
	checkAddress(r, addr, true)

	neighborhood := strings.TrimSpace(f.ResidentialNeighborhood)
	if neighborhood != "" && utils.LengthBetween(neighborhood, 1, 100) {
		if neighborhood == models.NeighborhoodOther {
			if !utils.LengthBetween(strings.TrimSpace(f.ResidentialNeighborhoodOther), 1, 100) {
				r.Add("residentialNeighborhoodOther", "Informe o nome do bairro")
			}
		} else if _, ok := v.catalog.Neighborhood(neighborhood); !ok {
			r.Add("residentialNeighborhood", "Selecione o bairro")
		}
	}
	return r
}

// Commercial validates the optional commercial address. A missing block and
// the not-applicable sentinel both pass.
func (v *Validator) Commercial(f *models.FormData) *Result {
	r := &Result{}
	switch f.ResolvedCommercialMode() {
	case "", models.CommercialModeNotApplicable, models.CommercialModeSameAsResidential:
		return r
	case models.CommercialModeOwn:
	default:
		r.Add("commercialMode", "Opção de endereço comercial inválida")
		return r
	}

	checkAddress(r, addressFields{
		prefix:       "commercial",
		street:       f.CommercialStreet,
		number:       f.CommercialNumber,
		neighborhood: f.CommercialNeighborhood,
		cep:          f.CommercialCEP,
		city:         f.CommercialCity,
		whatsapp:     f.CommercialWhatsapp,
		phone:        f.CommercialPhone,
	}, false)
	return r
}

// Dependents validates every dependent, prefixing paths with the index.
func (v *Validator) Dependents(deps []models.Dependent, now time.Time) *Result {
	r := &Result{}
	for i := range deps {
		r.Merge(fmt.Sprintf("dependents[%d]", i), v.Dependent(&deps[i], now))
	}
	return r
}

// Dependent validates a single dependent. Document fields are optional but
// shape-checked when present.
func (v *Validator) Dependent(d *models.Dependent, now time.Time) *Result {
	r := &Result{}

	switch n := runeLen(d.Name); {
	case n < 3:
		r.Add("name", "Nome do dependente deve ter pelo menos 3 caracteres")
	case n > 200:
		r.Add("name", "Nome do dependente muito longo")
	}

	if strings.TrimSpace(d.CPF) != "" {
		v.checkCPF(r, "cpf", d.CPF, "CPF do dependente deve estar no formato XXX.XXX.XXX-XX")
	}
	if rg := strings.TrimSpace(d.RG); rg != "" && !utils.LengthBetween(rg, 5, 20) {
		r.Add("rg", "RG do dependente inválido")
	}
	v.checkIssuer(r, d.Emissor, d.UF)

	if !validBirthDate(d.BirthDate, time.Time{}, now) {
		r.Add("birthDate", "Data de nascimento do dependente inválida")
	}
	if d.Sex != "M" && d.Sex != "F" {
		r.Add("sex", "Selecione o sexo do dependente")
	}
	if strings.TrimSpace(d.Kinship) == "" {
		r.Add("kinship", "Informe o parentesco")
	}
	if email := strings.TrimSpace(d.Email); email != "" && (!utils.IsEmail(email) || len(email) > 255) {
		r.Add("email", "Email do dependente inválido")
	}
	return r
}

// Payment validates payment preferences. Catalog labels are accepted in
// place of codes.
func (v *Validator) Payment(f *models.FormData) *Result {
	r := &Result{}

	if _, ok := v.catalog.PaymentMethod(f.PaymentMethod); !ok {
		r.Add("paymentMethod", "Selecione a forma de pagamento")
	}
	if _, ok := v.catalog.MonthlyPaymentMethod(f.MonthlyPaymentMethod); !ok {
		r.Add("monthlyPaymentMethod", "Selecione a forma de pagamento mensal")
	}
	if _, ok := v.catalog.DueDay(f.DueDate); !ok {
		r.Add("dueDate", "Selecione o dia de vencimento")
	}

	if token := strings.TrimSpace(f.PaymentToken); token != "" && longDigitRun.MatchString(cardSeparators.Replace(token)) {
		r.Add("paymentToken", "Token de pagamento inválido")
	}
	if len(f.PaymentProcessor) > 50 {
		r.Add("paymentProcessor", "Processador de pagamento inválido")
	}
	if f.LastFourDigits != "" && !fourDigits.MatchString(f.LastFourDigits) {
		r.Add("lastFourDigits", "Informe apenas os 4 últimos dígitos")
	}
	return r
}

// Terms requires both consents to be literally true.
func (v *Validator) Terms(acceptStatute, acceptImageUsage bool) *Result {
	r := &Result{}
	if !acceptStatute {
		r.Add("acceptStatute", "Você deve aceitar o estatuto")
	}
	if !acceptImageUsage {
		r.Add("acceptImageUsage", "Você deve aceitar o uso de imagem")
	}
	return r
}

func (v *Validator) checkCPF(r *Result, field, cpf, formatMessage string) {
	if !utils.IsFormattedCPF(cpf) {
		r.Add(field, formatMessage)
		return
	}
	if v.strictCPF && !utils.ValidateCPF(cpf) {
		r.Add(field, "CPF inválido")
	}
}

func (v *Validator) checkIssuer(r *Result, emissor, uf string) {
	if e := strings.TrimSpace(emissor); e != "" && !utils.LengthBetween(e, 2, 20) {
		r.Add("emissor", "Órgão emissor inválido")
	}
	if u := strings.TrimSpace(uf); u != "" && !v.catalog.IsUF(u) {
		r.Add("uf", "UF inválida")
	}
}

// runeLen counts characters after trimming surrounding whitespace.
func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

type addressFields struct {
	prefix       string
	street       string
	number       string
	neighborhood string
	cep          string
	city         string
	whatsapp     string
	phone        string
}

// checkAddress applies the shared address shape. The residential WhatsApp is
// required; every other phone is optional.
func checkAddress(r *Result, a addressFields, whatsappRequired bool) {
	field := func(name string) string { return a.prefix + name }

	switch n := runeLen(a.street); {
	case n < 3:
		r.Add(field("Street"), "Rua muito curta")
	case n > 200:
		r.Add(field("Street"), "Rua muito longa")
	}

	switch n := runeLen(a.number); {
	case n < 1:
		r.Add(field("Number"), "Número obrigatório")
	case n > 10:
		r.Add(field("Number"), "Número muito longo")
	}

	if !utils.LengthBetween(strings.TrimSpace(a.neighborhood), 1, 100) {
		r.Add(field("Neighborhood"), "Selecione o bairro")
	}

	if !utils.IsCEP(strings.TrimSpace(a.cep)) {
		r.Add(field("Cep"), "CEP deve estar no formato XXXXX-XXX")
	}

	switch n := runeLen(a.city); {
	case n < 2:
		r.Add(field("City"), "Cidade muito curta")
	case n > 100:
		r.Add(field("City"), "Cidade muito longa")
	}

	whatsapp := strings.TrimSpace(a.whatsapp)
	if (whatsappRequired || whatsapp != "") && !utils.IsPhone(whatsapp) {
		r.Add(field("Whatsapp"), "Telefone/WhatsApp inválido")
	}
	if phone := strings.TrimSpace(a.phone); phone != "" && !utils.IsPhone(phone) {
		r.Add(field("Phone"), "Telefone inválido")
	}
}

// validBirthDate reports whether s is a YYYY-MM-DD date strictly between
// after and now. A zero after disables the lower bound.
func validBirthDate(s string, after, now time.Time) bool {
	s = strings.TrimSpace(s)
	if !utils.IsISODate(s) {
		return false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	if !after.IsZero() && !d.After(after) {
		return false
	}
	return d.Before(now)
}
