// Package receipt renders the printable application form sent to the
// applicant and kept by the club.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/catalog"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
)

// Format is the output document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// Layout controls how many copies are printed side by side.
type Layout string

const (
	LayoutSingle Layout = "single"
	LayoutDouble Layout = "double"
)

// ParseFormat accepts "pdf" or "html". Empty means PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported receipt format %q", s)
}

// ParseLayout accepts "single" or "double". Empty means double, the layout
// printed at the club desk.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutDouble:
		return LayoutDouble, nil
	case LayoutSingle:
		return LayoutSingle, nil
	}
	return "", fmt.Errorf("unsupported receipt layout %q", s)
}

// Filename names the receipt after the applicant's CPF digits.
func Filename(rec *models.ApplicationRecord, format Format) string {
	return fmt.Sprintf("recibo-%s.%s", utils.DigitsOnly(rec.CPF), format)
}

// ContentType returns the MIME type of a format.
func ContentType(format Format) string {
	if format == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "application/pdf"
}

const (
	termsStatute = "Declaro para devidos fins que aceito e estou ciente das normas e regulamentos vigentes " +
		"(ESTATUTO/ REGIMENTO E OUTROS REGULAMENTOS DA AABB)."
	termsImage = "Autorizo o uso de minha imagem e de meus dependentes em fotos e filmagens com fins não " +
		"comerciais nas publicações realizadas em eventos produzidos pela Associação."
)

// Generator renders receipts. Output depends only on the record and the
// supplied clock.
type Generator struct {
	catalog  *catalog.Catalog
	clubName string
	location *time.Location
}

// NewGenerator creates a generator. A nil catalog or location falls back to
// the embedded catalog and UTC.
func NewGenerator(cat *catalog.Catalog, clubName string, loc *time.Location) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{catalog: cat, clubName: clubName, location: loc}
}

// Render produces the receipt in the requested format and layout.
func (g *Generator) Render(rec *models.ApplicationRecord, now time.Time, format Format, layout Layout) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil application record")
	}
	doc := g.document(rec, now, layout)
	switch format {
	case FormatPDF:
		return renderPDF(doc, now)
	case FormatHTML:
		return renderHTML(doc)
	}
	return nil, fmt.Errorf("unsupported receipt format %q", format)
}

type field struct {
	Label string
	Value string
}

type entry struct {
	Heading string
	Fields  []field
}

type section struct {
	Title   string
	Note    string
	Fields  []field
	Entries []entry
}

type document struct {
	Title      string
	ClubName   string
	Sections   []section
	Terms      []string
	Signatures []string
	Date       string
	Double     bool
}

// Columns lists one index per printed copy.
func (d document) Columns() []int {
	if d.Double {
		return []int{0, 1}
	}
	return []int{0}
}

func (g *Generator) document(rec *models.ApplicationRecord, now time.Time, layout Layout) document {
	doc := document{
		Title:    "FICHA DE INSCRIÇÃO",
		ClubName: g.clubName,
		Sections: []section{
			g.personal(rec),
			addressSection("ENDEREÇO RESIDENCIAL", &rec.Residential),
			addressSection("ENDEREÇO COMERCIAL", rec.Commercial),
			g.payment(rec),
		},
		Terms:      []string{termsStatute, termsImage},
		Signatures: []string{"ASSINATURA DO TITULAR", "ASSINATURA DO RESPONSÁVEL AABB"},
		Date:       "Data: " + now.In(g.location).Format("02/01/2006"),
		Double:     layout == LayoutDouble,
	}
	if len(rec.Dependents) > 0 {
		doc.Sections = append(doc.Sections, g.dependents(rec.Dependents))
	}
	return doc
}

func (g *Generator) personal(rec *models.ApplicationRecord) section {
	rg := rec.RG
	if issuer := joinNonEmpty("/", rec.Emissor, rec.UF); issuer != "" {
		rg += " " + issuer
	}
	return section{
		Title: "DADOS PESSOAIS",
		Fields: []field{
			{"Nome", rec.FullName},
			{"CPF", rec.CPF},
			{"RG", rg},
			{"Nascimento", displayDate(rec.BirthDate)},
			{"Sexo", sexLabel(rec.Sex)},
			{"Estado Civil", g.catalog.CivilStatusLabel(rec.CivilStatus)},
			{"Email", rec.Email},
		},
	}
}

func addressSection(title string, a *models.Address) section {
	s := section{Title: title}
	if a == nil || a.IsNotApplicable() {
		s.Note = "Não se aplica"
		return s
	}
	s.Fields = []field{
		{"Endereço", joinNonEmpty(", ", a.Street, a.Number)},
		{"Bairro", a.Neighborhood},
		{"Cidade", a.City},
		{"CEP", a.CEP},
	}
	if a.Whatsapp != "" {
		s.Fields = append(s.Fields, field{"WhatsApp", a.Whatsapp})
	}
	if a.Phone != "" {
		s.Fields = append(s.Fields, field{"Telefone", a.Phone})
	}
	return s
}

func (g *Generator) payment(rec *models.ApplicationRecord) section {
	s := section{
		Title: "PAGAMENTO",
		Fields: []field{
			{"Taxa", g.catalog.PaymentMethodLabel(rec.Payment.Method)},
			{"Mensal", g.catalog.MonthlyPaymentMethodLabel(rec.Payment.MonthlyMethod)},
			{"Vencimento", g.catalog.DueDayLabel(rec.Payment.DueDate)},
		},
	}
	if rec.Payment.LastFourDigits != "" {
		s.Fields = append(s.Fields, field{"Cartão", "final " + rec.Payment.LastFourDigits})
	}
	return s
}

func (g *Generator) dependents(deps []models.Dependent) section {
	s := section{Title: "DEPENDENTES"}
	for i, d := range deps {
		e := entry{
			Heading: fmt.Sprintf("%d. %s", i+1, d.Name),
			Fields: []field{
				{"Parentesco", d.Kinship},
				{"Nascimento", displayDate(d.BirthDate)},
				{"Sexo", d.Sex},
			},
		}
		if d.CPF != "" {
			e.Fields = append(e.Fields, field{"CPF", d.CPF})
		}
		if d.IsUniversity {
			e.Fields = append(e.Fields, field{"Universitário", "Sim"})
		}
		s.Entries = append(s.Entries, e)
	}
	return s
}

// displayDate turns YYYY-MM-DD into dd/mm/yyyy, leaving other input as is.
func displayDate(s string) string {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return d.Format("02/01/2006")
}

func sexLabel(code string) string {
	switch code {
	case "M":
		return "Masculino"
	case "F":
		return "Feminino"
	}
	return code
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
