package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageTop    = 15.0
	pageBottom = 287.0
	dividerTop = 10.0
	gutter     = 5.0
	fontFamily = "Helvetica"
)

type opKind int

const (
	opText opKind = iota
	opRule
	opSpace
)

// op is one vertical slot of the flowed document.
type op struct {
	kind      opKind
	text      string
	style     string
	size      float64
	align     string
	height    float64
	breakable bool
}

type placed struct {
	op
	y float64
}

func renderPDF(doc document, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	// Fixed metadata keeps the output byte-stable
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.ClubName, true)
	pdf.SetCreator("app-inscricao", true)

	pageWidth, pageHeight := pdf.GetPageSize()
	columnWidth := pageWidth
	if doc.Double {
		columnWidth = pageWidth / 2
	}
	textWidth := columnWidth - 2*gutter

	// Lay out once, then draw each page per column
	pages := paginate(layout(pdf, doc, textWidth), pageTop, pageBottom)
	for _, page := range pages {
		pdf.AddPage()
		for _, col := range doc.Columns() {
			draw(pdf, page, float64(col)*columnWidth+gutter, textWidth)
		}
		if doc.Double {
			pdf.SetDrawColor(200, 200, 200)
			pdf.Line(columnWidth, dividerTop, columnWidth, pageHeight-dividerTop)
			pdf.SetDrawColor(0, 0, 0)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// layout flows the document into ops for a column of the given width. Text
// is converted to the core-font code page here, so ops are drawn as is.
func layout(pdf *fpdf.Fpdf, doc document, width float64) []op {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	var ops []op
	breakable := false

	text := func(s, style string, size, lineHeight float64, align string) {
		pdf.SetFont(fontFamily, style, size)
		for _, line := range pdf.SplitLines([]byte(tr(s)), width) {
			ops = append(ops, op{kind: opText, text: string(line), style: style, size: size, align: align, height: lineHeight, breakable: breakable})
		}
	}
	space := func(h float64) {
		ops = append(ops, op{kind: opSpace, height: h, breakable: breakable})
	}

	text(doc.Title, "B", 14, 7, "C")
	text(doc.ClubName, "B", 12, 10, "C")

	for _, s := range doc.Sections {
		if len(s.Entries) > 0 {
			breakable = true
		}
		text(s.Title, "B", 10, 5, "L")
		if s.Note != "" {
			text(s.Note, "", 8, 4, "L")
		}
		for _, f := range s.Fields {
			text(f.Label+": "+f.Value, "", 8, 4, "L")
		}
		for _, e := range s.Entries {
			text(e.Heading, "B", 7, 3.5, "L")
			for _, f := range e.Fields {
				text(f.Label+": "+f.Value, "", 7, 3.5, "L")
			}
			space(1)
		}
		space(2)
	}

	text("DECLARO E ACEITO", "B", 10, 5, "L")
	for _, t := range doc.Terms {
		text("[X] "+t, "", 7, 3, "L")
		space(2)
	}

	for _, label := range doc.Signatures {
		space(8)
		ops = append(ops, op{kind: opRule, height: 1, breakable: breakable})
		text(label, "B", 8, 4, "C")
	}

	space(6)
	text(doc.Date, "", 7, 4, "L")
	return ops
}

// paginate assigns a y position to every op. A new page starts only when a
// breakable op would cross the bottom margin.
func paginate(ops []op, top, bottom float64) [][]placed {
	pages := [][]placed{nil}
	y := top
	for _, o := range ops {
		if o.breakable && y+o.height > bottom && y > top {
			pages = append(pages, nil)
			y = top
		}
		last := len(pages) - 1
		pages[last] = append(pages[last], placed{op: o, y: y})
		y += o.height
	}
	return pages
}

func draw(pdf *fpdf.Fpdf, page []placed, x, width float64) {
	for _, p := range page {
		switch p.kind {
		case opText:
			pdf.SetFont(fontFamily, p.style, p.size)
			pdf.SetXY(x, p.y)
			pdf.CellFormat(width, p.height, p.text, "", 0, p.align, false, 0, "")
		case opRule:
			pdf.Line(x+gutter, p.y, x+width-gutter, p.y)
		}
	}
}
