package receipt

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/receipt.html.tmpl
var templateFS embed.FS

var receiptTemplate = template.Must(template.ParseFS(templateFS, "templates/receipt.html.tmpl"))

func renderHTML(doc document) ([]byte, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.ExecuteTemplate(&buf, "receipt.html.tmpl", doc); err != nil {
		return nil, fmt.Errorf("failed to render receipt HTML: %w", err)
	}
	return buf.Bytes(), nil
}
