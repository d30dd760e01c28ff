package render

import (
	"bytes"
	_ "embed"
	"html"
	"html/template"
)

// Keep the page as a single embedded template so the binary stays
// self-contained.
//
//go:embed page.gohtml
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	PartNum string
	Content template.HTML
}

// Page renders the lookup page with the submitted part number echoed into
// the form and the given result (or error) block below it.
func Page(partNum string, content template.HTML) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{PartNum: partNum, Content: content}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ErrorMessage wraps a failure detail in the page's error paragraph.
func ErrorMessage(detail string) template.HTML {
	return template.HTML(`<p class="error">Failed to fetch data: ` + html.EscapeString(detail) + `</p>`)
}

// MissingKeyMessage is shown when no API key is configured.
func MissingKeyMessage() template.HTML {
	return `<p class="error">REBRICKABLE_API_KEY is not set.</p>`
}
