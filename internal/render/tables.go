package render

import (
	"html"
	"html/template"
	"sort"
	"strings"

	"rebrickable/lookup/internal/domain"

	log "github.com/sirupsen/logrus"
)

type partRow struct {
	label  string
	value  string
	isHTML bool
}

// PartTable renders the part details table, image, colors table and raw
// JSON dump. Rows whose value is empty are skipped, so only fields present
// in the payload appear. colors may be nil.
func PartTable(part domain.Part, colors domain.ColorsPayload) template.HTML {
	partURL := part.Field("part_url")
	partURLHTML := ""
	if partURL != "" {
		partURLHTML = safeLink(partURL, partURL)
	}

	rows := []partRow{
		{"Part Number", part.Field("part_num"), false},
		{"Name", part.Field("name"), false},
		{"Category", part.CategoryName(), false},
		{"Part URL", partURLHTML, true},
		{"Print of", part.Field("print_of"), false},
		{"Part Material", part.Field("part_material"), false},
		{"Year From", part.Field("year_from"), false},
		{"Year To", part.Field("year_to"), false},
	}

	if externalIDs := part.ExternalIDs(); externalIDs != nil {
		rows = append(rows, partRow{"External IDs", externalIDsHTML(externalIDs), true})
	}

	var b strings.Builder
	b.WriteString(`<h2 style="margin-bottom:0.4rem;">Part details</h2>`)
	b.WriteString(`<table class="result-table">`)
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		value := row.value
		if !row.isHTML {
			value = html.EscapeString(value)
		}
		b.WriteString("<tr><th>")
		b.WriteString(html.EscapeString(row.label))
		b.WriteString("</th><td>")
		b.WriteString(value)
		b.WriteString("</td></tr>")
	}
	b.WriteString(`</table>`)

	if imgURL := part.Field("part_img_url"); imgURL != "" {
		b.WriteString(`<div style="margin-top:1rem;">`)
		b.WriteString(`<h3 style="margin-bottom:0.5rem;">Part image</h3>`)
		b.WriteString(`<img src="` + html.EscapeString(imgURL) + `" alt="Part image for ` +
			html.EscapeString(part.Field("part_num")) +
			`" style="max-width:100%; height:auto; border:1px solid #d9e2ec; border-radius:8px;" />`)
		b.WriteString(`</div>`)
	}

	if colors != nil {
		b.WriteString(string(ColorsTable(part, colors)))
	}

	rawJSON, err := part.RawJSON()
	if err != nil {
		log.Warnf("Failed to encode raw part payload: %v", err)
	} else {
		b.WriteString(`<details><summary>Show raw JSON</summary><pre>`)
		b.WriteString(html.EscapeString(rawJSON))
		b.WriteString(`</pre></details>`)
	}

	return template.HTML(b.String())
}

// ColorsTable renders the available colors table: ID, name (linked to the
// part color page when possible), RGB with a swatch, set and part counts.
func ColorsTable(part domain.Part, colors domain.ColorsPayload) template.HTML {
	const noColors = `<p>No available colors returned for this part.</p>`

	entries, ok := colors.Results()
	if !ok || len(entries) == 0 {
		return noColors
	}

	partURL := strings.TrimRight(part.Field("part_url"), "/")

	var rows []string
	for _, entry := range entries {
		colorID := entry.Field("id")
		colorName := entry.Field("name")
		rgb := entry.Field("rgb")

		numSets := domain.FormatValue(domain.FirstPresent(entry,
			[]string{"num_sets", "sets", "set_count"}))
		numParts := domain.FormatValue(domain.FirstPresent(entry,
			[]string{"num_parts", "parts", "part_count", "quantity", "num_set_parts"}))

		if colorID == "" && colorName == "" && rgb == "" && numSets == "" && numParts == "" {
			continue
		}

		colorNameHTML := html.EscapeString(colorName)
		if partURL != "" && colorID != "" && colorName != "" {
			colorNameHTML = safeLink(partURL+"/"+colorID+"/", colorName)
		}

		rgbText := html.EscapeString(rgb)
		if normalized := domain.NormalizeRGB(rgb); normalized != "" {
			swatch := `<span class="color-swatch" style="background-color: #` +
				html.EscapeString(normalized) + `;"></span>`
			rgbText = swatch + "#" + html.EscapeString(normalized)
		}

		rows = append(rows,
			"<tr>"+
				"<td>"+html.EscapeString(colorID)+"</td>"+
				"<td>"+colorNameHTML+"</td>"+
				"<td>"+rgbText+"</td>"+
				"<td>"+html.EscapeString(numSets)+"</td>"+
				"<td>"+html.EscapeString(numParts)+"</td>"+
				"</tr>")
	}

	if len(rows) == 0 {
		return noColors
	}

	return template.HTML(
		`<h3 style="margin-top:1.5rem; margin-bottom:0.5rem;">Available colors</h3>` +
			`<table class="result-table">` +
			`<thead><tr><th>ID</th><th>Color</th><th>RGB</th><th>Sets</th><th>Parts</th></tr></thead>` +
			`<tbody>` + strings.Join(rows, "") + `</tbody>` +
			`</table>`)
}

// externalIDsHTML renders one block per source, linking each id when a
// catalog URL mapping exists. Sources are sorted for stable output.
func externalIDsHTML(externalIDs map[string]any) string {
	sources := make([]string, 0, len(externalIDs))
	for source := range externalIDs {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	var chunks []string
	for _, source := range sources {
		ids, ok := externalIDs[source].([]any)
		if !ok {
			ids = []any{externalIDs[source]}
		}

		var links []string
		for _, item := range ids {
			idText := domain.FormatValue(item)
			if idText == "" {
				continue
			}
			if url := domain.ExternalURL(source, idText); url != "" {
				links = append(links, safeLink(url, idText))
			} else {
				links = append(links, html.EscapeString(idText))
			}
		}

		if len(links) > 0 {
			chunks = append(chunks, "<div><strong>"+html.EscapeString(source)+":</strong> "+
				strings.Join(links, ", ")+"</div>")
		}
	}

	return strings.Join(chunks, "")
}

func safeLink(url, label string) string {
	return `<a href="` + html.EscapeString(url) + `" target="_blank" rel="noopener noreferrer">` +
		html.EscapeString(label) + `</a>`
}
