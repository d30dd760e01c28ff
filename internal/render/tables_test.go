package render

import (
	"encoding/json"
	"strings"
	"testing"

	"rebrickable/lookup/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func samplePart() domain.Part {
	return domain.Part{
		"part_num":     "3001",
		"name":         "Brick 2 x 4",
		"part_cat":     map[string]any{"name": "Bricks"},
		"part_url":     "https://rebrickable.com/parts/3001/",
		"part_img_url": "https://cdn.rebrickable.com/media/parts/3001.jpg",
		"year_from":    json.Number("1958"),
		"external_ids": map[string]any{
			"BrickLink": []any{"3001"},
			"Peeron":    []any{"3001old"},
		},
	}
}

func sampleColors() domain.ColorsPayload {
	return domain.ColorsPayload{
		"count": json.Number("1"),
		"results": []any{
			map[string]any{
				"id":        json.Number("4"),
				"name":      "Red",
				"rgb":       "C91A09",
				"num_sets":  json.Number("123"),
				"num_parts": json.Number("456"),
			},
		},
	}
}

func TestPartTable_RendersKnownFields(t *testing.T) {
	doc := parseHTML(t, string(PartTable(samplePart(), sampleColors())))

	labels := doc.Find("table.result-table").First().Find("th").Map(
		func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Contains(t, labels, "Part Number")
	assert.Contains(t, labels, "Name")
	assert.Contains(t, labels, "Category")
	assert.Contains(t, labels, "Year From")
	assert.Contains(t, labels, "External IDs")

	// Fields absent from the payload never render.
	assert.NotContains(t, labels, "Year To")
	assert.NotContains(t, labels, "Print of")

	link := doc.Find(`a[href="https://rebrickable.com/parts/3001/"]`)
	require.Equal(t, 1, link.Length())
	assert.Equal(t, "_blank", link.AttrOr("target", ""))
	assert.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
}

func TestPartTable_ExternalIDLinks(t *testing.T) {
	doc := parseHTML(t, string(PartTable(samplePart(), nil)))

	// Known source links to its catalog page, unknown source renders as text.
	assert.Equal(t, 1,
		doc.Find(`a[href="https://www.bricklink.com/v2/catalog/catalogitem.page?P=3001"]`).Length())
	assert.Contains(t, doc.Text(), "Peeron:")
	assert.Contains(t, doc.Text(), "3001old")
}

func TestPartTable_Image(t *testing.T) {
	doc := parseHTML(t, string(PartTable(samplePart(), nil)))

	img := doc.Find("img")
	require.Equal(t, 1, img.Length())
	assert.Equal(t, "https://cdn.rebrickable.com/media/parts/3001.jpg", img.AttrOr("src", ""))
	assert.Equal(t, "Part image for 3001", img.AttrOr("alt", ""))
}

func TestPartTable_RawJSONDetails(t *testing.T) {
	doc := parseHTML(t, string(PartTable(samplePart(), nil)))

	pre := doc.Find("details pre")
	require.Equal(t, 1, pre.Length())
	assert.Contains(t, pre.Text(), `"part_num": "3001"`)
}

func TestPartTable_EscapesPayloadValues(t *testing.T) {
	part := domain.Part{
		"part_num": "3001",
		"name":     `<script>alert("x")</script>`,
	}
	rendered := string(PartTable(part, nil))
	assert.NotContains(t, rendered, "<script>")

	doc := parseHTML(t, rendered)
	assert.Contains(t, doc.Find("td").Text(), `<script>alert("x")</script>`)
}

func TestColorsTable_Rows(t *testing.T) {
	doc := parseHTML(t, string(ColorsTable(samplePart(), sampleColors())))

	cells := doc.Find("tbody td").Map(
		func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"4", "Red", "#C91A09", "123", "456"}, cells)

	// Color name links to the per-color part page.
	assert.Equal(t, 1,
		doc.Find(`a[href="https://rebrickable.com/parts/3001/4/"]`).Length())

	swatch := doc.Find("span.color-swatch")
	require.Equal(t, 1, swatch.Length())
	assert.Contains(t, swatch.AttrOr("style", ""), "#C91A09")
}

func TestColorsTable_AliasShapedEntry(t *testing.T) {
	colors := domain.ColorsPayload{
		"results": []any{
			map[string]any{
				"color": map[string]any{
					"id":   json.Number("71"),
					"name": "Light Bluish Gray",
				},
				"rgb_hex":  "#a0a5a9",
				"quantity": json.Number("9"),
			},
		},
	}

	doc := parseHTML(t, string(ColorsTable(samplePart(), colors)))
	cells := doc.Find("tbody td").Map(
		func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"71", "Light Bluish Gray", "#A0A5A9", "", "9"}, cells)
}

func TestColorsTable_NoUsableRows(t *testing.T) {
	for _, colors := range []domain.ColorsPayload{
		{"results": []any{}},
		{"detail": "no list here"},
		{"results": []any{map[string]any{"irrelevant": nil}}},
	} {
		rendered := string(ColorsTable(samplePart(), colors))
		assert.Contains(t, rendered, "No available colors returned for this part.")
	}
}

func TestColorsTable_NoLinkWithoutPartURL(t *testing.T) {
	part := domain.Part{"part_num": "3001"}
	doc := parseHTML(t, string(ColorsTable(part, sampleColors())))
	assert.Equal(t, 0, doc.Find("tbody a").Length())
	assert.Contains(t, doc.Find("tbody td").Text(), "Red")
}

func TestPage_EchoesPartNumberEscaped(t *testing.T) {
	page, err := Page(`3001"><script>`, "")
	require.NoError(t, err)
	assert.NotContains(t, page, `value="3001"><script>`)

	doc := parseHTML(t, page)
	input := doc.Find(`input[name="part_num"]`)
	require.Equal(t, 1, input.Length())
	assert.Equal(t, `3001"><script>`, input.AttrOr("value", ""))
}

func TestPage_IncludesContent(t *testing.T) {
	page, err := Page("3001", ErrorMessage("HTTP error 404: not found"))
	require.NoError(t, err)

	doc := parseHTML(t, page)
	assert.Equal(t, "Failed to fetch data: HTTP error 404: not found",
		doc.Find("p.error").Text())
	assert.Equal(t, "Rebrickable Part Lookup", doc.Find("h1").Text())
}
