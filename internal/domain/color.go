package domain

// ColorEntry is one entry of a part colors payload. Different API payload
// shapes spell the same fields differently, so lookups resolve aliases.
type ColorEntry map[string]any

// colorFieldAliases lists alternate key names seen in some payloads.
var colorFieldAliases = map[string][]string{
	"id":   {"color_id", "id_color", "colour_id"},
	"name": {"color_name", "colour_name"},
	"rgb":  {"color_rgb", "rgb_hex", "hex", "colour_rgb"},
}

// Field extracts a color field, trying the direct key, a nested "color"
// object, and known alias key names in that order.
func (e ColorEntry) Field(field string) string {
	if value, ok := e[field]; ok && !isEmpty(value) {
		return FormatValue(value)
	}

	if nested, ok := e["color"].(map[string]any); ok {
		if value, ok := nested[field]; ok && !isEmpty(value) {
			return FormatValue(value)
		}
	}

	for _, alias := range colorFieldAliases[field] {
		if value, ok := e[alias]; ok && !isEmpty(value) {
			return FormatValue(value)
		}
	}

	return ""
}

// ColorsPayload is a decoded part colors response, passed through from the
// API with at most the rgb field filled in by enrichment.
type ColorsPayload map[string]any

// Results returns the entries of the results list. The second return is
// false when the payload has no results list at all.
func (p ColorsPayload) Results() ([]ColorEntry, bool) {
	raw, ok := p["results"].([]any)
	if !ok {
		return nil, false
	}

	entries := make([]ColorEntry, 0, len(raw))
	for _, item := range raw {
		if entry, ok := item.(map[string]any); ok {
			entries = append(entries, ColorEntry(entry))
		}
	}
	return entries, true
}
