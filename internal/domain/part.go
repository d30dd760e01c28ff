package domain

import "encoding/json"

// Part is a decoded Rebrickable part payload. It is kept as the raw JSON
// object so only fields present in the payload are ever rendered.
type Part map[string]any

// Field formats the value at key, or "" when the field is absent or empty.
func (p Part) Field(key string) string {
	value, ok := p[key]
	if !ok || isEmpty(value) {
		return ""
	}
	return FormatValue(value)
}

// CategoryName reads the nested part_cat.name field when present.
func (p Part) CategoryName() string {
	cat, ok := p["part_cat"].(map[string]any)
	if !ok {
		return ""
	}
	name, ok := cat["name"]
	if !ok || isEmpty(name) {
		return ""
	}
	return FormatValue(name)
}

// ExternalIDs returns the external_ids object, or nil when absent or empty.
func (p Part) ExternalIDs() map[string]any {
	ids, ok := p["external_ids"].(map[string]any)
	if !ok || len(ids) == 0 {
		return nil
	}
	return ids
}

// RawJSON dumps the full payload with 2-space indentation and sorted keys.
func (p Part) RawJSON() (string, error) {
	b, err := json.MarshalIndent(map[string]any(p), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
