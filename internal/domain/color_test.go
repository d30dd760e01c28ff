package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorEntryField_Direct(t *testing.T) {
	entry := ColorEntry{
		"id":   json.Number("4"),
		"name": "Red",
		"rgb":  "C91A09",
	}
	assert.Equal(t, "4", entry.Field("id"))
	assert.Equal(t, "Red", entry.Field("name"))
	assert.Equal(t, "C91A09", entry.Field("rgb"))
}

func TestColorEntryField_NestedColorObject(t *testing.T) {
	entry := ColorEntry{
		"color": map[string]any{
			"id":   json.Number("71"),
			"name": "Light Bluish Gray",
			"rgb":  "A0A5A9",
		},
	}
	assert.Equal(t, "71", entry.Field("id"))
	assert.Equal(t, "Light Bluish Gray", entry.Field("name"))
	assert.Equal(t, "A0A5A9", entry.Field("rgb"))
}

func TestColorEntryField_Aliases(t *testing.T) {
	entry := ColorEntry{
		"color_id":    json.Number("15"),
		"colour_name": "White",
		"rgb_hex":     "FFFFFF",
	}
	assert.Equal(t, "15", entry.Field("id"))
	assert.Equal(t, "White", entry.Field("name"))
	assert.Equal(t, "FFFFFF", entry.Field("rgb"))
}

func TestColorEntryField_DirectWinsOverAlias(t *testing.T) {
	entry := ColorEntry{
		"rgb":     "05131D",
		"rgb_hex": "FFFFFF",
	}
	assert.Equal(t, "05131D", entry.Field("rgb"))
}

func TestColorEntryField_EmptyValuesSkipped(t *testing.T) {
	entry := ColorEntry{
		"rgb":       "",
		"color_rgb": "B40000",
	}
	assert.Equal(t, "B40000", entry.Field("rgb"))
	assert.Equal(t, "", entry.Field("name"))
}

func TestColorsPayloadResults(t *testing.T) {
	payload := ColorsPayload{
		"count": json.Number("2"),
		"results": []any{
			map[string]any{"id": json.Number("4")},
			"not an object",
			map[string]any{"id": json.Number("5")},
		},
	}

	entries, ok := payload.Results()
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "4", entries[0].Field("id"))
	assert.Equal(t, "5", entries[1].Field("id"))
}

func TestColorsPayloadResults_MissingList(t *testing.T) {
	_, ok := ColorsPayload{"detail": "oops"}.Results()
	assert.False(t, ok)
}

func TestPartField(t *testing.T) {
	part := Part{
		"part_num":  "3001",
		"year_from": json.Number("1958"),
		"print_of":  nil,
		"part_cat":  map[string]any{"name": "Bricks"},
	}
	assert.Equal(t, "3001", part.Field("part_num"))
	assert.Equal(t, "1958", part.Field("year_from"))
	assert.Equal(t, "", part.Field("print_of"))
	assert.Equal(t, "", part.Field("missing"))
	assert.Equal(t, "Bricks", part.CategoryName())
}

func TestPartExternalIDs(t *testing.T) {
	assert.Nil(t, Part{}.ExternalIDs())
	assert.Nil(t, Part{"external_ids": map[string]any{}}.ExternalIDs())
	assert.Nil(t, Part{"external_ids": "bogus"}.ExternalIDs())

	ids := Part{"external_ids": map[string]any{"BrickLink": []any{"3001"}}}.ExternalIDs()
	require.NotNil(t, ids)
	assert.Contains(t, ids, "BrickLink")
}

func TestPartRawJSON(t *testing.T) {
	part := Part{
		"part_num":  "3001",
		"year_from": json.Number("1958"),
	}
	raw, err := part.RawJSON()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"part_num\": \"3001\",\n  \"year_from\": 1958\n}", raw)
}
