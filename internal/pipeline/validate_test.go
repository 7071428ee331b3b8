package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRecordsPayload_Valid(t *testing.T) {
	payload := []byte(`[
		{"name": "Tomates grappe", "unit": "kg", "unit_price": 2.5, "quantity": 5, "allergens": []},
		{"name": "Farine T55", "unit": "kg", "unit_price": 0.85, "allergens": ["Gluten"]}
	]`)

	require.NoError(t, ValidateJSONAgainstSchema(BuildRecordsJSONSchema(), payload))
}

func TestValidateRecordsPayload_Rejections(t *testing.T) {
	cases := map[string]string{
		"empty array":       `[]`,
		"missing price":     `[{"name": "Tomates", "unit": "kg"}]`,
		"zero price":        `[{"name": "Tomates", "unit": "kg", "unit_price": 0}]`,
		"short name":        `[{"name": "T", "unit": "kg", "unit_price": 2.5}]`,
		"unknown allergen":  `[{"name": "Tomates", "unit": "kg", "unit_price": 2.5, "allergens": ["Pollen"]}]`,
		"unknown field":     `[{"name": "Tomates", "unit": "kg", "unit_price": 2.5, "color": "red"}]`,
		"negative quantity": `[{"name": "Tomates", "unit": "kg", "unit_price": 2.5, "quantity": -1}]`,
	}
	schema := BuildRecordsJSONSchema()
	for name, payload := range cases {
		if err := ValidateJSONAgainstSchema(schema, []byte(payload)); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}
