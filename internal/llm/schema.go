package llm

import (
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

// BuildFieldsJSONSchema describes the object the model must return. Every
// attribute is required but may be null; extra keys are tolerated.
func BuildFieldsJSONSchema() map[string]any {
	scalar := map[string]any{"type": []string{"string", "number", "boolean", "null"}}

	props := map[string]any{}
	for _, k := range deal.RequiredKeys {
		props[k] = scalar
	}
	props[deal.KeyLeaseTerm] = map[string]any{
		"anyOf": []any{
			scalar,
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"expiration_date": map[string]any{"type": []string{"string", "null"}},
					"remaining_years": map[string]any{"type": []string{"string", "number", "null"}},
				},
			},
		},
	}
	addressPart := map[string]any{"type": []string{"string", "number", "null"}}
	props[deal.KeyAddress] = map[string]any{
		"anyOf": []any{
			map[string]any{"type": []string{"string", "null"}},
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"Line 1": addressPart,
					"City":   addressPart,
					"State":  addressPart,
					"Zip":    addressPart,
				},
			},
		},
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   deal.RequiredKeys,
	}
}
