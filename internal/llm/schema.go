package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is passed to the provider as a structured output constraint
// and also used locally to validate responses before parsing.
func BuildInvoiceJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"quantity":    map[string]any{"type": "number", "minimum": 0},
			"unitPrice":   map[string]any{"type": "number", "minimum": 0},
			"totalPrice":  map[string]any{"type": "number", "minimum": 0},
			"taxRate":     map[string]any{"type": "number", "minimum": 0},
			"taxAmount":   map[string]any{"type": "number", "minimum": 0},
			"sku":         map[string]any{"type": "string"},
			"category":    map[string]any{"type": "string"},
		},
		"required": []string{"description"},
	}

	data := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"invoiceNumber":   map[string]any{"type": "string", "minLength": 1},
			"issueDate":       map[string]any{"type": "string"},
			"dueDate":         map[string]any{"type": "string"},
			"totalAmount":     map[string]any{"type": "number"},
			"currency":        map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"customerName":    map[string]any{"type": "string"},
			"customerAddress": map[string]any{"type": "string"},
			"customerContact": map[string]any{"type": "string"},
			"customerTaxId":   map[string]any{"type": "string"},
			"vendorName":      map[string]any{"type": "string"},
			"vendorAddress":   map[string]any{"type": "string"},
			"vendorContact":   map[string]any{"type": "string"},
			"vendorTaxId":     map[string]any{"type": "string"},
			"paymentTerms":    map[string]any{"type": "string"},
			"notes":           map[string]any{"type": "string"},
			"lineItems":       map[string]any{"type": "array", "items": lineItem},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"validation": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"status": map[string]any{"type": "string", "enum": []string{"valid", "invalid"}},
					"errors": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required": []string{"status"},
			},
			"data": data,
		},
		"required": []string{"validation"},
	}
}
