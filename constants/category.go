package constants

import "strings"

// Category is a coarse expense category attached to invoice line items.
type Category string

const (
	Goods        Category = "Goods"
	Services     Category = "Services"
	Shipping     Category = "Shipping"
	Software     Category = "Software"
	Subscription Category = "Subscription"
	Travel       Category = "Travel"
	Utilities    Category = "Utilities"
	Other        Category = "Other"
)

var allCategories = []Category{
	Goods,
	Services,
	Shipping,
	Software,
	Subscription,
	Travel,
	Utilities,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-text label from the extraction payload onto the
// closed category set. Unknown labels fall back to Other.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Category{
		"product":      Goods,
		"item":         Goods,
		"merchandise":  Goods,
		"labor":        Services,
		"labour":       Services,
		"consulting":   Services,
		"freight":      Shipping,
		"delivery":     Shipping,
		"postage":      Shipping,
		"saas":         Subscription,
		"license":      Software,
		"licence":      Software,
		"hotel":        Travel,
		"airfare":      Travel,
		"electricity":  Utilities,
		"water":        Utilities,
		"gas":          Utilities,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
