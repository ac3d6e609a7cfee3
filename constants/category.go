package constants

import (
	"strings"
)

type Category string

const (
	Electricity     Category = "Electricity"
	InternetTelecom Category = "Internet & Telecom"
	Groceries       Category = "Groceries"
	Restaurant      Category = "Restaurant"
	Transportation  Category = "Transportation"
	Healthcare      Category = "Healthcare"
	Shopping        Category = "Shopping"
	Banking         Category = "Banking"
	Education       Category = "Education"
	Business        Category = "Business"
	Uncategorized   Category = "Uncategorized"
)

var allCategories = []Category{
	Electricity,
	InternetTelecom,
	Groceries,
	Restaurant,
	Transportation,
	Healthcare,
	Shopping,
	Banking,
	Education,
	Business,
	Uncategorized,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Uncategorized, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"power":       Electricity,
		"utility":     Electricity,
		"telecom":     InternetTelecom,
		"internet":    InternetTelecom,
		"broadband":   InternetTelecom,
		"grocery":     Groceries,
		"supermarket": Groceries,
		"dining":      Restaurant,
		"transport":   Transportation,
		"fuel":        Transportation,
		"medical":     Healthcare,
		"pharmacy":    Healthcare,
		"retail":      Shopping,
		"bank":        Banking,
		"finance":     Banking,
		"school":      Education,
		"tuition":     Education,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Uncategorized, false
}
