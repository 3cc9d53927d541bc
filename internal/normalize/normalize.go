// Package normalize cleans loosely formatted values in recovered model
// output: string-wrapped numbers, comma decimal separators, embedded units.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// numPattern matches the first signed decimal number in a string, with either
// a comma or a dot as the decimal separator.
var numPattern = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)

// unitVocabulary is the fixed ordered unit list; the first entry found in a
// string wins.
var unitVocabulary = []string{"kg", "g", "l", "ml", "cl", "oz", "lb", "db", "pcs"}

// nutritionNumericFields are the nutrition keys normalized to plain floats.
var nutritionNumericFields = []string{
	"energy_kj", "energy_kcal", "fat_g", "saturated_fat_g",
	"carbohydrate_g", "sugars_g", "protein_g", "fiber_g",
	"salt_g", "sodium_g",
}

// saltToSodium converts a salt mass to its sodium content in grams.
const saltToSodium = 0.4

// ToNumber extracts a float from a numeric or string value. String values are
// scanned for the first signed decimal number; a comma separator is accepted.
// Unrecognizable values yield nil, never an error.
func ToNumber(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		match := numPattern.FindString(v)
		if match == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// ToUnit returns the first known unit found in value (case-insensitive
// substring match against the fixed vocabulary), or nil.
func ToUnit(value string) *string {
	lower := strings.ToLower(value)
	for _, unit := range unitVocabulary {
		if strings.Contains(lower, unit) {
			u := unit
			return &u
		}
	}
	return nil
}

// Apply normalizes a recovered model output map in place and returns it:
// nutrition numeric fields become plain floats, string quantities are split
// into amount and unit, and sodium is derived from salt when absent.
func Apply(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}

	if nutrition, ok := data["nutrition"].(map[string]any); ok {
		for _, field := range nutritionNumericFields {
			nutrition[field] = deref(ToNumber(nutrition[field]))
		}
		if salt, ok := nutrition["salt_g"].(float64); ok && nutrition["sodium_g"] == nil {
			nutrition["sodium_g"] = salt * saltToSodium
		}
		if s, ok := nutrition["serving_size"].(string); ok {
			nutrition["serving_size"] = quantityFromString(s)
		}
	}

	if s, ok := data["net_quantity"].(string); ok {
		data["net_quantity"] = quantityFromString(s)
	}

	return data
}

// quantityFromString parses amount and unit separately from a string like
// "500 g" or "1,5L".
func quantityFromString(s string) map[string]any {
	return map[string]any{
		"amount": deref(ToNumber(s)),
		"unit":   derefString(ToUnit(s)),
	}
}

// deref converts a *float64 to any, mapping nil pointers to untyped nil so
// map entries stay JSON-null rather than typed nils.
func deref(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
