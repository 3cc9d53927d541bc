// Package validator coerces loosely-typed recovered model output into the
// fixed extraction result shape. Coercion never fails: malformed fields are
// dropped or corrected, the issue is recorded, and already-recovered fields
// are kept.
package validator

import (
	"fmt"
	"strings"

	"labelscan/internal/domain"
)

// Coerce builds an ExtractionResult from a normalized model output map. The
// returned issues describe every correction or dropped field; an empty slice
// means the data matched the schema exactly.
func Coerce(data map[string]any) (*domain.ExtractionResult, []string) {
	result := domain.NewExtractionResult()
	issues := []string{}

	if data == nil {
		data = map[string]any{}
	}

	result.ProductName = asString(data["product_name"])
	result.Brand = asString(data["brand"])
	result.IngredientsText = asString(data["ingredients_text"])
	result.Notes = asString(data["notes"])

	netQty, qIssues := coerceQuantity(data["net_quantity"], "net_quantity")
	result.NetQuantity = netQty
	issues = append(issues, qIssues...)

	allergens, aIssues := coerceAllergens(data["allergens"])
	result.Allergens = allergens
	issues = append(issues, aIssues...)

	nutrition, nIssues := coerceNutrition(data["nutrition"])
	result.Nutrition = nutrition
	issues = append(issues, nIssues...)

	if raw, ok := data["warnings"].([]any); ok {
		for _, w := range raw {
			if s, ok := w.(string); ok {
				result.Warnings = append(result.Warnings, s)
			}
		}
	}

	if meta, ok := data["meta"].(map[string]any); ok {
		if conf, ok := meta["confidence"].(string); ok {
			switch domain.Confidence(conf) {
			case domain.ConfidenceHigh, domain.ConfidenceMedium, domain.ConfidenceLow:
				result.Meta["confidence"] = conf
			default:
				issues = append(issues, fmt.Sprintf("meta: dropped invalid confidence %q", conf))
			}
		}
	}

	return result, issues
}

// coerceAllergens maps the model's allergen list onto the fixed ten-class
// taxonomy: exactly one record per class, taxonomy order, missing classes
// absent. The present=false => classification=null invariant is enforced.
func coerceAllergens(value any) ([]domain.AllergenRecord, []string) {
	var issues []string
	byClass := map[domain.AllergenClass]domain.AllergenRecord{}

	if raw, ok := value.([]any); ok {
		for _, entry := range raw {
			m, ok := entry.(map[string]any)
			if !ok {
				issues = append(issues, "allergens: dropped non-object entry")
				continue
			}
			name, _ := m["name"].(string)
			class, ok := matchClass(name)
			if !ok {
				issues = append(issues, fmt.Sprintf("allergens: dropped unknown class %q", name))
				continue
			}

			rec := domain.AllergenRecord{
				Name:    class,
				Present: asBool(m["present"]),
				Source:  asString(m["source"]),
			}
			if cls, ok := m["contains_or_may_contain"].(string); ok {
				switch domain.AllergenClassification(cls) {
				case domain.ClassificationContains, domain.ClassificationMayContain:
					c := domain.AllergenClassification(cls)
					rec.Classification = &c
				default:
					issues = append(issues, fmt.Sprintf("allergens: %s: dropped invalid classification %q", class, cls))
				}
			}
			if !rec.Present && rec.Classification != nil {
				issues = append(issues, fmt.Sprintf("allergens: %s: cleared classification on absent allergen", class))
				rec.Classification = nil
			}
			byClass[class] = rec
		}
	} else if value != nil {
		issues = append(issues, "allergens: expected a list")
	}

	records := make([]domain.AllergenRecord, 0, len(domain.AllergenTaxonomy))
	for _, class := range domain.AllergenTaxonomy {
		if rec, ok := byClass[class]; ok {
			records = append(records, rec)
			continue
		}
		records = append(records, domain.AllergenRecord{Name: class, Present: false})
	}
	return records, issues
}

func coerceNutrition(value any) (*domain.NutritionFacts, []string) {
	if value == nil {
		return nil, nil
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, []string{"nutrition: expected an object"}
	}

	var issues []string
	n := &domain.NutritionFacts{}

	if basis, ok := m["basis"].(string); ok && basis != "" {
		switch domain.NutritionBasis(basis) {
		case domain.BasisPer100g, domain.BasisPerServing:
			b := domain.NutritionBasis(basis)
			n.Basis = &b
		default:
			issues = append(issues, fmt.Sprintf("nutrition: dropped invalid basis %q", basis))
		}
	}

	n.EnergyKJ = asFloat(m["energy_kj"])
	n.EnergyKcal = asFloat(m["energy_kcal"])
	n.FatG = asFloat(m["fat_g"])
	n.SaturatedFatG = asFloat(m["saturated_fat_g"])
	n.CarbohydrateG = asFloat(m["carbohydrate_g"])
	n.SugarsG = asFloat(m["sugars_g"])
	n.ProteinG = asFloat(m["protein_g"])
	n.FiberG = asFloat(m["fiber_g"])
	n.SaltG = asFloat(m["salt_g"])
	n.SodiumG = asFloat(m["sodium_g"])

	ss, ssIssues := coerceQuantity(m["serving_size"], "nutrition.serving_size")
	n.ServingSize = ss
	issues = append(issues, ssIssues...)

	return n, issues
}

func coerceQuantity(value any, field string) (*domain.Quantity, []string) {
	if value == nil {
		return nil, nil
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, []string{field + ": expected an object"}
	}
	return &domain.Quantity{
		Amount: asFloat(m["amount"]),
		Unit:   asString(m["unit"]),
	}, nil
}

// matchClass resolves a model-supplied allergen name to a taxonomy class,
// tolerating case differences and surrounding whitespace.
func matchClass(name string) (domain.AllergenClass, bool) {
	trimmed := strings.TrimSpace(name)
	for _, class := range domain.AllergenTaxonomy {
		if strings.EqualFold(trimmed, string(class)) {
			return class, true
		}
	}
	return "", false
}

func asString(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v any) *float64 {
	switch f := v.(type) {
	case float64:
		return &f
	case int:
		val := float64(f)
		return &val
	default:
		return nil
	}
}
