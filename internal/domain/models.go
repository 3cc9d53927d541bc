package domain

// ExtractedDocument is the text acquired from one PDF. It is created once per
// request by the text extractor and is immutable afterwards.
type ExtractedDocument struct {
	RawText   string
	PageCount int
	Mode      ExtractionMode
}

// Quantity is an amount with an optional unit (e.g. 500 g). Value type, no identity.
type Quantity struct {
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
}

// AllergenRecord states whether one allergen class is present in a product.
// Invariant: if Present is false, Classification must be nil.
type AllergenRecord struct {
	Name           AllergenClass           `json:"name"`
	Present        bool                    `json:"present"`
	Source         *string                 `json:"source"`
	Classification *AllergenClassification `json:"contains_or_may_contain"`
}

// NutritionFacts holds the nutrition table of a product. All numeric fields
// are unit-free plain numbers; nil means the value was not found.
type NutritionFacts struct {
	Basis         *NutritionBasis `json:"basis"`
	EnergyKJ      *float64        `json:"energy_kj"`
	EnergyKcal    *float64        `json:"energy_kcal"`
	FatG          *float64        `json:"fat_g"`
	SaturatedFatG *float64        `json:"saturated_fat_g"`
	CarbohydrateG *float64        `json:"carbohydrate_g"`
	SugarsG       *float64        `json:"sugars_g"`
	ProteinG      *float64        `json:"protein_g"`
	FiberG        *float64        `json:"fiber_g"`
	SaltG         *float64        `json:"salt_g"`
	SodiumG       *float64        `json:"sodium_g"`
	ServingSize   *Quantity       `json:"serving_size"`
}

// ExtractionResult is the structured output for one processed PDF. It is
// request-scoped and never persisted.
type ExtractionResult struct {
	ProductName     *string          `json:"product_name"`
	Brand           *string          `json:"brand"`
	NetQuantity     *Quantity        `json:"net_quantity"`
	IngredientsText *string          `json:"ingredients_text"`
	Allergens       []AllergenRecord `json:"allergens"`
	Nutrition       *NutritionFacts  `json:"nutrition"`
	Warnings        []string         `json:"warnings"`
	Notes           *string          `json:"notes"`
	Meta            map[string]any   `json:"meta"`
}

// NewExtractionResult returns a result with empty collections and a non-nil
// meta map, ready for field assignment.
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{
		Allergens: []AllergenRecord{},
		Warnings:  []string{},
		Meta:      map[string]any{},
	}
}
