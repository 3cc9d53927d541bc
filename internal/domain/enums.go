package domain

// ExtractionMode records how text was acquired from a PDF.
type ExtractionMode string

const (
	ModeDirect ExtractionMode = "text"
	ModeOCR    ExtractionMode = "ocr"
	ModeEmpty  ExtractionMode = "empty"
)

// AllergenClass is one of the ten fixed allergen classes.
type AllergenClass string

const (
	AllergenGluten      AllergenClass = "Gluten"
	AllergenEggs        AllergenClass = "Eggs"
	AllergenCrustaceans AllergenClass = "Crustaceans"
	AllergenFish        AllergenClass = "Fish"
	AllergenPeanuts     AllergenClass = "Peanuts"
	AllergenSoybeans    AllergenClass = "Soybeans"
	AllergenMilk        AllergenClass = "Milk"
	AllergenNuts        AllergenClass = "Nuts"
	AllergenCelery      AllergenClass = "Celery"
	AllergenMustard     AllergenClass = "Mustard"
)

// AllergenTaxonomy is the fixed, ordered ten-class taxonomy. Every
// ExtractionResult carries exactly one AllergenRecord per class, in this order.
var AllergenTaxonomy = []AllergenClass{
	AllergenGluten,
	AllergenEggs,
	AllergenCrustaceans,
	AllergenFish,
	AllergenPeanuts,
	AllergenSoybeans,
	AllergenMilk,
	AllergenNuts,
	AllergenCelery,
	AllergenMustard,
}

// AllergenClassification distinguishes explicit presence from possible traces.
type AllergenClassification string

const (
	ClassificationContains   AllergenClassification = "contains"
	ClassificationMayContain AllergenClassification = "may_contain"
)

// NutritionBasis states whether nutrition figures are per 100g/100ml or per serving.
type NutritionBasis string

const (
	BasisPer100g    NutritionBasis = "per_100g"
	BasisPerServing NutritionBasis = "per_serving"
)

// Confidence is the model's coarse self-reported certainty for a result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)
