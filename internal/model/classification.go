package model

// Category is the closed set of legal clause categories
type Category string

const (
	CategoryDefinitions       Category = "Definitions"
	CategoryObligations       Category = "Obligations"
	CategoryRights            Category = "Rights"
	CategoryTermination       Category = "Termination"
	CategoryConfidentiality   Category = "Confidentiality"
	CategoryPaymentTerms      Category = "Payment Terms"
	CategoryGoverningLaw      Category = "Governing Law"
	CategoryLiability         Category = "Liability"
	CategoryDataProtection    Category = "Data Protection"
	CategoryIntellectualProp  Category = "Intellectual Property"
	CategoryDisputeResolution Category = "Dispute Resolution"
	CategoryForceMajeure      Category = "Force Majeure"

	// CategoryMiscellaneous is never scored by keywords, only assigned
	// when no category matches.
	CategoryMiscellaneous Category = "Miscellaneous"
)

// ScoredCategories lists the keyword-scored categories in declaration
// order. Ties in keyword scoring break toward the earlier entry.
var ScoredCategories = []Category{
	CategoryDefinitions,
	CategoryObligations,
	CategoryRights,
	CategoryTermination,
	CategoryConfidentiality,
	CategoryPaymentTerms,
	CategoryGoverningLaw,
	CategoryLiability,
	CategoryDataProtection,
	CategoryIntellectualProp,
	CategoryDisputeResolution,
	CategoryForceMajeure,
}

// modelIndexMapping maps an external model's class index (0-9) to a category.
var modelIndexMapping = []Category{
	CategoryDefinitions,
	CategoryObligations,
	CategoryRights,
	CategoryTermination,
	CategoryConfidentiality,
	CategoryPaymentTerms,
	CategoryGoverningLaw,
	CategoryLiability,
	CategoryDataProtection,
	CategoryMiscellaneous,
}

// CategoryFromModelIndex maps a model class index to a category.
// Out-of-range indices map to Miscellaneous.
func CategoryFromModelIndex(index int) Category {
	if index < 0 || index >= len(modelIndexMapping) {
		return CategoryMiscellaneous
	}
	return modelIndexMapping[index]
}

// explanations holds the fixed rationale string per category.
var explanations = map[Category]string{
	CategoryDefinitions:       "Defines key terms used throughout the document",
	CategoryObligations:       "Sets out duties a party is required to perform",
	CategoryRights:            "Grants rights or entitlements to a party",
	CategoryTermination:       "Describes how and when the agreement may end",
	CategoryConfidentiality:   "Restricts disclosure of confidential information",
	CategoryPaymentTerms:      "Specifies amounts, schedules and methods of payment",
	CategoryGoverningLaw:      "Identifies the jurisdiction and governing law",
	CategoryLiability:         "Allocates or limits liability between the parties",
	CategoryDataProtection:    "Governs the handling of personal data",
	CategoryIntellectualProp:  "Addresses ownership and use of intellectual property",
	CategoryDisputeResolution: "Specifies how disputes between the parties are resolved",
	CategoryForceMajeure:      "Excuses performance during events beyond a party's control",
	CategoryMiscellaneous:     "General legal provision",
}

// Explanation returns the fixed explanation for a category, or
// "General legal provision" for unrecognized categories.
func (c Category) Explanation() string {
	if e, ok := explanations[c]; ok {
		return e
	}
	return "General legal provision"
}

// Confidence is the qualitative classification certainty (not a probability)
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Classification is the result of classifying one clause
type Classification struct {
	Category    Category   `json:"category"`
	Confidence  Confidence `json:"confidence"`
	Explanation string     `json:"explanation"`
}
