package classify

import "github.com/clauscan/clauscan/internal/model"

// categoryKeywords holds the fixed keyword phrases per scored category.
// Matching is plain lower-case substring counting: "must" inside
// "adjustment" counts as a hit. That loose behavior is deliberate and
// load-bearing for tie-breaking, so do not add word boundaries here.
var categoryKeywords = map[model.Category][]string{
	model.CategoryDefinitions: {
		"shall mean", "means", "refers to", "defined as", "definition", "interpretation",
	},
	model.CategoryObligations: {
		"shall", "must", "is required to", "agrees to", "undertakes", "obligation",
	},
	model.CategoryRights: {
		"entitled to", "right to", "reserves the right", "at its discretion", "may elect",
	},
	model.CategoryTermination: {
		"terminat", "expir", "cancellation", "cancel", "end of the term", "wind up",
	},
	model.CategoryConfidentiality: {
		"confidential", "non-disclosure", "proprietary information", "trade secret",
	},
	model.CategoryPaymentTerms: {
		"payment", "invoice", "fees", "compensation", "remuneration", "refund", "purchase price",
	},
	model.CategoryGoverningLaw: {
		"governing law", "governed by", "jurisdiction", "laws of", "venue",
	},
	model.CategoryLiability: {
		"liability", "liable", "indemnif", "damages", "warrant", "hold harmless",
	},
	model.CategoryDataProtection: {
		"personal data", "data protection", "privacy", "data subject", "gdpr", "processing of data",
	},
	model.CategoryIntellectualProp: {
		"intellectual property", "copyright", "trademark", "patent", "licensor", "licensee",
	},
	model.CategoryDisputeResolution: {
		"dispute", "arbitration", "mediation", "litigation", "arbitrator",
	},
	model.CategoryForceMajeure: {
		"force majeure", "act of god", "beyond the reasonable control", "beyond its control", "natural disaster",
	},
}
