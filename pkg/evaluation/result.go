package evaluation

// ResultEvaluation is the pairwise agreement of one parser with the others.
type ResultEvaluation struct {
	// SameResultCount is how many other parsers produced exactly the same value.
	SameResultCount int `json:"same_result_count"`
	// HarmonizedSameResultCount is the same count after harmonizing both sides.
	HarmonizedSameResultCount int `json:"harmonized_same_result_count"`
}
