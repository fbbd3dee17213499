package domain

// RelevanceResult is the relevance classifier's judgment of a single article.
type RelevanceResult struct {
	IsRelevant bool
	Confidence float64
	Reason     string
}

// SimilarityResult is the similarity classifier's judgment of an article
// against a corpus of published stories. SimilarToIndex points into the
// corpus slice when the classifier identified a specific match.
type SimilarityResult struct {
	IsSimilar      bool
	Confidence     float64
	SimilarToIndex *int
	Reason         string
}
