package llm

// generateRequest is the LLM generate-API request body.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// relevancePayload is the JSON object the relevance prompt asks the model to
// return.
type relevancePayload struct {
	IsRelevant bool    `json:"is_relevant"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

type similarityPayload struct {
	IsSimilar      bool    `json:"is_similar"`
	Confidence     float64 `json:"confidence"`
	SimilarToIndex *int    `json:"similar_to_index"`
	Reason         string  `json:"reason"`
}

type transcriptPayload struct {
	Intro    string           `json:"intro"`
	Segments []segmentPayload `json:"segments"`
	Outro    string           `json:"outro"`
}

type segmentPayload struct {
	Headline   string `json:"headline"`
	Content    string `json:"content"`
	Transition string `json:"transition"`
}

type enhancementPayload struct {
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body"`
	Tags     []string `json:"tags"`
	Reason   string   `json:"reason"`
}
