package scraper

// feedResponse represents the research feed API response structure.
type feedResponse struct {
	PageInfo pageInfo      `json:"pageInfo"`
	Articles []feedArticle `json:"articles"`
}

type pageInfo struct {
	Page       int `json:"page"`
	NumPages   int `json:"numPages"`
	PageSize   int `json:"pageSize"`
	NumEntries int `json:"numEntries"`
}

type feedArticle struct {
	Headline   string   `json:"headline"`
	Summary    string   `json:"summary"`
	Link       string   `json:"link"`
	Source     string   `json:"source"`
	Content    *string  `json:"content"`
	Images     []string `json:"images"`
	DatePosted string   `json:"datePosted"`
	Body       *string  `json:"body"`
}
