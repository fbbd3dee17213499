package domain

import "time"

// Article is a raw scraped research record. Articles are never mutated after
// creation; a new day's batch supersedes the previous one.
type Article struct {
	Headline   string     `json:"headline"`
	Summary    string     `json:"summary"`
	Link       string     `json:"link"`
	Source     string     `json:"source"`
	DateFound  time.Time  `json:"date_found"`
	Content    *string    `json:"content,omitempty"`
	Images     []string   `json:"images,omitempty"`
	DatePosted *time.Time `json:"date_posted,omitempty"`
	Body       *string    `json:"body,omitempty"`
}

// ResearchSnapshot is one day's scraped batch plus capture metadata. Snapshots
// are a cache with bounded retention; Stories are the system of record.
type ResearchSnapshot struct {
	Articles    []Article `json:"articles"`
	LastUpdated time.Time `json:"last_updated"`
	Source      string    `json:"source"`
}
