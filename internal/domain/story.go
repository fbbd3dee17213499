package domain

import "time"

// Story is the durable, deduplicated content record. A story's link is its
// identity: at most one story ever exists per distinct link. Status moves
// unedited -> edited -> published and never reverses.
type Story struct {
	ID            string     `json:"id"`
	Headline      string     `json:"headline"`
	Summary       string     `json:"summary"`
	Link          string     `json:"link"`
	Source        string     `json:"source"`
	DateAdded     time.Time  `json:"date_added"`
	Edited        bool       `json:"edited"`
	Published     bool       `json:"published"`
	DatePublished *time.Time `json:"date_published,omitempty"`
	Body          *string    `json:"body,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Images        []string   `json:"images,omitempty"`
}

// StoryInput carries the fields needed to create a new story. The store
// assigns the id and initializes both status flags to false.
type StoryInput struct {
	Headline  string
	Summary   string
	Link      string
	Source    string
	DateAdded time.Time
	Images    []string
}

// Enhancement holds the fields produced by the enhancement collaborator.
// Empty headline/summary mean "keep the original".
type Enhancement struct {
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body"`
	Tags     []string `json:"tags"`
	Images   []string `json:"images,omitempty"`
	Reason   string   `json:"reason"`
}

// StoryQuery narrows a date-range query. PublishedOnly and UnpublishedOnly
// are mutually exclusive; Limit == 0 means no limit.
type StoryQuery struct {
	PublishedOnly   bool
	UnpublishedOnly bool
	Limit           int
}
