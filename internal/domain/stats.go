package domain

import "time"

// FilterStats holds statistics about one filter/dedup batch.
type FilterStats struct {
	Received   int
	Known      int // link already in the story store
	Irrelevant int
	Duplicates int
	Created    int
	Errors     int
	Duration   time.Duration
}

// PipelineStats holds statistics about one full pipeline run.
type PipelineStats struct {
	Scraped    int
	Filter     FilterStats
	Enhanced   int
	Published  int
	Transcript bool
	AudioURL   string
	Errors     int
	Duration   time.Duration
}
