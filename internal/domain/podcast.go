package domain

import (
	"strings"
	"time"
)

// PodcastSegment is one story's spoken section of an episode.
type PodcastSegment struct {
	Headline   string `json:"headline"`
	Content    string `json:"content"`
	Transition string `json:"transition,omitempty"`
}

// StoryRef is a denormalized snapshot of a story covered by a transcript.
type StoryRef struct {
	Headline      string     `json:"headline"`
	Summary       string     `json:"summary"`
	Link          string     `json:"link"`
	DatePublished *time.Time `json:"date_published,omitempty"`
}

// PodcastTranscript is the generated script for a single calendar date's
// episode. DateCreated is the transcript's key, not the date range of the
// stories it covers. AudioURL is set once, by the voicing callback.
type PodcastTranscript struct {
	Intro       string           `json:"intro"`
	Segments    []PodcastSegment `json:"segments"`
	Outro       string           `json:"outro"`
	Stories     []StoryRef       `json:"stories"`
	DateCreated time.Time        `json:"date_created"`
	AudioURL    string           `json:"audio_url,omitempty"`
}

// PlainText flattens the transcript into the text handed to voice synthesis.
func (t *PodcastTranscript) PlainText() string {
	var sb strings.Builder
	sb.WriteString(t.Intro)
	for _, seg := range t.Segments {
		sb.WriteString("\n\n")
		sb.WriteString(seg.Content)
		if seg.Transition != "" {
			sb.WriteString("\n\n")
			sb.WriteString(seg.Transition)
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(t.Outro)
	return sb.String()
}
