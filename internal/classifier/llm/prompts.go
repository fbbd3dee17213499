package llm

import (
	"fmt"
	"strings"

	"news_pipeline/internal/domain"
)

const relevancePromptTemplate = `You are a news editor for a technology research publication.
Judge whether the following article is relevant to our coverage of technology,
science, and research news.

Headline: %s
Summary: %s

Respond with a single JSON object and nothing else:
{"is_relevant": true or false, "confidence": number between 0 and 1, "reason": "one sentence"}`

const similarityPromptHeader = `You are a news editor checking for duplicate coverage.
Compare the new article against the recently published stories below. The
articles are duplicates only if they cover the same underlying event or
announcement, not merely the same topic.

New article:
Headline: %s
Summary: %s

Recently published stories:
`

const similarityPromptFooter = `
Respond with a single JSON object and nothing else:
{"is_similar": true or false, "confidence": number between 0 and 1, "similar_to_index": index of the matching story or null, "reason": "one sentence"}`

const enhancementPromptTemplate = `You are a writer for a technology news publication.
Rewrite the following story into a short publishable piece. Keep the facts,
improve the headline and summary, write a body of three to five paragraphs,
and assign two to five topical tags.

Headline: %s
Summary: %s
Source: %s

Respond with a single JSON object and nothing else:
{"headline": "...", "summary": "...", "body": "...", "tags": ["..."], "reason": "one sentence"}`

const transcriptPromptTemplate = `You are the host of a short daily technology news podcast.
Write an episode script covering the stories below. Open with a brief intro,
give each story its own conversational segment with a transition into the
next, and close with a short outro.

Stories:
%s
Respond with a single JSON object and nothing else:
{"intro": "...", "segments": [{"headline": "...", "content": "...", "transition": "..."}], "outro": "..."}`

func buildRelevancePrompt(headline, summary string) string {
	return fmt.Sprintf(relevancePromptTemplate, headline, summary)
}

func buildSimilarityPrompt(article domain.Article, corpus []domain.Story) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(similarityPromptHeader, article.Headline, article.Summary))
	for i, story := range corpus {
		published := ""
		if story.DatePublished != nil {
			published = story.DatePublished.Format("2006-01-02")
		}
		sb.WriteString(fmt.Sprintf("%d. [%s] %s - %s\n", i, published, story.Headline, story.Summary))
	}
	sb.WriteString(similarityPromptFooter)
	return sb.String()
}

func buildEnhancementPrompt(story *domain.Story) string {
	return fmt.Sprintf(enhancementPromptTemplate, story.Headline, story.Summary, story.Source)
}

func buildTranscriptPrompt(stories []domain.Story) string {
	var sb strings.Builder
	for i, story := range stories {
		sb.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, story.Headline, story.Summary))
	}
	return fmt.Sprintf(transcriptPromptTemplate, sb.String())
}
