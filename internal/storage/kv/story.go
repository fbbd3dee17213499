package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"news_pipeline/internal/domain"
)

const storyNamespace = "stories"

const (
	unpublishedKey = "unpublished"
	publishedKey   = "published"
)

// StoryStore owns story records and every index over them: the link -> id
// map, the per-day id lists keyed "day:<YYYY-MM-DD>" by creation date, and
// the global published/unpublished id lists. All mutating operations keep
// the indexes in step; a crash mid-update can leave an index entry without
// a backing record, which readers tolerate by dropping it.
type StoryStore struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time
}

func NewStoryStore(backend Backend, logger *slog.Logger) *StoryStore {
	return &StoryStore{
		backend: backend,
		logger:  logger.With("store", "stories"),
		now:     time.Now,
	}
}

// Add creates a story for input.Link. It fails with domain.ErrDuplicateLink
// when a story already exists for the link, without touching the existing
// record. New stories start unedited and unpublished.
func (s *StoryStore) Add(ctx context.Context, input domain.StoryInput) (string, error) {
	if input.Link == "" {
		return "", fmt.Errorf("story link is required")
	}

	exists, err := s.Exists(ctx, input.Link)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrDuplicateLink
	}

	dateAdded := input.DateAdded
	if dateAdded.IsZero() {
		dateAdded = s.now()
	}

	story := domain.Story{
		ID:        uuid.NewString(),
		Headline:  input.Headline,
		Summary:   input.Summary,
		Link:      input.Link,
		Source:    input.Source,
		DateAdded: dateAdded,
		Images:    input.Images,
	}

	if err := s.putStory(ctx, &story); err != nil {
		return "", err
	}
	if err := s.backend.Set(ctx, storyNamespace, linkKey(story.Link), []byte(story.ID), 0); err != nil {
		return "", fmt.Errorf("index link: %w", err)
	}
	if err := s.appendID(ctx, dayListKey(dateAdded), story.ID); err != nil {
		return "", fmt.Errorf("index day: %w", err)
	}
	if err := s.appendID(ctx, unpublishedKey, story.ID); err != nil {
		return "", fmt.Errorf("index unpublished: %w", err)
	}

	return story.ID, nil
}

// GetByLink resolves a story through the link index. It returns
// domain.ErrNotFound when no story exists for the link.
func (s *StoryStore) GetByLink(ctx context.Context, link string) (*domain.Story, error) {
	id, found, err := s.linkID(ctx, link)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	story, err := s.loadStory(ctx, id)
	if err != nil {
		return nil, err
	}
	if story == nil {
		s.logger.Warn("link index references missing story", "link", link, "id", id)
		return nil, domain.ErrNotFound
	}
	return story, nil
}

// Exists reports whether a story exists for link with a single index read.
func (s *StoryStore) Exists(ctx context.Context, link string) (bool, error) {
	_, found, err := s.linkID(ctx, link)
	return found, err
}

// MarkEdited applies enhancement fields and sets edited = true. Empty
// headline/summary in the enhancement keep the stored values. It never
// clears a status flag.
func (s *StoryStore) MarkEdited(ctx context.Context, link string, e domain.Enhancement) error {
	story, err := s.GetByLink(ctx, link)
	if err != nil {
		return err
	}

	if e.Headline != "" {
		story.Headline = e.Headline
	}
	if e.Summary != "" {
		story.Summary = e.Summary
	}
	if e.Body != "" {
		body := e.Body
		story.Body = &body
	}
	if len(e.Tags) > 0 {
		story.Tags = e.Tags
	}
	if len(e.Images) > 0 {
		story.Images = append(story.Images, e.Images...)
	}
	story.Edited = true

	return s.putStory(ctx, story)
}

// MarkPublished sets published = true and date_published = now, and moves the
// story from the unpublished list to the published list. It is a no-op when
// the story is already published or does not exist, so the orchestrator can
// retry freely; the first call's timestamp wins.
func (s *StoryStore) MarkPublished(ctx context.Context, link string) error {
	id, found, err := s.linkID(ctx, link)
	if err != nil {
		return err
	}
	if !found {
		s.logger.Debug("publish skipped, no story for link", "link", link)
		return nil
	}

	story, err := s.loadStory(ctx, id)
	if err != nil {
		return err
	}
	if story == nil {
		s.logger.Warn("link index references missing story", "link", link, "id", id)
		return nil
	}
	if story.Published {
		return nil
	}

	publishedAt := s.now()
	story.Published = true
	story.DatePublished = &publishedAt

	if err := s.putStory(ctx, story); err != nil {
		return err
	}
	if err := s.removeID(ctx, unpublishedKey, story.ID); err != nil {
		return fmt.Errorf("remove from unpublished: %w", err)
	}
	if err := s.appendID(ctx, publishedKey, story.ID); err != nil {
		return fmt.Errorf("append to published: %w", err)
	}
	return nil
}

// QueryByDateRange returns stories whose creation date falls on any calendar
// day in [start, end] inclusive, optionally narrowed to published or
// unpublished stories. Results are sorted newest-first by date_published when
// querying published stories, by date_added otherwise.
func (s *StoryStore) QueryByDateRange(ctx context.Context, start, end time.Time, q domain.StoryQuery) ([]domain.Story, error) {
	startDay := dayStart(start)
	endDay := dayStart(end)
	if endDay.Before(startDay) {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var ids []string
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		dayIDs, err := s.listIDs(ctx, dayListKey(day))
		if err != nil {
			return nil, err
		}
		for _, id := range dayIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	if q.PublishedOnly || q.UnpublishedOnly {
		statusKey := publishedKey
		if q.UnpublishedOnly {
			statusKey = unpublishedKey
		}
		statusIDs, err := s.listIDs(ctx, statusKey)
		if err != nil {
			return nil, err
		}
		inStatus := make(map[string]struct{}, len(statusIDs))
		for _, id := range statusIDs {
			inStatus[id] = struct{}{}
		}
		filtered := ids[:0]
		for _, id := range ids {
			if _, ok := inStatus[id]; ok {
				filtered = append(filtered, id)
			}
		}
		ids = filtered
	}

	stories, err := s.loadStories(ctx, ids)
	if err != nil {
		return nil, err
	}

	byPublished := q.PublishedOnly
	sort.SliceStable(stories, func(i, j int) bool {
		return sortDate(&stories[i], byPublished).After(sortDate(&stories[j], byPublished))
	})

	if q.Limit > 0 && len(stories) > q.Limit {
		stories = stories[:q.Limit]
	}
	return stories, nil
}

// UneditedUnpublished returns stories awaiting enhancement, newest first.
func (s *StoryStore) UneditedUnpublished(ctx context.Context) ([]domain.Story, error) {
	return s.statusView(ctx, unpublishedKey, func(st *domain.Story) bool { return !st.Edited })
}

// EditedUnpublished returns enhanced stories awaiting publication, newest first.
func (s *StoryStore) EditedUnpublished(ctx context.Context) ([]domain.Story, error) {
	return s.statusView(ctx, unpublishedKey, func(st *domain.Story) bool { return st.Edited })
}

// Published returns all published stories, newest first by date_added.
func (s *StoryStore) Published(ctx context.Context) ([]domain.Story, error) {
	return s.statusView(ctx, publishedKey, func(*domain.Story) bool { return true })
}

func (s *StoryStore) statusView(ctx context.Context, listKey string, keep func(*domain.Story) bool) ([]domain.Story, error) {
	ids, err := s.listIDs(ctx, listKey)
	if err != nil {
		return nil, err
	}

	stories, err := s.loadStories(ctx, ids)
	if err != nil {
		return nil, err
	}

	filtered := stories[:0]
	for i := range stories {
		if keep(&stories[i]) {
			filtered = append(filtered, stories[i])
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DateAdded.After(filtered[j].DateAdded)
	})
	return filtered, nil
}

func (s *StoryStore) linkID(ctx context.Context, link string) (string, bool, error) {
	value, found, err := s.backend.Get(ctx, storyNamespace, linkKey(link))
	if err != nil {
		return "", false, err
	}
	return string(value), found, nil
}

func (s *StoryStore) putStory(ctx context.Context, story *domain.Story) error {
	data, err := json.Marshal(story)
	if err != nil {
		return fmt.Errorf("marshal story: %w", err)
	}
	return s.backend.Set(ctx, storyNamespace, storyKey(story.ID), data, 0)
}

// loadStory returns (nil, nil) for missing or unparseable records so callers
// can drop dangling index entries instead of failing.
func (s *StoryStore) loadStory(ctx context.Context, id string) (*domain.Story, error) {
	data, found, err := s.backend.Get(ctx, storyNamespace, storyKey(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var story domain.Story
	if err := json.Unmarshal(data, &story); err != nil {
		s.logger.Warn("dropping unparseable story record", "id", id, "error", err)
		return nil, nil
	}
	return &story, nil
}

func (s *StoryStore) loadStories(ctx context.Context, ids []string) ([]domain.Story, error) {
	stories := make([]domain.Story, 0, len(ids))
	for _, id := range ids {
		story, err := s.loadStory(ctx, id)
		if err != nil {
			return nil, err
		}
		if story == nil {
			s.logger.Warn("index references missing story", "id", id)
			continue
		}
		stories = append(stories, *story)
	}
	return stories, nil
}

func (s *StoryStore) listIDs(ctx context.Context, key string) ([]string, error) {
	data, found, err := s.backend.Get(ctx, storyNamespace, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.Warn("dropping unparseable id list", "key", key, "error", err)
		return nil, nil
	}
	return ids, nil
}

func (s *StoryStore) writeIDs(ctx context.Context, key string, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal id list: %w", err)
	}
	return s.backend.Set(ctx, storyNamespace, key, data, 0)
}

func (s *StoryStore) appendID(ctx context.Context, key, id string) error {
	ids, err := s.listIDs(ctx, key)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.writeIDs(ctx, key, append(ids, id))
}

func (s *StoryStore) removeID(ctx context.Context, key, id string) error {
	ids, err := s.listIDs(ctx, key)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return s.writeIDs(ctx, key, kept)
}

func storyKey(id string) string {
	return "story:" + id
}

func linkKey(link string) string {
	return "link:" + link
}

func dayListKey(t time.Time) string {
	return "day:" + DayKey(t)
}

func dayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func sortDate(story *domain.Story, byPublished bool) time.Time {
	if byPublished && story.DatePublished != nil {
		return *story.DatePublished
	}
	return story.DateAdded
}
