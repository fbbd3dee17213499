package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"news_pipeline/internal/domain"
)

const researchNamespace = "research"

// ResearchStore keeps one scraped-article snapshot per capture date. The
// backend TTL enforces retention; Cleanup exists as a manual maintenance
// operation for backends where expiry lagged or was disabled.
type ResearchStore struct {
	backend   Backend
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewResearchStore(backend Backend, retentionDays int, logger *slog.Logger) *ResearchStore {
	return &ResearchStore{
		backend:   backend,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger.With("store", "research"),
		now:       time.Now,
	}
}

// SaveSnapshot stores the snapshot under the capture date with the configured
// retention TTL, replacing any earlier snapshot for that date.
func (s *ResearchStore) SaveSnapshot(ctx context.Context, date time.Time, snapshot domain.ResearchSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return s.backend.Set(ctx, researchNamespace, DayKey(date), data, s.retention)
}

// Snapshot returns the snapshot captured on date, or domain.ErrNotFound when
// none exists (or it expired, or its record no longer parses).
func (s *ResearchStore) Snapshot(ctx context.Context, date time.Time) (*domain.ResearchSnapshot, error) {
	data, found, err := s.backend.Get(ctx, researchNamespace, DayKey(date))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	var snapshot domain.ResearchSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warn("dropping unparseable research snapshot", "date", DayKey(date), "error", err)
		return nil, domain.ErrNotFound
	}
	return &snapshot, nil
}

// Cleanup scans windowDays back from today and deletes snapshots older than
// the retention boundary. It returns the number of snapshots deleted.
func (s *ResearchStore) Cleanup(ctx context.Context, windowDays int) (int, error) {
	cutoff := s.now().Add(-s.retention)
	deleted := 0

	for i := 0; i < windowDays; i++ {
		day := s.now().AddDate(0, 0, -i)
		if !day.Before(cutoff) {
			continue
		}

		_, found, err := s.backend.Get(ctx, researchNamespace, DayKey(day))
		if err != nil {
			return deleted, err
		}
		if !found {
			continue
		}

		if err := s.backend.Delete(ctx, researchNamespace, DayKey(day)); err != nil {
			return deleted, err
		}
		deleted++
	}

	if deleted > 0 {
		s.logger.Info("cleaned up expired research snapshots", "deleted", deleted)
	}
	return deleted, nil
}
