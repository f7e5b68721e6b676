package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobpilot/jobpilot/infrastructure/index"
	"github.com/jobpilot/jobpilot/internal/config"
)

// Snapshot periodically serializes the similarity index so embedded
// coverage survives process restarts even when no match run triggered a
// write.
type Snapshot struct {
	idx      *index.SimilarityIndex
	logger   *slog.Logger
	interval time.Duration
	enabled  bool
}

// NewSnapshot creates a Snapshot service from config and dependencies.
func NewSnapshot(cfg config.SnapshotConfig, idx *index.SimilarityIndex, logger *slog.Logger) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Snapshot{
		idx:      idx,
		logger:   logger,
		interval: cfg.Interval(),
		enabled:  cfg.Enabled(),
	}
}

// Run blocks, writing a snapshot every interval until ctx is cancelled,
// then writes one final snapshot. Returns nil on cancellation so it
// composes with errgroup shutdown. When disabled it waits for
// cancellation without touching the store.
func (s *Snapshot) Run(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("periodic index snapshots disabled")
		<-ctx.Done()
		return nil
	}

	s.logger.Info("periodic index snapshots started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.final()
			return nil
		case <-ticker.C:
			s.write(ctx)
		}
	}
}

func (s *Snapshot) write(ctx context.Context) {
	if err := s.idx.Serialize(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("periodic index snapshot failed", "error", err)
	}
}

// final writes a last snapshot on shutdown, detached from the cancelled
// run context.
func (s *Snapshot) final() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.idx.Serialize(ctx); err != nil {
		s.logger.Error("shutdown index snapshot failed", "error", err)
		return
	}
	s.logger.Info("shutdown index snapshot written", "entries", s.idx.Len())
}
