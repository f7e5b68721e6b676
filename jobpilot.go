// Package jobpilot provides a job matching engine: per-user sessions
// holding a profile, resume, and job list, plus an in-memory similarity
// index that scores jobs against the user's combined signal.
//
// Basic usage:
//
//	client, err := jobpilot.New(ctx,
//	    jobpilot.WithConfig(config.NewAppConfig()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	userID, err := client.Sessions.Save(ctx, "", session.Partial{ResumeRaw: &resume})
//	jobs, err := client.Matcher.Match(ctx, userID)
package jobpilot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobpilot/jobpilot/application/service"
	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/domain/session"
	"github.com/jobpilot/jobpilot/infrastructure/index"
	"github.com/jobpilot/jobpilot/infrastructure/persistence"
	"github.com/jobpilot/jobpilot/infrastructure/provider"
	"github.com/jobpilot/jobpilot/internal/config"
	"github.com/jobpilot/jobpilot/internal/database"
)

// Client is the main entry point for the jobpilot library.
//
// Access services via struct fields:
//
//	client.Sessions.Load(ctx, userID)
//	client.Matcher.Match(ctx, userID)
//	client.Resume.Import(ctx, userID, resumeText)
type Client struct {
	Sessions *service.Sessions
	Matcher  *service.Matcher
	Resume   *service.ResumeIntake
	Index    *index.SimilarityIndex
	Snapshot *service.Snapshot

	db     database.Database
	cfg    config.AppConfig
	logger *slog.Logger
}

// New creates a Client: opens the database, migrates the schema,
// restores the similarity index from its last snapshot, and wires the
// services.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cc := newClientConfig()
	for _, opt := range opts {
		opt(cc)
	}

	cfg := cc.cfg
	logger := cc.logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	db, err := database.NewDatabase(ctx, cfg.DBURL())
	if err != nil {
		return nil, err
	}
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	idx := index.NewSimilarityIndex(persistence.NewVectorSnapshotStore(db), logger)
	if err := idx.Deserialize(ctx); err != nil {
		return nil, fmt.Errorf("restore index snapshot: %w", err)
	}
	logger.Info("similarity index restored", "entries", idx.Len())

	defaults, err := defaultSettings(cfg.SitesFile())
	if err != nil {
		return nil, err
	}

	sessions := service.NewSessions(persistence.NewSessionStore(db), defaults, logger)

	extractor := cc.extractor
	if extractor == nil {
		extractor = newExtractor(cfg.Extraction(), logger)
	}

	return &Client{
		Sessions: sessions,
		Matcher:  service.NewMatcher(sessions, idx, cfg.MatchLimit(), logger),
		Resume:   service.NewResumeIntake(sessions, extractor, logger),
		Index:    idx,
		Snapshot: service.NewSnapshot(cfg.Snapshot(), idx, logger),
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// newExtractor picks the extraction backend: the configured AI endpoint
// when an API key is present, the keyword heuristic otherwise.
func newExtractor(endpoint config.Endpoint, logger *slog.Logger) service.SkillExtractor {
	if endpoint.IsConfigured() {
		logger.Info("skill extraction via AI endpoint", "model", endpoint.Model())
		return provider.NewOpenAIExtractor(endpoint)
	}
	logger.Info("skill extraction via keyword heuristic")
	return provider.NewHeuristicExtractor()
}

// defaultSettings loads the YAML job sites file into the settings that
// seed new sessions. No file configured means no defaults.
func defaultSettings(path string) (*session.Settings, error) {
	sites, err := config.LoadSitesFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sites file: %w", err)
	}
	if len(sites.Preferences) == 0 && len(sites.CustomSites) == 0 {
		return nil, nil
	}

	prefs := make(map[string]job.SitePreference, len(sites.Preferences))
	for site, p := range sites.Preferences {
		prefs[site] = job.ParseSitePreference(p)
	}
	return &session.Settings{
		JobSitePreferences: prefs,
		CustomJobSites:     sites.CustomSites,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Config returns the client's configuration.
func (c *Client) Config() config.AppConfig {
	return c.cfg
}

// Close releases the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}
