package jobpilot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/jobpilot"
	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/domain/session"
	"github.com/jobpilot/jobpilot/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testConfig(t *testing.T, dataDir string) config.AppConfig {
	t.Helper()
	return config.NewAppConfig(
		config.WithDataDir(dataDir),
		config.WithDBURL("sqlite:///"+filepath.Join(dataDir, "test.db")),
	)
}

func TestClient_EndToEndMatch(t *testing.T) {
	ctx := context.Background()
	client, err := jobpilot.New(ctx, jobpilot.WithConfig(testConfig(t, t.TempDir())))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	resume := "senior golang engineer building backend services"
	jobs := []job.Job{
		{ID: "j1", Title: "Go Backend Engineer", Company: "Acme", Description: "golang backend services"},
		{ID: "j2", Title: "Florist", Company: "Petals", Description: "flower arrangements"},
	}
	userID, err := client.Sessions.Save(ctx, "", session.Partial{ResumeRaw: &resume, Jobs: &jobs})
	require.NoError(t, err)

	ranked, err := client.Matcher.Match(ctx, userID)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	for _, j := range ranked {
		assert.Greater(t, j.MatchScore, 0.0)
		assert.LessOrEqual(t, j.MatchScore, 100.0)
	}
}

func TestClient_IndexSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()

	client, err := jobpilot.New(ctx, jobpilot.WithConfig(testConfig(t, dataDir)))
	require.NoError(t, err)

	resume := "go engineer"
	jobs := []job.Job{{ID: "j1", Title: "Engineer", Company: "Acme", Description: "go"}}
	userID, err := client.Sessions.Save(ctx, "", session.Partial{ResumeRaw: &resume, Jobs: &jobs})
	require.NoError(t, err)

	_, err = client.Matcher.Match(ctx, userID)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	// A second client over the same data directory restores both the
	// session and the embedded index.
	reopened, err := jobpilot.New(ctx, jobpilot.WithConfig(testConfig(t, dataDir)))
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	_, ok := reopened.Index.JobIDs()["j1"]
	assert.True(t, ok, "index snapshot restored on startup")

	sess, err := reopened.Sessions.Load(ctx, userID)
	require.NoError(t, err)
	require.Len(t, sess.Jobs, 1)
	assert.Greater(t, sess.Jobs[0].MatchScore, 0.0, "persisted score survives restart")
}

func TestClient_DefaultSettingsFromSitesFile(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	sitesPath := filepath.Join(dataDir, "sites.yaml")
	writeFile(t, sitesPath, `preferences:
  LinkedIn: include
  Craigslist: exclude
custom_sites:
  - weworkremotely.com
`)

	cfg := testConfig(t, dataDir).Apply(config.WithSitesFile(sitesPath))
	client, err := jobpilot.New(ctx, jobpilot.WithConfig(cfg))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	resume := "r"
	userID, err := client.Sessions.Save(ctx, "", session.Partial{ResumeRaw: &resume})
	require.NoError(t, err)

	sess, err := client.Sessions.Load(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, sess.Settings)
	assert.Equal(t, job.SiteInclude, sess.Settings.JobSitePreferences["LinkedIn"])
	assert.Equal(t, job.SiteExclude, sess.Settings.JobSitePreferences["Craigslist"])
	assert.Equal(t, []string{"weworkremotely.com"}, sess.Settings.CustomJobSites)
}
