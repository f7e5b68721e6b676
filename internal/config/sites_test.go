package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSitesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	content := `preferences:
  LinkedIn: include
  Craigslist: exclude
  Indeed: neutral
custom_sites:
  - weworkremotely.com
  - jobs.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sites, err := LoadSitesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "include", sites.Preferences["LinkedIn"])
	assert.Equal(t, "exclude", sites.Preferences["Craigslist"])
	assert.Equal(t, "neutral", sites.Preferences["Indeed"])
	assert.Equal(t, []string{"weworkremotely.com", "jobs.example.com"}, sites.CustomSites)
}

func TestLoadSitesFile_EmptyPath(t *testing.T) {
	sites, err := LoadSitesFile("")
	require.NoError(t, err)
	assert.Empty(t, sites.Preferences)
	assert.Empty(t, sites.CustomSites)
}

func TestLoadSitesFile_MissingFile(t *testing.T) {
	_, err := LoadSitesFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSitesFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences: [not a map"), 0o644))

	_, err := LoadSitesFile(path)
	assert.Error(t, err)
}
