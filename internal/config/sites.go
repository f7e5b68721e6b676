package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SitesFile describes the optional YAML file that seeds job site
// preferences for new sessions.
//
//	preferences:
//	  linkedin: include
//	  craigslist: exclude
//	custom_sites:
//	  - weworkremotely.com
type SitesFile struct {
	// Preferences maps a site name to "include", "exclude" or "neutral".
	Preferences map[string]string `yaml:"preferences"`

	// CustomSites lists user-added job sites.
	CustomSites []string `yaml:"custom_sites"`
}

// LoadSitesFile reads and parses a YAML sites file.
// An empty path returns an empty SitesFile, not an error.
func LoadSitesFile(path string) (SitesFile, error) {
	if path == "" {
		return SitesFile{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return SitesFile{}, fmt.Errorf("read sites file: %w", err)
	}

	var sites SitesFile
	if err := yaml.Unmarshal(data, &sites); err != nil {
		return SitesFile{}, fmt.Errorf("parse sites file: %w", err)
	}

	return sites, nil
}
