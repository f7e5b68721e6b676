// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 8080
	DefaultLogLevel          = "INFO"
	DefaultMatchLimit        = 0
	DefaultSnapshotInterval  = 300 * time.Second
	DefaultExtractionModel   = "gpt-4o-mini"
	DefaultExtractionTimeout = 60 * time.Second
)

// DefaultDataDir returns the default data directory (~/.jobpilot).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobpilot"
	}
	return filepath.Join(home, ".jobpilot")
}

// Endpoint configures the skill-extraction AI endpoint.
type Endpoint struct {
	baseURL    string
	model      string
	apiKey     string
	timeout    time.Duration
	maxRetries int
}

// NewEndpoint creates an Endpoint with defaults.
func NewEndpoint() Endpoint {
	return Endpoint{
		model:      DefaultExtractionModel,
		timeout:    DefaultExtractionTimeout,
		maxRetries: 3,
	}
}

// BaseURL returns the endpoint base URL.
func (e Endpoint) BaseURL() string { return e.baseURL }

// Model returns the model identifier.
func (e Endpoint) Model() string { return e.model }

// APIKey returns the API key.
func (e Endpoint) APIKey() string { return e.apiKey }

// Timeout returns the request timeout.
func (e Endpoint) Timeout() time.Duration { return e.timeout }

// MaxRetries returns the maximum retry count.
func (e Endpoint) MaxRetries() int { return e.maxRetries }

// IsConfigured reports whether the endpoint has an API key set.
func (e Endpoint) IsConfigured() bool { return e.apiKey != "" }

// SnapshotConfig configures periodic vector index snapshots.
type SnapshotConfig struct {
	enabled  bool
	interval time.Duration
}

// NewSnapshotConfig creates a SnapshotConfig with defaults.
func NewSnapshotConfig() SnapshotConfig {
	return SnapshotConfig{
		enabled:  true,
		interval: DefaultSnapshotInterval,
	}
}

// Enabled reports whether periodic snapshots are enabled.
func (s SnapshotConfig) Enabled() bool { return s.enabled }

// Interval returns the snapshot interval.
func (s SnapshotConfig) Interval() time.Duration { return s.interval }

// WithEnabled returns a copy with the enabled flag set.
func (s SnapshotConfig) WithEnabled(enabled bool) SnapshotConfig {
	s.enabled = enabled
	return s
}

// WithInterval returns a copy with the interval set.
func (s SnapshotConfig) WithInterval(d time.Duration) SnapshotConfig {
	if d > 0 {
		s.interval = d
	}
	return s
}

// AppConfig holds the full application configuration.
// Values are immutable; use options to derive modified copies.
type AppConfig struct {
	host       string
	port       int
	dataDir    string
	dbURL      string
	logLevel   string
	logFormat  string
	matchLimit int
	sitesFile  string
	snapshot   SnapshotConfig
	extraction Endpoint
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig(opts ...AppConfigOption) AppConfig {
	cfg := AppConfig{
		host:       DefaultHost,
		port:       DefaultPort,
		dataDir:    DefaultDataDir(),
		logLevel:   DefaultLogLevel,
		logFormat:  "pretty",
		matchLimit: DefaultMatchLimit,
		snapshot:   NewSnapshotConfig(),
		extraction: NewEndpoint(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// AppConfigOption configures an AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) { c.dataDir = dir }
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format string) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithMatchLimit caps how many jobs are rescored per matching run.
// Unset, every job in the session's list is rescored.
func WithMatchLimit(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.matchLimit = n
		}
	}
}

// WithSitesFile sets the path of the YAML job sites file.
func WithSitesFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.sitesFile = path }
}

// WithSnapshotConfig sets the snapshot configuration.
func WithSnapshotConfig(s SnapshotConfig) AppConfigOption {
	return func(c *AppConfig) { c.snapshot = s }
}

// WithExtractionEndpoint sets the skill-extraction endpoint.
func WithExtractionEndpoint(e Endpoint) AppConfigOption {
	return func(c *AppConfig) { c.extraction = e }
}

// Apply returns a copy with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Host returns the server host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port listen address.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// DataDir returns the data directory.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database URL, defaulting to a SQLite file in the
// data directory when unset.
func (c AppConfig) DBURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return "sqlite:///" + filepath.Join(c.dataDir, "jobpilot.db")
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() string { return c.logFormat }

// MatchLimit returns the per-run rescore cap; 0 means no cap.
func (c AppConfig) MatchLimit() int { return c.matchLimit }

// SitesFile returns the path of the YAML job sites file, or "".
func (c AppConfig) SitesFile() string { return c.sitesFile }

// Snapshot returns the snapshot configuration.
func (c AppConfig) Snapshot() SnapshotConfig { return c.snapshot }

// Extraction returns the skill-extraction endpoint configuration.
func (c AppConfig) Extraction() Endpoint { return c.extraction }

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}
