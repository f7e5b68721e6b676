package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.jobpilot
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/jobpilot.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// MatchLimit caps how many jobs are rescored per matching run.
	// Env: MATCH_LIMIT (default: 0, no cap)
	MatchLimit int `envconfig:"MATCH_LIMIT"`

	// SitesFile is the path of the YAML job sites file.
	// Env: SITES_FILE
	SitesFile string `envconfig:"SITES_FILE"`

	// Snapshot configures periodic vector index snapshots.
	Snapshot SnapshotEnv `envconfig:"SNAPSHOT"`

	// ExtractionEndpoint configures the skill-extraction AI service.
	ExtractionEndpoint EndpointEnv `envconfig:"EXTRACTION_ENDPOINT"`
}

// SnapshotEnv holds environment configuration for index snapshots.
type SnapshotEnv struct {
	// Enabled controls whether periodic snapshots run.
	// Env: SNAPSHOT_ENABLED (default: true)
	Enabled bool `envconfig:"ENABLED" default:"true"`

	// IntervalSeconds is the snapshot interval in seconds.
	// Env: SNAPSHOT_INTERVAL_SECONDS (default: 300)
	IntervalSeconds float64 `envconfig:"INTERVAL_SECONDS" default:"300"`
}

// EndpointEnv holds environment configuration for an AI endpoint.
type EndpointEnv struct {
	// BaseURL is the base URL for the endpoint.
	// Env: EXTRACTION_ENDPOINT_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the model identifier.
	// Env: EXTRACTION_ENDPOINT_MODEL (default: gpt-4o-mini)
	Model string `envconfig:"MODEL" default:"gpt-4o-mini"`

	// APIKey is the API key for authentication.
	// Env: EXTRACTION_ENDPOINT_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// Timeout is the request timeout in seconds.
	// Env: EXTRACTION_ENDPOINT_TIMEOUT (default: 60)
	Timeout float64 `envconfig:"TIMEOUT" default:"60"`

	// MaxRetries is the maximum number of retries.
	// Env: EXTRACTION_ENDPOINT_MAX_RETRIES (default: 3)
	MaxRetries int `envconfig:"MAX_RETRIES" default:"3"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []AppConfigOption{
		WithSnapshotConfig(e.Snapshot.ToSnapshotConfig()),
	}

	if e.Host != "" {
		opts = append(opts, WithHost(e.Host))
	}
	if e.Port != 0 {
		opts = append(opts, WithPort(e.Port))
	}
	if e.DataDir != "" {
		opts = append(opts, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		opts = append(opts, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(e.LogFormat))
	}
	if e.MatchLimit > 0 {
		opts = append(opts, WithMatchLimit(e.MatchLimit))
	}
	if e.SitesFile != "" {
		opts = append(opts, WithSitesFile(e.SitesFile))
	}
	if e.ExtractionEndpoint.IsConfigured() {
		opts = append(opts, WithExtractionEndpoint(e.ExtractionEndpoint.ToEndpoint()))
	}

	return NewAppConfig(opts...)
}

// ToSnapshotConfig converts SnapshotEnv to SnapshotConfig.
func (s SnapshotEnv) ToSnapshotConfig() SnapshotConfig {
	return NewSnapshotConfig().
		WithEnabled(s.Enabled).
		WithInterval(time.Duration(s.IntervalSeconds * float64(time.Second)))
}

// IsConfigured reports whether the endpoint has an API key configured.
func (e EndpointEnv) IsConfigured() bool {
	return e.APIKey != ""
}

// ToEndpoint converts EndpointEnv to Endpoint.
func (e EndpointEnv) ToEndpoint() Endpoint {
	ep := NewEndpoint()
	ep.baseURL = e.BaseURL
	ep.apiKey = e.APIKey
	if e.Model != "" {
		ep.model = e.Model
	}
	if e.Timeout > 0 {
		ep.timeout = time.Duration(e.Timeout * float64(time.Second))
	}
	if e.MaxRetries > 0 {
		ep.maxRetries = e.MaxRetries
	}
	return ep
}
