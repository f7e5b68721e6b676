package jobpilot

import (
	"log/slog"

	"github.com/jobpilot/jobpilot/application/service"
	"github.com/jobpilot/jobpilot/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	cfg       config.AppConfig
	logger    *slog.Logger
	extractor service.SkillExtractor
}

func newClientConfig() *clientConfig {
	return &clientConfig{cfg: config.NewAppConfig()}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithConfig sets the application configuration.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) { c.cfg = cfg }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithExtractor overrides the skill extraction backend.
func WithExtractor(e service.SkillExtractor) Option {
	return func(c *clientConfig) { c.extractor = e }
}
