package config

import (
	"context"
	"fmt"
	"time"

	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
	"github.com/sethvargo/go-envconfig"
)

// Config is read once at startup and passed down explicitly
type Config struct {
	GitHubToken   string        `env:"GITHUB_TOKEN"`
	GitHubHost    string        `env:"GITHUB_HOST,default=github.com"`
	GitHubTimeout time.Duration `env:"GITHUB_TIMEOUT,default=30s"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AgentModel      string `env:"AGENT_MODEL,default=claude-sonnet-4-20250514"`
	AgentMaxTokens  int64  `env:"AGENT_MAX_TOKENS,default=4096"`
	AgentName       string `env:"AGENT_NAME,default=issue_agent"`
	InstructionsDir string `env:"INSTRUCTIONS_DIR,default=instructions"`

	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads the configuration from the process environment
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads the configuration from the given lookuper
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// RequireGitHubToken fails when no GitHub credential is configured
func (c *Config) RequireGitHubToken() error {
	if c.GitHubToken == "" {
		return &models.ConfigurationError{Setting: "GITHUB_TOKEN"}
	}
	return nil
}

// RequireAnthropicAPIKey fails when no Anthropic credential is configured
func (c *Config) RequireAnthropicAPIKey() error {
	if c.AnthropicAPIKey == "" {
		return &models.ConfigurationError{Setting: "ANTHROPIC_API_KEY"}
	}
	return nil
}
