package config

import (
	"context"
	"testing"
	"time"

	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.GitHubToken)
	assert.Equal(t, "github.com", cfg.GitHubHost)
	assert.Equal(t, 30*time.Second, cfg.GitHubTimeout)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.AgentModel)
	assert.Equal(t, int64(4096), cfg.AgentMaxTokens)
	assert.Equal(t, "issue_agent", cfg.AgentName)
	assert.Equal(t, "instructions", cfg.InstructionsDir)
	assert.Equal(t, "", cfg.MetricsAddr)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"GITHUB_TOKEN":     "ghp_test",
		"GITHUB_HOST":      "ghe.example.com",
		"GITHUB_TIMEOUT":   "5s",
		"AGENT_MAX_TOKENS": "1024",
		"METRICS_ADDR":     ":2112",
	}))
	require.NoError(t, err)

	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, "ghe.example.com", cfg.GitHubHost)
	assert.Equal(t, 5*time.Second, cfg.GitHubTimeout)
	assert.Equal(t, int64(1024), cfg.AgentMaxTokens)
	assert.Equal(t, ":2112", cfg.MetricsAddr)
}

func TestLoadWith_InvalidDuration(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"GITHUB_TIMEOUT": "soon",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process config")
}

func TestConfig_RequireGitHubToken(t *testing.T) {
	err := (&Config{}).RequireGitHubToken()
	require.Error(t, err)
	assert.Equal(t, models.KindConfiguration, models.Kind(err))
	assert.Equal(t, "GITHUB_TOKEN not set in environment", err.Error())

	assert.NoError(t, (&Config{GitHubToken: "x"}).RequireGitHubToken())
}

func TestConfig_RequireAnthropicAPIKey(t *testing.T) {
	err := (&Config{}).RequireAnthropicAPIKey()
	require.Error(t, err)
	assert.Equal(t, models.KindConfiguration, models.Kind(err))

	assert.NoError(t, (&Config{AnthropicAPIKey: "x"}).RequireAnthropicAPIKey())
}
