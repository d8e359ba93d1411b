package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ryo246912/gh-coding-agent-issue/internal/config"
)

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(cfg)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCreate_FailuresAreReported(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		args     []string
		expected string
	}{
		{
			name:     "malformed URL",
			cfg:      &config.Config{GitHubToken: "x"},
			args:     []string{"create", "https://github.com/acme"},
			expected: "Failed to create issue: InvalidInputError: ",
		},
		{
			name:     "malformed URL is reported before the missing token",
			cfg:      &config.Config{},
			args:     []string{"create", "acme/widgets"},
			expected: "Failed to create issue: InvalidInputError: ",
		},
		{
			name:     "missing token",
			cfg:      &config.Config{},
			args:     []string{"create", "https://github.com/acme/widgets", "--title", "Fix it"},
			expected: "Failed to create issue: ConfigurationError: GITHUB_TOKEN not set in environment\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.cfg, tt.args...)
			if !errors.Is(err, errReported) {
				t.Fatalf("Expected errReported, got %v", err)
			}
			if !strings.HasPrefix(out, tt.expected) {
				t.Errorf("output = %q, want prefix %q", out, tt.expected)
			}
		})
	}
}

func TestActors_MissingToken(t *testing.T) {
	_, err := execute(t, &config.Config{}, "actors", "https://github.com/acme/widgets")
	if err == nil || !strings.Contains(err.Error(), "GITHUB_TOKEN") {
		t.Errorf("Expected configuration error, got %v", err)
	}
}

func TestChat_MissingAnthropicKey(t *testing.T) {
	_, err := execute(t, &config.Config{GitHubToken: "x"}, "chat")
	if err == nil || !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
		t.Errorf("Expected configuration error, got %v", err)
	}
}

func TestCommands_ArgumentValidation(t *testing.T) {
	for _, args := range [][]string{
		{"create"},
		{"actors", "a", "b"},
		{"chat", "extra"},
	} {
		if _, err := execute(t, &config.Config{}, args...); err == nil {
			t.Errorf("Expected argument error for %v", args)
		}
	}
}
