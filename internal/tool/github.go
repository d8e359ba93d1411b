package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/ryo246912/gh-coding-agent-issue/internal/agent"
	"github.com/ryo246912/gh-coding-agent-issue/internal/metrics"
	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
)

// CreateIssueToolName is the name the model calls the tool by
const CreateIssueToolName = "create_issue"

// IssueCreator creates an issue assigned to the repository's coding agent
type IssueCreator interface {
	CreateIssue(ctx context.Context, repoURL, title, body string) (models.IssueResult, error)
}

// GitHubTool exposes issue creation to the agent. It never returns errors,
// only the text the model reads.
type GitHubTool struct {
	creator IssueCreator
}

// NewGitHubTool creates a new tool instance
func NewGitHubTool(creator IssueCreator) *GitHubTool {
	return &GitHubTool{creator: creator}
}

// CreateIssue creates the issue and describes the outcome
func (t *GitHubTool) CreateIssue(ctx context.Context, repoURL, title, body string) string {
	issue, err := t.creator.CreateIssue(ctx, repoURL, title, body)
	if err != nil {
		metrics.ToolCalls.WithLabelValues(CreateIssueToolName, metrics.OutcomeFailure).Inc()
		return FormatFailure(err)
	}
	metrics.ToolCalls.WithLabelValues(CreateIssueToolName, metrics.OutcomeSuccess).Inc()
	return FormatSuccess(issue)
}

// FormatSuccess describes a created issue
func FormatSuccess(issue models.IssueResult) string {
	return fmt.Sprintf("GitHub issue created successfully. Issue node id: %s", issue.ID)
}

// FormatFailure describes err as "Failed to create issue: <kind>: <detail>"
func FormatFailure(err error) string {
	return fmt.Sprintf("Failed to create issue: %s: %v", models.Kind(err), err)
}

type createIssueArgs struct {
	RepoURL string `json:"repo_url"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// ClaudeTool returns the create_issue tool definition and handler
func (t *GitHubTool) ClaudeTool() agent.ToolMetadata {
	return agent.ToolMetadata{
		Definition: anthropic.ToolParam{
			Name:        CreateIssueToolName,
			Description: anthropic.String("Create a new GitHub issue in the given repository URL (https://github.com/<owner>/<repo>). Provide a clear title and body describing the problem or task."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: map[string]any{
					"repo_url": map[string]any{
						"type":        "string",
						"description": "Full HTTPS repository URL, e.g. https://github.com/owner/repo",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "Concise issue title.",
					},
					"body": map[string]any{
						"type":        "string",
						"description": "Detailed issue body (may include markdown).",
					},
				},
				Required: []string{"repo_url", "title", "body"},
			},
		},
		Handler: t.handleCreateIssue,
	}
}

func (t *GitHubTool) handleCreateIssue(ctx context.Context, toolUse anthropic.ToolUseBlock) string {
	var args createIssueArgs
	if err := json.Unmarshal(toolUse.Input, &args); err != nil {
		return FormatFailure(&models.InvalidInputError{Reason: fmt.Sprintf("failed to parse tool input: %v", err)})
	}

	switch {
	case args.RepoURL == "":
		return FormatFailure(&models.InvalidInputError{Reason: "repo_url parameter is required"})
	case args.Title == "":
		return FormatFailure(&models.InvalidInputError{Reason: "title parameter is required"})
	}

	return t.CreateIssue(ctx, args.RepoURL, args.Title, args.Body)
}
