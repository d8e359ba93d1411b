package github

import (
	"context"

	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
)

// GitHubClient defines the interface for GitHub operations
type GitHubClient interface {
	SuggestedActors(ctx context.Context, repo models.RepositoryRef) ([]models.AssignableActor, error)
	RepositoryID(ctx context.Context, repo models.RepositoryRef) (string, error)
	CreateIssue(ctx context.Context, req models.IssueRequest) (models.IssueResult, error)
}

// Ensure Client implements GitHubClient interface
var _ GitHubClient = (*Client)(nil)
