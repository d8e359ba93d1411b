package service

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/ryo246912/gh-coding-agent-issue/internal/github"
	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
)

// IssueService creates issues assigned to a repository's coding agent
type IssueService struct {
	client github.GitHubClient
}

// NewIssueService creates a new service instance
func NewIssueService(client github.GitHubClient) *IssueService {
	return &IssueService{client: client}
}

// CreateIssue handles the complete workflow: resolve the coding agent, resolve the
// repository id, then create the issue assigned to the agent.
func (s *IssueService) CreateIssue(ctx context.Context, repoURL, title, body string) (models.IssueResult, error) {
	repo, err := models.ParseRepositoryURL(repoURL)
	if err != nil {
		return models.IssueResult{}, err
	}
	log := clog.FromContext(ctx).With("repository", repo.String())
	log.Info("Using repository")

	agent, err := s.codingAgent(ctx, repo)
	if err != nil {
		log.With("error", err).Warn("Coding agent lookup failed")
		return models.IssueResult{}, err
	}
	log = log.With("coding_agent", agent.Login)
	log.With("coding_agent_id", agent.ID).Info("Using coding agent")

	repoID, err := s.client.RepositoryID(ctx, repo)
	if err != nil {
		log.With("error", err).Warn("Repository lookup failed")
		return models.IssueResult{}, fmt.Errorf("failed to resolve repository id: %w", err)
	}

	issue, err := s.client.CreateIssue(ctx, models.IssueRequest{
		RepositoryID: repoID,
		Title:        title,
		Body:         body,
		AssigneeIDs:  []string{agent.ID},
	})
	if err != nil {
		log.With("error", err).Warn("Issue creation failed")
		return models.IssueResult{}, err
	}

	log.With("issue_id", issue.ID).Info("Created issue")
	return issue, nil
}

// AssignableActors lists the actors that can be assigned to issues in the repository
func (s *IssueService) AssignableActors(ctx context.Context, repoURL string) ([]models.AssignableActor, error) {
	repo, err := models.ParseRepositoryURL(repoURL)
	if err != nil {
		return nil, err
	}

	actors, err := s.client.SuggestedActors(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggested actors: %w", err)
	}
	return actors, nil
}

// codingAgent resolves the first Bot among the repository's suggested actors
func (s *IssueService) codingAgent(ctx context.Context, repo models.RepositoryRef) (models.AssignableActor, error) {
	actors, err := s.client.SuggestedActors(ctx, repo)
	if err != nil {
		return models.AssignableActor{}, fmt.Errorf("failed to fetch suggested actors: %w", err)
	}

	agent, ok := models.CodingAgent(actors)
	if !ok {
		return models.AssignableActor{}, &models.CodingAgentNotFoundError{Repository: repo}
	}
	return agent, nil
}
