package github

import (
	"context"
	"fmt"

	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	// Control test behavior
	Actors         []models.AssignableActor
	ActorsError    error
	RepoID         string
	RepoIDError    error
	Issue          models.IssueResult
	CreateIssueErr error

	// Track method calls
	SuggestedActorsCalled bool
	RepositoryIDCalled    bool
	CreateIssueCalled     bool
	Calls                 []string

	// Store call arguments for verification
	LastRepo    models.RepositoryRef
	LastRequest models.IssueRequest
}

// SuggestedActors mocks the suggested actors query
func (m *MockClient) SuggestedActors(ctx context.Context, repo models.RepositoryRef) ([]models.AssignableActor, error) {
	m.SuggestedActorsCalled = true
	m.Calls = append(m.Calls, OperationSuggestedActors)
	m.LastRepo = repo
	return m.Actors, m.ActorsError
}

// RepositoryID mocks the repository id query
func (m *MockClient) RepositoryID(ctx context.Context, repo models.RepositoryRef) (string, error) {
	m.RepositoryIDCalled = true
	m.Calls = append(m.Calls, OperationRepositoryID)
	m.LastRepo = repo
	return m.RepoID, m.RepoIDError
}

// CreateIssue mocks the createIssue mutation
func (m *MockClient) CreateIssue(ctx context.Context, req models.IssueRequest) (models.IssueResult, error) {
	m.CreateIssueCalled = true
	m.Calls = append(m.Calls, OperationCreateIssue)
	m.LastRequest = req
	return m.Issue, m.CreateIssueErr
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.SuggestedActorsCalled = false
	m.RepositoryIDCalled = false
	m.CreateIssueCalled = false
	m.Calls = nil
	m.LastRepo = models.RepositoryRef{}
	m.LastRequest = models.IssueRequest{}
}

// NewBot creates a Bot actor for test data
func NewBot(login, id string) models.AssignableActor {
	return models.AssignableActor{Login: login, Kind: models.ActorKindBot, ID: id}
}

// NewUser creates a User actor for test data
func NewUser(login, id string) models.AssignableActor {
	return models.AssignableActor{Login: login, Kind: models.ActorKindUser, ID: id}
}

// NewTransportError creates a TransportError for test data
func NewTransportError(operation string, status int) error {
	return &models.TransportError{Operation: operation, StatusCode: status, Body: fmt.Sprintf("status %d", status)}
}
