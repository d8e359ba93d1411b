package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
	graphql "github.com/cli/shurcooL-graphql"
	"github.com/ryo246912/gh-coding-agent-issue/internal/config"
	"github.com/ryo246912/gh-coding-agent-issue/internal/metrics"
	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
)

// Operation names used in errors and metrics
const (
	OperationSuggestedActors = "suggestedActors"
	OperationRepositoryID    = "repositoryId"
	OperationCreateIssue     = "createIssue"
)

// NOTE: https://docs.github.com/en/copilot/how-tos/use-copilot-agents/coding-agent/assign-copilot-to-an-issue
const suggestedActorsQuery = `
query($owner: String!, $name: String!) {
	repository(owner: $owner, name: $name) {
		suggestedActors(capabilities: [CAN_BE_ASSIGNED], first: 100) {
			nodes {
				login
				__typename
				... on Bot { id }
				... on User { id }
			}
		}
	}
}`

const repositoryIDQuery = `
query($owner: String!, $name: String!) {
	repository(owner: $owner, name: $name) {
		id
	}
}`

const createIssueMutation = `
mutation($repositoryId: ID!, $title: String!, $body: String!, $assigneeIds: [ID!]!) {
	createIssue(input: {repositoryId: $repositoryId, title: $title, body: $body, assigneeIds: $assigneeIds}) {
		issue {
			id
		}
	}
}`

// graphQLDoer is the subset of api.GraphQLClient the Client uses
type graphQLDoer interface {
	DoWithContext(ctx context.Context, query string, variables map[string]interface{}, response interface{}) error
}

// Client wraps the GitHub GraphQL API
type Client struct {
	gql graphQLDoer
}

// Option customizes the underlying go-gh client options
type Option func(*api.ClientOptions)

// WithTransport routes requests through rt
func WithTransport(rt http.RoundTripper) Option {
	return func(o *api.ClientOptions) {
		o.Transport = rt
	}
}

// NewClient creates a GraphQL client authenticated with the configured bearer token.
// A missing token is reported before any client is created.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.RequireGitHubToken(); err != nil {
		return nil, err
	}

	clientOpts := api.ClientOptions{
		AuthToken: cfg.GitHubToken,
		Host:      cfg.GitHubHost,
		Timeout:   cfg.GitHubTimeout,
		Headers: map[string]string{
			"Authorization": "Bearer " + cfg.GitHubToken,
		},
	}
	for _, opt := range opts {
		opt(&clientOpts)
	}
	clientOpts.Transport = &bodyCaptureTransport{base: clientOpts.Transport}

	gqlClient, err := api.NewGraphQLClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	return &Client{gql: gqlClient}, nil
}

// SuggestedActors fetches the actors that can be assigned to issues in the repository.
// A repository that resolves to null yields an empty list.
func (c *Client) SuggestedActors(ctx context.Context, repo models.RepositoryRef) ([]models.AssignableActor, error) {
	var resp struct {
		Repository *struct {
			SuggestedActors struct {
				Nodes []struct {
					Login    string `json:"login"`
					Typename string `json:"__typename"`
					ID       string `json:"id"`
				} `json:"nodes"`
			} `json:"suggestedActors"`
		} `json:"repository"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(repo.Owner),
		"name":  graphql.String(repo.Name),
	}
	if err := c.do(ctx, OperationSuggestedActors, suggestedActorsQuery, variables, &resp); err != nil {
		return nil, err
	}

	if resp.Repository == nil {
		return nil, nil
	}

	actors := make([]models.AssignableActor, 0, len(resp.Repository.SuggestedActors.Nodes))
	for _, node := range resp.Repository.SuggestedActors.Nodes {
		actors = append(actors, models.AssignableActor{
			Login: node.Login,
			Kind:  models.ActorKindFromTypename(node.Typename),
			ID:    node.ID,
		})
	}
	return actors, nil
}

// RepositoryID fetches the repository's global node id
func (c *Client) RepositoryID(ctx context.Context, repo models.RepositoryRef) (string, error) {
	var resp struct {
		Repository *struct {
			ID string `json:"id"`
		} `json:"repository"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(repo.Owner),
		"name":  graphql.String(repo.Name),
	}
	if err := c.do(ctx, OperationRepositoryID, repositoryIDQuery, variables, &resp); err != nil {
		return "", err
	}

	if resp.Repository == nil || resp.Repository.ID == "" {
		return "", &models.MalformedResponseError{Operation: OperationRepositoryID, Field: "repository.id"}
	}
	return resp.Repository.ID, nil
}

// CreateIssue creates an issue and returns its node id
func (c *Client) CreateIssue(ctx context.Context, req models.IssueRequest) (models.IssueResult, error) {
	var resp struct {
		CreateIssue *struct {
			Issue *struct {
				ID string `json:"id"`
			} `json:"issue"`
		} `json:"createIssue"`
	}

	assigneeIDs := make([]graphql.ID, 0, len(req.AssigneeIDs))
	for _, id := range req.AssigneeIDs {
		assigneeIDs = append(assigneeIDs, graphql.ID(id))
	}
	variables := map[string]interface{}{
		"repositoryId": graphql.ID(req.RepositoryID),
		"title":        graphql.String(req.Title),
		"body":         graphql.String(req.Body),
		"assigneeIds":  assigneeIDs,
	}
	if err := c.do(ctx, OperationCreateIssue, createIssueMutation, variables, &resp); err != nil {
		return models.IssueResult{}, err
	}

	if resp.CreateIssue == nil || resp.CreateIssue.Issue == nil || resp.CreateIssue.Issue.ID == "" {
		return models.IssueResult{}, &models.MalformedResponseError{Operation: OperationCreateIssue, Field: "createIssue.issue.id"}
	}
	return models.IssueResult{ID: resp.CreateIssue.Issue.ID}, nil
}

// do sends one GraphQL request and maps failures onto the error taxonomy
func (c *Client) do(ctx context.Context, operation, query string, variables map[string]interface{}, response interface{}) error {
	ctx, body := withResponseBody(ctx)
	err := classifyError(operation, c.gql.DoWithContext(ctx, query, variables, response), body)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	metrics.GraphQLRequests.WithLabelValues(operation, outcome).Inc()
	return err
}

func classifyError(operation string, err error, body *responseBody) error {
	if err == nil {
		return nil
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		raw := body.String()
		if raw == "" {
			raw = httpErr.Message
		}
		return &models.TransportError{
			Operation:  operation,
			StatusCode: httpErr.StatusCode,
			Body:       raw,
		}
	}

	// errors envelope on a 2xx response
	var gqlErr *api.GraphQLError
	if errors.As(err, &gqlErr) {
		messages := make([]string, 0, len(gqlErr.Errors))
		for _, item := range gqlErr.Errors {
			messages = append(messages, item.Message)
		}
		return &models.TransportError{
			Operation:  operation,
			StatusCode: http.StatusOK,
			Body:       strings.Join(messages, "; "),
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &models.MalformedResponseError{Operation: operation, Err: err}
	}

	return &models.TransportError{Operation: operation, Body: err.Error()}
}
