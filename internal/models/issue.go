package models

// ActorKind is the GraphQL type of a suggested actor
type ActorKind string

const (
	ActorKindBot   ActorKind = "Bot"
	ActorKindUser  ActorKind = "User"
	ActorKindOther ActorKind = "Other"
)

// ActorKindFromTypename maps a GraphQL __typename onto an ActorKind
func ActorKindFromTypename(typename string) ActorKind {
	switch typename {
	case string(ActorKindBot):
		return ActorKindBot
	case string(ActorKindUser):
		return ActorKindUser
	default:
		return ActorKindOther
	}
}

// AssignableActor represents an entity that can be assigned to issues in a repository
type AssignableActor struct {
	Login string    `json:"login"`
	Kind  ActorKind `json:"kind"`
	ID    string    `json:"id"`
}

// CodingAgent returns the first Bot in server order.
func CodingAgent(actors []AssignableActor) (AssignableActor, bool) {
	for _, actor := range actors {
		if actor.Kind == ActorKindBot {
			return actor, true
		}
	}
	return AssignableActor{}, false
}

// IssueRequest holds the createIssue mutation input
type IssueRequest struct {
	RepositoryID string   `json:"repositoryId"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	AssigneeIDs  []string `json:"assigneeIds"`
}

// IssueResult is the created issue
type IssueResult struct {
	ID string `json:"id"`
}
