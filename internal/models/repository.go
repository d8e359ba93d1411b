package models

import "strings"

// RepositoryRef identifies a repository by owner and name
type RepositoryRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// ParseRepositoryURL extracts owner and name from https://github.com/<owner>/<repo>[...]
func ParseRepositoryURL(repoURL string) (RepositoryRef, error) {
	parts := strings.Split(repoURL, "/")
	if len(parts) < 5 {
		return RepositoryRef{}, &InvalidInputError{Input: repoURL, Reason: "invalid repository URL"}
	}

	ref := RepositoryRef{Owner: parts[3], Name: parts[4]}
	if ref.Owner == "" || ref.Name == "" {
		return RepositoryRef{}, &InvalidInputError{Input: repoURL, Reason: "repository URL is missing owner or name"}
	}
	return ref, nil
}

func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}
