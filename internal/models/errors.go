package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds reported by Kind.
const (
	KindInvalidInput        = "InvalidInputError"
	KindConfiguration       = "ConfigurationError"
	KindCodingAgentNotFound = "CodingAgentNotFoundError"
	KindTransport           = "TransportError"
	KindMalformedResponse   = "MalformedResponseError"
	KindUnknown             = "Error"
)

// InvalidInputError reports malformed caller input, such as a repository URL
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// ConfigurationError reports a missing required setting
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not set in environment", e.Setting)
}

// CodingAgentNotFoundError reports a repository without an assignable bot
type CodingAgentNotFoundError struct {
	Repository RepositoryRef
}

func (e *CodingAgentNotFoundError) Error() string {
	return fmt.Sprintf("coding agent not found for repository %s", e.Repository)
}

// TransportError reports a failed GraphQL round trip.
// StatusCode is 0 when no response was received.
type TransportError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("GitHub API error during %s: %s", e.Operation, e.Body)
	}
	code := strconv.Itoa(e.StatusCode)
	if strings.HasPrefix(e.Body, code) {
		return fmt.Sprintf("GitHub API error during %s: %s", e.Operation, e.Body)
	}
	return fmt.Sprintf("GitHub API error during %s: %s %s", e.Operation, code, e.Body)
}

// MalformedResponseError reports a successful response missing a required field
type MalformedResponseError struct {
	Operation string
	Field     string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s response: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("malformed %s response: missing %s", e.Operation, e.Field)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Kind names the taxonomy kind of err, or KindUnknown for untyped errors
func Kind(err error) string {
	var (
		invalidInput *InvalidInputError
		configErr    *ConfigurationError
		notFound     *CodingAgentNotFoundError
		transport    *TransportError
		malformed    *MalformedResponseError
	)
	switch {
	case errors.As(err, &invalidInput):
		return KindInvalidInput
	case errors.As(err, &configErr):
		return KindConfiguration
	case errors.As(err, &notFound):
		return KindCodingAgentNotFound
	case errors.As(err, &transport):
		return KindTransport
	case errors.As(err, &malformed):
		return KindMalformedResponse
	default:
		return KindUnknown
	}
}
