package agent

import (
	"errors"
	"fmt"
	"strings"
)

// Option is a functional option for configuring the session
type Option func(*Session) error

// WithModel overrides the model name
func WithModel(model string) Option {
	return func(s *Session) error {
		if strings.TrimSpace(model) == "" {
			return errors.New("model name is empty")
		}
		s.model = model
		return nil
	}
}

// WithMaxTokens sets the maximum tokens for responses
func WithMaxTokens(tokens int64) Option {
	return func(s *Session) error {
		if tokens <= 0 {
			return fmt.Errorf("invalid max tokens %d", tokens)
		}
		s.maxTokens = tokens
		return nil
	}
}

// WithSystemInstructions sets the system prompt
func WithSystemInstructions(instructions string) Option {
	return func(s *Session) error {
		s.system = instructions
		return nil
	}
}

// WithTools registers tools the model may call
func WithTools(tools ...ToolMetadata) Option {
	return func(s *Session) error {
		for _, tool := range tools {
			if tool.Handler == nil {
				return fmt.Errorf("tool %q has no handler", tool.Definition.Name)
			}
			if _, exists := s.tools[tool.Definition.Name]; exists {
				return fmt.Errorf("tool %q registered twice", tool.Definition.Name)
			}
			s.tools[tool.Definition.Name] = tool
		}
		return nil
	}
}

// WithMaxToolRounds bounds the tool round trips within a single turn
func WithMaxToolRounds(rounds int) Option {
	return func(s *Session) error {
		if rounds <= 0 {
			return errors.New("max tool rounds must be positive")
		}
		s.maxToolRounds = rounds
		return nil
	}
}
