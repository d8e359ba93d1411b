package agent

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
)

// MessageCreator is satisfied by *anthropic.MessageService
type MessageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// ErrTooManyToolRounds is returned when the model keeps calling tools past the configured bound
var ErrTooManyToolRounds = errors.New("agent exceeded the maximum number of tool rounds")

// Session is a conversation thread with the model. The history is kept across
// calls to Send. A Session is not safe for concurrent use.
type Session struct {
	messages      MessageCreator
	model         string
	maxTokens     int64
	system        string
	tools         map[string]ToolMetadata
	maxToolRounds int

	history []anthropic.MessageParam
}

// NewSession creates a session with minimal required configuration
func NewSession(messages MessageCreator, opts ...Option) (*Session, error) {
	if messages == nil {
		return nil, errors.New("message client cannot be nil")
	}

	s := &Session{
		messages:      messages,
		model:         "claude-sonnet-4-20250514",
		maxTokens:     4096,
		tools:         map[string]ToolMetadata{},
		maxToolRounds: 8,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return s, nil
}

// Send adds prompt to the thread, runs any tool calls the model makes and
// returns the model's final text reply.
func (s *Session) Send(ctx context.Context, prompt string) (string, error) {
	log := clog.FromContext(ctx)

	history := append(slices.Clone(s.history), anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		Tools:     s.toolDefinitions(),
	}
	if s.system != "" {
		params.System = []anthropic.TextBlockParam{{Text: s.system}}
	}

	for round := 0; ; round++ {
		params.Messages = history
		message, err := s.messages.New(ctx, params)
		if err != nil {
			return "", fmt.Errorf("failed to get Claude response: %w", err)
		}
		history = append(history, message.ToParam())

		var toolUseBlocks []anthropic.ToolUseBlock
		var text []string
		for _, content := range message.Content {
			switch content.Type {
			case "text":
				text = append(text, content.Text)
			case "tool_use":
				toolUseBlocks = append(toolUseBlocks, anthropic.ToolUseBlock{
					ID:    content.ID,
					Name:  content.Name,
					Input: content.Input,
				})
			}
		}

		if len(toolUseBlocks) == 0 {
			s.history = history
			return strings.Join(text, "\n"), nil
		}

		if round >= s.maxToolRounds {
			// drop the unanswered turn so the thread stays valid
			return "", ErrTooManyToolRounds
		}

		results := make([]anthropic.ContentBlockParamUnion, 0, len(toolUseBlocks))
		for _, toolUse := range toolUseBlocks {
			log.With("tool", toolUse.Name).
				With("id", toolUse.ID).
				Info("Executing tool call")
			results = append(results, s.executeToolCall(ctx, toolUse))
		}
		history = append(history, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleUser,
			Content: results,
		})
	}
}

func (s *Session) executeToolCall(ctx context.Context, toolUse anthropic.ToolUseBlock) anthropic.ContentBlockParamUnion {
	text, isError := "", false
	if meta, ok := s.tools[toolUse.Name]; ok {
		text = meta.Handler(ctx, toolUse)
	} else {
		clog.FromContext(ctx).With("tool", toolUse.Name).Error("Unknown tool requested")
		text, isError = fmt.Sprintf("unknown tool: %q", toolUse.Name), true
	}

	return anthropic.ContentBlockParamUnion{
		OfToolResult: &anthropic.ToolResultBlockParam{
			ToolUseID: toolUse.ID,
			IsError:   anthropic.Bool(isError),
			Content: []anthropic.ToolResultBlockParamContentUnion{{
				OfText: &anthropic.TextBlockParam{Text: text},
			}},
		},
	}
}

// toolDefinitions returns the registered tools in name order
func (s *Session) toolDefinitions() []anthropic.ToolUnionParam {
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]anthropic.ToolUnionParam, 0, len(names))
	for _, name := range names {
		def := s.tools[name].Definition
		defs = append(defs, anthropic.ToolUnionParam{OfTool: &def})
	}
	return defs
}
