package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ryo246912/gh-coding-agent-issue/internal/ui"
)

// mockSender echoes prompts back with a prefix
type mockSender struct {
	prompts []string
	err     error
}

func (m *mockSender) Send(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return "reply: " + prompt, nil
}

func TestChatService_Run(t *testing.T) {
	tests := []struct {
		name            string
		inputs          []string
		sendErr         error
		expectedPrompts []string
		expectedOutput  string
	}{
		{
			name:            "quit ends the loop",
			inputs:          []string{"create an issue", "QUIT", "never sent"},
			expectedPrompts: []string{"create an issue"},
			expectedOutput:  "reply: create an issue\n",
		},
		{
			name:            "empty prompt asks again",
			inputs:          []string{"", "   ", "hello", "quit"},
			expectedPrompts: []string{"hello"},
			expectedOutput:  "Please enter a prompt\nPlease enter a prompt\nreply: hello\n",
		},
		{
			name:            "end of input stops",
			inputs:          []string{"hello"},
			expectedPrompts: []string{"hello"},
			expectedOutput:  "reply: hello\n",
		},
		{
			name:            "session errors are reported and the loop continues",
			inputs:          []string{"one", "two", "quit"},
			sendErr:         errors.New("rate limited"),
			expectedPrompts: []string{"one", "two"},
			expectedOutput:  "Error: rate limited\nError: rate limited\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockSender{err: tt.sendErr}
			prompter := &ui.MockPrompter{Inputs: tt.inputs}
			var out bytes.Buffer

			if err := NewChatService(sender, prompter, &out).Run(context.Background()); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if strings.Join(sender.prompts, "|") != strings.Join(tt.expectedPrompts, "|") {
				t.Errorf("prompts = %q, want %q", sender.prompts, tt.expectedPrompts)
			}
			if out.String() != tt.expectedOutput {
				t.Errorf("output = %q, want %q", out.String(), tt.expectedOutput)
			}
		})
	}
}

func TestChatService_Run_PromptError(t *testing.T) {
	prompter := &ui.MockPrompter{InputError: errors.New("terminal gone")}

	err := NewChatService(&mockSender{}, prompter, &bytes.Buffer{}).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to read prompt") {
		t.Errorf("Expected prompt error, got %v", err)
	}
}

func TestChatService_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	prompter := &ui.MockPrompter{Inputs: []string{"hello"}}

	err := NewChatService(&mockSender{}, prompter, &bytes.Buffer{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if prompter.ReadPromptCalls != 0 {
		t.Errorf("ReadPromptCalls = %d, want 0", prompter.ReadPromptCalls)
	}
}
