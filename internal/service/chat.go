package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/ryo246912/gh-coding-agent-issue/internal/ui"
)

// Sender sends one user turn to the agent and returns its reply
type Sender interface {
	Send(ctx context.Context, prompt string) (string, error)
}

// ChatService runs the interactive prompt loop against an agent session
type ChatService struct {
	session  Sender
	prompter ui.Prompter
	out      io.Writer
}

// NewChatService creates a new chat loop
func NewChatService(session Sender, prompter ui.Prompter, out io.Writer) *ChatService {
	return &ChatService{
		session:  session,
		prompter: prompter,
		out:      out,
	}
}

// Run reads prompts until the user types quit or input ends
func (s *ChatService) Run(ctx context.Context) error {
	log := clog.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt, err := s.prompter.ReadPrompt()
		if errors.Is(err, ui.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read prompt: %w", err)
		}

		prompt = strings.TrimSpace(prompt)
		if strings.EqualFold(prompt, "quit") {
			return nil
		}
		if prompt == "" {
			fmt.Fprintln(s.out, "Please enter a prompt")
			continue
		}

		reply, err := s.session.Send(ctx, prompt)
		if err != nil {
			log.With("error", err).Error("Agent turn failed")
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(s.out, reply)
	}
}
