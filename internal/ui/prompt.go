package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ErrInputClosed is returned when the user interrupts or input reaches EOF
var ErrInputClosed = errors.New("input closed")

// ReadPrompt asks the user for the next chat prompt
func ReadPrompt() (string, error) {
	prompt := promptui.Prompt{
		Label: "Enter a prompt or type 'quit'",
	}

	input, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return input, nil
}
