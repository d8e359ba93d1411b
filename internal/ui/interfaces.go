package ui

// Prompter defines interface for user interaction
type Prompter interface {
	ReadPrompt() (string, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// ReadPrompt prompts user for the next chat message
func (p *DefaultPrompter) ReadPrompt() (string, error) {
	return ReadPrompt()
}

// MockPrompter for testing
type MockPrompter struct {
	// Inputs are returned in order; ErrInputClosed once exhausted
	Inputs     []string
	InputError error

	// Call tracking
	ReadPromptCalls int
}

// ReadPrompt mocks prompt input
func (m *MockPrompter) ReadPrompt() (string, error) {
	m.ReadPromptCalls++
	if m.InputError != nil {
		return "", m.InputError
	}
	if len(m.Inputs) == 0 {
		return "", ErrInputClosed
	}
	input := m.Inputs[0]
	m.Inputs = m.Inputs[1:]
	return input, nil
}
