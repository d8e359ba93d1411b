package agent

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
)

// ToolMetadata pairs a Claude tool definition with the handler that serves it.
// Handlers report failures in the returned text; the model only sees strings.
type ToolMetadata struct {
	Definition anthropic.ToolParam
	Handler    func(ctx context.Context, toolUse anthropic.ToolUseBlock) string
}
