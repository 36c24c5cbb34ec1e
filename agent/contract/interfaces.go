package contract

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ChatBackend is the boundary to the remote model service. The full message
// history (system instruction first) is sent on every call; the response may
// carry text, tool calls, or both.
type ChatBackend interface {
	Send(ctx context.Context, history []*schema.Message) (*schema.Message, error)
}

// Dispatcher resolves a batch of function calls against the domain store,
// sequentially and in the order received. Per-call failures are converted to
// error results; they never abort sibling calls, so there is no batch error.
type Dispatcher interface {
	Execute(ctx context.Context, reqs []ToolRequest) []ToolResult
}
