package llm

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/wardops/simrs-agents/agent/contract"
	toolx "github.com/wardops/simrs-agents/agent/tool"
	openrouterx "github.com/wardops/simrs-agents/pkg/openrouter"
)

// Backend adapts a tool-calling chat model to the orchestrator boundary. The
// tool catalog is bound once at construction; the descriptors never change
// during a session.
type Backend struct {
	model einomodel.ToolCallingChatModel
}

var _ contractx.ChatBackend = (*Backend)(nil)

func NewBackend(ctx context.Context, cfg openrouterx.Config) (*Backend, error) {
	chatModel, err := cfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create chat model: %v", contractx.ErrModelInvoke, err)
	}

	bound, err := chatModel.WithTools(toolx.Infos())
	if err != nil {
		return nil, fmt.Errorf("%w: bind tool catalog: %v", contractx.ErrModelInvoke, err)
	}

	return &Backend{model: bound}, nil
}

func (b *Backend) Send(ctx context.Context, history []*schema.Message) (*schema.Message, error) {
	msg, err := b.model.Generate(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("%w: backend returned nil message", contractx.ErrModelInvoke)
	}
	return msg, nil
}
