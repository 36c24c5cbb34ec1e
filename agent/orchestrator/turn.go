package orchestrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/wardops/simrs-agents/agent/contract"
)

// classifyTurn maps a raw backend message onto the closed turn sum: pending
// function calls win over any accompanying text, matching how the backend
// interleaves them.
func classifyTurn(msg *schema.Message) (contractx.ModelTurn, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil backend message", contractx.ErrModelInvoke)
	}

	if len(msg.ToolCalls) == 0 {
		return contractx.TextTurn{Text: msg.Content}, nil
	}

	calls := make([]contractx.ToolRequest, 0, len(msg.ToolCalls))
	for _, call := range msg.ToolCalls {
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrModelInvoke)
		}

		args := map[string]any{}
		if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrModelInvoke, name, err)
			}
		}

		calls = append(calls, contractx.ToolRequest{
			ID:   call.ID,
			Tool: name,
			Args: args,
		})
	}

	return contractx.ToolCallBatch{Calls: calls}, nil
}

// encodeToolResult packages one dispatch outcome as the function-response
// payload fed back to the model.
func encodeToolResult(r contractx.ToolResult) string {
	payload := map[string]any{}
	if r.Error != "" {
		payload["error"] = r.Error
	} else {
		payload["result"] = r.Result
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return `{"error":"unencodable tool result"}`
	}
	return string(raw)
}

func callNames(calls []contractx.ToolRequest) string {
	names := make([]string, 0, len(calls))
	for _, c := range calls {
		names = append(names, c.Tool)
	}
	return strings.Join(names, ", ")
}
