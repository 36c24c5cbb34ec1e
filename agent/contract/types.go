package contract

import (
	"strings"
	"time"
)

// AgentRole is a prompt-defined persona, not a separate process. The
// orchestrator model mentions the acting agent in its replies and the
// transcript tags entries with the matching role.
type AgentRole string

const (
	AgentHospitalAdmin AgentRole = "Agent 1: Hospital System (Admin & Billing)"
	AgentPharmacy      AgentRole = "Agent 2: Pharmacy & Medication"
	AgentLaboratory    AgentRole = "Agent 3: Lab & Diagnostics"
	AgentStaffCoord    AgentRole = "Agent 4: Staff & Resources"
)

// orderedRoles is scanned in agent-number order; first match wins.
var orderedRoles = []struct {
	marker string
	role   AgentRole
}{
	{"Agent 1", AgentHospitalAdmin},
	{"Agent 2", AgentPharmacy},
	{"Agent 3", AgentLaboratory},
	{"Agent 4", AgentStaffCoord},
}

// InferAgent guesses which persona authored a reply by scanning the text for
// the literal "Agent N" markers. The backend gives no structured persona
// signal, so this stays a plain substring scan.
func InferAgent(text string) (AgentRole, bool) {
	for _, entry := range orderedRoles {
		if strings.Contains(text, entry.marker) {
			return entry.role, true
		}
	}
	return "", false
}

type MessageRole string

const (
	RoleUser   MessageRole = "user"
	RoleModel  MessageRole = "model"
	RoleSystem MessageRole = "system"
)

// ChatMessage is one transcript entry.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Agent     AgentRole   `json:"agent,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ToolRequest is a single model-issued function call.
type ToolRequest struct {
	ID   string         `json:"id,omitempty"`
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the outcome of one dispatched call. Result and Error are
// mutually exclusive; either way the payload feeds back to the model as a
// function response.
type ToolResult struct {
	ID     string `json:"id,omitempty"`
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ModelTurn is the classified shape of one backend response: either plain
// text ending the turn, or a batch of pending function calls. The two cases
// are a closed sum, not optional fields.
type ModelTurn interface {
	modelTurn()
}

// TextTurn carries the final reply text for the turn.
type TextTurn struct {
	Text string
}

// ToolCallBatch carries pending function calls to dispatch, in the order the
// model issued them.
type ToolCallBatch struct {
	Calls []ToolRequest
}

func (TextTurn) modelTurn()      {}
func (ToolCallBatch) modelTurn() {}
