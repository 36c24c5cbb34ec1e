package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	contractx "github.com/wardops/simrs-agents/agent/contract"
	promptx "github.com/wardops/simrs-agents/agent/prompt"
)

// DefaultMaxToolRounds caps the tool-call loop. The protocol itself is
// unbounded; without a cap a model that always requests another tool call
// would never let the turn finish.
const DefaultMaxToolRounds = 8

const fallbackReply = "I completed the task but have no further comment."

type Config struct {
	MaxToolRounds int
}

// Service owns the conversation with the model backend: one session, one
// turn at a time. A turn moves AwaitingModelResponse -> ExecutingTools and
// back until the model answers with plain text, which ends the turn.
type Service struct {
	backend    contractx.ChatBackend
	dispatcher contractx.Dispatcher

	mu         sync.Mutex
	history    []*schema.Message
	transcript []contractx.ChatMessage

	maxRounds int
	now       func() time.Time
	newID     func() string
}

// TurnResult reports one completed (or aborted) user turn.
type TurnResult struct {
	Reply       string                  `json:"reply"`
	Agent       contractx.AgentRole     `json:"agent,omitempty"`
	Appended    []contractx.ChatMessage `json:"appended"`
	ToolResults []contractx.ToolResult  `json:"toolResults,omitempty"`
}

func New(backend contractx.ChatBackend, dispatcher contractx.Dispatcher, prompts promptx.PromptSet, cfg Config) (*Service, error) {
	if backend == nil {
		return nil, errors.New("chat backend is required")
	}
	if dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}

	maxRounds := cfg.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxToolRounds
	}

	s := &Service{
		backend:    backend,
		dispatcher: dispatcher,
		maxRounds:  maxRounds,
		now:        time.Now,
		newID:      uuid.NewString,
	}

	s.history = []*schema.Message{schema.SystemMessage(prompts.Orchestrator)}
	if greeting := strings.TrimSpace(prompts.Greeting); greeting != "" {
		s.transcript = append(s.transcript, contractx.ChatMessage{
			ID:        s.newID(),
			Role:      contractx.RoleModel,
			Content:   greeting,
			Timestamp: s.now(),
		})
	}

	return s, nil
}

// HandleMessage runs one full user turn. Backend failures and the round cap
// abort the turn with a system transcript entry; the returned TurnResult
// still carries everything appended so callers can render it.
func (s *Service) HandleMessage(ctx context.Context, text string) (TurnResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return TurnResult{}, contractx.ErrEmptyMessage
	}
	if !s.mu.TryLock() {
		return TurnResult{}, contractx.ErrTurnInFlight
	}
	defer s.mu.Unlock()

	var res TurnResult
	// optimistic append, before the backend answers
	s.append(&res, contractx.RoleUser, trimmed, "")
	s.history = append(s.history, schema.UserMessage(trimmed))

	for round := 0; round < s.maxRounds; round++ {
		msg, err := s.backend.Send(ctx, s.history)
		if err != nil {
			return s.failTurn(&res, err)
		}

		turn, err := classifyTurn(msg)
		if err != nil {
			return s.failTurn(&res, err)
		}

		switch t := turn.(type) {
		case contractx.TextTurn:
			reply := strings.TrimSpace(t.Text)
			if reply == "" {
				reply = fallbackReply
			}
			agent, _ := contractx.InferAgent(reply)
			s.append(&res, contractx.RoleModel, reply, agent)
			s.history = append(s.history, schema.AssistantMessage(reply, nil))
			res.Reply = reply
			res.Agent = agent
			return res, nil

		case contractx.ToolCallBatch:
			s.history = append(s.history, msg)
			s.append(&res, contractx.RoleSystem, "Executing Agents: "+callNames(t.Calls)+"...", "")

			results := s.dispatcher.Execute(ctx, t.Calls)
			res.ToolResults = append(res.ToolResults, results...)
			for _, r := range results {
				s.history = append(s.history, schema.ToolMessage(encodeToolResult(r), r.ID, schema.WithToolName(r.Tool)))
			}
			log.Debug().Int("round", round).Int("calls", len(t.Calls)).Msg("tool round dispatched")
		}
	}

	return s.failTurn(&res, contractx.ErrRoundsExceeded)
}

// Transcript returns a copy of all chat messages, oldest first.
func (s *Service) Transcript() []contractx.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]contractx.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Service) append(res *TurnResult, role contractx.MessageRole, content string, agent contractx.AgentRole) {
	msg := contractx.ChatMessage{
		ID:        s.newID(),
		Role:      role,
		Content:   content,
		Agent:     agent,
		Timestamp: s.now(),
	}
	s.transcript = append(s.transcript, msg)
	res.Appended = append(res.Appended, msg)
}

// failTurn records the failure in the transcript and returns to
// AwaitingUserInput. No retry is attempted.
func (s *Service) failTurn(res *TurnResult, err error) (TurnResult, error) {
	log.Error().Err(err).Msg("conversation turn aborted")
	s.append(res, contractx.RoleSystem, "System Error: "+err.Error(), "")
	return *res, err
}
