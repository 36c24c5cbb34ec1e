package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/wardops/simrs-agents/agent/contract"
	promptx "github.com/wardops/simrs-agents/agent/prompt"
)

type fakeBackend struct {
	responses []*schema.Message
	errs      []error
	calls     int
	histories [][]*schema.Message
}

func (f *fakeBackend) Send(ctx context.Context, history []*schema.Message) (*schema.Message, error) {
	idx := f.calls
	f.calls++
	copied := make([]*schema.Message, len(history))
	copy(copied, history)
	f.histories = append(f.histories, copied)

	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return schema.AssistantMessage("done", nil), nil
}

type fakeDispatcher struct {
	results [][]contractx.ToolResult
	calls   [][]contractx.ToolRequest
}

func (f *fakeDispatcher) Execute(ctx context.Context, reqs []contractx.ToolRequest) []contractx.ToolResult {
	f.calls = append(f.calls, append([]contractx.ToolRequest(nil), reqs...))
	if len(f.results) == 0 {
		out := make([]contractx.ToolResult, 0, len(reqs))
		for _, r := range reqs {
			out = append(out, contractx.ToolResult{ID: r.ID, Tool: r.Tool, Result: "ok"})
		}
		return out
	}
	out := f.results[0]
	f.results = f.results[1:]
	return out
}

func newTestService(t *testing.T, backend contractx.ChatBackend, dispatcher contractx.Dispatcher) *Service {
	t.Helper()
	s, err := New(backend, dispatcher, promptx.LoadPromptSet(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func toolCallMessage(id, name, args string) *schema.Message {
	return &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{ID: id, Function: schema.FunctionCall{Name: name, Arguments: args}},
		},
	}
}

func TestHandleMessageEmptyInput(t *testing.T) {
	t.Parallel()

	s := newTestService(t, &fakeBackend{}, &fakeDispatcher{})
	if _, err := s.HandleMessage(context.Background(), "   "); !errors.Is(err, contractx.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestHandleMessagePlainTextTurn(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		responses: []*schema.Message{
			schema.AssistantMessage("Agent 3 has analyzed the results. All values are stable.", nil),
		},
	}
	s := newTestService(t, backend, &fakeDispatcher{})

	res, err := s.HandleMessage(context.Background(), "check the labs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Agent != contractx.AgentLaboratory {
		t.Fatalf("expected lab agent tag, got %q", res.Agent)
	}
	if len(res.Appended) != 2 {
		t.Fatalf("expected user+model entries, got %d", len(res.Appended))
	}
	if res.Appended[0].Role != contractx.RoleUser || res.Appended[1].Role != contractx.RoleModel {
		t.Fatalf("unexpected entry roles: %+v", res.Appended)
	}
}

func TestHandleMessageToolRound(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		responses: []*schema.Message{
			toolCallMessage("call-1", "get_patient_data", `{"identifier":"budi"}`),
			schema.AssistantMessage("Agent 1 has retrieved the record.", nil),
		},
	}
	dispatcher := &fakeDispatcher{}
	s := newTestService(t, backend, dispatcher)

	res, err := s.HandleMessage(context.Background(), "show budi's record")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dispatcher.calls) != 1 {
		t.Fatalf("expected 1 dispatch round, got %d", len(dispatcher.calls))
	}
	call := dispatcher.calls[0][0]
	if call.Tool != "get_patient_data" || call.Args["identifier"] != "budi" {
		t.Fatalf("unexpected dispatched call: %+v", call)
	}

	var sysEntry string
	for _, m := range res.Appended {
		if m.Role == contractx.RoleSystem {
			sysEntry = m.Content
		}
	}
	if sysEntry != "Executing Agents: get_patient_data..." {
		t.Fatalf("unexpected system entry: %q", sysEntry)
	}

	// second backend call must see the tool response appended to history
	second := backend.histories[1]
	last := second[len(second)-1]
	if last.Role != schema.Tool {
		t.Fatalf("expected tool message last in history, got role %s", last.Role)
	}
	if !strings.Contains(last.Content, `"result"`) {
		t.Fatalf("tool message must carry the result payload, got %q", last.Content)
	}

	if res.Reply != "Agent 1 has retrieved the record." {
		t.Fatalf("unexpected reply: %q", res.Reply)
	}
	if res.Agent != contractx.AgentHospitalAdmin {
		t.Fatalf("unexpected agent: %q", res.Agent)
	}
}

func TestHandleMessageBackendFailureAbortsTurn(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{errs: []error{errors.New("upstream 503")}}
	s := newTestService(t, backend, &fakeDispatcher{})

	res, err := s.HandleMessage(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	last := res.Appended[len(res.Appended)-1]
	if last.Role != contractx.RoleSystem || !strings.Contains(last.Content, "System Error:") {
		t.Fatalf("expected system error entry, got %+v", last)
	}

	// the failure is turn-local; the next turn must run normally
	backend.errs = nil
	backend.responses = []*schema.Message{schema.AssistantMessage("recovered", nil)}
	backend.calls = 0
	if _, err := s.HandleMessage(context.Background(), "again"); err != nil {
		t.Fatalf("next turn must succeed, got %v", err)
	}
}

func TestHandleMessageRoundCap(t *testing.T) {
	t.Parallel()

	responses := make([]*schema.Message, 0, DefaultMaxToolRounds)
	for i := 0; i < DefaultMaxToolRounds; i++ {
		responses = append(responses, toolCallMessage("c", "analyze_critical_lab", `{"patientId":"P002"}`))
	}
	backend := &fakeBackend{responses: responses}
	s := newTestService(t, backend, &fakeDispatcher{})

	_, err := s.HandleMessage(context.Background(), "loop forever")
	if !errors.Is(err, contractx.ErrRoundsExceeded) {
		t.Fatalf("expected ErrRoundsExceeded, got %v", err)
	}
	if backend.calls != DefaultMaxToolRounds {
		t.Fatalf("expected %d backend calls, got %d", DefaultMaxToolRounds, backend.calls)
	}
}

func TestHandleMessageEmptyFinalTextFallsBack(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		responses: []*schema.Message{schema.AssistantMessage("   ", nil)},
	}
	s := newTestService(t, backend, &fakeDispatcher{})

	res, err := s.HandleMessage(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reply != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", res.Reply)
	}
	if res.Agent != "" {
		t.Fatalf("fallback reply must not carry an agent tag, got %q", res.Agent)
	}
}

func TestAgentInferenceFirstMatchWins(t *testing.T) {
	t.Parallel()

	agent, ok := contractx.InferAgent("Agent 4 coordinated with Agent 2 on stock.")
	if !ok || agent != contractx.AgentPharmacy {
		t.Fatalf("expected Agent 2 to win, got %q ok=%v", agent, ok)
	}
}

func TestTranscriptSeededWithGreeting(t *testing.T) {
	t.Parallel()

	s := newTestService(t, &fakeBackend{}, &fakeDispatcher{})
	transcript := s.Transcript()
	if len(transcript) != 1 {
		t.Fatalf("expected greeting entry, got %d entries", len(transcript))
	}
	if transcript[0].Role != contractx.RoleModel || !strings.Contains(transcript[0].Content, "NeuroSIMRS Orchestrator") {
		t.Fatalf("unexpected greeting: %+v", transcript[0])
	}
}
