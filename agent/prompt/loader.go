package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/orchestrator.txt
	orchestratorRaw string

	//go:embed template/greeting.txt
	greetingRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Orchestrator string
	Greeting     string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Orchestrator: strings.TrimSpace(orchestratorRaw),
		Greeting:     strings.TrimSpace(greetingRaw),
	}
}
