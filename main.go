package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	dashboardx "github.com/wardops/simrs-agents/agent/dashboard"
	llmx "github.com/wardops/simrs-agents/agent/llm"
	orchestratorx "github.com/wardops/simrs-agents/agent/orchestrator"
	promptx "github.com/wardops/simrs-agents/agent/prompt"
	statex "github.com/wardops/simrs-agents/agent/state"
	toolx "github.com/wardops/simrs-agents/agent/tool"
	"github.com/wardops/simrs-agents/internal/api"
	configx "github.com/wardops/simrs-agents/pkg/config"
	_ "github.com/wardops/simrs-agents/pkg/logger/autoload"
	openrouterx "github.com/wardops/simrs-agents/pkg/openrouter"
)

type AppConfig struct {
	ListenAddr    string `envconfig:"LISTEN_ADDR" default:":8080"`
	MaxToolRounds int    `envconfig:"MAX_TOOL_ROUNDS"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")
	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	if err := openRouterCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid openrouter config")
	}

	openRouterClient := openrouterx.NewClient(*openRouterCfg)
	if openRouterClient == nil {
		log.Fatal().Msg("failed to initialize openrouter client")
	}
	if err := openrouterx.Probe(ctx, openRouterClient); err != nil {
		log.Warn().Err(err).Msg("openrouter connectivity probe failed")
	}

	backend, err := llmx.NewBackend(ctx, *openRouterCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create chat backend")
	}

	store := statex.NewStore(statex.Seed())
	dispatcher := toolx.NewDispatcher(store)

	chat, err := orchestratorx.New(backend, dispatcher, promptx.LoadPromptSet(), orchestratorx.Config{
		MaxToolRounds: appCfg.MaxToolRounds,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create orchestrator")
	}

	router := api.NewServer(chat, store).SetupRoutes()

	overview := dashboardx.Build(store.Snapshot())
	log.Info().
		Str("addr", appCfg.ListenAddr).
		Str("model", openRouterCfg.Model).
		Int("patients", overview.TotalPatients).
		Msg("hospital agent console listening")

	srv := &http.Server{
		Addr:              appCfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}
