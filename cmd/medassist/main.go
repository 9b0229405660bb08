package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/yogesh065/medassist/internal/agent"
	"github.com/yogesh065/medassist/internal/catalog"
	"github.com/yogesh065/medassist/internal/gateway"
	"github.com/yogesh065/medassist/internal/observability"
	"github.com/yogesh065/medassist/internal/tools"
	"github.com/yogesh065/medassist/pkg/config"
)

func main() {
	observability.PrintBanner()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	store, err := catalog.NewStore(cfg.Catalog.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if cfg.Catalog.Seed {
		if err := store.Seed(); err != nil {
			log.Fatal(err)
		}
	}

	registry := tools.NewDefaultRegistry(store)
	logger := observability.NewLogger()
	prompts := agent.NewPromptManager("./prompts")

	// The LLM provider is optional: without one the selector runs on
	// keyword heuristics alone.
	var model llms.Model
	pName, pCfg := cfg.GetDefaultProvider()
	switch pName {
	case "":
		log.Println("No enabled LLM provider; running with keyword fallback only")
	case "openai", "openrouter", "groq":
		opts := []openai.Option{
			openai.WithToken(pCfg.APIKey),
			openai.WithModel(pCfg.Model),
		}
		if pCfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(pCfg.BaseURL))
		}
		model, err = openai.New(opts...)
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("Provider %s not yet implemented in main", pName)
	}

	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	selector := agent.NewSelector(model, registry, prompts, logger, timeout)
	executor := agent.NewExecutor(registry, logger)
	assistant := agent.NewAssistant(selector, executor, store, logger)

	var gateways []gateway.Messenger

	if tgCfg, ok := cfg.GetTelegramConfig(); ok {
		tg, err := gateway.NewTelegramGateway(tgCfg.Token, assistant)
		if err != nil {
			log.Fatal(err)
		}
		gateways = append(gateways, tg)
	}
	if dcCfg, ok := cfg.GetDiscordConfig(); ok {
		dc, err := gateway.NewDiscordGateway(dcCfg.Token, assistant)
		if err != nil {
			log.Fatal(err)
		}
		gateways = append(gateways, dc)
	}
	if len(gateways) == 0 {
		log.Fatal("No gateway is enabled; enable telegram or discord in the config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, gw := range gateways {
		gw := gw
		go func() {
			if err := gw.Start(); err != nil {
				log.Printf("Gateway error: %v", err)
				stop()
			}
		}()
	}

	<-ctx.Done()

	for _, gw := range gateways {
		if err := gw.Stop(); err != nil {
			log.Printf("Error stopping gateway: %v", err)
		}
	}

	// Give fire-and-forget audit writes a moment to land
	time.Sleep(500 * time.Millisecond)
	log.Printf("Shutdown complete (uptime %s)", observability.Uptime().Round(time.Second))
}
