package main

import (
	"fmt"
	"log"

	"gstmitra/internal/config"
	"gstmitra/internal/gst"
	"gstmitra/internal/handler"
	"gstmitra/internal/knowledge"
	"gstmitra/internal/port"
	"gstmitra/internal/router"
	"gstmitra/internal/service"
	"gstmitra/internal/store/memory"
	"gstmitra/internal/textgen"
	"gstmitra/internal/textgen/claude"
	"gstmitra/internal/textgen/openai"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func registerGeneratorProviders() {
	textgen.RegisterProvider("claude", func(cfg *config.GeneratorProviderConfig) (port.TextGenerator, error) {
		return claude.NewGenerator(cfg), nil
	})
	textgen.RegisterProvider("openai", func(cfg *config.GeneratorProviderConfig) (port.TextGenerator, error) {
		return openai.NewGenerator(cfg), nil
	})
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Build the knowledge corpus once, before any request is served.
	docs, err := knowledge.LoadCorpus(cfg.Knowledge.Dir)
	if err != nil {
		return fmt.Errorf("failed to load knowledge corpus: %w", err)
	}
	index := knowledge.NewIndex(docs)
	log.Printf("main: indexed %d knowledge documents", len(docs))

	// Select the text generator variant: configured providers under the
	// fallback chain, or the noop generator for template-only operation.
	registerGeneratorProviders()
	generator, err := textgen.FromConfig(&cfg.Generator)
	if err != nil {
		return fmt.Errorf("failed to initialize text generator: %w", err)
	}
	if cfg.Generator.PrimaryConfig() == nil && cfg.Generator.SecondaryConfig() == nil {
		log.Printf("main: no generation provider configured, using deterministic templates")
	}

	// Initialize store and services
	store := memory.NewFilingStore()
	composer := gst.NewComposer(generator)
	filingSvc := service.NewFilingService(store, index, composer, cfg.Upload.MaxRows)
	assistantSvc := service.NewAssistantService(index, generator, cfg.Knowledge.MaxResults)

	// Initialize handlers
	filingH := handler.NewFilingHandler(filingSvc, cfg.Upload.MaxFileSizeMB)
	assistantH := handler.NewAssistantHandler(assistantSvc)
	knowledgeH := handler.NewKnowledgeHandler(index)
	healthH := handler.NewHealthHandler(index)

	// Setup router
	r := router.Setup(filingH, assistantH, knowledgeH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
