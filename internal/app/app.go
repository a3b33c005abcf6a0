package app

import (
	"context"
	"fmt"
	"log"

	"cram/internal/config"
	"cram/internal/deck"
	"cram/internal/llm"
	"cram/internal/storage"
	"cram/internal/ui"
)

// Options configure the cram application.
type Options struct {
	ConfigPath string
	// Topic, when set, starts a generation for it as soon as the UI
	// comes up.
	Topic string
}

// Run boots the cram TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	// A failed load is not fatal; the user starts with an empty deck
	// and the next successful save repairs the stored state.
	cards, err := store.LoadCards()
	if err != nil {
		log.Printf("load cards failed: %v", err)
	}

	client, err := llm.NewClient(cfg.Endpoint, cfg.APIKey(), cfg.Model)
	if err != nil {
		return fmt.Errorf("init generation client: %w", err)
	}

	deckStore := deck.NewStore(cards, store.SaveCards)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     deckStore,
		Storage:   store,
		ThemeName: store.LoadTheme(),
		Topic:     opts.Topic,
	}
	return ui.Run(uiOpts)
}
