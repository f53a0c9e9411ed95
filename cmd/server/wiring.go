package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/tshirt-designer/internal/ai"
	"github.com/Lixing-Zhang/tshirt-designer/internal/config"
	"github.com/Lixing-Zhang/tshirt-designer/internal/handlers"
	"github.com/Lixing-Zhang/tshirt-designer/internal/repository"
	"github.com/Lixing-Zhang/tshirt-designer/internal/service"
)

// buildAIAdapters picks the translation and image adapters. Without a
// credential for the selected provider both fall back to offline mode.
func buildAIAdapters(ctx context.Context, cfg config.AIConfig, log *slog.Logger) (service.Translator, service.ImageGenerator, string, error) {
	if cfg.ProviderKey() == "" {
		log.Warn("no AI provider credential configured, using offline mode", "provider", cfg.Provider)
		return ai.NewStaticTranslator(), ai.NewPlaceholderImageGenerator(), handlers.ProviderModeOffline, nil
	}

	timeout := time.Duration(cfg.Timeout) * time.Second

	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := ai.NewGeminiClient(ctx, ai.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, nil, "", err
		}
		log.Info("using gemini provider", "text_model", cfg.GeminiTextModel, "image_model", cfg.GeminiImageModel)
		return ai.NewGeminiTranslator(client, cfg.GeminiTextModel),
			ai.NewGeminiImageGenerator(client, cfg.GeminiImageModel),
			config.ProviderGemini, nil

	case config.ProviderOpenAI:
		base := ai.OpenAIConfig{APIKey: cfg.OpenAIAPIKey, BaseURL: cfg.OpenAIBaseURL, Timeout: timeout}
		chat, image := base, base
		chat.Model = cfg.OpenAIChatModel
		image.Model = cfg.OpenAIImageModel

		log.Info("using openai provider", "chat_model", cfg.OpenAIChatModel, "image_model", cfg.OpenAIImageModel)
		return ai.NewOpenAITranslator(chat), ai.NewOpenAIImageGenerator(image), config.ProviderOpenAI, nil
	}

	return nil, nil, "", fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
}

// orderStore is the opened order repository. A nil repo means orders are
// accepted without being persisted.
type orderStore struct {
	repo  service.OrderRepository
	mode  string
	close func(context.Context) error
}

// openOrderStore connects the configured order store. A mongo driver
// without a URI degrades to the unpersisted mode instead of failing.
func openOrderStore(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (*orderStore, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Driver {
	case config.StoreMemory:
		log.Info("using in-memory order store")
		return &orderStore{repo: repository.NewInMemoryOrderRepository(), mode: config.StoreMemory, close: noop}, nil

	case config.StoreMongo:
		if cfg.MongoURI == "" {
			log.Warn("MONGODB_URI not set, orders will not be persisted")
			return &orderStore{mode: handlers.StoreModeUnavailable, close: noop}, nil
		}

		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		repo, err := repository.ConnectMongo(connectCtx, cfg.MongoURI, cfg.Database, cfg.Collection)
		if err != nil {
			return nil, err
		}
		if err := repo.EnsureIndexes(connectCtx); err != nil {
			log.Warn("failed to ensure order indexes", "error", err)
		}

		log.Info("connected to mongodb", "database", cfg.Database, "collection", cfg.Collection)
		return &orderStore{repo: repo, mode: config.StoreMongo, close: repo.Close}, nil
	}

	return nil, fmt.Errorf("unsupported order store: %s", cfg.Driver)
}
