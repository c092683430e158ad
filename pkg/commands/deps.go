package commands

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/reflexa/pkg/gemini"
	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/prompts"
	"tableflip.dev/reflexa/pkg/settings"
	"tableflip.dev/reflexa/pkg/store"
)

// loadRepository builds the journal repository from the configured store.
func loadRepository(ctx context.Context) (*journal.Repository, store.Config, error) {
	repo, _, cfg, err := loadJournal(ctx)
	return repo, cfg, err
}

// loadJournal is loadRepository plus the raw persistence handle, for callers
// that also need the storage watch stream.
func loadJournal(ctx context.Context) (*journal.Repository, store.Persistence, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	repo := journal.NewRepository(p)
	if err := repo.Load(ctx); err != nil {
		return nil, nil, nil, err
	}
	return repo, p, cfg, nil
}

// newGenerator returns a Gemini-backed generator, or nil when no API key is
// configured. Callers degrade to offline behavior on nil.
func newGenerator(cfg store.Config, logger *zap.Logger) gemini.Generator {
	if cfg.GeminiAPIKey() == "" {
		return nil
	}
	return gemini.NewClient(gemini.ClientConfig{
		BaseURL: cfg.GeminiBaseURL(),
		APIKey:  cfg.GeminiAPIKey(),
		Model:   cfg.GeminiModel(),
		Logger:  logger,
	})
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadSettings(cfg store.Config) (*settings.Store, settings.Settings, error) {
	ss := settings.NewStore(cfg.BasePath())
	current, err := ss.Load()
	if err != nil {
		return nil, settings.Settings{}, err
	}
	return ss, current, nil
}

func newPromptService(cfg store.Config, logger *zap.Logger) (*prompts.Service, error) {
	ss := settings.NewStore(cfg.BasePath())
	current, err := ss.Load()
	if err != nil {
		return nil, err
	}
	return prompts.NewService(newGenerator(cfg, logger), current.FollowUpQuestions, logger), nil
}
