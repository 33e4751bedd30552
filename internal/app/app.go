package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhscancode/cluedin/db"
	"github.com/abhscancode/cluedin/internal/config"
	"github.com/abhscancode/cluedin/internal/metrics"
	"github.com/abhscancode/cluedin/internal/model"
	"github.com/abhscancode/cluedin/internal/pipeline"
	"github.com/abhscancode/cluedin/internal/repository"
	"github.com/abhscancode/cluedin/pkg/llm"
)

// FailureLog is the Redis failure log as seen by the pipeline and the API.
// It is nil when REDIS_URL is not configured.
type FailureLog interface {
	RecordFailure(ctx context.Context, failure model.EnrichmentFailure) error
	RecentFailures(ctx context.Context, limit int) ([]model.EnrichmentFailure, error)
}

// App holds the wired dependencies shared by the API server and the CLI.
type App struct {
	Config   *config.Config
	Store    *repository.StaticEventStore
	LLM      llm.Client
	Failures FailureLog
	Metrics  *metrics.Metrics
	Pipeline *pipeline.Pipeline
}

// New wires the catalog, the provider client and the pipeline. Postgres and
// Redis are used only when their URLs are configured.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	events, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	store, err := repository.NewStaticEventStore(events, cfg.DataCategories)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("invalid event catalog: %w", err)
	}

	client, err := llm.NewClient(ctx, cfg.LLM())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating %s client: %w", cfg.LLMProvider, err)
	}

	a := &App{
		Config:  cfg,
		Store:   store,
		LLM:     client,
		Metrics: metrics.New(),
	}

	opts := []pipeline.Option{
		pipeline.WithConcurrency(cfg.EnrichConcurrency),
		pipeline.WithMetrics(a.Metrics),
	}

	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
			slog.Warn("redis unavailable, failures are only logged", "error", err)
			db.CloseRedis()
		} else {
			failures := repository.NewFailureRepository(db.Redis, db.FailedEnrichmentKey, db.MaxFailureEntries)
			a.Failures = failures
			opts = append(opts, pipeline.WithFailureRecorder(failures))
		}
	}

	a.Pipeline = pipeline.New(store, client, opts...)

	slog.Info("app initialised",
		"provider", client.Name(),
		"events", len(events),
		"concurrency", cfg.EnrichConcurrency,
		"failure_log", a.Failures != nil,
	)

	return a, nil
}

func loadCatalog(cfg *config.Config) ([]model.Event, error) {
	if cfg.DatabaseURL == "" {
		return repository.MockEvents(time.Now()), nil
	}

	if err := db.Connect(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("error connecting to DB: %w", err)
	}

	events, err := repository.NewEventRepository(db.DB).GetEvents()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error loading event catalog: %w", err)
	}

	// The catalog is read once at start-up; the pool is not needed afterwards.
	db.Close()

	if len(events) == 0 {
		slog.Warn("event table is empty, using built-in catalog")
		return repository.MockEvents(time.Now()), nil
	}

	return events, nil
}

func (a *App) Close() {
	if err := a.LLM.Close(); err != nil {
		slog.Warn("error closing provider client", "error", err)
	}
	db.CloseRedis()
}
