// Package app wires the dependency graph and runs the process.
package app

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"nanoconsult/internal/config"
	"nanoconsult/internal/db"
	"nanoconsult/internal/dialogue"
	"nanoconsult/internal/operator"
	"nanoconsult/internal/pricing"
	"nanoconsult/internal/redisclient"
	"nanoconsult/internal/repository"
	"nanoconsult/internal/service"
	"nanoconsult/internal/session"
	"nanoconsult/internal/telegram"
)

// App holds the running components and owned resources.
type App struct {
	poller      *telegram.Poller
	operatorSrv *operator.Server
	pool        *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph from configuration.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{logger: logger}

	// Record persistence: Postgres when configured, JSON files otherwise.
	var records service.RecordStore
	if cfg.Database.DSN != "" {
		pool, err := db.NewPostgres(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		app.pool = pool
		records = repository.NewApplicationRepository(pool)
	} else {
		records = repository.NewFileStore(cfg.Applications.Dir)
		logger.Info("no database configured, storing applications as files",
			zap.String("dir", cfg.Applications.Dir))
	}

	// Session snapshots are optional; without redis dialogues live only
	// in memory.
	var snapshots session.SnapshotStore
	if cfg.Redis.Addr != "" {
		client, err := redisclient.New(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.redisClient = client
		snapshots = session.NewRedisSnapshots(client, cfg.SessionTTL())
	}
	sessions := session.NewManager(snapshots, logger)

	botClient := telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.APIBaseURL, cfg.PollTimeout(), logger)
	machine := dialogue.NewMachine(pricing.NewEngine(cfg.PricingParams()), logger)

	feed := operator.NewFeed(logger)
	notifiers := []service.Notifier{feed}
	if cfg.Telegram.AdminChatID != 0 {
		notifiers = append(notifiers, telegram.NewAdminNotifier(botClient, cfg.Telegram.AdminChatID, logger))
	}

	consultations := service.NewConsultationService(
		machine,
		sessions,
		records,
		notifiers,
		cfg.Pricing.ShowPriceToClient,
		logger,
	)

	app.poller = telegram.NewPoller(botClient, consultations, cfg.PollTimeout(), logger)

	if cfg.Operator.FeedSecret != "" {
		tokens := operator.NewTokenService(cfg.Operator.FeedSecret, 0)
		app.operatorSrv = operator.NewServer(cfg.Operator.ListenAddr, feed, tokens, logger)
	} else {
		logger.Info("operator feed secret not set, feed endpoint disabled")
	}

	return app, nil
}

// Run starts the poller and, when enabled, the operator server, and
// blocks until ctx is done or a component fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- a.poller.Run(ctx) }()
	if a.operatorSrv != nil {
		go func() { errCh <- a.operatorSrv.Run(ctx) }()
	}

	err := <-errCh
	cancel()
	return err
}

// Close releases owned resources.
func (a *App) Close() {
	if a.pool != nil {
		if err := a.pool.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
