package utils

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"huddle/src-server/assignment"
	"huddle/src-server/notify"
	"huddle/src-server/store"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
)

type AppState struct {
	Config *Config
	Store  store.Store
	// nil unless STORAGE=sqlite
	BunDB       *bun.DB
	MetricChans *Metric
	When        *when.Parser
	Groups      *assignment.Service

	AppCloseSignalChan chan os.Signal

	startedAt          time.Time
	shutdownMu         sync.Mutex
	gracefulShutdownCh []*chan struct{}
}

// NewAppState opens the configured store and wires everything around it.
func NewAppState(ctx context.Context, cfg *Config) (*AppState, error) {
	var (
		s     store.Store
		bunDB *bun.DB
	)
	switch cfg.GetStorage() {
	case STORAGE_MEMORY:
		s = store.NewMemoryStore()
	default:
		var err error
		bunDB, err = store.OpenSQLite(ctx, cfg.GetSQLitePath())
		if err != nil {
			return nil, fmt.Errorf("NewAppState: %w", err)
		}
		s = store.NewSQLiteStore(bunDB)
	}

	as := NewAppStateWithStore(cfg, s)
	as.BunDB = bunDB

	if cfg.GetSeedDemoData() {
		r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		if err := store.SeedDemoData(ctx, s, r); err != nil {
			s.Close()
			return nil, fmt.Errorf("NewAppState: %w", err)
		}
	}

	return as, nil
}

// NewAppStateWithStore skips opening a database, handy for tests.
func NewAppStateWithStore(cfg *Config, s store.Store) *AppState {
	as := &AppState{
		Config:             cfg,
		Store:              s,
		MetricChans:        NewMetric(),
		AppCloseSignalChan: make(chan os.Signal, 1),
		startedAt:          time.Now(),
	}

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	var notifier assignment.Notifier
	if cfg.GetDiscordWebhookID() != "" && cfg.GetDiscordWebhookToken() != "" {
		discord, err := notify.NewDiscord(
			cfg.GetDiscordWebhookID(),
			cfg.GetDiscordWebhookToken(),
			func(d time.Duration) { Observe(as.MetricChans.WebhookSend, d) },
		)
		if err != nil {
			slog.Warn("can't create discord notifier, lock notifications disabled", "error", err)
		} else {
			notifier = discord
		}
	}
	as.Groups = assignment.NewService(s, notifier)

	return as
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startedAt)
}

// CreateGracefulShutdownChan returns a channel that is closed on shutdown.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.shutdownMu.Lock()
	defer as.shutdownMu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownCh = append(as.gracefulShutdownCh, &ch)
	return &ch
}

// GracefulShutdown stops background workers and closes the store.
func (as *AppState) GracefulShutdown() {
	as.shutdownMu.Lock()
	for _, ch := range as.gracefulShutdownCh {
		close(*ch)
	}
	as.gracefulShutdownCh = nil
	as.shutdownMu.Unlock()

	if err := as.Store.Close(); err != nil {
		slog.Error("can't close store", "error", err)
	}
}
