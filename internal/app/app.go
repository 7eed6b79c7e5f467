package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/panjf2000/ants/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/config"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/draft"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/league"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/notification"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/player"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/roster"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/infrastructure/account/authapi"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/infrastructure/push"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/infrastructure/repository/memory"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/infrastructure/repository/postgres"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/interfaces/draftfeed"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/interfaces/httpapi"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/cache"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/resilience"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"

	_ "github.com/lib/pq"
)

// App holds the wired HTTP server and the resources that need an orderly
// release on shutdown.
type App struct {
	Server *http.Server

	logger   *logging.Logger
	closers  []func(context.Context) error
	pushPool *ants.Pool
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{logger: logger}

	var (
		leagueRepo league.Repository
		rosterRepo roster.Repository
		draftRepo  draft.Repository
		playerRepo player.Repository
		subRepo    notification.Repository
	)

	if cfg.MemoryMode() {
		logger.Info("storage mode", "mode", "memory")
		leagues := memory.NewLeagueRepository(nil)
		participants := memory.NewRosterRepository(nil)
		leagues.BindRoster(participants)

		leagueRepo = leagues
		rosterRepo = participants
		draftRepo = memory.NewDraftRepository(leagues, participants)
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		subRepo = memory.NewPushSubscriptionRepository()
	} else {
		logger.Info("storage mode", "mode", "postgres", "db_name", dbNameFromURL(cfg.DBURL))
		db, err := otelsqlx.Connect("postgres",
			normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })

		leagueRepo = postgres.NewLeagueRepository(db)
		rosterRepo = postgres.NewRosterRepository(db)
		draftRepo = postgres.NewDraftRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		subRepo = postgres.NewPushSubscriptionRepository(db)
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	rules := draft.Rules{
		Rounds:          cfg.DraftRounds,
		MinParticipants: cfg.DraftMinParticipants,
	}

	pushPool, err := ants.NewPool(cfg.PushWorkerPoolSize, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create push worker pool: %w", err)
	}
	a.pushPool = pushPool

	var sender interface {
		Send(ctx context.Context, sub notification.PushSubscription, payload usecase.PushPayload) error
	}
	if cfg.PushEnabled {
		sender = push.NewWebPushSender(push.Config{
			VAPIDPublicKey:  cfg.PushVAPIDPublicKey,
			VAPIDPrivateKey: cfg.PushVAPIDPrivateKey,
			Subscriber:      cfg.PushSubscriber,
			TTL:             cfg.PushTTL,
		}, logger)
	} else {
		sender = discardPushSender{logger: logger}
	}

	feed := draftfeed.NewHub(logger)

	leagueSvc := usecase.NewLeagueService(leagueRepo, rosterRepo, rules)
	notificationSvc := usecase.NewNotificationService(subRepo, sender, pushPool, logger)
	draftSvc := usecase.NewDraftService(leagueRepo, rosterRepo, draftRepo, playerRepo, rules, feed, notificationSvc, logger)
	playerSvc := usecase.NewPlayerService(playerRepo, draftRepo, store)
	dashboardSvc := usecase.NewDashboardService(leagueRepo, rosterRepo, draftRepo)

	verifier := authapi.NewClient(authapi.Config{
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectPath,
		Timeout:        cfg.AuthTimeout,
		CacheTTL:       cfg.AuthCacheTTL,
		CacheMax:       cfg.AuthCacheMaxEntries,
		Breaker: resilience.BreakerConfig{
			Enabled:           cfg.AuthCircuitEnabled,
			FailureThreshold:  cfg.AuthCircuitFailureCount,
			OpenTimeout:       cfg.AuthCircuitOpenTimeout,
			HalfOpenMaxProbes: cfg.AuthCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(leagueSvc, draftSvc, playerSvc, notificationSvc, dashboardSvc, feed, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

// Close releases pooled workers and storage connections after the HTTP
// server has drained.
func (a *App) Close(ctx context.Context) error {
	if a.pushPool != nil {
		a.pushPool.Release()
	}

	var firstErr error
	for _, closer := range a.closers {
		if err := closer(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// discardPushSender keeps notification delivery wired when no VAPID keys are
// configured; payloads are dropped with a debug line.
type discardPushSender struct {
	logger *logging.Logger
}

func (s discardPushSender) Send(ctx context.Context, sub notification.PushSubscription, payload usecase.PushPayload) error {
	s.logger.DebugContext(ctx, "push disabled, dropping notification",
		"endpoint", sub.Endpoint,
		"title", payload.Title,
	)
	return nil
}
