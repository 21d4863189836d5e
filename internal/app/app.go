package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/content-brain/internal/config"
	"github.com/riskibarqy/content-brain/internal/infrastructure/contentapi"
	"github.com/riskibarqy/content-brain/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/content-brain/internal/infrastructure/sessionstore"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	idgen "github.com/riskibarqy/content-brain/internal/platform/id"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
	"github.com/riskibarqy/content-brain/internal/platform/resilience"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

// App holds every service a front end drives.
type App struct {
	Config  config.Config
	Logger  *logging.Logger
	Cache   *cache.Store
	Client  *contentapi.Client
	Session *sessionstore.FileStore

	Auth          *usecase.SessionService
	Password      *usecase.PasswordService
	Onboarding    *usecase.OnboardingService
	Dashboard     *usecase.DashboardService
	Calendar      *usecase.CalendarService
	ProfileEditor *usecase.ProfileEditorService
	Pillars       *usecase.PillarService
	Settings      *usecase.SettingsService
}

func New(cfg config.Config, logger *logging.Logger, notifier usecase.Notifier) (*App, error) {
	logger = logging.OrDefault(logger)

	client, err := contentapi.NewClient(contentapi.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APICircuitEnabled,
			FailureThreshold: cfg.APICircuitFailureCount,
			OpenTimeout:      cfg.APICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APICircuitHalfOpenMaxReq,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build content api client: %w", err)
	}
	if cfg.SessionFile == "" {
		return nil, fmt.Errorf("session file path cannot be empty")
	}

	store := cache.NewDisabled()
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var fallback *usecase.MockFallback
	if cfg.MockFallbackEnabled {
		now := time.Now()
		fallback = &usecase.MockFallback{
			Profiles: memory.NewBrandProfileRepository(memory.SeedProfiles(now)),
			Posts:    memory.NewPostRepository(memory.SeedPosts(memory.SeedProfileID, now)),
		}
	}

	authClient := contentapi.NewAuthClient(client)
	profileRepo := contentapi.NewBrandProfileRepository(client)
	postRepo := contentapi.NewPostRepository(client)
	pillarRepo := contentapi.NewPillarRepository(client)
	assistant := contentapi.NewAssistant(client)
	sessionFile := sessionstore.NewFileStore(cfg.SessionFile, client, logger)

	session := usecase.NewSessionService(authClient, notifier, store, sessionFile, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Cache:   store,
		Client:  client,
		Session: sessionFile,

		Auth:          session,
		Password:      usecase.NewPasswordService(authClient, notifier, logger),
		Onboarding:    usecase.NewOnboardingService(profileRepo, idgen.NewUUIDGenerator(), notifier, store, logger),
		Dashboard:     usecase.NewDashboardService(profileRepo, postRepo, fallback, notifier, store, logger),
		Calendar:      usecase.NewCalendarService(postRepo, assistant, fallback, notifier, store, logger, cfg.BatchWorkers),
		ProfileEditor: usecase.NewProfileEditorService(profileRepo, notifier, store, logger),
		Pillars:       usecase.NewPillarService(pillarRepo, notifier, store, logger),
		Settings:      usecase.NewSettingsService(session, notifier, logger),
	}, nil
}

// Start restores the saved session cookies and resolves the current user.
func (a *App) Start(ctx context.Context) usecase.AuthState {
	restored, err := a.Session.Restore(ctx)
	if err != nil {
		a.Logger.WarnContext(ctx, "restore session failed", "path", a.Session.Path(), "error", err)
	}
	a.Logger.DebugContext(ctx, "session restore", "restored", restored)
	return a.Auth.Init(ctx)
}
