package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/auth"
	"fedventura-backend/internal/ideas"
	"fedventura-backend/internal/llm"
	"fedventura-backend/internal/llm/gemini"
	"fedventura-backend/internal/llm/openai"
	"fedventura-backend/internal/pages"
	"fedventura-backend/internal/profiles"
	"fedventura-backend/internal/questionnaire"
	"fedventura-backend/internal/resources"
	"fedventura-backend/internal/services/health"
	sharedauth "fedventura-backend/internal/shared/auth"
	"fedventura-backend/internal/shared/config"
	"fedventura-backend/internal/shared/server"
	"fedventura-backend/internal/shared/server/middleware"
	"fedventura-backend/internal/shared/storage/cache"
	"fedventura-backend/internal/shared/storage/db"
	"fedventura-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Cache         cache.Store
	LLM           llm.Client
	Signer        *sharedauth.Signer
	Advisor       *advisor.Service
	Profiles      *profiles.Service
	Questionnaire *questionnaire.Service
	Ideas         *ideas.Service
	Auth          *auth.Service

	closers []func() error
}

// Build connects storage, constructs services and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	app := &App{Config: cfg}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB

	store, closer, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Cache = store
	if closer != nil {
		app.closers = append(app.closers, closer)
	}

	client, err := BuildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.LLM = client

	signer, err := sharedauth.NewSigner(cfg.JWTSecret, cfg.SessionTTL, cfg.Env == "production")
	if err != nil {
		return nil, err
	}
	app.Signer = signer

	deps, err := buildServices(app)
	if err != nil {
		return nil, err
	}
	app.Router = server.NewRouter(deps)
	return app, nil
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database unavailable", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildCache(ctx context.Context, cfg config.Config) (cache.Store, func() error, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return cache.NewMemory(), nil, nil
	}
	store, err := cache.NewRedis(cfg.RedisURL)
	if err == nil {
		if err = store.Ping(ctx); err != nil {
			_ = store.Close()
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_cache", map[string]any{"error": err})
			return cache.NewMemory(), nil, nil
		}
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	return store, store.Close, nil
}

// BuildLLM returns the configured provider client. A missing credential yields
// a client that always fails fast so every generation falls back.
func BuildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{"provider": cfg.LLMProvider})
			return llm.PlaceholderClient{Provider: cfg.LLMProvider}, nil
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		if cfg.GeminiAPIKey == "" {
			telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{"provider": cfg.LLMProvider})
			return llm.PlaceholderClient{Provider: cfg.LLMProvider}, nil
		}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

func buildServices(app *App) (server.RouterDeps, error) {
	var (
		profileRepo   profiles.Repo
		responseRepo  questionnaire.Repo
		accountsStore auth.Store
	)
	if app.DB != nil {
		profileRepo = &profiles.PGRepo{DB: app.DB}
		responseRepo = &questionnaire.PGRepo{DB: app.DB}
		accountsStore = &auth.PGStore{DB: app.DB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
		responseRepo = questionnaire.NewMemoryRepo()
		accountsStore = auth.NewMemoryStore()
	}

	cfg := app.Config
	app.Advisor = advisor.NewService(app.LLM)
	app.Profiles = profiles.NewService(profileRepo)
	app.Questionnaire = questionnaire.NewService(app.Advisor, responseRepo)
	app.Ideas = ideas.NewService(app.Advisor, app.Cache, cfg.CourseCacheTTL)
	app.Auth = auth.NewService(accountsStore, app.Profiles, app.Signer)

	resourcesHandler := resources.NewHandler(app.Profiles)
	pagesHandler, err := pages.NewHandler(pages.Deps{
		Auth:          app.Auth,
		Questionnaire: app.Questionnaire,
		Ideas:         app.Ideas,
		Resources:     resourcesHandler,
		SecureCookie:  cfg.CookieSecure,
	})
	if err != nil {
		return server.RouterDeps{}, err
	}

	checks := map[string]health.Pinger{"cache": app.Cache}
	if app.DB != nil {
		checks["db"] = health.PingFunc(app.DB.PingContext)
	}

	return server.RouterDeps{
		Config:   cfg,
		Verifier: app.Signer,
		Health:   health.NewService(checks),
		Auth:     auth.NewHandler(app.Auth, cfg.CookieSecure),
		OAuth: auth.NewOAuthService(app.Auth, cfg.CookieSecure,
			auth.GoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL),
			auth.FacebookProvider(cfg.FacebookClientID, cfg.FacebookClientSecret, cfg.FacebookRedirectURL),
		),
		Profiles:      profiles.NewHandler(app.Profiles),
		Questionnaire: questionnaire.NewHandler(app.Questionnaire),
		Ideas:         ideas.NewHandler(app.Ideas),
		Resources:     resourcesHandler,
		Pages:         pagesHandler,
		Limiter:       middleware.NewRateLimiter(nil),
	}, nil
}
