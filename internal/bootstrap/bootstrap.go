package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/personnel/internal/app/controllers"
	appMigrations "github.com/yigit/personnel/internal/app/migrations"
	appRepos "github.com/yigit/personnel/internal/app/repositories"
	appRoutes "github.com/yigit/personnel/internal/app/routes"
	appServices "github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/app/web"
	"github.com/yigit/personnel/internal/config"
	"github.com/yigit/personnel/internal/db"
	appMiddleware "github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/pkg/metrics"
	"github.com/yigit/personnel/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Registry    *prometheus.Registry
	Metrics     *metrics.Metrics
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Pages       *web.Handler
	Database    *db.PostgresDB
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase waits for PostgreSQL, applies migrations and seeds the
// default reference data when enabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Int("maxRetries", cfg.Database.ConnectMaxRetries).
		Msg("Establishing database connection...")
	database, err := db.Connect(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, database.Pool); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes metrics, repositories, services and handlers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Database: database, Logger: lgr}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewMetrics(deps.Registry)

	deps.Repos = appRepos.NewRepositories(database.Pool,
		appRepos.WithQueryTimeout(cfg.QueryTimeout()),
		appRepos.WithMetrics(deps.Metrics),
	)
	deps.Services = appServices.NewServices(deps.Repos, deps.Metrics)

	deps.Controllers = appControllers.NewControllers(deps.Services, appControllers.Pagination{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	})
	deps.Pages = web.NewHandler(deps.Services, web.Config{
		PageSize: cfg.Pagination.PageSize,
		MaxLimit: cfg.Pagination.MaxLimit,
	}, deps.Metrics)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, health http.Handler) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		deps.Logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		deps.Logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(deps.Metrics),
		gin.Recovery(),
	)
	router.SetHTMLTemplate(web.Templates())

	appRoutes.SetupRouter(router, deps.Controllers, deps.Pages, health, deps.Registry)

	return router
}
