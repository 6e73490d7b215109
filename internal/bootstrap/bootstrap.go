package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/workload/internal/app/controllers"
	appMigrations "github.com/yigit/workload/internal/app/migrations"
	appRepos "github.com/yigit/workload/internal/app/repositories"
	appRoutes "github.com/yigit/workload/internal/app/routes"
	appServices "github.com/yigit/workload/internal/app/services"
	"github.com/yigit/workload/internal/config"
	"github.com/yigit/workload/internal/db"
	appMiddleware "github.com/yigit/workload/internal/middleware"
	"github.com/yigit/workload/internal/pkg/helpers"
	"github.com/yigit/workload/internal/pkg/logger"
	"github.com/yigit/workload/internal/seed"
	schema "github.com/yigit/workload/migrations"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	Services           *appServices.Services
	WorkloadController *appControllers.WorkloadController
	CatalogController  *appControllers.CatalogController
	TeacherController  *appControllers.TeacherController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Float64("maxHours", cfg.Workload.MaxHours).
		Float64("underloadHours", cfg.Workload.UnderloadHours).
		Int("tpGroupCeilingFactor", cfg.Workload.TPGroupCeilingFactor).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool.
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	pool, err := db.NewPool(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return pool, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.Migrate(ctx, schema.FS); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SeedDemoData loads the demo catalogue for the current academic year.
func SeedDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	year := helpers.AcademicYearOf(time.Now())
	return seed.CreateDemoData(ctx, repos.FormationRepository, repos.SectionRepository, repos.TeacherRepository, year, lgr)
}

// SetupDatabase establishes the database connection, runs migrations and seeds demo data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := RunMigrations(ctx, dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}

	if cfg.Seed.Enabled {
		if err := SeedDemoData(ctx, appRepos.NewRepositories(dbPool), lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos, cfg.Workload)

	deps.WorkloadController = appControllers.NewWorkloadController(deps.Services.WorkloadService)
	deps.CatalogController = appControllers.NewCatalogController(deps.Services.CatalogService)
	deps.TeacherController = appControllers.NewTeacherController(deps.Services.CatalogService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()),
		appMiddleware.Recovery(lgr),
	)

	appRoutes.SetupSwagger(router, "")
	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Workload: deps.WorkloadController,
		Catalog:  deps.CatalogController,
		Teacher:  deps.TeacherController,
	})

	return router
}
