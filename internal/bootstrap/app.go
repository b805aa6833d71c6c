package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/cases"
	"justicehub-backend/internal/documents"
	"justicehub-backend/internal/shared/auth"
	"justicehub-backend/internal/shared/config"
	"justicehub-backend/internal/shared/server"
	"justicehub-backend/internal/shared/server/middleware"
	"justicehub-backend/internal/shared/storage/db"
	"justicehub-backend/internal/shared/storage/object"
	localstore "justicehub-backend/internal/shared/storage/object/local"
	s3store "justicehub-backend/internal/shared/storage/object/s3"
	"justicehub-backend/internal/users"
)

// App holds shared dependencies wired from config.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	JWT    *auth.JWTManager

	UsersRepo     users.Repo
	CasesRepo     cases.Repo
	DocumentsRepo documents.Repo

	UsersService     *users.Service
	CasesService     *cases.Service
	DocumentsService *documents.Service

	UsersHandler     *users.Handler
	CasesHandler     *cases.Handler
	DocumentsHandler *documents.Handler
}

// Build prepares the full dependency graph and router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		JWT:    auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiresIn),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		JWT:             app.JWT,
		UserHandler:     app.UsersHandler,
		CaseHandler:     app.CasesHandler,
		DocumentHandler: app.DocumentsHandler,
		Limiter:         middleware.NewRateLimiter(nil),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.CasesRepo = &cases.PGRepo{DB: app.DB}
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
	} else {
		usersRepo := users.NewMemoryRepo()
		app.UsersRepo = usersRepo
		app.CasesRepo = cases.NewMemoryRepo(usersRepo)
		app.DocumentsRepo = documents.NewMemoryRepo()
	}

	app.UsersService = &users.Service{Repo: app.UsersRepo, JWT: app.JWT}
	app.CasesService = &cases.Service{Repo: app.CasesRepo}
	app.DocumentsService = &documents.Service{
		Store:         app.Store,
		Repo:          app.DocumentsRepo,
		Cases:         app.CasesRepo,
		MaxFileUpload: app.Config.MaxFileUpload,
	}

	app.UsersHandler = users.NewHandler(app.UsersService, app.Config.Env)
	app.CasesHandler = cases.NewHandler(app.CasesService)
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
