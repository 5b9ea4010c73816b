package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/metrorail/docudesk/app"
	"github.com/metrorail/docudesk/app/api"
	"github.com/metrorail/docudesk/app/database"
	apiDoc "github.com/metrorail/docudesk/app/doc"
	"github.com/metrorail/docudesk/app/documents"
	"github.com/metrorail/docudesk/app/roles"
	"github.com/metrorail/docudesk/app/user"
	"github.com/metrorail/docudesk/internal/ai"
	"github.com/metrorail/docudesk/internal/cache"
	"github.com/metrorail/docudesk/internal/deps"
	"github.com/metrorail/docudesk/internal/logger"
	"github.com/metrorail/docudesk/internal/router"
	"github.com/metrorail/docudesk/internal/sanitizer"
	"github.com/metrorail/docudesk/internal/security"
	"github.com/metrorail/docudesk/internal/storage"
)

// @title Docudesk API
// @version 1.0
// @description Document-management dashboard API: role-based access control with an
// @description orderable role hierarchy, document upload with AI-assisted classification,
// @description and catalog-coded document storage.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{
		"service": "docudesk",
		"env":     cfg.Env,
	})

	db, err := database.New(&cfg.DB)
	if err != nil {
		appLogger.Fatal(err, map[string]interface{}{"component": "database"})
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.SymmetricKey)
	if err != nil {
		appLogger.Fatal(err, map[string]interface{}{"component": "token_maker"})
	}

	store, err := storage.NewCloudinaryStore(&cfg.Storage)
	if err != nil {
		appLogger.Fatal(err, map[string]interface{}{"component": "storage"})
	}

	classifier, err := ai.NewHTTPClassifier(&cfg.AI)
	if err != nil {
		appLogger.Fatal(err, map[string]interface{}{"component": "classifier"})
	}

	container := deps.NewContainer(db, tokenMaker, sanitizer.NewHTMLStripper(), appLogger, newCache(cfg)).
		WithStorage(store).
		WithClassifier(classifier)

	roles.InitRepositories(container)
	documents.InitRepositories(container)
	user.InitRepositories(container)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(api.CorsMiddleware())
	engine.GET("/healthz", api.HealthCheck)
	apiDoc.Init(engine)

	authMiddleware := user.AuthMiddleware(tokenMaker, user.GetAuthService(container))

	mounter := router.NewMounter(container)
	mounter.Authenticated(engine).
		WithAuth(authMiddleware).
		Mount(user.MountAuthenticated).
		Mount(roles.MountAuthenticated).
		Mount(documents.MountAuthenticated)

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	appLogger.Info("starting docudesk API server", map[string]interface{}{"addr": addr})
	if err := engine.Run(addr); err != nil {
		appLogger.Fatal(err, map[string]interface{}{"component": "http_server"})
	}
}

func newCache(cfg *app.Config) cache.Cache[string] {
	if cfg.CacheBackend == "redis" {
		return cache.NewRedisCache[string](&cache.RedisOptions{Addr: cfg.RedisAddr})
	}
	return cache.NewMemoryCache[string]()
}
