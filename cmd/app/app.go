package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"quickAI/internal/ai"
	"quickAI/internal/cache"
	"quickAI/internal/config"
	"quickAI/internal/database"
	handlers "quickAI/internal/handler"
	"quickAI/internal/metrics"
	"quickAI/internal/middleware"
	"quickAI/internal/repository"
	"quickAI/internal/service"
	"quickAI/internal/storage"
)

func App(cfg *config.Config, log *logrus.Logger) (*database.DB, *redis.Client, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize MinIO")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := minioClient.EnsureBucket(ctx); err != nil {
		log.WithError(err).Warn("MinIO bucket is not available, image generation will fail")
	}

	// nil when Redis is down; quota and rate limiting are then skipped
	rdb := cache.NewRedisClient(cfg.Redis, log)

	repo := repository.NewRepository(db.DB)
	aiClient := ai.NewClient(cfg.AI)

	services := service.NewService(service.Deps{
		Repo:    repo,
		Usage:   cache.NewUsageStore(rdb),
		Text:    aiClient,
		Image:   aiClient,
		Storage: minioClient,
		Log:     log,
	}, cfg)

	return db, rdb, services
}

// NewRouter registers every route and wraps the router with the global middleware.
func NewRouter(h *handlers.Handlers, limiter *cache.Limiter) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowedHandler)
	router.Use(metrics.InstrumentHandler)

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// API routes stay on the root router so a method mismatch reaches MethodNotAllowedHandler.
	auth := middleware.AuthMiddleware(h.Cfg.Auth)
	rateLimit := middleware.RateLimitMiddleware(limiter, h.Log)
	user := func(hf http.HandlerFunc) http.Handler { return middleware.Chain(hf, auth) }
	generation := func(hf http.HandlerFunc) http.Handler { return middleware.Chain(hf, auth, rateLimit) }

	router.Handle("/api/user/get-user-creations", user(h.GetUserCreations)).Methods(http.MethodGet)
	router.Handle("/api/user/get-published-creations", user(h.GetPublishedCreations)).Methods(http.MethodGet)
	router.Handle("/api/user/toggle-like-creations", user(h.ToggleLikeCreation)).Methods(http.MethodPost)

	router.Handle("/api/ai/generate-article", generation(h.GenerateArticle)).Methods(http.MethodPost)
	router.Handle("/api/ai/generate-image", generation(h.GenerateImage)).Methods(http.MethodPost)

	return middleware.Chain(router,
		middleware.LoggingMiddleware(h.Log),
		middleware.CORSMiddleware(h.Cfg.Server.AllowedOrigin),
	)
}
