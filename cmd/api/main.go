package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/skundu42/doom-backend/internal/cache"
	"github.com/skundu42/doom-backend/internal/config"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/handler"
	"github.com/skundu42/doom-backend/internal/handler/api"
	"github.com/skundu42/doom-backend/internal/logger"
	cMiddleware "github.com/skundu42/doom-backend/internal/middleware"
	"github.com/skundu42/doom-backend/internal/playback"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/renderer"
	"github.com/skundu42/doom-backend/internal/repository/mariadb"
	"github.com/skundu42/doom-backend/internal/storage"
	"github.com/skundu42/doom-backend/internal/stream"
	"github.com/skundu42/doom-backend/internal/task"
	imageSvc "github.com/skundu42/doom-backend/internal/usecase/image"
	postSvc "github.com/skundu42/doom-backend/internal/usecase/post"
	userSvc "github.com/skundu42/doom-backend/internal/usecase/user"
	videoSvc "github.com/skundu42/doom-backend/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.AuthJWTPublicKey)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(cfg.ImagesBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.ImagesBucket, err)
		os.Exit(1)
	}

	streamClient := stream.NewClient(cfg.StreamAPIBase, cfg.StreamAccountID, cfg.StreamAPIToken)
	resolver, err := playback.NewResolver(cfg.StreamDeliveryHost, cfg.StreamSigningKeyID, cfg.StreamSigningKeyPEM)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize playback resolver: %v", err)
		os.Exit(1)
	}

	videoRepo := mariadb.NewVideoRepository(database.DB)
	postRepo := mariadb.NewPostRepository(database.DB)
	toggleRepo := mariadb.NewToggleRepository(database.DB)
	commentRepo := mariadb.NewCommentRepository(database.DB)
	userRepo := mariadb.NewUserRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	uploadRequesterSvc := videoSvc.NewUploadRequester(videoRepo, streamClient)
	r.Post("/videos/upload_grant", api.RequestUploadHandler(uploadRequesterSvc))

	reconcilerSvc := videoSvc.NewReconciler(videoRepo, streamClient, resolver, dispatcher)
	r.With(cMiddleware.WithVideoUID()).
		Get("/videos/{uid}/status", api.VideoStatusHandler(reconcilerSvc))
	r.Post("/webhooks/stream", api.StreamWebhookHandler(reconcilerSvc, cfg.StreamWebhookSecret))

	createPostSvc := postSvc.NewPostCreator(postRepo, reconcilerSvc, resolver, db.NewUUID)
	r.Post("/posts", api.CreatePostHandler(createPostSvc))

	feedListerSvc := postSvc.NewFeedLister(postRepo, resolver)
	r.Get("/feed", api.ListFeedHandler(feedListerSvc))
	r.Get("/users/{id}/posts", api.ListUserPostsHandler(feedListerSvc))

	getPostSvc := postSvc.NewPostGetter(postRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca, resolver)
	r.With(cMiddleware.WithPostID()).
		Get("/posts/{id}", api.GetPostHandler(rendererSvc, getPostSvc))

	togglerSvc := postSvc.NewPostToggler(toggleRepo, ca)
	r.With(cMiddleware.WithPostID()).
		Post("/posts/{id}/like", api.ToggleHandler(togglerSvc, port.ToggleLike))
	r.With(cMiddleware.WithPostID()).
		Post("/posts/{id}/bookmark", api.ToggleHandler(togglerSvc, port.ToggleBookmark))

	counterSvc := postSvc.NewPostCounterBumper(postRepo, ca)
	r.With(cMiddleware.WithPostID()).
		Post("/posts/{id}/view", api.RecordViewHandler(counterSvc))
	r.With(cMiddleware.WithPostID()).
		Post("/posts/{id}/share", api.RecordShareHandler(counterSvc))

	commentCreatorSvc := postSvc.NewCommentCreator(commentRepo, ca, db.NewUUID)
	r.With(cMiddleware.WithPostID()).
		Post("/posts/{id}/comments", api.CreateCommentHandler(commentCreatorSvc))

	commentsListerSvc := postSvc.NewCommentsLister(postRepo, commentRepo)
	r.With(cMiddleware.WithPostID()).
		Get("/posts/{id}/comments", api.ListCommentsHandler(commentsListerSvc))

	createUserSvc := userSvc.NewUserCreator(userRepo, db.NewUUID)
	r.Post("/users", api.CreateUserHandler(createUserSvc))

	getUserSvc := userSvc.NewUserGetter(userRepo)
	r.Get("/users/{id}", api.GetUserHandler(getUserSvc))

	imageUploadSvc := imageSvc.NewImageUploadLinkGenerator(strg, cfg.ImagesBucket)
	r.Post("/images/upload_grant", api.ImageUploadLinkHandler(imageUploadSvc))

	r.Get("/healthz", api.HealthHandler(database.DB))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithAuth(jwtKey))

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
