package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/clipstream/backend/internal/config"
	"github.com/clipstream/backend/internal/db"
	"github.com/clipstream/backend/internal/handler"
	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/repository"
	"github.com/clipstream/backend/internal/router"
	"github.com/clipstream/backend/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate("file://migrations", cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	users := repository.NewUserRepo(pool)
	channels := repository.NewChannelRepo(pool)
	videos := repository.NewVideoRepo(pool)
	comments := repository.NewCommentRepo(pool)

	guard := service.NewGuard(videos, comments)

	authSvc := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	channelSvc := service.NewChannelService(channels, videos, cache)
	videoSvc := service.NewVideoService(videos, guard, cache)
	commentSvc := service.NewCommentService(comments, videos, guard)
	userSvc := service.NewUserService(users)

	app := fiber.New(fiber.Config{
		AppName:      "ClipStream API",
		ServerHeader: "ClipStream",
	})

	router.Setup(app, &router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Channel: handler.NewChannelHandler(channelSvc),
		Video:   handler.NewVideoHandler(videoSvc),
		Comment: handler.NewCommentHandler(commentSvc),
		User:    handler.NewUserHandler(userSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}, router.Options{
		CORSOrigins: cfg.CORSOrigins,
		JWTSecret:   cfg.JWTSecret,
		AuthLimiter: middleware.NewRateLimiter(10, time.Minute, 5, 10*time.Minute),
	})

	worker := service.NewReconcileWorker(channels, cfg.ReconcileInterval)
	go worker.Start(ctx)
	defer worker.Stop()

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("ClipStream backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
