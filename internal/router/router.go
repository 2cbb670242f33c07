package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/clipstream/backend/internal/handler"
	"github.com/clipstream/backend/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Channel *handler.ChannelHandler
	Video   *handler.VideoHandler
	Comment *handler.CommentHandler
	User    *handler.UserHandler
	Health  *handler.HealthHandler
}

// Options carries router-level configuration.
type Options struct {
	CORSOrigins string
	JWTSecret   string
	AuthLimiter *middleware.RateLimiter
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, opts Options) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(opts.CORSOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (before API group, no auth needed)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")
	requireAuth := middleware.NewAuth(opts.JWTSecret)

	// Auth routes (rate limited, no token required)
	auth := api.Group("/auth")
	if opts.AuthLimiter != nil {
		auth.Use(opts.AuthLimiter.Handler())
	}
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)

	// Channel routes
	api.Post("/channels", h.Channel.Create, requireAuth)
	api.Get("/channels/me", h.Channel.ListMine, requireAuth)
	api.Get("/channels/:channelId", h.Channel.Get)
	api.Post("/channels/:channelId/subscribe", h.Channel.ToggleSubscribe, requireAuth)

	// Video routes
	api.Post("/videos", h.Video.Create, requireAuth)
	api.Get("/videos", h.Video.List)
	api.Get("/videos/search", h.Video.Search)
	api.Get("/videos/:videoId", h.Video.Get)
	api.Put("/videos/:videoId", h.Video.Update, requireAuth)
	api.Delete("/videos/:videoId", h.Video.Delete, requireAuth)
	api.Put("/videos/:videoId/like", h.Video.ToggleLike, requireAuth)
	api.Put("/videos/:videoId/dislike", h.Video.ToggleDislike, requireAuth)

	// Comment routes
	api.Post("/comments/:videoId", h.Comment.Add, requireAuth)
	api.Get("/comments/:videoId", h.Comment.ListByVideo)
	api.Put("/comments/update/:commentId", h.Comment.Update, requireAuth)
	api.Delete("/comments/delete/:commentId", h.Comment.Delete, requireAuth)

	// User routes
	api.Get("/users/:userId", h.User.Get)

	// Stats routes
	api.Get("/stats", h.User.Stats)
}
