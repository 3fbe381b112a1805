// Package server contains the HTTP surface of the application: route
// wiring, request handlers and the central error classifier.
package server

import (
	"fmt"
	"log/slog"

	"bloglist/internal/auth"
	"bloglist/internal/cache"
	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/middleware"
	"bloglist/internal/repository"
	"bloglist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	logger         *slog.Logger
	accountRepo    repository.AccountRepository
	postRepo       repository.PostRepository
	accountService *service.AccountService
	postService    *service.PostService
	authPipeline   *middleware.AuthPipeline
}

// NewServer creates a server, establishing the database and cache
// connections from config.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, logger, db, cache.New(cfg.RedisURL)), nil
}

// NewServerWithDeps creates a Server using already-initialized
// dependencies. Use this in tests or when a bootstrap layer
// establishes the database and cache.
func NewServerWithDeps(cfg *config.Config, logger *slog.Logger, db *gorm.DB, c *cache.Cache) *Server {
	accountRepo := repository.NewAccountRepository(db, c)
	postRepo := repository.NewPostRepository(db)

	hasher := auth.NewPasswordHasher()
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	return &Server{
		config:         cfg,
		logger:         logger,
		accountRepo:    accountRepo,
		postRepo:       postRepo,
		accountService: service.NewAccountService(accountRepo, hasher, codec),
		postService:    service.NewPostService(postRepo, accountRepo),
		authPipeline:   middleware.NewAuthPipeline(codec, accountRepo),
	}
}

// NewApp builds the Fiber app with the classifier installed as the
// app-level error handler, then wires middleware and routes.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "bloglist",
		ErrorHandler: s.ErrorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures app-wide middleware.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(cors.New())
	app.Use(middleware.RequestLogging(s.logger))
}

// SetupRoutes wires the API routes. Only post creation requires
// identity; the remaining routes skip the auth pipeline entirely.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/accounts", s.ListAccounts)
	api.Post("/accounts", s.RegisterAccount)
	api.Post("/login", s.Login)

	api.Get("/posts", s.ListPosts)
	api.Post("/posts", s.authPipeline.RequireIdentity(), s.CreatePost)
	api.Put("/posts/:id", s.UpdatePost)
	api.Delete("/posts/:id", s.DeletePost)

	app.Use(s.UnknownEndpoint)
}

// UnknownEndpoint answers any unmatched route.
func (s *Server) UnknownEndpoint(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown endpoint"})
}
