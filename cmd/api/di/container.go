package di

import (
	"context"
	"fmt"
	"time"

	"blog-service/cmd/api/infrastructure"
	"blog-service/internal/adapter/cache"
	"blog-service/internal/adapter/db/postgres"
	ginhandler "blog-service/internal/adapter/gin/handler"
	ginmiddleware "blog-service/internal/adapter/gin/middleware"
	"blog-service/internal/adapter/mail"
	"blog-service/internal/adapter/repository/cached"
	"blog-service/internal/adapter/session"
	"blog-service/internal/config"
	"blog-service/internal/usecase/auth"
	"blog-service/internal/usecase/blog"
	"blog-service/internal/usecase/contact"
	redisclient "blog-service/pkg/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	AuthUC      auth.Usecase
	BlogUC      blog.Usecase
	ContactUC   contact.Usecase
	SessionAuth *ginmiddleware.SessionAuth
	Handlers    Handlers
}

// Handlers bundles the HTTP handlers built by the container.
type Handlers struct {
	Auth    *ginhandler.AuthHandler
	Post    *ginhandler.PostHandler
	Contact *ginhandler.ContactHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Seed the admin account before serving any requests.
	if err := postgres.EnsureAdminUser(ctx, db, cfg.Admin, l); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	// Initialize Redis client
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Initialize cache layer
	userCache := cache.NewRedisUserCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		l,
	)

	// Initialize repositories
	userRepo := cached.NewCachedUserRepository(postgres.NewUserRepoPG(db, l), userCache, l)
	postRepo := postgres.NewPostRepoPG(db, l)
	commentRepo := postgres.NewCommentRepoPG(db, l)

	// Initialize session manager
	sessionTTL := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	sessionStore := session.NewRedisStore(rdb.Client, sessionTTL, l)
	tokenCodec := session.NewTokenCodec(cfg.Auth.SessionSecret, sessionTTL)
	sessions := session.NewManager(sessionStore, tokenCodec, l)

	// Initialize mailer
	mailer := mail.NewSMTPMailer(cfg.Mail, l)

	// Initialize use cases
	authUC := auth.New(userRepo, sessions, l)
	blogUC := blog.New(postRepo, commentRepo, l)
	contactUC := contact.New(mailer, cfg.Mail.To, l)

	// Initialize middleware and handlers
	sessionAuth := ginmiddleware.NewSessionAuth(authUC, cfg.Auth.CookieName, l)

	handlers := Handlers{
		Auth:    ginhandler.NewAuthHandler(authUC, cfg.Auth, l),
		Post:    ginhandler.NewPostHandler(blogUC, l),
		Contact: ginhandler.NewContactHandler(contactUC, l),
	}

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		AuthUC:      authUC,
		BlogUC:      blogUC,
		ContactUC:   contactUC,
		SessionAuth: sessionAuth,
		Handlers:    handlers,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
