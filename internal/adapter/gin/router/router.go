package router

import (
	"net/http"

	"blog-service/internal/adapter/gin/handler"
	"blog-service/internal/adapter/gin/middleware"
	"blog-service/pkg/logger"
	redisclient "blog-service/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles the route handlers wired into the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Post    *handler.PostHandler
	Contact *handler.ContactHandler
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	h Handlers,
	sessionAuth *middleware.SessionAuth,
	rateLimitCfg middleware.RateLimiterConfig,
	redisClient *redisclient.Client,
	log *zap.Logger,
) *gin.Engine {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestIDMiddleware())
	router.Use(middleware.Logger(log))
	if redisClient != nil {
		router.Use(middleware.RateLimiter(redisClient.Client, rateLimitCfg, log))
	}
	// Identity resolution runs on every route; gating is per-route.
	router.Use(sessionAuth.CurrentUser())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "blog-service",
		})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
			authRoutes.POST("/logout", h.Auth.Logout)
			authRoutes.GET("/me", h.Auth.Me)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", h.Post.ListPosts)
			posts.GET("/:id", h.Post.GetPost)

			// Post management is uniformly admin-gated: create, edit
			// and delete follow the same policy.
			posts.POST("", sessionAuth.RequireAdmin(), h.Post.CreatePost)
			posts.PUT("/:id", sessionAuth.RequireAdmin(), h.Post.UpdatePost)
			posts.DELETE("/:id", sessionAuth.RequireAdmin(), h.Post.DeletePost)

			// Commenting only needs a logged-in user.
			posts.POST("/:id/comments", sessionAuth.RequireAuth(), h.Post.AddComment)
		}

		v1.POST("/contact", h.Contact.Send)
	}

	return router
}
