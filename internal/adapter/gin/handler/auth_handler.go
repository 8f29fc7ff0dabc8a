package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/adapter/gin/middleware"
	"blog-service/internal/config"
	"blog-service/internal/usecase/auth"
)

// AuthHandler handles HTTP requests for registration, login, logout
// and identity introspection.
type AuthHandler struct {
	uc  auth.Usecase
	cfg config.AuthConfig
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(uc auth.Usecase, cfg config.AuthConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:  uc,
		cfg: cfg,
		log: log,
	}
}

// RegisterRequest represents the HTTP request body for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents the HTTP request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents the HTTP response for user identity
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register handles POST /v1/auth/register. A new account is logged in
// immediately; the session cookie is set on the response.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Register(c.Request.Context(), auth.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("register failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token)
	c.JSON(http.StatusCreated, toUserResponse(resp.User))
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), auth.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, toUserResponse(resp.User))
}

// Logout handles POST /v1/auth/logout. Logging out while anonymous is
// a no-op that still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cfg.CookieName)

	if err := h.uc.Logout(c.Request.Context(), token); err != nil {
		h.log.Error("logout failed", zap.Error(err))
		respondError(c, err)
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "logged out",
	})
}

// Me handles GET /v1/auth/me. Anonymous callers get authenticated=false
// rather than an error.
func (h *AuthHandler) Me(c *gin.Context) {
	info, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          toUserResponse(*info),
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := h.cfg.SessionTTLMinutes * 60
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", "", h.cfg.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
}

func toUserResponse(info auth.UserInfo) UserResponse {
	return UserResponse{
		ID:    info.ID,
		Name:  info.Name,
		Email: info.Email,
		Role:  info.Role,
	}
}
