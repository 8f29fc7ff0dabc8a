package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/usecase/contact"
)

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	uc  contact.Usecase
	log *zap.Logger
}

// NewContactHandler creates a new ContactHandler instance
func NewContactHandler(uc contact.Usecase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		uc:  uc,
		log: log,
	}
}

// ContactRequest represents the HTTP request body for the contact form
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

// Send handles POST /v1/contact
func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	err := h.uc.SendMessage(c.Request.Context(), contact.SendMessageRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		h.log.Error("contact send failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your email has been sent. Thank you!",
	})
}
