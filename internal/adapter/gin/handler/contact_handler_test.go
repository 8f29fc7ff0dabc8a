package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"blog-service/internal/usecase/contact"
	pkgerrors "blog-service/pkg/errors"
)

// MockContactUsecase is a mock implementation of contact.Usecase
type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) SendMessage(ctx context.Context, in contact.SendMessageRequest) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func setupContactTest(t *testing.T) (*gin.Engine, *ContactHandler, *MockContactUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockContactUsecase)
	logger := zaptest.NewLogger(t)
	handler := NewContactHandler(mockUsecase, logger)

	r := gin.New()
	return r, handler, mockUsecase
}

func TestContactSend(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupContactTest(t)
		r.POST("/v1/contact", handler.Send)

		jsonBody, _ := json.Marshal(ContactRequest{
			Name:    "John Doe",
			Email:   "john@example.com",
			Phone:   "555-0100",
			Message: "I would like to get in touch about your blog.",
		})

		mockUsecase.On("SendMessage", mock.Anything, mock.MatchedBy(func(in contact.SendMessageRequest) bool {
			return in.Name == "John Doe" && in.Email == "john@example.com"
		})).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/contact", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Your email has been sent")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Message Too Short", func(t *testing.T) {
		r, handler, mockUsecase := setupContactTest(t)
		r.POST("/v1/contact", handler.Send)

		jsonBody, _ := json.Marshal(ContactRequest{
			Name:    "John Doe",
			Email:   "john@example.com",
			Message: "hi",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/contact", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsecase.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})

	t.Run("Delivery Failure", func(t *testing.T) {
		r, handler, mockUsecase := setupContactTest(t)
		r.POST("/v1/contact", handler.Send)

		jsonBody, _ := json.Marshal(ContactRequest{
			Name:    "John Doe",
			Email:   "john@example.com",
			Message: "I would like to get in touch about your blog.",
		})

		mockUsecase.On("SendMessage", mock.Anything, mock.Anything).
			Return(pkgerrors.NewInternalError("failed to deliver contact message", errors.New("smtp down")))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/contact", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// Internal failure details never leak to the client
		assert.NotContains(t, w.Body.String(), "smtp down")
	})
}
