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

	"movie_backend/internal/feature/auth/domain/entity"
	"movie_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, username, email, password string) (string, *entity.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, *entity.User, error)
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, username, email, password string) (string, *entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return "", nil, errors.New("RegisterFunc is not implemented")
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", nil, errors.New("LoginFunc is not implemented")
}

// testUser is a fixture shared by the handler tests.
var testUser = &entity.User{ID: 1, Username: "moviefan", Email: "test@example.com"}

func postJSON(router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, username, email, password string) (string, *entity.User, error)
		expectedStatus   int
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"username": "moviefan", "email": "test@example.com", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) (string, *entity.User, error) {
				return "signed-token", testUser, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"username": "moviefan", "email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"username": "moviefan", "email": "test@example.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing username",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email returns generic conflict",
			requestBody: gin.H{"username": "moviefan", "email": "existing@example.com", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) (string, *entity.User, error) {
				return "", nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc})

			router := gin.New()
			router.POST("/register", handler.Register)

			w := postJSON(router, "/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp map[string]any
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp["token"])
			}
			if tt.expectedStatus == http.StatusConflict {
				// The real failure reason must not leak to the client
				assert.NotContains(t, w.Body.String(), "email already")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, *entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success: login",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "signed-token", testUser, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: wrong credentials",
			requestBody: gin.H{"email": "test@example.com", "password": "wrong"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockLoginFunc})

			router := gin.New()
			router.POST("/login", handler.Login)

			w := postJSON(router, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
