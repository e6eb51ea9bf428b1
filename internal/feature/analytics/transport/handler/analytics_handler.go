// Package handler はanalyticsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/analytics/domain/entity"
	"movie_backend/internal/feature/analytics/transport/http/dto"
	jwtmw "movie_backend/internal/platform/jwt"
)

// AnalyticsUsecase は視聴統計のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, userID uint) (*entity.Dashboard, error)
	Insights(ctx context.Context, userID uint) ([]entity.Insight, error)
}

// AnalyticsHandler は視聴統計のHTTPリクエストを処理します。
type AnalyticsHandler struct {
	uc AnalyticsUsecase
}

// NewAnalyticsHandler はAnalyticsHandlerの新しいインスタンスを生成します。
func NewAnalyticsHandler(uc AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard はダッシュボードAPIを処理します。
//
// エンドポイント: GET /analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	d, err := h.uc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		slog.Error("analytics dashboard failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": d})
}

// Insights はインサイトAPIを処理します。
//
// エンドポイント: GET /analytics/insights
func (h *AnalyticsHandler) Insights(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	insights, err := h.uc.Insights(c.Request.Context(), userID)
	if err != nil {
		slog.Error("analytics insights failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// Track はクライアントイベントの記録APIを処理します。
// イベントは構造化ログに記録するのみで、永続化はしません。
//
// エンドポイント: POST /analytics/track
func (h *AnalyticsHandler) Track(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req dto.TrackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "action is required"})
		return
	}
	slog.Info("user activity tracked", "user_id", userID, "action", req.Action, "data", req.Data)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Activity tracked successfully"})
}
