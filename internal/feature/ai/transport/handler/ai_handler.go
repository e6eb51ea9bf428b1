// Package handler はaiフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/ai/domain/entity"
	"movie_backend/internal/feature/ai/transport/http/dto"
	"movie_backend/internal/feature/ai/usecase"
)

// AIUsecase はAI支援機能のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AIUsecase interface {
	Recommend(ctx context.Context, mood string, genres, recentWatches []string) ([]entity.Recommendation, error)
	SmartSearch(ctx context.Context, query string) (*entity.SearchParams, error)
	AnalyzeReview(ctx context.Context, reviewText string) (*entity.ReviewAnalysis, error)
}

// AIHandler はAI支援機能のHTTPリクエストを処理します。
type AIHandler struct {
	uc AIUsecase
}

// NewAIHandler はAIHandlerの新しいインスタンスを生成します。
func NewAIHandler(uc AIUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Recommendations はレコメンド生成APIを処理します。
// 生成モデルの呼び出し失敗は502で返します。
//
// エンドポイント: POST /ai/recommendations
func (h *AIHandler) Recommendations(c *gin.Context) {
	var req dto.RecommendationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	recs, err := h.uc.Recommend(c.Request.Context(), req.Mood, req.Genres, req.RecentWatches)
	if err != nil {
		if errors.Is(err, usecase.ErrAnalyzerFailed) {
			slog.Error("recommendation analyzer failed", "error", err)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "recommendation service unavailable"})
			return
		}
		slog.Error("recommendations failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// SmartSearch はスマート検索APIを処理します。
//
// エンドポイント: POST /ai/smart-search
func (h *AIHandler) SmartSearch(c *gin.Context) {
	var req dto.SmartSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "query is required"})
		return
	}
	params, err := h.uc.SmartSearch(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, usecase.ErrQueryRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "query is required"})
			return
		}
		slog.Error("smart search failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"searchParams": params})
}

// AnalyzeReview はレビュー感情分析APIを処理します。
//
// エンドポイント: POST /ai/analyze-review
func (h *AIHandler) AnalyzeReview(c *gin.Context) {
	var req dto.AnalyzeReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "review text is required"})
		return
	}
	analysis, err := h.uc.AnalyzeReview(c.Request.Context(), req.ReviewText)
	if err != nil {
		if errors.Is(err, usecase.ErrReviewTextRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "review text is required"})
			return
		}
		slog.Error("review analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
