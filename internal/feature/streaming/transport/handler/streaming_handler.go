// Package handler はstreamingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/streaming/domain/entity"
	"movie_backend/internal/feature/streaming/usecase"
)

// StreamingUsecase は配信状況照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StreamingUsecase interface {
	Availability(ctx context.Context, movieID int64) ([]entity.Provider, error)
	Search(ctx context.Context, query string) (*entity.SearchResults, error)
}

// StreamingHandler は配信状況のHTTPリクエストを処理します。
type StreamingHandler struct {
	uc StreamingUsecase
}

// NewStreamingHandler はStreamingHandlerの新しいインスタンスを生成します。
func NewStreamingHandler(uc StreamingUsecase) *StreamingHandler {
	return &StreamingHandler{uc: uc}
}

// Availability は配信プロバイダー一覧APIを処理します。
//
// エンドポイント: GET /streaming/availability/:movieId
func (h *StreamingHandler) Availability(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid movie id"})
		return
	}
	providers, err := h.uc.Availability(c.Request.Context(), movieID)
	if err != nil {
		slog.Error("streaming availability failed", "error", err, "movie_id", movieID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// Search はプラットフォーム横断検索APIを処理します。
//
// エンドポイント: GET /streaming/search?query=...
func (h *StreamingHandler) Search(c *gin.Context) {
	results, err := h.uc.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		if errors.Is(err, usecase.ErrQueryRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "query is required"})
			return
		}
		slog.Error("streaming search failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
