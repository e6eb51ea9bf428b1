// Package handler はsocialフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/social/domain/entity"
	"movie_backend/internal/feature/social/transport/http/dto"
	"movie_backend/internal/feature/social/usecase"
	jwtmw "movie_backend/internal/platform/jwt"
)

// SocialUsecase はアクティビティ・フィード・フォロー操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SocialUsecase interface {
	CreateActivity(ctx context.Context, userID uint, in usecase.ActivityInput) (*entity.Activity, error)
	GetFeed(ctx context.Context, userID uint, page, limit int) ([]entity.Activity, error)
	FollowUser(ctx context.Context, followerID, followeeID uint) error
}

// SocialHandler はソーシャル関連のHTTPリクエストを処理します。
type SocialHandler struct {
	uc SocialUsecase
}

// NewSocialHandler はSocialHandlerの新しいインスタンスを生成します。
func NewSocialHandler(uc SocialUsecase) *SocialHandler {
	return &SocialHandler{uc: uc}
}

// CreateActivity はアクティビティ投稿APIを処理します。
// タイプ別の必須フィールド違反は400で拒否します（500にはしません）。
//
// エンドポイント: POST /social/activities
func (h *SocialHandler) CreateActivity(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req dto.CreateActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	a, err := h.uc.CreateActivity(c.Request.Context(), userID, usecase.ActivityInput{
		Type:             req.Type,
		MovieID:          req.MovieID,
		TVShowID:         req.TVShowID,
		Rating:           req.Rating,
		Text:             req.Text,
		TargetUserID:     req.TargetUserID,
		TargetActivityID: req.TargetActivityID,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidActivity) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("create activity failed", "error", err, "user_id", userID, "type", req.Type)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetFeed はフィード取得APIを処理します。
// page・limitはユースケース側で正規化されます。
//
// エンドポイント: GET /social/feed?page=1&limit=10
func (h *SocialHandler) GetFeed(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	acts, err := h.uc.GetFeed(c.Request.Context(), userID, page, limit)
	if err != nil {
		slog.Error("get feed failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, acts)
}

// FollowUser はフォローAPIを処理します。
// 自分自身へのフォローは400、重複フォローは成功として扱います。
//
// エンドポイント: POST /social/follow/:userId
func (h *SocialHandler) FollowUser(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	followeeID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}
	if err := h.uc.FollowUser(c.Request.Context(), userID, uint(followeeID)); err != nil {
		if errors.Is(err, usecase.ErrSelfFollow) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "cannot follow yourself"})
			return
		}
		slog.Error("follow user failed", "error", err, "user_id", userID, "followee_id", followeeID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user followed"})
}
