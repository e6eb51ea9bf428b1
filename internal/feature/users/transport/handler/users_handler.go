// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/users/domain/entity"
	"movie_backend/internal/feature/users/transport/http/dto"
	"movie_backend/internal/feature/users/usecase"
	jwtmw "movie_backend/internal/platform/jwt"
)

// UsersUsecase はお気に入り・ウォッチリスト操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type UsersUsecase interface {
	ListFavorites(ctx context.Context, userID uint) ([]entity.Favorite, error)
	AddFavorite(ctx context.Context, userID uint, ref usecase.MovieRef) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID uint, movieID int64) error
	ListWatchlists(ctx context.Context, userID uint) ([]entity.Watchlist, error)
	CreateWatchlist(ctx context.Context, userID uint, name string) (*entity.Watchlist, error)
	AddWatchlistMovie(ctx context.Context, userID, watchlistID uint, ref usecase.MovieRef) (*entity.Watchlist, error)
}

// UsersHandler はお気に入り・ウォッチリストのHTTPリクエストを処理します。
type UsersHandler struct {
	uc UsersUsecase
}

// NewUsersHandler はUsersHandlerの新しいインスタンスを生成します。
func NewUsersHandler(uc UsersUsecase) *UsersHandler {
	return &UsersHandler{uc: uc}
}

// movieRef はリクエストDTOをユースケースの入力値に変換します。
func movieRef(req dto.AddMovieReq) usecase.MovieRef {
	return usecase.MovieRef{
		MovieID:     req.MovieID,
		Title:       req.Title,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
		VoteAverage: req.VoteAverage,
	}
}

// ListFavorites はお気に入り一覧APIを処理します。
//
// エンドポイント: GET /users/favorites
func (h *UsersHandler) ListFavorites(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	favs, err := h.uc.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list favorites failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, favs)
}

// AddFavorite はお気に入り追加APIを処理します。
// 既に存在するmovieIdは400で拒否します。
//
// エンドポイント: POST /users/favorites
func (h *UsersHandler) AddFavorite(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req dto.AddMovieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	fav, err := h.uc.AddFavorite(c.Request.Context(), userID, movieRef(req))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieAlreadyInFavorites) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "movie already in favorites"})
			return
		}
		slog.Error("add favorite failed", "error", err, "user_id", userID, "movie_id", req.MovieID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusCreated, fav)
}

// RemoveFavorite はお気に入り削除APIを処理します。
// 存在しないmovieIdを指定しても200を返します（冪等）。
//
// エンドポイント: DELETE /users/favorites/:movieId
func (h *UsersHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid movie id"})
		return
	}
	if err := h.uc.RemoveFavorite(c.Request.Context(), userID, movieID); err != nil {
		slog.Error("remove favorite failed", "error", err, "user_id", userID, "movie_id", movieID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "movie removed from favorites"})
}

// ListWatchlists はウォッチリスト一覧APIを処理します。
//
// エンドポイント: GET /users/watchlists
func (h *UsersHandler) ListWatchlists(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	lists, err := h.uc.ListWatchlists(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list watchlists failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, lists)
}

// CreateWatchlist はウォッチリスト作成APIを処理します。
//
// エンドポイント: POST /users/watchlists
func (h *UsersHandler) CreateWatchlist(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req dto.CreateWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	wl, err := h.uc.CreateWatchlist(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "watchlist name is required"})
			return
		}
		slog.Error("create watchlist failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusCreated, wl)
}

// AddWatchlistMovie はウォッチリストへの映画追加APIを処理します。
// ウォッチリスト未解決は404、重複映画は400で拒否します。
//
// エンドポイント: POST /users/watchlists/:watchlistId/movies
func (h *UsersHandler) AddWatchlistMovie(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	watchlistID, err := strconv.ParseUint(c.Param("watchlistId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid watchlist id"})
		return
	}
	var req dto.AddMovieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	wl, err := h.uc.AddWatchlistMovie(c.Request.Context(), userID, uint(watchlistID), movieRef(req))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "watchlist not found"})
		case errors.Is(err, usecase.ErrMovieAlreadyInWatchlist):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "movie already in watchlist"})
		default:
			slog.Error("add watchlist movie failed", "error", err, "user_id", userID, "watchlist_id", watchlistID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
		}
		return
	}
	c.JSON(http.StatusOK, wl)
}
