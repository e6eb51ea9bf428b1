// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/catalog/usecase"
)

// CatalogUsecase はカタログ参照のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	SearchMovies(ctx context.Context, query string, page int) (*entity.MoviePage, error)
	PopularMovies(ctx context.Context, page int) (*entity.MoviePage, error)
	MoviesByGenre(ctx context.Context, genreID int, page int) (*entity.MoviePage, error)
	MovieDetails(ctx context.Context, id int64) (*entity.MovieDetail, error)
	Genres(ctx context.Context) ([]entity.Genre, error)
	PopularTVShows(ctx context.Context, page int) (*entity.TVShowPage, error)
	SearchTVShows(ctx context.Context, query string, page int) (*entity.TVShowPage, error)
	TVShowDetails(ctx context.Context, id int64) (*entity.TVShowDetail, error)
}

// CatalogHandler はカタログ参照のHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler はCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// pageQuery は?pageクエリパラメータを整数として取り出します。
func pageQuery(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return page
}

// respondCatalogError はユースケースエラーをHTTPステータスへ変換します。
// クエリ不足は400、それ以外は上流障害として502を返します。
func respondCatalogError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrQueryRequired) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "search query is required"})
		return
	}
	slog.Error("catalog request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "catalog unavailable"})
}

// SearchMovies は映画検索APIを処理します。
//
// エンドポイント: GET /movies/search?query=...&page=1
func (h *CatalogHandler) SearchMovies(c *gin.Context) {
	page, err := h.uc.SearchMovies(c.Request.Context(), c.Query("query"), pageQuery(c))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PopularMovies は人気映画一覧APIを処理します。
//
// エンドポイント: GET /movies/popular?page=1
func (h *CatalogHandler) PopularMovies(c *gin.Context) {
	page, err := h.uc.PopularMovies(c.Request.Context(), pageQuery(c))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// MovieDetails は映画詳細APIを処理します。
//
// エンドポイント: GET /movies/:id
func (h *CatalogHandler) MovieDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid movie id"})
		return
	}
	detail, err := h.uc.MovieDetails(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MoviesByGenre はジャンル別映画一覧APIを処理します。
//
// エンドポイント: GET /movies/genre/:genreId?page=1
func (h *CatalogHandler) MoviesByGenre(c *gin.Context) {
	genreID, err := strconv.Atoi(c.Param("genreId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid genre id"})
		return
	}
	page, err := h.uc.MoviesByGenre(c.Request.Context(), genreID, pageQuery(c))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Genres はジャンル一覧APIを処理します。
//
// エンドポイント: GET /movies/genres/list
func (h *CatalogHandler) Genres(c *gin.Context) {
	genres, err := h.uc.Genres(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}
