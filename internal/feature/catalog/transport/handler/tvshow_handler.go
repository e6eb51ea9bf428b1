package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
)

// PopularTVShows は人気TV番組一覧APIを処理します。
//
// エンドポイント: GET /tvshows/popular?page=1
func (h *CatalogHandler) PopularTVShows(c *gin.Context) {
	page, err := h.uc.PopularTVShows(c.Request.Context(), pageQuery(c))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// SearchTVShows はTV番組検索APIを処理します。
//
// エンドポイント: GET /tvshows/search?query=...&page=1
func (h *CatalogHandler) SearchTVShows(c *gin.Context) {
	page, err := h.uc.SearchTVShows(c.Request.Context(), c.Query("query"), pageQuery(c))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// TVShowDetails はTV番組詳細APIを処理します。
//
// エンドポイント: GET /tvshows/:id
func (h *CatalogHandler) TVShowDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid tv show id"})
		return
	}
	detail, err := h.uc.TVShowDetails(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
