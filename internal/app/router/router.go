// Package router はアプリケーションの全ルートを定義します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	aihandler "movie_backend/internal/feature/ai/transport/handler"
	analyticshandler "movie_backend/internal/feature/analytics/transport/handler"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	cataloghandler "movie_backend/internal/feature/catalog/transport/handler"
	socialhandler "movie_backend/internal/feature/social/transport/handler"
	streaminghandler "movie_backend/internal/feature/streaming/transport/handler"
	usershandler "movie_backend/internal/feature/users/transport/handler"
	jwtmw "movie_backend/internal/platform/jwt"
)

// Handlers はルーターが配線する全ハンドラーをまとめます。
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Catalog   *cataloghandler.CatalogHandler
	Users     *usershandler.UsersHandler
	Social    *socialhandler.SocialHandler
	AI        *aihandler.AIHandler
	Streaming *streaminghandler.StreamingHandler
	Analytics *analyticshandler.AnalyticsHandler
}

// NewRouter は全ルートを登録したgin.Engineを生成します。
// jwtSecretは認証必須グループのミドルウェアに注入されます。
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドから叩くのでAuthorizationヘッダーを許可
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// 認証不要
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	movies := api.Group("/movies")
	{
		movies.GET("/search", h.Catalog.SearchMovies)
		movies.GET("/popular", h.Catalog.PopularMovies)
		movies.GET("/genre/:genreId", h.Catalog.MoviesByGenre)
		movies.GET("/genres/list", h.Catalog.Genres)
		movies.GET("/:id", h.Catalog.MovieDetails)
	}

	tvshows := api.Group("/tvshows")
	{
		tvshows.GET("/popular", h.Catalog.PopularTVShows)
		tvshows.GET("/search", h.Catalog.SearchTVShows)
		tvshows.GET("/:id", h.Catalog.TVShowDetails)
	}

	streaming := api.Group("/streaming")
	{
		streaming.GET("/availability/:movieId", h.Streaming.Availability)
		streaming.GET("/search", h.Streaming.Search)
	}

	// 認証必須のルート
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/users/favorites", h.Users.ListFavorites)
		auth.POST("/users/favorites", h.Users.AddFavorite)
		auth.DELETE("/users/favorites/:movieId", h.Users.RemoveFavorite)
		auth.GET("/users/watchlists", h.Users.ListWatchlists)
		auth.POST("/users/watchlists", h.Users.CreateWatchlist)
		auth.POST("/users/watchlists/:watchlistId/movies", h.Users.AddWatchlistMovie)

		auth.POST("/social/activities", h.Social.CreateActivity)
		auth.GET("/social/feed", h.Social.GetFeed)
		auth.POST("/social/follow/:userId", h.Social.FollowUser)

		auth.POST("/ai/recommendations", h.AI.Recommendations)
		auth.POST("/ai/smart-search", h.AI.SmartSearch)
		auth.POST("/ai/analyze-review", h.AI.AnalyzeReview)

		auth.GET("/analytics/dashboard", h.Analytics.Dashboard)
		auth.GET("/analytics/insights", h.Analytics.Insights)
		auth.POST("/analytics/track", h.Analytics.Track)
	}

	return r
}
