package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"movie_backend/internal/app/di"
	"movie_backend/internal/app/router"
	aihandler "movie_backend/internal/feature/ai/transport/handler"
	aiusecase "movie_backend/internal/feature/ai/usecase"
	analyticsadapters "movie_backend/internal/feature/analytics/adapters"
	analyticshandler "movie_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "movie_backend/internal/feature/analytics/usecase"
	authadapters "movie_backend/internal/feature/auth/adapters"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	authusecase "movie_backend/internal/feature/auth/usecase"
	cataloghandler "movie_backend/internal/feature/catalog/transport/handler"
	catalogusecase "movie_backend/internal/feature/catalog/usecase"
	socialadapters "movie_backend/internal/feature/social/adapters"
	socialhandler "movie_backend/internal/feature/social/transport/handler"
	socialusecase "movie_backend/internal/feature/social/usecase"
	streaminghandler "movie_backend/internal/feature/streaming/transport/handler"
	streamingusecase "movie_backend/internal/feature/streaming/usecase"
	usersadapters "movie_backend/internal/feature/users/adapters"
	usershandler "movie_backend/internal/feature/users/transport/handler"
	usersusecase "movie_backend/internal/feature/users/usecase"
	infradb "movie_backend/internal/platform/db"
	jwtmw "movie_backend/internal/platform/jwt"
	infraredis "movie_backend/internal/platform/redis"
)

func main() {
	// ローカル開発用の.env（無ければ環境変数のみで動く）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found, using environment variables")
	}

	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	redisCfg := infraredis.Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if tmp, err := infraredis.NewRedisClient(redisCfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT設定
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	jwtGen := jwtmw.NewGenerator(jwtSecret, jwtExpiration())

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	favoriteRepo := usersadapters.NewFavoriteMySQL(db)
	watchlistRepo := usersadapters.NewWatchlistMySQL(db)
	activityRepo := socialadapters.NewActivityMySQL(db)
	followRepo := socialadapters.NewFollowMySQL(db)
	activityStats := analyticsadapters.NewActivityStatsMySQL(db)
	favoriteStats := analyticsadapters.NewFavoriteStatsMySQL(db)

	// TMDBカタログ（Redisキャッシュでラップ）
	catalogRepo := di.NewCatalogRepository(rdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	catalogUC := catalogusecase.NewCatalogUsecase(catalogRepo)
	usersUC := usersusecase.NewUsersUsecase(favoriteRepo, watchlistRepo)
	socialUC := socialusecase.NewSocialUsecase(activityRepo, followRepo)
	aiUC := aiusecase.NewAIUsecase(di.NewMovieAnalyzer(ctx))
	streamingUC := streamingusecase.NewStreamingUsecase()
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(activityStats, favoriteStats)

	// Handler
	handlers := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Catalog:   cataloghandler.NewCatalogHandler(catalogUC),
		Users:     usershandler.NewUsersHandler(usersUC),
		Social:    socialhandler.NewSocialHandler(socialUC),
		AI:        aihandler.NewAIHandler(aiUC),
		Streaming: streaminghandler.NewStreamingHandler(streamingUC),
		Analytics: analyticshandler.NewAnalyticsHandler(analyticsUC),
	}

	// ルータ生成
	r := router.NewRouter(handlers, jwtSecret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// jwtExpiration はJWT_EXPIRATION_MINUTESを読み取ります（デフォルト60分）。
func jwtExpiration() time.Duration {
	if v := os.Getenv("JWT_EXPIRATION_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return 60 * time.Minute
}
