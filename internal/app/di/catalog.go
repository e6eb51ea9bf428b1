// Package di provides dependency injection factories for creating application components.
package di

import (
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"movie_backend/internal/feature/catalog/usecase"
	"movie_backend/internal/platform/cache"
	"movie_backend/internal/platform/externalapi/tmdb"
	infrahttp "movie_backend/internal/platform/http"
)

// NewCatalogRepository creates the TMDB-backed catalog repository,
// wrapped in the Redis cache decorator. A nil rdb disables caching.
func NewCatalogRepository(rdb *redis.Client) usecase.CatalogRepository {
	cfg := tmdb.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	catalog := tmdb.NewTMDBCatalog(cfg, httpClient)
	return cache.NewCachingCatalogRepository(rdb, catalogCacheTTL(), catalog, "catalog")
}

// catalogCacheTTL reads CATALOG_CACHE_TTL_MINUTES, defaulting to 15 minutes.
func catalogCacheTTL() time.Duration {
	if v := os.Getenv("CATALOG_CACHE_TTL_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return 15 * time.Minute
}
