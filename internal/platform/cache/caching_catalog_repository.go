// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/catalog/usecase"
)

// CachingCatalogRepository decorates a CatalogRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The catalog is read-only, so entries
// simply expire; there is no invalidation path.
type CachingCatalogRepository struct {
	inner     usecase.CatalogRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingCatalogRepositoryがCatalogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogRepository = (*CachingCatalogRepository)(nil)

// NewCachingCatalogRepository decorates a CatalogRepository with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses "catalog".
func NewCachingCatalogRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CatalogRepository, namespace string) *CachingCatalogRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "catalog"
	}
	return &CachingCatalogRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// cacheKey generates a cache key for a specific operation and its arguments.
func (c *CachingCatalogRepository) cacheKey(op string, args ...any) string {
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, c.namespace, op)
	for _, a := range args {
		parts = append(parts, safe(fmt.Sprint(a)))
	}
	return strings.Join(parts, ":")
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

// cached はキャッシュを確認し、ミス時はloadの結果を保存して返します。
//
//  1. キャッシュを確認（壊れたエントリは削除）
//  2. ミス時は内部リポジトリへフォールバック
//  3. ベストエフォートでキャッシュに保存
func cached[T any](ctx context.Context, c *CachingCatalogRepository, key string, load func() (T, error)) (T, error) {
	if c.rdb == nil {
		return load()
	}

	var zero T
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return zero, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// SearchMovies retrieves a movie search page, checking cache first.
func (c *CachingCatalogRepository) SearchMovies(ctx context.Context, query string, page int) (*entity.MoviePage, error) {
	return cached(ctx, c, c.cacheKey("search", query, page), func() (*entity.MoviePage, error) {
		return c.inner.SearchMovies(ctx, query, page)
	})
}

// PopularMovies retrieves a popular movies page, checking cache first.
func (c *CachingCatalogRepository) PopularMovies(ctx context.Context, page int) (*entity.MoviePage, error) {
	return cached(ctx, c, c.cacheKey("popular", page), func() (*entity.MoviePage, error) {
		return c.inner.PopularMovies(ctx, page)
	})
}

// MoviesByGenre retrieves a genre discovery page, checking cache first.
func (c *CachingCatalogRepository) MoviesByGenre(ctx context.Context, genreID int, page int) (*entity.MoviePage, error) {
	return cached(ctx, c, c.cacheKey("genre", genreID, page), func() (*entity.MoviePage, error) {
		return c.inner.MoviesByGenre(ctx, genreID, page)
	})
}

// MovieDetails retrieves a movie detail, checking cache first.
func (c *CachingCatalogRepository) MovieDetails(ctx context.Context, id int64) (*entity.MovieDetail, error) {
	return cached(ctx, c, c.cacheKey("movie", id), func() (*entity.MovieDetail, error) {
		return c.inner.MovieDetails(ctx, id)
	})
}

// Genres retrieves the genre list, checking cache first.
func (c *CachingCatalogRepository) Genres(ctx context.Context) ([]entity.Genre, error) {
	return cached(ctx, c, c.cacheKey("genres"), func() ([]entity.Genre, error) {
		return c.inner.Genres(ctx)
	})
}

// PopularTVShows retrieves a popular TV shows page, checking cache first.
func (c *CachingCatalogRepository) PopularTVShows(ctx context.Context, page int) (*entity.TVShowPage, error) {
	return cached(ctx, c, c.cacheKey("tv_popular", page), func() (*entity.TVShowPage, error) {
		return c.inner.PopularTVShows(ctx, page)
	})
}

// SearchTVShows retrieves a TV search page, checking cache first.
func (c *CachingCatalogRepository) SearchTVShows(ctx context.Context, query string, page int) (*entity.TVShowPage, error) {
	return cached(ctx, c, c.cacheKey("tv_search", query, page), func() (*entity.TVShowPage, error) {
		return c.inner.SearchTVShows(ctx, query, page)
	})
}

// TVShowDetails retrieves a TV show detail, checking cache first.
func (c *CachingCatalogRepository) TVShowDetails(ctx context.Context, id int64) (*entity.TVShowDetail, error) {
	return cached(ctx, c, c.cacheKey("tv", id), func() (*entity.TVShowDetail, error) {
		return c.inner.TVShowDetails(ctx, id)
	})
}
