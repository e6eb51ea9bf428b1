// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"movie_backend/internal/feature/catalog/domain/entity"
)

const (
	// DefaultPage はページ未指定時のデフォルトページ番号です。
	DefaultPage = 1
)

// CatalogRepository は外部映画カタログ（TMDB）の読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/externalapi）ではなく
// コンシューマー（usecase）が定義します。
type CatalogRepository interface {
	// SearchMovies はクエリに一致する映画のページを取得します。
	SearchMovies(ctx context.Context, query string, page int) (*entity.MoviePage, error)
	// PopularMovies は人気映画のページを取得します。
	PopularMovies(ctx context.Context, page int) (*entity.MoviePage, error)
	// MoviesByGenre は指定ジャンルの映画のページを取得します。
	MoviesByGenre(ctx context.Context, genreID int, page int) (*entity.MoviePage, error)
	// MovieDetails はクレジット・動画付きの映画詳細を取得します。
	MovieDetails(ctx context.Context, id int64) (*entity.MovieDetail, error)
	// Genres は映画ジャンルの一覧を取得します。
	Genres(ctx context.Context) ([]entity.Genre, error)
	// PopularTVShows は人気TV番組のページを取得します。
	PopularTVShows(ctx context.Context, page int) (*entity.TVShowPage, error)
	// SearchTVShows はクエリに一致するTV番組のページを取得します。
	SearchTVShows(ctx context.Context, query string, page int) (*entity.TVShowPage, error)
	// TVShowDetails はTV番組の詳細を取得します。
	TVShowDetails(ctx context.Context, id int64) (*entity.TVShowDetail, error)
}

// catalogUsecase はカタログ参照のユースケースを定義します。
type catalogUsecase struct {
	catalog CatalogRepository
}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase(catalog CatalogRepository) *catalogUsecase {
	return &catalogUsecase{catalog: catalog}
}

// normalizePage はページ番号を1以上に正規化します。
func normalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// SearchMovies はクエリに一致する映画を検索します。クエリが空の場合はエラーを返します。
func (u *catalogUsecase) SearchMovies(ctx context.Context, query string, page int) (*entity.MoviePage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}
	return u.catalog.SearchMovies(ctx, query, normalizePage(page))
}

// PopularMovies は人気映画のページを取得します。
func (u *catalogUsecase) PopularMovies(ctx context.Context, page int) (*entity.MoviePage, error) {
	return u.catalog.PopularMovies(ctx, normalizePage(page))
}

// MoviesByGenre は指定ジャンルの映画のページを取得します。
func (u *catalogUsecase) MoviesByGenre(ctx context.Context, genreID int, page int) (*entity.MoviePage, error) {
	return u.catalog.MoviesByGenre(ctx, genreID, normalizePage(page))
}

// MovieDetails は映画の詳細を取得します。
func (u *catalogUsecase) MovieDetails(ctx context.Context, id int64) (*entity.MovieDetail, error) {
	return u.catalog.MovieDetails(ctx, id)
}

// Genres は映画ジャンルの一覧を取得します。
func (u *catalogUsecase) Genres(ctx context.Context) ([]entity.Genre, error) {
	return u.catalog.Genres(ctx)
}

// PopularTVShows は人気TV番組のページを取得します。
func (u *catalogUsecase) PopularTVShows(ctx context.Context, page int) (*entity.TVShowPage, error) {
	return u.catalog.PopularTVShows(ctx, normalizePage(page))
}

// SearchTVShows はクエリに一致するTV番組を検索します。クエリが空の場合はエラーを返します。
func (u *catalogUsecase) SearchTVShows(ctx context.Context, query string, page int) (*entity.TVShowPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}
	return u.catalog.SearchTVShows(ctx, query, normalizePage(page))
}

// TVShowDetails はTV番組の詳細を取得します。
func (u *catalogUsecase) TVShowDetails(ctx context.Context, id int64) (*entity.TVShowDetail, error) {
	return u.catalog.TVShowDetails(ctx, id)
}
