package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/catalog/usecase"
	"movie_backend/internal/platform/externalapi/tmdb/dto"
)

// TMDBCatalog はTMDB外部APIから映画・TV番組データを取得するCatalogRepository実装です。
type TMDBCatalog struct {
	cfg    Config
	client *http.Client
}

// TMDBCatalogがCatalogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogRepository = (*TMDBCatalog)(nil)

// NewTMDBCatalog は指定された設定とHTTPクライアントでTMDBCatalogの新しいインスタンスを生成します。
func NewTMDBCatalog(cfg Config, client *http.Client) *TMDBCatalog {
	return &TMDBCatalog{cfg: cfg, client: client}
}

// get はTMDBエンドポイントへGETリクエストを実行し、レスポンスをoutにデコードします。
// APIキーはクエリパラメータとして常に付与されます。
func (t *TMDBCatalog) get(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", t.cfg.APIKey)

	u := fmt.Sprintf("%s%s?%s", t.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		// TMDBはエラー本文にstatus_messageを含むため、可能なら取り出す
		var status dto.StatusResponse
		if err := json.NewDecoder(res.Body).Decode(&status); err == nil && status.StatusMessage != "" {
			return fmt.Errorf("tmdb http %d: %s", res.StatusCode, status.StatusMessage)
		}
		return fmt.Errorf("tmdb http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// SearchMovies はクエリに一致する映画のページを取得します。
func (t *TMDBCatalog) SearchMovies(ctx context.Context, query string, page int) (*entity.MoviePage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))

	var out entity.MoviePage
	if err := t.get(ctx, "/search/movie", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PopularMovies は人気映画のページを取得します。
func (t *TMDBCatalog) PopularMovies(ctx context.Context, page int) (*entity.MoviePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var out entity.MoviePage
	if err := t.get(ctx, "/movie/popular", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoviesByGenre は指定ジャンルの映画のページを取得します。
func (t *TMDBCatalog) MoviesByGenre(ctx context.Context, genreID int, page int) (*entity.MoviePage, error) {
	q := url.Values{}
	q.Set("with_genres", strconv.Itoa(genreID))
	q.Set("page", strconv.Itoa(page))

	var out entity.MoviePage
	if err := t.get(ctx, "/discover/movie", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovieDetails はクレジット・動画付きの映画詳細を取得し、ドメインエンティティに変換します。
func (t *TMDBCatalog) MovieDetails(ctx context.Context, id int64) (*entity.MovieDetail, error) {
	q := url.Values{}
	q.Set("append_to_response", "credits,videos")

	var body dto.MovieDetailResponse
	if err := t.get(ctx, fmt.Sprintf("/movie/%d", id), q, &body); err != nil {
		return nil, err
	}

	detail := &entity.MovieDetail{
		Movie: entity.Movie{
			ID:               body.ID,
			Title:            body.Title,
			Overview:         body.Overview,
			PosterPath:       body.PosterPath,
			BackdropPath:     body.BackdropPath,
			ReleaseDate:      body.ReleaseDate,
			VoteAverage:      body.VoteAverage,
			VoteCount:        body.VoteCount,
			Popularity:       body.Popularity,
			OriginalLanguage: body.OriginalLanguage,
		},
		Runtime: body.Runtime,
		Tagline: body.Tagline,
		Status:  body.Status,
	}
	for _, g := range body.Genres {
		detail.Genres = append(detail.Genres, entity.Genre{ID: g.ID, Name: g.Name})
	}
	for _, cm := range body.Credits.Cast {
		detail.Cast = append(detail.Cast, entity.CastMember{ID: cm.ID, Name: cm.Name, Character: cm.Character})
	}
	for _, v := range body.Videos.Results {
		detail.Videos = append(detail.Videos, entity.Video{Key: v.Key, Name: v.Name, Site: v.Site, Type: v.Type})
	}
	return detail, nil
}

// Genres は映画ジャンルの一覧を取得します。
func (t *TMDBCatalog) Genres(ctx context.Context) ([]entity.Genre, error) {
	var body dto.GenreListResponse
	if err := t.get(ctx, "/genre/movie/list", nil, &body); err != nil {
		return nil, err
	}
	out := make([]entity.Genre, 0, len(body.Genres))
	for _, g := range body.Genres {
		out = append(out, entity.Genre{ID: g.ID, Name: g.Name})
	}
	return out, nil
}

// PopularTVShows は人気TV番組のページを取得します。
func (t *TMDBCatalog) PopularTVShows(ctx context.Context, page int) (*entity.TVShowPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var out entity.TVShowPage
	if err := t.get(ctx, "/tv/popular", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchTVShows はクエリに一致するTV番組のページを取得します。
func (t *TMDBCatalog) SearchTVShows(ctx context.Context, query string, page int) (*entity.TVShowPage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))

	var out entity.TVShowPage
	if err := t.get(ctx, "/search/tv", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TVShowDetails はTV番組の詳細を取得し、ドメインエンティティに変換します。
func (t *TMDBCatalog) TVShowDetails(ctx context.Context, id int64) (*entity.TVShowDetail, error) {
	var body dto.TVShowDetailResponse
	if err := t.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &body); err != nil {
		return nil, err
	}

	detail := &entity.TVShowDetail{
		TVShow: entity.TVShow{
			ID:           body.ID,
			Name:         body.Name,
			Overview:     body.Overview,
			PosterPath:   body.PosterPath,
			BackdropPath: body.BackdropPath,
			FirstAirDate: body.FirstAirDate,
			VoteAverage:  body.VoteAverage,
			Popularity:   body.Popularity,
		},
		NumberOfSeasons:  body.NumberOfSeasons,
		NumberOfEpisodes: body.NumberOfEpisodes,
		Status:           body.Status,
	}
	for _, g := range body.Genres {
		detail.Genres = append(detail.Genres, entity.Genre{ID: g.ID, Name: g.Name})
	}
	return detail, nil
}
