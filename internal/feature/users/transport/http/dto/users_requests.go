// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// AddMovieReq はお気に入り・ウォッチリストへの映画追加リクエストボディです。
// カタログから取得したフィールドをそのまま持ち回ります。
type AddMovieReq struct {
	MovieID     int64   `json:"movieId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// CreateWatchlistReq はウォッチリスト作成リクエストボディです。
type CreateWatchlistReq struct {
	Name string `json:"name" binding:"required,max=100"`
}
