// Package dto はaiフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RecommendationsReq はレコメンド生成リクエストボディです。全フィールド任意です。
type RecommendationsReq struct {
	Mood          string   `json:"mood"`
	Genres        []string `json:"genres"`
	RecentWatches []string `json:"recentWatches"`
}

// SmartSearchReq はスマート検索リクエストボディです。
type SmartSearchReq struct {
	Query string `json:"query" binding:"required"`
}

// AnalyzeReviewReq はレビュー分析リクエストボディです。
type AnalyzeReviewReq struct {
	ReviewText string `json:"reviewText" binding:"required"`
	MovieID    *int64 `json:"movieId"`
}
