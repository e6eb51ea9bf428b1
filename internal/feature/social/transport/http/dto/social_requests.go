// Package dto はsocialフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateActivityReq はアクティビティ作成リクエストボディです。
// Typeに応じた必須フィールドの検証はドメイン層が行います。
type CreateActivityReq struct {
	Type             string `json:"type" binding:"required,oneof=post watched rated added_to_watchlist commented liked followed"`
	MovieID          *int64 `json:"movieId"`
	TVShowID         *int64 `json:"tvShowId"`
	Rating           *int   `json:"rating"`
	Text             string `json:"text"`
	TargetUserID     *uint  `json:"targetUserId"`
	TargetActivityID *uint  `json:"targetActivityId"`
}
