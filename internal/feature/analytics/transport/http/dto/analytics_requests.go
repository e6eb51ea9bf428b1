// Package dto はanalyticsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// TrackReq はアクティビティトラッキングのリクエストボディです。
type TrackReq struct {
	Action string         `json:"action" binding:"required"`
	Data   map[string]any `json:"data"`
}
