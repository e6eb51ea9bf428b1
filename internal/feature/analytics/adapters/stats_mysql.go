// Package adapters はanalyticsフィーチャーの読み取りリポジトリ実装を提供します。
// socialとusersフィーチャーが書き込むテーブルを読み取り専用で参照します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"movie_backend/internal/feature/analytics/usecase"
)

// activityStatsMySQL はActivityReaderインターフェースのMySQL実装です。
type activityStatsMySQL struct {
	db *gorm.DB
}

// activityStatsMySQLがActivityReaderを実装していることをコンパイル時に検証します。
var _ usecase.ActivityReader = (*activityStatsMySQL)(nil)

// NewActivityStatsMySQL は指定されたgorm.DB接続でactivityStatsMySQLの新しいインスタンスを生成します。
func NewActivityStatsMySQL(db *gorm.DB) *activityStatsMySQL {
	return &activityStatsMySQL{db: db}
}

// CountByUserAndType は指定タイプのアクティビティ件数を返します。
func (r *activityStatsMySQL) CountByUserAndType(ctx context.Context, userID uint, activityType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("activities").
		Where("user_id = ? AND type = ?", userID, activityType).
		Count(&count).Error
	return count, err
}

// RatingsByUser はユーザーのratedアクティビティの評点一覧を返します。
func (r *activityStatsMySQL) RatingsByUser(ctx context.Context, userID uint) ([]int, error) {
	ratings := make([]int, 0)
	err := r.db.WithContext(ctx).
		Table("activities").
		Where("user_id = ? AND type = ? AND rating IS NOT NULL", userID, "rated").
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// WatchedTimesByUser は指定時刻以降のwatchedアクティビティの発生時刻を返します。
func (r *activityStatsMySQL) WatchedTimesByUser(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
	times := make([]time.Time, 0)
	err := r.db.WithContext(ctx).
		Table("activities").
		Where("user_id = ? AND type = ? AND created_at >= ?", userID, "watched", since).
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// favoriteStatsMySQL はFavoriteCounterインターフェースのMySQL実装です。
type favoriteStatsMySQL struct {
	db *gorm.DB
}

// favoriteStatsMySQLがFavoriteCounterを実装していることをコンパイル時に検証します。
var _ usecase.FavoriteCounter = (*favoriteStatsMySQL)(nil)

// NewFavoriteStatsMySQL は指定されたgorm.DB接続でfavoriteStatsMySQLの新しいインスタンスを生成します。
func NewFavoriteStatsMySQL(db *gorm.DB) *favoriteStatsMySQL {
	return &favoriteStatsMySQL{db: db}
}

// CountByUser はユーザーのお気に入り件数を返します。
func (r *favoriteStatsMySQL) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("favorites").
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
