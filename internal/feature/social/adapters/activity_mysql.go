// Package adapters はsocialフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"movie_backend/internal/feature/social/domain/entity"
	"movie_backend/internal/feature/social/usecase"
)

// activityMySQL はActivityRepositoryインターフェースのMySQL実装です。
type activityMySQL struct {
	db *gorm.DB
}

// activityMySQLがActivityRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ActivityRepository = (*activityMySQL)(nil)

// NewActivityMySQL は指定されたgorm.DB接続でactivityMySQLの新しいインスタンスを生成します。
func NewActivityMySQL(db *gorm.DB) *activityMySQL {
	return &activityMySQL{db: db}
}

// Create は新しいアクティビティを永続化します。
func (r *activityMySQL) Create(ctx context.Context, a *entity.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FeedByUsers は指定した著者集合のアクティビティをページングして取得します。
// 同一CreatedAtの行はID降順で安定に並びます。
func (r *activityMySQL) FeedByUsers(ctx context.Context, userIDs []uint, offset, limit int) ([]entity.Activity, error) {
	acts := make([]entity.Activity, 0)
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&acts).Error
	if err != nil {
		return nil, err
	}
	return acts, nil
}
