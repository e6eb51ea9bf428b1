// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"movie_backend/internal/feature/users/domain/entity"
	"movie_backend/internal/feature/users/usecase"
)

// favoriteMySQL はFavoriteRepositoryインターフェースのMySQL実装です。
type favoriteMySQL struct {
	db *gorm.DB
}

// favoriteMySQLがFavoriteRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FavoriteRepository = (*favoriteMySQL)(nil)

// NewFavoriteMySQL は指定されたgorm.DB接続でfavoriteMySQLの新しいインスタンスを生成します。
func NewFavoriteMySQL(db *gorm.DB) *favoriteMySQL {
	return &favoriteMySQL{db: db}
}

// ListByUser はユーザーのお気に入りを追加日時の降順で取得します。
func (r *favoriteMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	favs := make([]entity.Favorite, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

// ExistsByUserAndMovie は指定の映画が既にお気に入りに存在するかを返します。
func (r *favoriteMySQL) ExistsByUserAndMovie(ctx context.Context, userID uint, movieID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create は新しいお気に入りを永続化します。
func (r *favoriteMySQL) Create(ctx context.Context, fav *entity.Favorite) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

// DeleteByUserAndMovie は指定の映画をお気に入りから削除します。
// 該当行が無い場合も成功として扱います（冪等）。
func (r *favoriteMySQL) DeleteByUserAndMovie(ctx context.Context, userID uint, movieID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&entity.Favorite{}).Error
}
