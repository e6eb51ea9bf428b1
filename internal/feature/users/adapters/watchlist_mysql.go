package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movie_backend/internal/feature/users/domain/entity"
	"movie_backend/internal/feature/users/usecase"
)

// watchlistMySQL はWatchlistRepositoryインターフェースのMySQL実装です。
type watchlistMySQL struct {
	db *gorm.DB
}

// watchlistMySQLがWatchlistRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WatchlistRepository = (*watchlistMySQL)(nil)

// NewWatchlistMySQL は指定されたgorm.DB接続でwatchlistMySQLの新しいインスタンスを生成します。
func NewWatchlistMySQL(db *gorm.DB) *watchlistMySQL {
	return &watchlistMySQL{db: db}
}

// ListByUser はユーザーのウォッチリストを収録映画込みで取得します。
func (r *watchlistMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Watchlist, error) {
	lists := make([]entity.Watchlist, 0)
	err := r.db.WithContext(ctx).
		Preload("Movies").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// Create は新しいウォッチリストを永続化します。
func (r *watchlistMySQL) Create(ctx context.Context, wl *entity.Watchlist) error {
	return r.db.WithContext(ctx).Create(wl).Error
}

// FindByIDAndUser はIDとオーナーでウォッチリストを取得します。
// 見つからない場合はusecase.ErrWatchlistNotFoundを返します。
func (r *watchlistMySQL) FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.Watchlist, error) {
	var wl entity.Watchlist
	err := r.db.WithContext(ctx).
		Preload("Movies").
		Where("id = ? AND user_id = ?", id, userID).
		First(&wl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrWatchlistNotFound
		}
		return nil, err
	}
	return &wl, nil
}

// AddMovie はウォッチリストに映画を追加します。
func (r *watchlistMySQL) AddMovie(ctx context.Context, m *entity.WatchlistMovie) error {
	return r.db.WithContext(ctx).Create(m).Error
}
