package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"movie_backend/internal/feature/social/domain/entity"
	"movie_backend/internal/feature/social/usecase"
)

// followMySQL はFollowRepositoryインターフェースのMySQL実装です。
type followMySQL struct {
	db *gorm.DB
}

// followMySQLがFollowRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FollowRepository = (*followMySQL)(nil)

// NewFollowMySQL は指定されたgorm.DB接続でfollowMySQLの新しいインスタンスを生成します。
func NewFollowMySQL(db *gorm.DB) *followMySQL {
	return &followMySQL{db: db}
}

// Create はフォローエッジを永続化します。
// (follower, followee)のユニーク制約違反はusecase.ErrAlreadyFollowingに変換します。
func (r *followMySQL) Create(ctx context.Context, f *entity.Follow) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAlreadyFollowing
		}
		// SQLite（テスト環境）のUNIQUE制約違反も同じsentinelに寄せる
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return usecase.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// FolloweeIDs はユーザーがフォローしている相手のID一覧を返します。
func (r *followMySQL) FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
