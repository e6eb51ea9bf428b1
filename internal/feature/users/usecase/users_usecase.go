// Package usecase はusersフィーチャー（お気に入り・ウォッチリスト）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"movie_backend/internal/feature/users/domain/entity"
)

// MovieRef はお気に入り・ウォッチリストに追加する映画の参照情報です。
// カタログのフィールドを非正規化して保持します。
type MovieRef struct {
	MovieID     int64
	Title       string
	PosterPath  string
	ReleaseDate string
	VoteAverage float64
}

// FavoriteRepository はお気に入りの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FavoriteRepository interface {
	// ListByUser はユーザーのお気に入りを追加日時の降順で取得します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error)
	// ExistsByUserAndMovie は指定の映画が既にお気に入りに存在するかを返します。
	ExistsByUserAndMovie(ctx context.Context, userID uint, movieID int64) (bool, error)
	// Create は新しいお気に入りを永続化します。
	Create(ctx context.Context, fav *entity.Favorite) error
	// DeleteByUserAndMovie は指定の映画をお気に入りから削除します。
	// 該当行が存在しない場合もエラーにはなりません（冪等）。
	DeleteByUserAndMovie(ctx context.Context, userID uint, movieID int64) error
}

// WatchlistRepository はウォッチリストの永続化層を抽象化します。
type WatchlistRepository interface {
	// ListByUser はユーザーのウォッチリストを（収録映画込みで）取得します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Watchlist, error)
	// Create は新しいウォッチリストを永続化します。
	Create(ctx context.Context, wl *entity.Watchlist) error
	// FindByIDAndUser はIDとオーナーでウォッチリストを取得します。
	// 見つからない場合はErrWatchlistNotFoundを返します。
	FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.Watchlist, error)
	// AddMovie はウォッチリストに映画を追加します。
	AddMovie(ctx context.Context, m *entity.WatchlistMovie) error
}

// usersUsecase はお気に入り・ウォッチリスト操作のビジネスロジックを実装します。
type usersUsecase struct {
	favorites  FavoriteRepository
	watchlists WatchlistRepository
}

// NewUsersUsecase はusersUsecaseの新しいインスタンスを生成します。
func NewUsersUsecase(favorites FavoriteRepository, watchlists WatchlistRepository) *usersUsecase {
	return &usersUsecase{favorites: favorites, watchlists: watchlists}
}

// ListFavorites はユーザーのお気に入り一覧を取得します。
func (u *usersUsecase) ListFavorites(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	return u.favorites.ListByUser(ctx, userID)
}

// AddFavorite は映画をお気に入りに追加します。
// 既に同じmovieIdが存在する場合はErrMovieAlreadyInFavoritesを返します。
//
// 重複チェックと挿入は別クエリであり、同一ユーザーの同時リクエスト間では
// アトミックではありません（check-then-actの競合ウィンドウ）。単一ユーザーの
// 低頻度操作なので許容しています。
func (u *usersUsecase) AddFavorite(ctx context.Context, userID uint, ref MovieRef) (*entity.Favorite, error) {
	exists, err := u.favorites.ExistsByUserAndMovie(ctx, userID, ref.MovieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMovieAlreadyInFavorites
	}

	fav := &entity.Favorite{
		UserID:      userID,
		MovieID:     ref.MovieID,
		Title:       ref.Title,
		PosterPath:  ref.PosterPath,
		ReleaseDate: ref.ReleaseDate,
		VoteAverage: ref.VoteAverage,
		AddedAt:     time.Now(),
	}
	if err := u.favorites.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// RemoveFavorite は映画をお気に入りから削除します。
// 存在しないmovieIdを指定しても成功として扱います（冪等）。
func (u *usersUsecase) RemoveFavorite(ctx context.Context, userID uint, movieID int64) error {
	return u.favorites.DeleteByUserAndMovie(ctx, userID, movieID)
}

// ListWatchlists はユーザーのウォッチリスト一覧を取得します。
func (u *usersUsecase) ListWatchlists(ctx context.Context, userID uint) ([]entity.Watchlist, error) {
	return u.watchlists.ListByUser(ctx, userID)
}

// CreateWatchlist は空のウォッチリストを作成します。
func (u *usersUsecase) CreateWatchlist(ctx context.Context, userID uint, name string) (*entity.Watchlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	wl := &entity.Watchlist{
		UserID:    userID,
		Name:      name,
		Movies:    []entity.WatchlistMovie{},
		CreatedAt: time.Now(),
	}
	if err := u.watchlists.Create(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

// AddWatchlistMovie は指定のウォッチリストに映画を追加します。
// ウォッチリストが存在しない（または他人のもの）場合はErrWatchlistNotFound、
// 既に同じ映画が含まれる場合はErrMovieAlreadyInWatchlistを返します。
func (u *usersUsecase) AddWatchlistMovie(ctx context.Context, userID, watchlistID uint, ref MovieRef) (*entity.Watchlist, error) {
	wl, err := u.watchlists.FindByIDAndUser(ctx, watchlistID, userID)
	if err != nil {
		return nil, err
	}

	for _, m := range wl.Movies {
		if m.MovieID == ref.MovieID {
			return nil, ErrMovieAlreadyInWatchlist
		}
	}

	m := &entity.WatchlistMovie{
		WatchlistID: wl.ID,
		MovieID:     ref.MovieID,
		Title:       ref.Title,
		PosterPath:  ref.PosterPath,
		ReleaseDate: ref.ReleaseDate,
		VoteAverage: ref.VoteAverage,
		AddedAt:     time.Now(),
	}
	if err := u.watchlists.AddMovie(ctx, m); err != nil {
		return nil, err
	}

	wl.Movies = append(wl.Movies, *m)
	return wl, nil
}
