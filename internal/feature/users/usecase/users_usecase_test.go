package usecase

import (
	"context"
	"errors"
	"testing"

	"movie_backend/internal/feature/users/domain/entity"
)

// mockFavoriteRepository is a mock implementation of the FavoriteRepository interface.
type mockFavoriteRepository struct {
	ListByUserFunc           func(ctx context.Context, userID uint) ([]entity.Favorite, error)
	ExistsByUserAndMovieFunc func(ctx context.Context, userID uint, movieID int64) (bool, error)
	CreateFunc               func(ctx context.Context, fav *entity.Favorite) error
	DeleteByUserAndMovieFunc func(ctx context.Context, userID uint, movieID int64) error
	CreateCalls              int
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []entity.Favorite{}, nil
}

func (m *mockFavoriteRepository) ExistsByUserAndMovie(ctx context.Context, userID uint, movieID int64) (bool, error) {
	if m.ExistsByUserAndMovieFunc != nil {
		return m.ExistsByUserAndMovieFunc(ctx, userID, movieID)
	}
	return false, nil
}

func (m *mockFavoriteRepository) Create(ctx context.Context, fav *entity.Favorite) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fav)
	}
	return nil
}

func (m *mockFavoriteRepository) DeleteByUserAndMovie(ctx context.Context, userID uint, movieID int64) error {
	if m.DeleteByUserAndMovieFunc != nil {
		return m.DeleteByUserAndMovieFunc(ctx, userID, movieID)
	}
	return nil
}

// mockWatchlistRepository is a mock implementation of the WatchlistRepository interface.
type mockWatchlistRepository struct {
	ListByUserFunc      func(ctx context.Context, userID uint) ([]entity.Watchlist, error)
	CreateFunc          func(ctx context.Context, wl *entity.Watchlist) error
	FindByIDAndUserFunc func(ctx context.Context, id, userID uint) (*entity.Watchlist, error)
	AddMovieFunc        func(ctx context.Context, m *entity.WatchlistMovie) error
	AddMovieCalls       int
}

func (m *mockWatchlistRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Watchlist, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []entity.Watchlist{}, nil
}

func (m *mockWatchlistRepository) Create(ctx context.Context, wl *entity.Watchlist) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, wl)
	}
	return nil
}

func (m *mockWatchlistRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.Watchlist, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	return nil, ErrWatchlistNotFound
}

func (m *mockWatchlistRepository) AddMovie(ctx context.Context, mv *entity.WatchlistMovie) error {
	m.AddMovieCalls++
	if m.AddMovieFunc != nil {
		return m.AddMovieFunc(ctx, mv)
	}
	return nil
}

func inceptionRef() MovieRef {
	return MovieRef{
		MovieID:     27205,
		Title:       "Inception",
		PosterPath:  "/poster.jpg",
		ReleaseDate: "2010-07-16",
		VoteAverage: 8.4,
	}
}

func TestUsersUsecase_AddFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("new favorite is persisted with AddedAt", func(t *testing.T) {
		favorites := &mockFavoriteRepository{
			CreateFunc: func(ctx context.Context, fav *entity.Favorite) error {
				if fav.AddedAt.IsZero() {
					t.Error("AddedAt is not set")
				}
				return nil
			},
		}
		uc := NewUsersUsecase(favorites, &mockWatchlistRepository{})

		fav, err := uc.AddFavorite(ctx, 1, inceptionRef())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fav.MovieID != 27205 || fav.UserID != 1 {
			t.Errorf("unexpected favorite: %+v", fav)
		}
	})

	t.Run("duplicate movie is rejected", func(t *testing.T) {
		favorites := &mockFavoriteRepository{
			ExistsByUserAndMovieFunc: func(ctx context.Context, userID uint, movieID int64) (bool, error) {
				return true, nil
			},
		}
		uc := NewUsersUsecase(favorites, &mockWatchlistRepository{})

		_, err := uc.AddFavorite(ctx, 1, inceptionRef())

		if !errors.Is(err, ErrMovieAlreadyInFavorites) {
			t.Errorf("expected ErrMovieAlreadyInFavorites, got: %v", err)
		}
		if favorites.CreateCalls != 0 {
			t.Error("Create should not be called for a duplicate")
		}
	})
}

func TestUsersUsecase_RemoveFavorite(t *testing.T) {
	t.Run("absent movie is still a success", func(t *testing.T) {
		favorites := &mockFavoriteRepository{
			DeleteByUserAndMovieFunc: func(ctx context.Context, userID uint, movieID int64) error {
				return nil // no rows affected is not an error
			},
		}
		uc := NewUsersUsecase(favorites, &mockWatchlistRepository{})

		if err := uc.RemoveFavorite(context.Background(), 1, 99999); err != nil {
			t.Errorf("expected idempotent success, got: %v", err)
		}
	})
}

func TestUsersUsecase_CreateWatchlist(t *testing.T) {
	ctx := context.Background()

	t.Run("name is trimmed", func(t *testing.T) {
		watchlists := &mockWatchlistRepository{
			CreateFunc: func(ctx context.Context, wl *entity.Watchlist) error {
				if wl.Name != "Halloween marathon" {
					t.Errorf("expected trimmed name, got: %q", wl.Name)
				}
				return nil
			},
		}
		uc := NewUsersUsecase(&mockFavoriteRepository{}, watchlists)

		wl, err := uc.CreateWatchlist(ctx, 1, "  Halloween marathon  ")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wl.Movies == nil {
			t.Error("Movies should be an empty slice, not nil")
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		uc := NewUsersUsecase(&mockFavoriteRepository{}, &mockWatchlistRepository{})

		_, err := uc.CreateWatchlist(ctx, 1, "   ")

		if !errors.Is(err, ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got: %v", err)
		}
	})
}

func TestUsersUsecase_AddWatchlistMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("movie is appended to the owned watchlist", func(t *testing.T) {
		watchlists := &mockWatchlistRepository{
			FindByIDAndUserFunc: func(ctx context.Context, id, userID uint) (*entity.Watchlist, error) {
				return &entity.Watchlist{ID: id, UserID: userID, Name: "Sci-Fi"}, nil
			},
		}
		uc := NewUsersUsecase(&mockFavoriteRepository{}, watchlists)

		wl, err := uc.AddWatchlistMovie(ctx, 1, 5, inceptionRef())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(wl.Movies) != 1 || wl.Movies[0].MovieID != 27205 {
			t.Errorf("movie not appended: %+v", wl.Movies)
		}
	})

	t.Run("unknown or foreign watchlist returns not found", func(t *testing.T) {
		uc := NewUsersUsecase(&mockFavoriteRepository{}, &mockWatchlistRepository{})

		_, err := uc.AddWatchlistMovie(ctx, 1, 5, inceptionRef())

		if !errors.Is(err, ErrWatchlistNotFound) {
			t.Errorf("expected ErrWatchlistNotFound, got: %v", err)
		}
	})

	t.Run("duplicate movie in the list is rejected", func(t *testing.T) {
		watchlists := &mockWatchlistRepository{
			FindByIDAndUserFunc: func(ctx context.Context, id, userID uint) (*entity.Watchlist, error) {
				return &entity.Watchlist{
					ID:     id,
					UserID: userID,
					Movies: []entity.WatchlistMovie{{WatchlistID: id, MovieID: 27205}},
				}, nil
			},
		}
		uc := NewUsersUsecase(&mockFavoriteRepository{}, watchlists)

		_, err := uc.AddWatchlistMovie(ctx, 1, 5, inceptionRef())

		if !errors.Is(err, ErrMovieAlreadyInWatchlist) {
			t.Errorf("expected ErrMovieAlreadyInWatchlist, got: %v", err)
		}
		if watchlists.AddMovieCalls != 0 {
			t.Error("AddMovie should not be called for a duplicate")
		}
	})
}
