package usecase

import (
	"context"
	"testing"
	"time"
)

// mockActivityReader is a mock implementation of the ActivityReader interface.
type mockActivityReader struct {
	CountByUserAndTypeFunc func(ctx context.Context, userID uint, activityType string) (int64, error)
	RatingsByUserFunc      func(ctx context.Context, userID uint) ([]int, error)
	WatchedTimesByUserFunc func(ctx context.Context, userID uint, since time.Time) ([]time.Time, error)
}

func (m *mockActivityReader) CountByUserAndType(ctx context.Context, userID uint, activityType string) (int64, error) {
	if m.CountByUserAndTypeFunc != nil {
		return m.CountByUserAndTypeFunc(ctx, userID, activityType)
	}
	return 0, nil
}

func (m *mockActivityReader) RatingsByUser(ctx context.Context, userID uint) ([]int, error) {
	if m.RatingsByUserFunc != nil {
		return m.RatingsByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockActivityReader) WatchedTimesByUser(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
	if m.WatchedTimesByUserFunc != nil {
		return m.WatchedTimesByUserFunc(ctx, userID, since)
	}
	return nil, nil
}

// mockFavoriteCounter is a mock implementation of the FavoriteCounter interface.
type mockFavoriteCounter struct {
	CountByUserFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockFavoriteCounter) CountByUser(ctx context.Context, userID uint) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}

// fixedNow is the reference time used by the dashboard tests.
var fixedNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func newTestUsecase(activities *mockActivityReader, favorites *mockFavoriteCounter) *analyticsUsecase {
	uc := NewAnalyticsUsecase(activities, favorites)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestAnalyticsUsecase_Dashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates store data", func(t *testing.T) {
		activities := &mockActivityReader{
			CountByUserAndTypeFunc: func(ctx context.Context, userID uint, activityType string) (int64, error) {
				if activityType != "watched" {
					t.Errorf("unexpected type: %q", activityType)
				}
				return 42, nil
			},
			RatingsByUserFunc: func(ctx context.Context, userID uint) ([]int, error) {
				return []int{5, 4, 4}, nil
			},
			WatchedTimesByUserFunc: func(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
				// Two watches in August, one in July
				return []time.Time{
					fixedNow,
					fixedNow.AddDate(0, 0, -1),
					fixedNow.AddDate(0, -1, 0),
				}, nil
			},
		}
		favorites := &mockFavoriteCounter{
			CountByUserFunc: func(ctx context.Context, userID uint) (int64, error) {
				return 7, nil
			},
		}
		uc := newTestUsecase(activities, favorites)

		d, err := uc.Dashboard(ctx, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.TotalMoviesWatched != 42 {
			t.Errorf("expected 42 watched, got %d", d.TotalMoviesWatched)
		}
		if d.AverageRating != 4.3 {
			t.Errorf("expected average 4.3, got %v", d.AverageRating)
		}
		if d.FavoritesCount != 7 {
			t.Errorf("expected 7 favorites, got %d", d.FavoritesCount)
		}
		if len(d.MonthlyStats) != 6 {
			t.Fatalf("expected 6 months, got %d", len(d.MonthlyStats))
		}
		// Oldest month first, current month last
		if d.MonthlyStats[5].Month != "Aug" || d.MonthlyStats[5].Watched != 2 {
			t.Errorf("unexpected current month: %+v", d.MonthlyStats[5])
		}
		if d.MonthlyStats[4].Month != "Jul" || d.MonthlyStats[4].Watched != 1 {
			t.Errorf("unexpected previous month: %+v", d.MonthlyStats[4])
		}
		if d.MonthlyStats[0].Month != "Mar" || d.MonthlyStats[0].Watched != 0 {
			t.Errorf("unexpected oldest month: %+v", d.MonthlyStats[0])
		}
	})

	t.Run("no ratings means zero average", func(t *testing.T) {
		uc := newTestUsecase(&mockActivityReader{}, &mockFavoriteCounter{})

		d, err := uc.Dashboard(ctx, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.AverageRating != 0 {
			t.Errorf("expected zero average, got %v", d.AverageRating)
		}
	})
}

func TestAnalyticsUsecase_WatchingStreak(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		watched        []time.Time
		expectedStreak int
	}{
		{
			name:           "no watches",
			watched:        nil,
			expectedStreak: 0,
		},
		{
			name: "three consecutive days ending today",
			watched: []time.Time{
				fixedNow,
				fixedNow.AddDate(0, 0, -1),
				fixedNow.AddDate(0, 0, -2),
			},
			expectedStreak: 3,
		},
		{
			name: "streak still counts when today is unwatched",
			watched: []time.Time{
				fixedNow.AddDate(0, 0, -1),
				fixedNow.AddDate(0, 0, -2),
			},
			expectedStreak: 2,
		},
		{
			name: "gap breaks the streak",
			watched: []time.Time{
				fixedNow,
				fixedNow.AddDate(0, 0, -2),
			},
			expectedStreak: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := &mockActivityReader{
				WatchedTimesByUserFunc: func(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
					return tt.watched, nil
				},
			}
			uc := newTestUsecase(activities, &mockFavoriteCounter{})

			d, err := uc.Dashboard(ctx, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.WatchingStreak != tt.expectedStreak {
				t.Errorf("expected streak %d, got %d", tt.expectedStreak, d.WatchingStreak)
			}
		})
	}
}

func TestAnalyticsUsecase_Insights(t *testing.T) {
	ctx := context.Background()

	t.Run("streak insight when streak is long enough", func(t *testing.T) {
		activities := &mockActivityReader{
			WatchedTimesByUserFunc: func(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
				return []time.Time{
					fixedNow,
					fixedNow.AddDate(0, 0, -1),
					fixedNow.AddDate(0, 0, -2),
				}, nil
			},
		}
		favorites := &mockFavoriteCounter{
			CountByUserFunc: func(ctx context.Context, userID uint) (int64, error) { return 3, nil },
		}
		uc := newTestUsecase(activities, favorites)

		insights, err := uc.Insights(ctx, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, in := range insights {
			if in.Type == "streak" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a streak insight, got: %+v", insights)
		}
	})

	t.Run("empty history still produces at least one insight", func(t *testing.T) {
		activities := &mockActivityReader{}
		favorites := &mockFavoriteCounter{
			CountByUserFunc: func(ctx context.Context, userID uint) (int64, error) { return 1, nil },
		}
		uc := newTestUsecase(activities, favorites)

		insights, err := uc.Insights(ctx, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(insights) == 0 {
			t.Error("expected at least one insight")
		}
	})
}
