// Package usecase はanalyticsフィーチャー（視聴統計・インサイト）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"movie_backend/internal/feature/analytics/domain/entity"
)

// monthsOfHistory はダッシュボードの月次集計の対象期間です。
const monthsOfHistory = 6

// ActivityReader はアクティビティ履歴の読み取りを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ActivityReader interface {
	// CountByUserAndType は指定タイプのアクティビティ件数を返します。
	CountByUserAndType(ctx context.Context, userID uint, activityType string) (int64, error)
	// RatingsByUser はユーザーのratedアクティビティの評点一覧を返します。
	RatingsByUser(ctx context.Context, userID uint) ([]int, error)
	// WatchedTimesByUser は指定時刻以降のwatchedアクティビティの発生時刻を返します。
	WatchedTimesByUser(ctx context.Context, userID uint, since time.Time) ([]time.Time, error)
}

// FavoriteCounter はお気に入り件数の読み取りを抽象化します。
type FavoriteCounter interface {
	// CountByUser はユーザーのお気に入り件数を返します。
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// analyticsUsecase は視聴統計の集計ロジックを提供します。
// 集計はすべてストアの実データから計算します。
type analyticsUsecase struct {
	activities ActivityReader
	favorites  FavoriteCounter
	now        func() time.Time
}

// NewAnalyticsUsecase はanalyticsUsecaseの新しいインスタンスを生成します。
func NewAnalyticsUsecase(activities ActivityReader, favorites FavoriteCounter) *analyticsUsecase {
	return &analyticsUsecase{activities: activities, favorites: favorites, now: time.Now}
}

// Dashboard はユーザーの視聴統計を集計して返します。
func (u *analyticsUsecase) Dashboard(ctx context.Context, userID uint) (*entity.Dashboard, error) {
	now := u.now()

	watched, err := u.activities.CountByUserAndType(ctx, userID, "watched")
	if err != nil {
		return nil, err
	}

	ratings, err := u.activities.RatingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favCount, err := u.favorites.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 月次集計とストリークは同じ取得結果から計算します。
	// ストリークが集計期間を超えて続くことは実用上想定しません。
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(monthsOfHistory - 1), 0)
	watchedTimes, err := u.activities.WatchedTimesByUser(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return &entity.Dashboard{
		TotalMoviesWatched: watched,
		AverageRating:      averageRating(ratings),
		MonthlyStats:       monthlyStats(watchedTimes, now),
		FavoritesCount:     favCount,
		WatchingStreak:     watchingStreak(watchedTimes, now),
	}, nil
}

// averageRating は評点の平均を小数第1位に丸めて返します。評点が無ければ0です。
func averageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

// monthlyStats は直近monthsOfHistoryか月の月別視聴本数を古い順に返します。
func monthlyStats(watchedTimes []time.Time, now time.Time) []entity.MonthlyStat {
	counts := make(map[string]int)
	for _, t := range watchedTimes {
		counts[t.Format("2006-01")]++
	}

	stats := make([]entity.MonthlyStat, 0, monthsOfHistory)
	for i := monthsOfHistory - 1; i >= 0; i-- {
		m := now.AddDate(0, -i, -now.Day()+1)
		stats = append(stats, entity.MonthlyStat{
			Month:   m.Format("Jan"),
			Watched: counts[m.Format("2006-01")],
		})
	}
	return stats
}

// watchingStreak は今日（今日が未視聴なら昨日）から遡って
// 連続して視聴した日数を返します。
func watchingStreak(watchedTimes []time.Time, now time.Time) int {
	days := make(map[string]bool)
	for _, t := range watchedTimes {
		days[t.Format("2006-01-02")] = true
	}

	cur := now
	if !days[cur.Format("2006-01-02")] {
		cur = cur.AddDate(0, 0, -1)
	}

	streak := 0
	for days[cur.Format("2006-01-02")] {
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}

// Insights はダッシュボードの数値からルールベースのインサイトを導出します。
// 該当するルールが無い場合も最低1件は返します。
func (u *analyticsUsecase) Insights(ctx context.Context, userID uint) ([]entity.Insight, error) {
	d, err := u.Dashboard(ctx, userID)
	if err != nil {
		return nil, err
	}

	insights := make([]entity.Insight, 0)

	if d.WatchingStreak >= 3 {
		insights = append(insights, entity.Insight{
			Type:        "streak",
			Title:       fmt.Sprintf("%d-day watching streak!", d.WatchingStreak),
			Description: "Keep it up! You're on track to beat your personal record",
			Icon:        "🔥",
		})
	}

	if n := len(d.MonthlyStats); n >= 2 {
		cur, prev := d.MonthlyStats[n-1].Watched, d.MonthlyStats[n-2].Watched
		if cur > prev {
			insights = append(insights, entity.Insight{
				Type:        "genre_trend",
				Title:       "You're watching more movies lately!",
				Description: fmt.Sprintf("You watched %d movies this month, up from %d last month", cur, prev),
				Icon:        "🚀",
			})
		}
	}

	if d.AverageRating >= 4 {
		insights = append(insights, entity.Insight{
			Type:        "ratings",
			Title:       "You've been loving what you watch",
			Description: fmt.Sprintf("Your average rating is %.1f out of 5", d.AverageRating),
			Icon:        "⭐",
		})
	}

	if d.FavoritesCount == 0 {
		insights = append(insights, entity.Insight{
			Type:        "recommendation",
			Title:       "Start building your favorites",
			Description: "Save movies you love to get better recommendations",
			Icon:        "❤️",
		})
	}

	if len(insights) == 0 {
		insights = append(insights, entity.Insight{
			Type:        "recommendation",
			Title:       "Try some documentaries",
			Description: "Based on your interests, you might enjoy nature documentaries",
			Icon:        "📚",
		})
	}

	return insights, nil
}
