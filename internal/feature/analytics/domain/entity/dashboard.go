// Package entity defines the analytics result models.
package entity

// MonthlyStat is the number of movies watched in one calendar month.
type MonthlyStat struct {
	Month   string `json:"month"`
	Watched int    `json:"watched"`
}

// Dashboard aggregates a user's viewing history into headline numbers.
type Dashboard struct {
	TotalMoviesWatched int64         `json:"totalMoviesWatched"`
	AverageRating      float64       `json:"averageRating"`
	MonthlyStats       []MonthlyStat `json:"monthlyStats"`
	FavoritesCount     int64         `json:"favoritesCount"`
	WatchingStreak     int           `json:"watchingStreak"`
}

// Insight is a single human-readable observation about viewing habits.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
