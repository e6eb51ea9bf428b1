// Package entity defines the domain entities for the users feature
// (favorites and watchlists).
package entity

import "time"

// Favorite is one movie in a user's favorites list.
// Catalog fields are denormalized so lists render without a catalog roundtrip.
type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UserID      uint      `gorm:"index;not null" json:"-"`
	MovieID     int64     `gorm:"not null" json:"movieId"`
	Title       string    `gorm:"size:255" json:"title"`
	PosterPath  string    `gorm:"size:255" json:"poster_path"`
	ReleaseDate string    `gorm:"size:16" json:"release_date"`
	VoteAverage float64   `json:"vote_average"`
	AddedAt     time.Time `json:"addedAt"`
}

// Watchlist is a named, user-curated list of movies.
type Watchlist struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"index;not null" json:"-"`
	Name      string           `gorm:"size:100;not null" json:"name"`
	Movies    []WatchlistMovie `gorm:"foreignKey:WatchlistID" json:"movies"`
	CreatedAt time.Time        `json:"createdAt"`
}

// WatchlistMovie is one movie inside a watchlist.
type WatchlistMovie struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	WatchlistID uint      `gorm:"index;not null" json:"-"`
	MovieID     int64     `gorm:"not null" json:"movieId"`
	Title       string    `gorm:"size:255" json:"title"`
	PosterPath  string    `gorm:"size:255" json:"poster_path"`
	ReleaseDate string    `gorm:"size:16" json:"release_date"`
	VoteAverage float64   `json:"vote_average"`
	AddedAt     time.Time `json:"addedAt"`
}
