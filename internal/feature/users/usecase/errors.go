// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrMovieAlreadyInFavorites is returned when adding a movie that is already a favorite.
	ErrMovieAlreadyInFavorites = errors.New("movie already in favorites")

	// ErrMovieAlreadyInWatchlist is returned when adding a movie already present in a watchlist.
	ErrMovieAlreadyInWatchlist = errors.New("movie already in watchlist")

	// ErrWatchlistNotFound is returned when a watchlist id does not resolve for the user.
	ErrWatchlistNotFound = errors.New("watchlist not found")

	// ErrNameRequired is returned when creating a watchlist without a name.
	ErrNameRequired = errors.New("watchlist name is required")
)
