// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrQueryRequired is returned when a search operation is invoked without a query.
	ErrQueryRequired = errors.New("search query is required")
)
