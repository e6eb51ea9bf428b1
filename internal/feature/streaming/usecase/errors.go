// Package usecase error definitions.
package usecase

import "errors"

// ErrQueryRequired is returned when a cross-platform search query is empty.
var ErrQueryRequired = errors.New("query is required")
