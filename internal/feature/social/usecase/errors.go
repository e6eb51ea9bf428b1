// Package usecase error definitions.
package usecase

import "errors"

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("cannot follow yourself")

// ErrAlreadyFollowing is returned by the repository when the follow
// edge already exists. The usecase treats it as success.
var ErrAlreadyFollowing = errors.New("already following")
