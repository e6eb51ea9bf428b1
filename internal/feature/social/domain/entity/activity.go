// Package entity defines the social domain models.
package entity

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalidActivity is returned when an activity violates the
// required fields of its type.
var ErrInvalidActivity = errors.New("invalid activity")

// ActivityType identifies what kind of event an activity records.
type ActivityType string

const (
	ActivityPost             ActivityType = "post"
	ActivityWatched          ActivityType = "watched"
	ActivityRated            ActivityType = "rated"
	ActivityAddedToWatchlist ActivityType = "added_to_watchlist"
	ActivityCommented        ActivityType = "commented"
	ActivityLiked            ActivityType = "liked"
	ActivityFollowed         ActivityType = "followed"
)

// maxActivityTextLen is the upper bound for free-form activity text.
const maxActivityTextLen = 500

// Activity is an immutable entry in a user's social history.
// Which optional fields must be set depends on Type; Validate enforces
// the rules. LikesCount and CommentsCount are denormalized counters.
type Activity struct {
	// ID is the primary key.
	ID uint `gorm:"primarykey" json:"id"`
	// UserID is the author. Indexed together with CreatedAt because the
	// feed query filters by author set and sorts by recency.
	UserID uint `gorm:"index:idx_activities_user_created,priority:1" json:"userId"`
	// Type is one of the ActivityType constants.
	Type ActivityType `gorm:"size:32;not null" json:"type"`
	// MovieID references a catalog movie (watched / rated / added_to_watchlist).
	MovieID *int64 `json:"movieId,omitempty"`
	// TVShowID references a catalog TV show.
	TVShowID *int64 `json:"tvShowId,omitempty"`
	// Rating is a 1-5 score (rated only).
	Rating *int `json:"rating,omitempty"`
	// Text is the free-form body (post / commented).
	Text string `gorm:"size:500" json:"text,omitempty"`
	// TargetUserID is the user being followed (followed only).
	TargetUserID *uint `json:"targetUserId,omitempty"`
	// TargetActivityID is the activity being commented on or liked.
	TargetActivityID *uint `json:"targetActivityId,omitempty"`
	// LikesCount is the number of likes received.
	LikesCount int `gorm:"default:0" json:"likesCount"`
	// CommentsCount is the number of comments received.
	CommentsCount int `gorm:"default:0" json:"commentsCount"`
	// CreatedAt is when the activity happened.
	CreatedAt time.Time `gorm:"index:idx_activities_user_created,priority:2" json:"createdAt"`
}

// Validate enforces the per-type required fields. All violations are
// wrapped in ErrInvalidActivity so callers can classify them.
func (a *Activity) Validate() error {
	if utf8.RuneCountInString(a.Text) > maxActivityTextLen {
		return fmt.Errorf("%w: text exceeds %d characters", ErrInvalidActivity, maxActivityTextLen)
	}

	switch a.Type {
	case ActivityPost:
		if a.Text == "" {
			return fmt.Errorf("%w: post requires text", ErrInvalidActivity)
		}
	case ActivityWatched, ActivityAddedToWatchlist:
		if a.MovieID == nil {
			return fmt.Errorf("%w: %s requires movieId", ErrInvalidActivity, a.Type)
		}
	case ActivityRated:
		if a.MovieID == nil {
			return fmt.Errorf("%w: rated requires movieId", ErrInvalidActivity)
		}
		if a.Rating == nil || *a.Rating < 1 || *a.Rating > 5 {
			return fmt.Errorf("%w: rated requires rating between 1 and 5", ErrInvalidActivity)
		}
	case ActivityCommented:
		if a.TargetActivityID == nil {
			return fmt.Errorf("%w: commented requires targetActivityId", ErrInvalidActivity)
		}
		if a.Text == "" {
			return fmt.Errorf("%w: commented requires text", ErrInvalidActivity)
		}
	case ActivityLiked:
		if a.TargetActivityID == nil {
			return fmt.Errorf("%w: liked requires targetActivityId", ErrInvalidActivity)
		}
	case ActivityFollowed:
		if a.TargetUserID == nil {
			return fmt.Errorf("%w: followed requires targetUserId", ErrInvalidActivity)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidActivity, a.Type)
	}
	return nil
}
