package entity

import "time"

// Follow is a directed edge: Follower sees Followee's activities in
// their feed. The (follower, followee) pair is unique.
type Follow struct {
	// ID is the primary key.
	ID uint `gorm:"primarykey" json:"id"`
	// FollowerID is the user who follows.
	FollowerID uint `gorm:"uniqueIndex:idx_follows_edge,priority:1" json:"followerId"`
	// FolloweeID is the user being followed.
	FolloweeID uint `gorm:"uniqueIndex:idx_follows_edge,priority:2" json:"followeeId"`
	// CreatedAt is when the edge was created.
	CreatedAt time.Time `json:"createdAt"`
}
