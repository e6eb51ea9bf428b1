// Package usecase はsocialフィーチャー（アクティビティ・フィード・フォロー）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"movie_backend/internal/feature/social/domain/entity"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 50
)

// ActivityInput はアクティビティ作成の入力値です。
// Typeに応じて必須となるフィールドはentity.Activity.Validateが検証します。
type ActivityInput struct {
	Type             string
	MovieID          *int64
	TVShowID         *int64
	Rating           *int
	Text             string
	TargetUserID     *uint
	TargetActivityID *uint
}

// ActivityRepository はアクティビティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ActivityRepository interface {
	// Create は新しいアクティビティを永続化します。
	Create(ctx context.Context, a *entity.Activity) error
	// FeedByUsers は指定した著者集合のアクティビティを
	// CreatedAt降順（同時刻はID降順）で取得します。
	FeedByUsers(ctx context.Context, userIDs []uint, offset, limit int) ([]entity.Activity, error)
}

// FollowRepository はフォロー関係の永続化層を抽象化します。
type FollowRepository interface {
	// Create はフォローエッジを永続化します。
	// 既に存在する場合はErrAlreadyFollowingを返します。
	Create(ctx context.Context, f *entity.Follow) error
	// FolloweeIDs はユーザーがフォローしている相手のID一覧を返します。
	FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error)
}

// socialUsecase はアクティビティ・フィード・フォロー操作のビジネスロジックを実装します。
type socialUsecase struct {
	activities ActivityRepository
	follows    FollowRepository
}

// NewSocialUsecase はsocialUsecaseの新しいインスタンスを生成します。
func NewSocialUsecase(activities ActivityRepository, follows FollowRepository) *socialUsecase {
	return &socialUsecase{activities: activities, follows: follows}
}

// CreateActivity はアクティビティを検証してから永続化します。
// 検証違反はentity.ErrInvalidActivityをラップして返します。
// liked/commentedを作成しても対象アクティビティのカウンターは更新しません。
func (u *socialUsecase) CreateActivity(ctx context.Context, userID uint, in ActivityInput) (*entity.Activity, error) {
	a := &entity.Activity{
		UserID:           userID,
		Type:             entity.ActivityType(in.Type),
		MovieID:          in.MovieID,
		TVShowID:         in.TVShowID,
		Rating:           in.Rating,
		Text:             in.Text,
		TargetUserID:     in.TargetUserID,
		TargetActivityID: in.TargetActivityID,
		CreatedAt:        time.Now(),
	}
	// ratedの本文は採点の付帯情報として扱わず破棄します。
	if a.Type == entity.ActivityRated {
		a.Text = ""
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := u.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetFeed は本人とフォロー相手のアクティビティを新しい順に返します。
// page<1は1、limit<1は10に正規化し、limitは50を上限とします。
// 未知のユーザー（フォローもアクティビティも無い）には空ページを返します。
func (u *socialUsecase) GetFeed(ctx context.Context, userID uint, page, limit int) ([]entity.Activity, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	followees, err := u.follows.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authors := append(followees, userID)

	return u.activities.FeedByUsers(ctx, authors, (page-1)*limit, limit)
}

// FollowUser はフォローエッジとfollowedアクティビティを記録します。
// 自分自身へのフォローはErrSelfFollow、既存エッジの再フォローは
// 成功として扱います（冪等、アクティビティは追加しません）。
func (u *socialUsecase) FollowUser(ctx context.Context, followerID, followeeID uint) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	f := &entity.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	if err := u.follows.Create(ctx, f); err != nil {
		if errors.Is(err, ErrAlreadyFollowing) {
			return nil
		}
		return err
	}

	a := &entity.Activity{
		UserID:       followerID,
		Type:         entity.ActivityFollowed,
		TargetUserID: &followeeID,
		CreatedAt:    time.Now(),
	}
	return u.activities.Create(ctx, a)
}
