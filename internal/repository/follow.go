package repository

import (
	"context"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	Get(ctx context.Context, userID, authorID string) (*entity.Follow, error)
	Create(ctx context.Context, follow *entity.Follow) error
	Delete(ctx context.Context, userID, authorID string) error
	Count(ctx context.Context, userID string) (int64, error)
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Get(ctx context.Context, userID, authorID string) (*entity.Follow, error) {
	var result entity.Follow
	err := xcontext.DB(ctx).
		Where("user_id=? AND author_id=?", userID, authorID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Create inserts a follow edge. The pair is the primary key, so a
// concurrent duplicate collapses into a no-op instead of a second edge.
func (r *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow).Error
}

// Delete removes a follow edge if it exists. Deleting a missing edge is
// not an error.
func (r *followRepository) Delete(ctx context.Context, userID, authorID string) error {
	return xcontext.DB(ctx).
		Where("user_id=? AND author_id=?", userID, authorID).
		Delete(&entity.Follow{}).Error
}

// Count reports how many authors the user follows.
func (r *followRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("user_id=?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
