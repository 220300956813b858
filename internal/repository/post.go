package repository

import (
	"context"
	"database/sql"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// PostFilter narrows a post listing. Zero-valued fields are ignored. At
// most one of AuthorID, GroupID and FollowedByUserID is set per call.
type PostFilter struct {
	AuthorID string
	GroupID  string

	// FollowedByUserID restricts the listing to posts authored by users
	// this user follows.
	FollowedByUserID string
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetList(ctx context.Context, filter PostFilter, offset, limit int64) ([]entity.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	Update(ctx context.Context, id, text string, groupID sql.NullString, image string) error
	DeleteByID(ctx context.Context, id string) error
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return xcontext.DB(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var result entity.Post
	err := xcontext.DB(ctx).
		Preload("Author").
		Preload("Group").
		Take(&result, "posts.id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func applyPostFilter(tx *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.AuthorID != "" {
		tx = tx.Where("posts.author_id=?", filter.AuthorID)
	}

	if filter.GroupID != "" {
		tx = tx.Where("posts.group_id=?", filter.GroupID)
	}

	if filter.FollowedByUserID != "" {
		tx = tx.Joins("join follows on follows.author_id=posts.author_id").
			Where("follows.user_id=?", filter.FollowedByUserID)
	}

	return tx
}

// GetList returns a window of posts, newest first. Ties on the creation
// timestamp break on id so repeated listings never shuffle.
func (r *postRepository) GetList(
	ctx context.Context, filter PostFilter, offset, limit int64,
) ([]entity.Post, error) {
	var result []entity.Post
	err := applyPostFilter(xcontext.DB(ctx).Model(&entity.Post{}), filter).
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Offset(int(offset)).Limit(int(limit)).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	err := applyPostFilter(xcontext.DB(ctx).Model(&entity.Post{}), filter).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Update rewrites the mutable columns of a post. Author and creation
// timestamp never change.
func (r *postRepository) Update(
	ctx context.Context, id, text string, groupID sql.NullString, image string,
) error {
	tx := xcontext.DB(ctx).Model(&entity.Post{}).
		Where("id=?", id).
		Updates(map[string]any{
			"text":     text,
			"group_id": groupID,
			"image":    image,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *postRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx)

	if err := tx.Where("post_id=?", id).Delete(&entity.Comment{}).Error; err != nil {
		return err
	}

	return tx.Delete(&entity.Post{}, "id=?", id).Error
}
