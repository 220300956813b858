package repository

import (
	"context"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Group, error)
	GetList(ctx context.Context) ([]entity.Group, error)
	DeleteByID(ctx context.Context, id string) error
}

type groupRepository struct{}

func NewGroupRepository() *groupRepository {
	return &groupRepository{}
}

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	return xcontext.DB(ctx).Create(group).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var result entity.Group
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*entity.Group, error) {
	var result entity.Group
	if err := xcontext.DB(ctx).Take(&result, "slug=?", slug).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *groupRepository) GetList(ctx context.Context) ([]entity.Group, error) {
	var result []entity.Group
	if err := xcontext.DB(ctx).Order("title ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteByID removes the group. Posts that referenced it survive without a
// group.
func (r *groupRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx)

	err := tx.Model(&entity.Post{}).Where("group_id=?", id).Update("group_id", nil).Error
	if err != nil {
		return err
	}

	return tx.Delete(&entity.Group{}, "id=?", id).Error
}
