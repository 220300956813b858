package repository

import (
	"context"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return xcontext.DB(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "name=?", name).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteByID removes a user together with everything they authored and
// every follow edge they take part in.
func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx)

	err := tx.Where("author_id=?", id).Delete(&entity.Comment{}).Error
	if err != nil {
		return err
	}

	err = tx.Where("post_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).Model(&entity.Post{}).Select("id").Where("author_id=?", id),
	).Delete(&entity.Comment{}).Error
	if err != nil {
		return err
	}

	if err := tx.Where("author_id=?", id).Delete(&entity.Post{}).Error; err != nil {
		return err
	}

	err = tx.Where("user_id=? OR author_id=?", id, id).Delete(&entity.Follow{}).Error
	if err != nil {
		return err
	}

	return tx.Delete(&entity.User{}, "id=?", id).Error
}
