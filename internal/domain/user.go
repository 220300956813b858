package domain

import (
	"context"
	"errors"

	"github.com/inkwell-lab/backend/internal/common"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetProfile(context.Context, *model.GetProfileRequest) (*model.GetProfileResponse, error)
}

type userDomain struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *userDomain {
	return &userDomain{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (d *userDomain) GetProfile(
	ctx context.Context, req *model.GetProfileRequest,
) (*model.GetProfileResponse, error) {
	author, err := d.userRepo.GetByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	filter := repository.PostFilter{AuthorID: author.ID}
	total, err := d.postRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return nil, errorx.Unknown
	}

	offset, limit, pagination := common.Paginate(ctx, total, common.ParsePageNumber(req.Page))
	posts, err := d.postRepo.GetList(ctx, filter, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	// The follow flag only makes sense for a logged-in visitor looking at
	// someone else.
	following := false
	if requestUserID := xcontext.RequestUserID(ctx); requestUserID != "" && requestUserID != author.ID {
		_, err := d.followRepo.Get(ctx, requestUserID, author.ID)
		if err == nil {
			following = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get follow: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.GetProfileResponse{
		Author:     model.ConvertUser(author),
		PostCount:  total,
		Following:  following,
		Posts:      model.ConvertPosts(posts),
		Pagination: pagination,
	}, nil
}
