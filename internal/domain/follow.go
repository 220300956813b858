package domain

import (
	"context"
	"errors"
	"time"

	"github.com/inkwell-lab/backend/internal/common"
	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowDomain interface {
	Follow(context.Context, *model.FollowRequest) (*model.FollowResponse, error)
	Unfollow(context.Context, *model.UnfollowRequest) (*model.UnfollowResponse, error)
	GetFeed(context.Context, *model.GetFeedRequest) (*model.GetFeedResponse, error)
}

type followDomain struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

func NewFollowDomain(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *followDomain {
	return &followDomain{
		followRepo: followRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

func (d *followDomain) getAuthor(ctx context.Context, username string) (*entity.User, error) {
	author, err := d.userRepo.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return author, nil
}

// Follow subscribes the requester to an author. Following twice changes
// nothing; following yourself is refused.
func (d *followDomain) Follow(
	ctx context.Context, req *model.FollowRequest,
) (*model.FollowResponse, error) {
	author, err := d.getAuthor(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	requestUserID := xcontext.RequestUserID(ctx)
	if author.ID == requestUserID {
		return nil, errorx.New(errorx.PermissionDenied, "You cannot follow yourself")
	}

	err = d.followRepo.Create(ctx, &entity.Follow{
		UserID:    requestUserID,
		AuthorID:  author.ID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowResponse{Username: author.Name}, nil
}

// Unfollow removes the subscription if it exists. Unfollowing someone you
// never followed is a no-op.
func (d *followDomain) Unfollow(
	ctx context.Context, req *model.UnfollowRequest,
) (*model.UnfollowResponse, error) {
	author, err := d.getAuthor(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	requestUserID := xcontext.RequestUserID(ctx)
	if author.ID == requestUserID {
		return nil, errorx.New(errorx.PermissionDenied, "You cannot unfollow yourself")
	}

	if err := d.followRepo.Delete(ctx, requestUserID, author.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowResponse{Username: author.Name}, nil
}

// GetFeed lists posts from the authors the requester follows, newest
// first. An empty subscription list is an empty first page, not an error.
func (d *followDomain) GetFeed(
	ctx context.Context, req *model.GetFeedRequest,
) (*model.GetFeedResponse, error) {
	filter := repository.PostFilter{FollowedByUserID: xcontext.RequestUserID(ctx)}
	total, err := d.postRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count feed posts: %v", err)
		return nil, errorx.Unknown
	}

	offset, limit, pagination := common.Paginate(ctx, total, common.ParsePageNumber(req.Page))
	posts, err := d.postRepo.GetList(ctx, filter, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get feed posts: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetFeedResponse{
		Posts:      model.ConvertPosts(posts),
		Pagination: pagination,
	}, nil
}
