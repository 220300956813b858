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

type GroupDomain interface {
	GetPosts(context.Context, *model.GetGroupPostsRequest) (*model.GetGroupPostsResponse, error)
}

type groupDomain struct {
	groupRepo repository.GroupRepository
	postRepo  repository.PostRepository
}

func NewGroupDomain(
	groupRepo repository.GroupRepository,
	postRepo repository.PostRepository,
) *groupDomain {
	return &groupDomain{groupRepo: groupRepo, postRepo: postRepo}
}

func (d *groupDomain) GetPosts(
	ctx context.Context, req *model.GetGroupPostsRequest,
) (*model.GetGroupPostsResponse, error) {
	group, err := d.groupRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	filter := repository.PostFilter{GroupID: group.ID}
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

	return &model.GetGroupPostsResponse{
		Group:      model.ConvertGroup(group),
		Posts:      model.ConvertPosts(posts),
		Pagination: pagination,
	}, nil
}
