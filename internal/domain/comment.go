package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inkwell-lab/backend/internal/common"
	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommentDomain interface {
	Create(context.Context, *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
}

type commentDomain struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *commentDomain {
	return &commentDomain{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Create attaches a comment to an existing post. The commenter is always
// the requester.
func (d *commentDomain) Create(
	ctx context.Context, req *model.CreateCommentRequest,
) (*model.CreateCommentResponse, error) {
	if err := common.Validate(ctx, req); err != nil {
		return nil, err
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	author, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment author: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Comment{
		Base:     entity.Base{ID: uuid.NewString()},
		Text:     req.Text,
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	comment.Author = *author

	return &model.CreateCommentResponse{Comment: model.ConvertComment(comment)}, nil
}
