package domain

import (
	"context"
	"database/sql"
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

type PostDomain interface {
	GetList(context.Context, *model.GetPostsRequest) (*model.GetPostsResponse, error)
	Get(context.Context, *model.GetPostRequest) (*model.GetPostResponse, error)
	Create(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	GetForEdit(context.Context, *model.GetPostEditRequest) (*model.GetPostEditResponse, error)
	Update(context.Context, *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
}

type postDomain struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
}

func NewPostDomain(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository,
) *postDomain {
	return &postDomain{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

func (d *postDomain) GetList(
	ctx context.Context, req *model.GetPostsRequest,
) (*model.GetPostsResponse, error) {
	total, err := d.postRepo.Count(ctx, repository.PostFilter{})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return nil, errorx.Unknown
	}

	offset, limit, pagination := common.Paginate(ctx, total, common.ParsePageNumber(req.Page))
	posts, err := d.postRepo.GetList(ctx, repository.PostFilter{}, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetPostsResponse{
		Posts:      model.ConvertPosts(posts),
		Pagination: pagination,
	}, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	comments, err := d.commentRepo.GetListByPostID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetPostResponse{
		Post:     model.ConvertPost(post),
		Comments: model.ConvertComments(comments),
	}, nil
}

// resolveGroupID maps an optional group id from the request to a nullable
// column value, rejecting unknown groups.
func (d *postDomain) resolveGroupID(ctx context.Context, groupID string) (sql.NullString, error) {
	if groupID == "" {
		return sql.NullString{}, nil
	}

	if _, err := d.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sql.NullString{}, errorx.New(errorx.BadRequest, "Unknown group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return sql.NullString{}, errorx.Unknown
	}

	return sql.NullString{String: groupID, Valid: true}, nil
}

// Create publishes a post. The author is always the requester, whatever the
// form claims.
func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	if err := common.Validate(ctx, req); err != nil {
		return nil, err
	}

	groupID, err := d.resolveGroupID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Base:     entity.Base{ID: uuid.NewString()},
		Text:     req.Text,
		AuthorID: xcontext.RequestUserID(ctx),
		GroupID:  groupID,
		Image:    req.Image,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	created, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get created post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePostResponse{Post: model.ConvertPost(created)}, nil
}

// GetForEdit loads a post for its edit form. Someone else's post does not
// produce an error, the requester is quietly sent to the detail view.
func (d *postDomain) GetForEdit(
	ctx context.Context, req *model.GetPostEditRequest,
) (*model.GetPostEditResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return &model.GetPostEditResponse{RedirectURI: "/posts/" + post.ID + "/"}, nil
	}

	return &model.GetPostEditResponse{Post: model.ConvertPost(post)}, nil
}

// Update rewrites text, group and image of the requester's own post and
// sends them to the detail view. A non-author gets the same redirect with
// the post untouched.
func (d *postDomain) Update(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	redirectURI := "/posts/" + post.ID + "/"
	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return &model.UpdatePostResponse{RedirectURI: redirectURI}, nil
	}

	if err := common.Validate(ctx, req); err != nil {
		return nil, err
	}

	groupID, err := d.resolveGroupID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	if err := d.postRepo.Update(ctx, post.ID, req.Text, groupID, req.Image); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePostResponse{
		Post:        model.ConvertPost(updated),
		RedirectURI: redirectURI,
	}, nil
}
