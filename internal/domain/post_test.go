package domain

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/testutil"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newPostDomain() *postDomain {
	return NewPostDomain(
		repository.NewPostRepository(),
		repository.NewGroupRepository(),
		repository.NewCommentRepository(),
	)
}

func Test_postDomain_GetList_pagination(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	postRepo := repository.NewPostRepository()
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		err := postRepo.Create(ctx, &entity.Post{
			Base: entity.Base{
				ID:        fmt.Sprintf("extra%02d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			Text:     fmt.Sprintf("запись %d", i),
			AuthorID: testutil.User1.ID,
		})
		require.NoError(t, err)
	}

	domain := newPostDomain()

	// 13 extra posts plus 2 fixture posts make 15: a full page and a
	// short one.
	resp, err := domain.GetList(ctx, &model.GetPostsRequest{Page: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 10)
	require.Equal(t, int64(15), resp.Pagination.TotalItems)
	require.Equal(t, int64(2), resp.Pagination.TotalPages)
	require.True(t, resp.Pagination.HasNext)

	// Newest first across the whole listing.
	require.Equal(t, "extra12", resp.Posts[0].ID)
	for i := 1; i < len(resp.Posts); i++ {
		require.False(t, resp.Posts[i].CreatedAt.After(resp.Posts[i-1].CreatedAt))
	}

	resp2, err := domain.GetList(ctx, &model.GetPostsRequest{Page: "2"})
	require.NoError(t, err)
	require.Len(t, resp2.Posts, 5)
	require.False(t, resp2.Pagination.HasNext)
	require.True(t, resp2.Pagination.HasPrevious)

	// The oldest fixture post closes the listing.
	require.Equal(t, testutil.Post1.ID, resp2.Posts[4].ID)

	// Junk and out-of-range page values still render something sensible.
	respJunk, err := domain.GetList(ctx, &model.GetPostsRequest{Page: "abc"})
	require.NoError(t, err)
	require.Equal(t, int64(1), respJunk.Pagination.Page)

	respFar, err := domain.GetList(ctx, &model.GetPostsRequest{Page: "99"})
	require.NoError(t, err)
	require.Equal(t, int64(2), respFar.Pagination.Page)
	require.Len(t, respFar.Posts, 5)
}

func Test_postDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newPostDomain()

	resp, err := domain.Get(ctx, &model.GetPostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.Text, resp.Post.Text)
	require.Equal(t, testutil.User1.Name, resp.Post.Author.Name)
	require.NotNil(t, resp.Post.Group)
	require.Equal(t, testutil.Group1.Slug, resp.Post.Group.Slug)
	require.Len(t, resp.Comments, 1)
	require.Equal(t, testutil.Comment1.Text, resp.Comments[0].Text)

	_, err = domain.Get(ctx, &model.GetPostRequest{ID: "missing"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_postDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)

	domain := newPostDomain()

	resp, err := domain.Create(ctx, &model.CreatePostRequest{
		Text:    "Свежий пост",
		GroupID: testutil.Group1.ID,
	})
	require.NoError(t, err)

	// The author is the requester, never what the form claims.
	require.Equal(t, testutil.User2.ID, resp.Post.Author.ID)

	code, uri := resp.RedirectInfo()
	require.Equal(t, http.StatusFound, code)
	require.Equal(t, "/profile/"+testutil.User2.Name+"/", uri)

	_, err = domain.Create(ctx, &model.CreatePostRequest{Text: "x", GroupID: "missing"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = domain.Create(ctx, &model.CreatePostRequest{Text: ""})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.ValidationFailure, errx.Code)
	require.Contains(t, errx.Fields, "text")
}

func Test_postDomain_Update_onlyAuthor(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newPostDomain()

	// Someone else's edit is silently turned into a redirect, the post
	// stays as it was.
	strangerCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := domain.Update(strangerCtx, &model.UpdatePostRequest{
		ID:   testutil.Post1.ID,
		Text: "подменённый текст",
	})
	require.NoError(t, err)
	code, uri := resp.RedirectInfo()
	require.Equal(t, http.StatusFound, code)
	require.Equal(t, "/posts/"+testutil.Post1.ID+"/", uri)

	unchanged, err := domain.Get(ctx, &model.GetPostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.Text, unchanged.Post.Text)

	// The author's edit goes through and also lands on the detail view.
	authorCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err = domain.Update(authorCtx, &model.UpdatePostRequest{
		ID:   testutil.Post1.ID,
		Text: "исправленный текст",
	})
	require.NoError(t, err)
	require.Equal(t, "исправленный текст", resp.Post.Text)
	code, uri = resp.RedirectInfo()
	require.Equal(t, http.StatusFound, code)
	require.Equal(t, "/posts/"+testutil.Post1.ID+"/", uri)

	// Leaving the group out detaches the post from it.
	require.Nil(t, resp.Post.Group)
}

func Test_postDomain_GetForEdit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newPostDomain()

	authorCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := domain.GetForEdit(authorCtx, &model.GetPostEditRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.Text, resp.Post.Text)
	code, _ := resp.RedirectInfo()
	require.Equal(t, 0, code)

	strangerCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err = domain.GetForEdit(strangerCtx, &model.GetPostEditRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	code, uri := resp.RedirectInfo()
	require.Equal(t, http.StatusFound, code)
	require.Equal(t, "/posts/"+testutil.Post1.ID+"/", uri)
}
