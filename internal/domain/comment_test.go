package domain

import (
	"net/http"
	"testing"

	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/testutil"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_commentDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User3.ID)

	domain := NewCommentDomain(
		repository.NewCommentRepository(),
		repository.NewPostRepository(),
		repository.NewUserRepository(),
	)

	resp, err := domain.Create(ctx, &model.CreateCommentRequest{
		PostID: testutil.Post1.ID,
		Text:   "Отличный пост",
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User3.ID, resp.Comment.Author.ID)

	code, uri := resp.RedirectInfo()
	require.Equal(t, http.StatusFound, code)
	require.Equal(t, "/posts/"+testutil.Post1.ID+"/", uri)

	// Comments land after the fixture comment, oldest first.
	comments, err := repository.NewCommentRepository().GetListByPostID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, testutil.Comment1.ID, comments[0].ID)

	var errx errorx.Error
	_, err = domain.Create(ctx, &model.CreateCommentRequest{PostID: "missing", Text: "x"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	_, err = domain.Create(ctx, &model.CreateCommentRequest{PostID: testutil.Post1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.ValidationFailure, errx.Code)
}
