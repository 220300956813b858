package domain

import (
	"testing"

	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_groupDomain_GetPosts(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewGroupDomain(
		repository.NewGroupRepository(),
		repository.NewPostRepository(),
	)

	resp, err := domain.GetPosts(ctx, &model.GetGroupPostsRequest{Slug: testutil.Group1.Slug})
	require.NoError(t, err)
	require.Equal(t, testutil.Group1.Title, resp.Group.Title)
	require.Len(t, resp.Posts, 1)
	require.Equal(t, testutil.Post1.Text, resp.Posts[0].Text)

	// A group only lists its own posts.
	empty, err := domain.GetPosts(ctx, &model.GetGroupPostsRequest{Slug: testutil.Group2.Slug})
	require.NoError(t, err)
	require.Empty(t, empty.Posts)

	_, err = domain.GetPosts(ctx, &model.GetGroupPostsRequest{Slug: "no-such-slug"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
