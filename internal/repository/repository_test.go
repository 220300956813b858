package repository_test

import (
	"testing"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_DeleteByID_cascades(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	postRepo := repository.NewPostRepository()
	commentRepo := repository.NewCommentRepository()
	followRepo := repository.NewFollowRepository()

	require.NoError(t, followRepo.Create(ctx, &entity.Follow{
		UserID:   testutil.User3.ID,
		AuthorID: testutil.User1.ID,
	}))

	// Deleting the author takes their posts, the comments under those
	// posts and their follow edges with them.
	require.NoError(t, userRepo.DeleteByID(ctx, testutil.User1.ID))

	_, err := postRepo.GetByID(ctx, testutil.Post1.ID)
	require.Error(t, err)

	comments, err := commentRepo.GetListByPostID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Empty(t, comments)

	count, err := followRepo.Count(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	// Other users' content survives.
	_, err = postRepo.GetByID(ctx, testutil.Post2.ID)
	require.NoError(t, err)
}

func TestGroupRepository_DeleteByID_detachesPosts(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	groupRepo := repository.NewGroupRepository()
	postRepo := repository.NewPostRepository()

	require.NoError(t, groupRepo.DeleteByID(ctx, testutil.Group1.ID))

	// The post outlives its group, just without one.
	post, err := postRepo.GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.False(t, post.GroupID.Valid)
}

func TestPostRepository_DeleteByID_removesComments(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	postRepo := repository.NewPostRepository()
	commentRepo := repository.NewCommentRepository()

	require.NoError(t, postRepo.DeleteByID(ctx, testutil.Post1.ID))

	comments, err := commentRepo.GetListByPostID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Empty(t, comments)
}
