package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/crypto"
)

// Fixture password shared by every fixture user.
const Password = "super-secret-1"

var (
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "leo",
		Role: entity.UserRole,
	}

	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "hasNoName",
		Role: entity.UserRole,
	}

	User3 = entity.User{
		Base: entity.Base{ID: "user3"},
		Name: "follower",
		Role: entity.UserRole,
	}

	Group1 = entity.Group{
		Base:        entity.Base{ID: "group1"},
		Title:       "Тестовая группа",
		Slug:        "test-slug",
		Description: "Тестовое описание",
	}

	Group2 = entity.Group{
		Base:        entity.Base{ID: "group2"},
		Title:       "Другая группа",
		Slug:        "another-slug",
		Description: "Группа без постов",
	}

	Post1 = entity.Post{
		Base: entity.Base{
			ID:        "post1",
			CreatedAt: time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC),
		},
		Text:     "Тестовый текст пост №1.",
		AuthorID: User1.ID,
		GroupID:  sql.NullString{String: Group1.ID, Valid: true},
	}

	Post2 = entity.Post{
		Base: entity.Base{
			ID:        "post2",
			CreatedAt: time.Date(2023, time.March, 2, 12, 0, 0, 0, time.UTC),
		},
		Text:     "Пост без группы",
		AuthorID: User2.ID,
	}

	Comment1 = entity.Comment{
		Base: entity.Base{
			ID:        "comment1",
			CreatedAt: time.Date(2023, time.March, 3, 12, 0, 0, 0, time.UTC),
		},
		Text:     "Первый комментарий",
		AuthorID: User2.ID,
		PostID:   Post1.ID,
	}
)

// CreateFixtureDb populates the database in ctx with the fixture users,
// groups, posts and comments above.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertGroups(ctx)
	insertPosts(ctx)
	insertComments(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, u := range []entity.User{User1, User2, User3} {
		hashed, err := crypto.HashPassword(Password)
		if err != nil {
			panic(err)
		}

		u.HashedPassword = hashed
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}
}

func insertGroups(ctx context.Context) {
	groupRepo := repository.NewGroupRepository()
	for _, g := range []entity.Group{Group1, Group2} {
		if err := groupRepo.Create(ctx, &g); err != nil {
			panic(err)
		}
	}
}

func insertPosts(ctx context.Context) {
	postRepo := repository.NewPostRepository()
	for _, p := range []entity.Post{Post1, Post2} {
		if err := postRepo.Create(ctx, &p); err != nil {
			panic(err)
		}
	}
}

func insertComments(ctx context.Context) {
	commentRepo := repository.NewCommentRepository()
	for _, c := range []entity.Comment{Comment1} {
		if err := commentRepo.Create(ctx, &c); err != nil {
			panic(err)
		}
	}
}
