package model

import "github.com/inkwell-lab/backend/internal/entity"

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:       user.ID,
		Name:     user.Name,
		JoinedAt: user.CreatedAt,
	}
}

func ConvertGroup(group *entity.Group) Group {
	if group == nil {
		return Group{}
	}

	return Group{
		ID:          group.ID,
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
	}
}

func ConvertPost(post *entity.Post) Post {
	if post == nil {
		return Post{}
	}

	var group *Group
	if post.GroupID.Valid {
		g := ConvertGroup(&post.Group)
		group = &g
	}

	return Post{
		ID:        post.ID,
		Text:      post.Text,
		CreatedAt: post.CreatedAt,
		Author:    ConvertUser(&post.Author),
		Group:     group,
		Image:     post.Image,
	}
}

func ConvertPosts(posts []entity.Post) []Post {
	result := make([]Post, 0, len(posts))
	for i := range posts {
		result = append(result, ConvertPost(&posts[i]))
	}

	return result
}

func ConvertComment(comment *entity.Comment) Comment {
	if comment == nil {
		return Comment{}
	}

	return Comment{
		ID:        comment.ID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		Author:    ConvertUser(&comment.Author),
		PostID:    comment.PostID,
	}
}

func ConvertComments(comments []entity.Comment) []Comment {
	result := make([]Comment, 0, len(comments))
	for i := range comments {
		result = append(result, ConvertComment(&comments[i]))
	}

	return result
}
