package model

import (
	"net/http"
	"time"
)

type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Author    User      `json:"author"`
	Group     *Group    `json:"group,omitempty"`
	Image     string    `json:"image,omitempty"`
}

type GetPostsRequest struct {
	Page string `json:"page"`
}

type GetPostsResponse struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

type GetPostRequest struct {
	ID string `json:"id"`
}

type GetPostResponse struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}

type CreatePostRequest struct {
	Text    string `json:"text" validate:"required"`
	GroupID string `json:"group_id" validate:"omitempty"`
	Image   string `json:"image" validate:"omitempty,url"`
}

type CreatePostResponse struct {
	Post Post `json:"post"`
}

// A created post sends the author back to their own profile listing.
func (r CreatePostResponse) RedirectInfo() (int, string) {
	return http.StatusFound, "/profile/" + r.Post.Author.Name + "/"
}

type GetPostEditRequest struct {
	ID string `json:"id"`
}

type GetPostEditResponse struct {
	Post Post `json:"post"`

	// RedirectURI is set when the requester may not edit this post; the
	// response then renders as a redirect instead of form data.
	RedirectURI string `json:"-"`
}

func (r GetPostEditResponse) RedirectInfo() (int, string) {
	if r.RedirectURI == "" {
		return 0, ""
	}

	return http.StatusFound, r.RedirectURI
}

type UpdatePostRequest struct {
	ID      string `json:"id"`
	Text    string `json:"text" validate:"required"`
	GroupID string `json:"group_id" validate:"omitempty"`
	Image   string `json:"image" validate:"omitempty,url"`
}

type UpdatePostResponse struct {
	Post Post `json:"post"`

	RedirectURI string `json:"-"`
}

func (r UpdatePostResponse) RedirectInfo() (int, string) {
	if r.RedirectURI == "" {
		return 0, ""
	}

	return http.StatusFound, r.RedirectURI
}
