package model

import (
	"net/http"
	"time"
)

type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Author    User      `json:"author"`
	PostID    string    `json:"post_id"`
}

type CreateCommentRequest struct {
	PostID string `json:"id"`
	Text   string `json:"text" validate:"required"`
}

type CreateCommentResponse struct {
	Comment Comment `json:"comment"`
}

// A new comment sends the commenter back to the post detail view.
func (r CreateCommentResponse) RedirectInfo() (int, string) {
	return http.StatusFound, "/posts/" + r.Comment.PostID + "/"
}
