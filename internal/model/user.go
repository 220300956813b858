package model

import "time"

type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

type GetProfileRequest struct {
	Username string `json:"username"`
	Page     string `json:"page"`
}

type GetProfileResponse struct {
	Author     User       `json:"author"`
	PostCount  int64      `json:"post_count"`
	Following  bool       `json:"following"`
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
