package model

type Group struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type GetGroupPostsRequest struct {
	Slug string `json:"slug"`
	Page string `json:"page"`
}

type GetGroupPostsResponse struct {
	Group      Group      `json:"group"`
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
