package model

import "net/http"

type FollowRequest struct {
	Username string `json:"username"`
}

type FollowResponse struct {
	Username string `json:"username"`
}

func (r FollowResponse) RedirectInfo() (int, string) {
	return http.StatusFound, "/profile/" + r.Username + "/"
}

type UnfollowRequest struct {
	Username string `json:"username"`
}

type UnfollowResponse struct {
	Username string `json:"username"`
}

func (r UnfollowResponse) RedirectInfo() (int, string) {
	return http.StatusFound, "/profile/" + r.Username + "/"
}

type GetFeedRequest struct {
	Page string `json:"page"`
}

type GetFeedResponse struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
