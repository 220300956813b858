package model

// Pagination describes one fixed-size page of an ordered listing.
type Pagination struct {
	Page        int64 `json:"page"`
	TotalPages  int64 `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}
