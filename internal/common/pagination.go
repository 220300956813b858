package common

import (
	"context"
	"strconv"

	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"github.com/pkg/math"
)

// PageSize returns the configured number of posts per listing page.
func PageSize(ctx context.Context) int64 {
	return int64(xcontext.Configs(ctx).ApiServer.PageSize)
}

// ParsePageNumber turns a raw page query value into a page number.
// Anything that is not a positive integer falls back to the first page.
func ParsePageNumber(raw string) int64 {
	page, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// Paginate clamps page into [1, last] for total items and returns the
// window to query together with the pagination block for the response.
// An empty listing still reports a single empty page.
func Paginate(ctx context.Context, total, page int64) (offset, limit int64, p model.Pagination) {
	size := PageSize(ctx)

	totalPages := (total + size - 1) / size
	totalPages = math.MaxInt64(totalPages, 1)
	page = math.MinInt64(math.MaxInt64(page, 1), totalPages)

	p = model.Pagination{
		Page:        page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}

	return (page - 1) * size, size, p
}
