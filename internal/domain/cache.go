package domain

import (
	"context"

	"github.com/inkwell-lab/backend/internal/middleware"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

type CacheDomain interface {
	Clear(context.Context, *model.ClearCacheRequest) (*model.ClearCacheResponse, error)
}

type cacheDomain struct {
	pageCache *middleware.PageCache
}

func NewCacheDomain(pageCache *middleware.PageCache) *cacheDomain {
	return &cacheDomain{pageCache: pageCache}
}

// Clear drops every cached listing page so the next request rebuilds it.
func (d *cacheDomain) Clear(
	ctx context.Context, req *model.ClearCacheRequest,
) (*model.ClearCacheResponse, error) {
	if err := d.pageCache.Clear(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear page cache: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ClearCacheResponse{}, nil
}
