package middleware

import (
	"context"
	"encoding/json"

	"github.com/inkwell-lab/backend/pkg/router"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"github.com/inkwell-lab/backend/pkg/xredis"
)

const pageCachePrefix = "pagecache:"

// PageCache caches rendered listing responses in redis for a fixed TTL.
// Cached pages go stale when posts change; only expiry or an explicit
// Clear refreshes them. Apply it on read-only branches.
type PageCache struct {
	redisClient xredis.Client
}

func NewPageCache(redisClient xredis.Client) *PageCache {
	return &PageCache{redisClient: redisClient}
}

func (c *PageCache) key(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)
	key := pageCachePrefix + req.URL.Path
	if req.URL.RawQuery != "" {
		key += "?" + req.URL.RawQuery
	}

	return key
}

// Before serves a cached page if one exists, skipping the handler.
func (c *PageCache) Before() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		cached, err := c.redisClient.Get(ctx, c.key(ctx))
		if err != nil {
			if !xredis.IsNil(err) {
				xcontext.Logger(ctx).Warnf("Cannot read page cache: %v", err)
			}

			return ctx, nil
		}

		return router.WithResponse(ctx, json.RawMessage(cached)), nil
	}
}

// After stores the handler's response under the request key. A cache
// failure never fails the request.
func (c *PageCache) After() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		resp := router.Response(ctx)
		if resp == nil {
			return ctx, nil
		}

		if _, ok := resp.(json.RawMessage); ok {
			return ctx, nil
		}

		b, err := json.Marshal(resp)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot marshal response for page cache: %v", err)
			return ctx, nil
		}

		ttl := xcontext.Configs(ctx).Cache.TTL
		if err := c.redisClient.Set(ctx, c.key(ctx), string(b), ttl); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot store page cache: %v", err)
		}

		return ctx, nil
	}
}

// Clear drops every cached page.
func (c *PageCache) Clear(ctx context.Context) error {
	keys, err := c.redisClient.Keys(ctx, pageCachePrefix+"*")
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.redisClient.Del(ctx, keys...)
}
