package middleware

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/inkwell-lab/backend/pkg/router"
	"github.com/inkwell-lab/backend/pkg/testutil"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// mapRedis builds a mock redis over a plain map.
func mapRedis(values map[string]string) *testutil.MockRedisClient {
	return &testutil.MockRedisClient{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			v, ok := values[key]
			if !ok {
				return "", redis.Nil
			}

			return v, nil
		},
		SetFunc: func(ctx context.Context, key, value string, ttl time.Duration) error {
			values[key] = value
			return nil
		},
		KeysFunc: func(ctx context.Context, pattern string) ([]string, error) {
			var keys []string
			for k := range values {
				if strings.HasPrefix(k, strings.TrimSuffix(pattern, "*")) {
					keys = append(keys, k)
				}
			}

			return keys, nil
		},
		DelFunc: func(ctx context.Context, keys ...string) error {
			for _, k := range keys {
				delete(values, k)
			}

			return nil
		},
	}
}

func cacheTestContext() context.Context {
	ctx := testutil.MockContext()
	req := httptest.NewRequest("GET", "/?page=2", nil)
	return xcontext.WithHTTPRequest(ctx, req)
}

func TestPageCache_missThenHit(t *testing.T) {
	values := map[string]string{}
	cache := NewPageCache(mapRedis(values))
	ctx := cacheTestContext()

	// Miss: the handler must run.
	ctx2, err := cache.Before()(ctx)
	require.NoError(t, err)
	require.Nil(t, router.Response(ctx2))

	// The handler response gets stored under the path and query.
	ctx2 = router.WithResponse(ctx2, map[string]string{"hello": "world"})
	_, err = cache.After()(ctx2)
	require.NoError(t, err)
	require.Contains(t, values, "pagecache:/?page=2")

	// Hit: the stored payload short-circuits the handler.
	ctx3, err := cache.Before()(ctx)
	require.NoError(t, err)
	raw, ok := router.Response(ctx3).(json.RawMessage)
	require.True(t, ok)
	require.JSONEq(t, `{"hello":"world"}`, string(raw))
}

func TestPageCache_afterSkipsCachedResponse(t *testing.T) {
	values := map[string]string{"pagecache:/?page=2": `{"cached":true}`}
	cache := NewPageCache(mapRedis(values))
	ctx := cacheTestContext()

	ctx2, err := cache.Before()(ctx)
	require.NoError(t, err)
	require.NotNil(t, router.Response(ctx2))

	// Serving from cache must not rewrite the entry.
	_, err = cache.After()(ctx2)
	require.NoError(t, err)
	require.Equal(t, `{"cached":true}`, values["pagecache:/?page=2"])
}

func TestPageCache_Clear(t *testing.T) {
	values := map[string]string{
		"pagecache:/?page=1": `{}`,
		"pagecache:/?page=2": `{}`,
		"other:key":          `{}`,
	}
	cache := NewPageCache(mapRedis(values))

	require.NoError(t, cache.Clear(context.Background()))
	require.NotContains(t, values, "pagecache:/?page=1")
	require.NotContains(t, values, "pagecache:/?page=2")
	require.Contains(t, values, "other:key")
}
