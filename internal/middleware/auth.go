package middleware

import (
	"context"
	"strings"

	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/router"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

// AuthVerifier resolves the identity of every request. It checks the
// bearer header, the access-token cookie and finally the session. Requests
// without a valid credential continue as anonymous; only Authenticate
// turns that into an error.
func AuthVerifier() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		req := xcontext.HTTPRequest(ctx)

		token := ""
		if auth := req.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		} else if cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name); err == nil {
			token = cookie.Value
		}

		if token != "" {
			accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
			if err != nil {
				xcontext.Logger(ctx).Warnf("Invalid access token: %v", err)
			} else {
				return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
			}
		}

		if store := xcontext.SessionStore(ctx); store != nil {
			if id := store.UserID(req); id != "" {
				return xcontext.WithRequestUserID(ctx, id), nil
			}
		}

		return ctx, nil
	}
}

// Authenticate rejects anonymous requests. The response writer turns the
// error into a login redirect for web flows.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return ctx, nil
	}
}
