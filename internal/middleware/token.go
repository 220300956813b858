package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/inkwell-lab/backend/pkg/router"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

type AccessTokenResponse interface {
	AccessTokenInfo() string
}

// HandleSetAccessToken mirrors a freshly issued access token into a cookie
// so browser flows stay logged in without an Authorization header.
func HandleSetAccessToken() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		tokenResp, ok := router.Response(ctx).(AccessTokenResponse)
		if !ok {
			return ctx, nil
		}

		cfg := xcontext.Configs(ctx)
		http.SetCookie(xcontext.HTTPWriter(ctx), &http.Cookie{
			Name:     cfg.Auth.AccessToken.Name,
			Value:    tokenResp.AccessTokenInfo(),
			Path:     "/",
			Expires:  time.Now().Add(cfg.Auth.AccessToken.Expiration),
			Secure:   true,
			HttpOnly: false,
		})

		return ctx, nil
	}
}
