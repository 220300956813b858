package middleware

import (
	"context"
	"net/http"

	"github.com/inkwell-lab/backend/pkg/router"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

type RedirectResponse interface {
	RedirectInfo() (int, string)
}

// HandleRedirect renders responses that carry a redirect target. A zero
// status code means the response declined to redirect and renders as usual.
func HandleRedirect() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		redirectResp, ok := router.Response(ctx).(RedirectResponse)
		if !ok {
			return ctx, nil
		}

		code, uri := redirectResp.RedirectInfo()
		if code == 0 {
			return ctx, nil
		}

		http.Redirect(xcontext.HTTPWriter(ctx), xcontext.HTTPRequest(ctx), uri, code)

		// The redirect is the response; nothing else goes to the client.
		return router.WithResponse(ctx, nil), nil
	}
}
