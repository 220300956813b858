package router

import (
	"net/http"

	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

func wrapHandler[Req, Resp any](
	r *Router, params []string, handler HandlerFunc[Req, Resp],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
		ctx = xcontext.WithSessionStore(ctx, r.sessionStore)

		var err error
		for _, m := range r.befores {
			newCtx, merr := m(ctx)
			if newCtx != nil {
				ctx = newCtx
			}

			if merr != nil {
				err = merr
				break
			}
		}

		// A before middleware can short-circuit the handler by setting the
		// response itself.
		if err == nil && Response(ctx) == nil {
			var reqObj Req
			if berr := bind(req, params, &reqObj); berr != nil {
				xcontext.Logger(ctx).Warnf("Cannot bind the request: %v", berr)
				err = errorx.New(errorx.BadRequest, "Cannot bind the request")
			} else {
				resp, herr := handler(ctx, &reqObj)
				if herr != nil {
					err = herr
				} else if resp != nil {
					ctx = WithResponse(ctx, resp)
				}
			}
		}

		if err == nil {
			for _, m := range r.afters {
				newCtx, merr := m(ctx)
				if newCtx != nil {
					ctx = newCtx
				}

				if merr != nil {
					err = merr
					break
				}
			}
		}

		if err != nil {
			ctx = withError(ctx, err)
		}

		writeResponse(ctx, w, req)

		for _, c := range r.closers {
			c(ctx)
		}
	}
}
