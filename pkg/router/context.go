package router

import "context"

type (
	responseKey struct{}
	errorKey    struct{}
)

// WithResponse stores the response object that will be rendered to the
// client. A Before middleware may use it to short-circuit the handler (the
// page cache does this on a hit); After middlewares may replace or clear it.
func WithResponse(ctx context.Context, resp any) context.Context {
	return context.WithValue(ctx, responseKey{}, resp)
}

// Response returns the response object set by the handler or a middleware,
// or nil.
func Response(ctx context.Context) any {
	return ctx.Value(responseKey{})
}

func withError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

// Error returns the error the request finished with, if any. Only closers
// observe a non-nil value.
func Error(ctx context.Context) error {
	err, ok := ctx.Value(errorKey{}).(error)
	if !ok {
		return nil
	}

	return err
}
