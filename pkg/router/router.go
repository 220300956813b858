package router

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/inkwell-lab/backend/config"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/pkg/authenticator"
	"github.com/inkwell-lab/backend/pkg/logger"
	"github.com/inkwell-lab/backend/pkg/session"
	"gorm.io/gorm"
)

// HandlerFunc takes the request context and a bound request, returning either
// a response object or an error. Request-scoped values travel via xcontext.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before (or after) a handler. It may derive a new
// context; returning an error stops the chain and renders the error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been rendered.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	cfg          config.Configs
	db           *gorm.DB
	logger       logger.Logger
	sessionStore *session.Store
	tokenEngine  authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, log logger.Logger) *Router {
	r := &Router{
		mux:          http.NewServeMux(),
		cfg:          cfg,
		db:           db,
		logger:       log,
		sessionStore: session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)),
		tokenEngine: authenticator.NewTokenEngine[model.AccessToken](
			cfg.Auth.TokenSecret, cfg.Auth.AccessToken),
	}

	// Dedicated not-found handler for every unregistered route.
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		writeNotFound(w)
	})

	return r
}

// Branch derives a router sharing the same mux but with independent
// middleware chains.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) After(m MiddlewareFunc) {
	r.afters = append(r.afters, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Req, Resp any](r *Router, pattern string, handler HandlerFunc[Req, Resp]) {
	register(r, http.MethodGet, pattern, handler)
}

func POST[Req, Resp any](r *Router, pattern string, handler HandlerFunc[Req, Resp]) {
	register(r, http.MethodPost, pattern, handler)
}

var paramPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

func register[Req, Resp any](
	r *Router, method, pattern string, handler HandlerFunc[Req, Resp],
) {
	var params []string
	for _, m := range paramPattern.FindAllStringSubmatch(pattern, -1) {
		params = append(params, m[1])
	}

	// A trailing slash makes ServeMux match the whole subtree; anchor the
	// pattern so the route matches this path only.
	muxPattern := pattern
	if strings.HasSuffix(muxPattern, "/") {
		muxPattern += "{$}"
	}

	r.mux.HandleFunc(method+" "+muxPattern, wrapHandler(r, params, handler))
}
