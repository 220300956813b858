package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inkwell-lab/backend/config"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/logger"
	"github.com/stretchr/testify/require"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type echoRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type echoResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestRouter(t *testing.T) *Router {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := config.Configs{
		ApiServer: config.ServerConfigs{LoginURL: "/auth/login/"},
		Session:   config.SessionConfigs{Secret: "secret", Name: "session"},
		Auth:      config.AuthConfigs{TokenSecret: "secret"},
	}

	return New(db, cfg, logger.NewLogger(logger.SILENCE))
}

func TestRouter_pathParamBinding(t *testing.T) {
	r := newTestRouter(t)
	GET(r, "/posts/{id}/", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{ID: req.ID}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/posts/abc123/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int64        `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(0), resp.Code)
	require.Equal(t, "abc123", resp.Data.ID)
}

func TestRouter_formBinding(t *testing.T) {
	r := newTestRouter(t)
	POST(r, "/posts/{id}/edit/", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{ID: req.ID, Name: req.Name}, nil
	})

	body := strings.NewReader("name=hello&id=spoofed")
	req := httptest.NewRequest("POST", "/posts/real/edit/", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	var resp struct {
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "hello", resp.Data.Name)

	// The path parameter beats whatever the form claims.
	require.Equal(t, "real", resp.Data.ID)
}

func TestRouter_unknownRoute(t *testing.T) {
	r := newTestRouter(t)
	GET(r, "/posts/{id}/", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	for _, path := range []string{"/unexisting_page/", "/posts/", "/posts/abc123/extra/"} {
		w := httptest.NewRecorder()
		r.Handler().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		require.Equal(t, http.StatusNotFound, w.Code, path)

		var resp struct {
			Code  int64  `json:"code"`
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, int64(errorx.NotFound), resp.Code)
	}
}

func TestRouter_unauthenticatedRedirectsToLogin(t *testing.T) {
	r := newTestRouter(t)

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	})
	POST(branch, "/create/", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("POST", "/create/", nil))

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/auth/login/", w.Header().Get("Location"))
}

func TestRouter_beforeShortCircuit(t *testing.T) {
	r := newTestRouter(t)

	handlerRan := false
	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return WithResponse(ctx, json.RawMessage(`{"cached":true}`)), nil
	})
	GET(branch, "/", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		handlerRan = true
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.False(t, handlerRan)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"cached":true}}`, w.Body.String())
}
