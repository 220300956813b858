package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/inkwell-lab/backend/config"
	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/pkg/authenticator"
	"github.com/inkwell-lab/backend/pkg/logger"
	"github.com/inkwell-lab/backend/pkg/session"
	"github.com/inkwell-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockConfigs() config.Configs {
	return config.Configs{
		ApiServer: config.ServerConfigs{
			PageSize: 10,
			LoginURL: "/auth/login/",
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "session",
		},
		File: config.FileConfigs{
			MaxSize: 2 << 20,
		},
		Cache: config.CacheConfigs{
			TTL: time.Minute,
		},
	}
}

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := MockConfigs()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken))
	ctx = xcontext.WithSessionStore(ctx,
		session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(db); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}

// MockContextWithRequest attaches an HTTP request and a recorder writer for
// code that reaches into the raw request, like multipart uploads and
// session handling.
func MockContextWithRequest(ctx context.Context, req *http.Request) context.Context {
	ctx = xcontext.WithHTTPRequest(ctx, req)
	return xcontext.WithHTTPWriter(ctx, httptest.NewRecorder())
}
