package middleware

import (
	"context"

	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/router"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

type OnlyAdmin struct {
	userRepo repository.UserRepository
}

func NewOnlyAdmin(userRepo repository.UserRepository) *OnlyAdmin {
	return &OnlyAdmin{userRepo: userRepo}
}

func (a *OnlyAdmin) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		userID := xcontext.RequestUserID(ctx)
		if userID == "" {
			return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		user, err := a.userRepo.GetByID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return ctx, errorx.Unknown
		}

		if user.Role != entity.AdminRole {
			return ctx, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return ctx, nil
	}
}
