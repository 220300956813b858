package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inkwell-lab/backend/internal/common"
	"github.com/inkwell-lab/backend/internal/entity"
	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/crypto"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	Logout(context.Context, *model.LogoutRequest) (*model.LogoutResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if err := common.Validate(ctx, req); err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	_, err := d.userRepo.GetByName(ctx, req.Username)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This username is already taken")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check username: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           req.Username,
		HashedPassword: hashed,
		Role:           entity.UserRole,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.RegisterResponse{User: model.ConvertUser(user)}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	if err := common.Validate(ctx, req); err != nil {
		return nil, err
	}

	user, err := d.userRepo.GetByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.HashedPassword, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:   user.ID,
		Name: user.Name,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	d.saveSession(ctx, user.ID)

	return &model.LoginResponse{
		User:        model.ConvertUser(user),
		AccessToken: token,
	}, nil
}

func (d *authDomain) Logout(
	ctx context.Context, req *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	d.saveSession(ctx, "")
	return &model.LogoutResponse{}, nil
}

// saveSession records (or clears) the logged-in user in the cookie session.
// Session trouble is logged but never fails the login itself, the token
// still works.
func (d *authDomain) saveSession(ctx context.Context, userID string) {
	store := xcontext.SessionStore(ctx)
	req := xcontext.HTTPRequest(ctx)
	w := xcontext.HTTPWriter(ctx)
	if store == nil || req == nil || w == nil {
		return
	}

	var err error
	if userID == "" {
		err = store.Clear(req, w)
	} else {
		err = store.SaveUserID(req, w, userID)
	}

	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot save session: %v", err)
	}
}
