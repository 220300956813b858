package main

import (
	"fmt"
	"net/http"

	"github.com/inkwell-lab/backend/internal/middleware"
	"github.com/inkwell-lab/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadStorage()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.AuthVerifier())
	s.router.After(middleware.HandleRedirect())
	s.router.AddCloser(middleware.Logger())

	// The front page is served from the page cache when possible.
	indexRouter := s.router.Branch()
	indexRouter.Before(s.pageCache.Before())
	indexRouter.After(s.pageCache.After())
	{
		router.GET(indexRouter, "/", s.postDomain.GetList)
	}

	// Public listings and detail views.
	{
		router.GET(s.router, "/group/{slug}/", s.groupDomain.GetPosts)
		router.GET(s.router, "/profile/{username}/", s.userDomain.GetProfile)
		router.GET(s.router, "/posts/{id}/", s.postDomain.Get)
	}

	// Auth API.
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetAccessToken())
	{
		router.POST(authRouter, "/auth/signup/", s.authDomain.Register)
		router.POST(authRouter, "/auth/login/", s.authDomain.Login)
	}

	// Everything below needs a logged-in user.
	loggedInRouter := s.router.Branch()
	loggedInRouter.Before(middleware.Authenticate())
	{
		router.POST(loggedInRouter, "/auth/logout/", s.authDomain.Logout)

		router.POST(loggedInRouter, "/create/", s.postDomain.Create)
		router.GET(loggedInRouter, "/posts/{id}/edit/", s.postDomain.GetForEdit)
		router.POST(loggedInRouter, "/posts/{id}/edit/", s.postDomain.Update)
		router.POST(loggedInRouter, "/posts/{id}/comment/", s.commentDomain.Create)

		router.GET(loggedInRouter, "/follow/", s.followDomain.GetFeed)
		router.POST(loggedInRouter, "/profile/{username}/follow/", s.followDomain.Follow)
		router.POST(loggedInRouter, "/profile/{username}/unfollow/", s.followDomain.Unfollow)

		router.POST(loggedInRouter, "/upload/", s.fileDomain.UploadImage)
	}

	// Admin-only maintenance hooks.
	adminRouter := s.router.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.POST(adminRouter, "/cache/clear/", s.cacheDomain.Clear)
	}
}
