package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/inkwell-lab/backend/config"
	"github.com/inkwell-lab/backend/internal/domain"
	"github.com/inkwell-lab/backend/internal/middleware"
	"github.com/inkwell-lab/backend/internal/repository"
	"github.com/inkwell-lab/backend/pkg/logger"
	"github.com/inkwell-lab/backend/pkg/router"
	"github.com/inkwell-lab/backend/pkg/storage"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"github.com/inkwell-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository

	authDomain    domain.AuthDomain
	userDomain    domain.UserDomain
	groupDomain   domain.GroupDomain
	postDomain    domain.PostDomain
	commentDomain domain.CommentDomain
	followDomain  domain.FollowDomain
	fileDomain    domain.FileDomain
	cacheDomain   domain.CacheDomain

	pageCache *middleware.PageCache

	configs     *config.Configs
	logger      logger.Logger
	db          *gorm.DB
	redisClient xredis.Client
	storage     storage.Storage
	router      *router.Router

	server *http.Server
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}

// loadConfig builds the configuration from environment variables, then lets
// an optional TOML file pointed at by CONFIG_FILE override it.
func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "inkwell"),
			Password: getEnv("MYSQL_PASSWORD", "inkwell"),
			Database: getEnv("MYSQL_DATABASE", "inkwell"),
		},
		ApiServer: config.ServerConfigs{
			Host:     getEnv("HOST", "localhost"),
			Port:     getEnv("PORT", "8080"),
			Cert:     getEnv("SERVER_CERT", ""),
			Key:      getEnv("SERVER_KEY", ""),
			PageSize: 10,
			LoginURL: getEnv("LOGIN_URL", "/auth/login/"),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token-secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "24h")),
			},
		},
		Session: config.SessionConfigs{
			Secret: getEnv("SESSION_SECRET", "session-secret"),
			Name:   getEnv("SESSION_NAME", "session"),
		},
		Storage: storage.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", ""),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", ""),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", ""),
		},
		File: config.FileConfigs{
			MaxSize: 2 << 20,
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Cache: config.CacheConfigs{
			TTL: parseDuration(getEnv("CACHE_TTL", "20s")),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, s.configs); err != nil {
			panic(err)
		}
	}

	s.ctx = xcontext.WithConfigs(context.Background(), *s.configs)
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLoggerFromEnv()
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.pageCache = middleware.NewPageCache(s.redisClient)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.groupRepo = repository.NewGroupRepository()
	s.postRepo = repository.NewPostRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.followRepo = repository.NewFollowRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.postRepo, s.followRepo)
	s.groupDomain = domain.NewGroupDomain(s.groupRepo, s.postRepo)
	s.postDomain = domain.NewPostDomain(s.postRepo, s.groupRepo, s.commentRepo)
	s.commentDomain = domain.NewCommentDomain(s.commentRepo, s.postRepo, s.userRepo)
	s.followDomain = domain.NewFollowDomain(s.followRepo, s.userRepo, s.postRepo)
	s.fileDomain = domain.NewFileDomain(s.storage)
	s.cacheDomain = domain.NewCacheDomain(s.pageCache)
}
