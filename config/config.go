package config

import (
	"fmt"
	"time"

	"github.com/inkwell-lab/backend/pkg/storage"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Session   SessionConfigs
	Storage   storage.S3Configs
	File      FileConfigs
	Redis     RedisConfigs
	Cache     CacheConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string

	// PageSize is the fixed number of records per listing page.
	PageSize int

	// LoginURL is where anonymous requests to protected routes are
	// redirected.
	LoginURL string
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type SessionConfigs struct {
	Secret string
	Name   string
}

type FileConfigs struct {
	MaxSize int64
}

type RedisConfigs struct {
	Addr string
}

type CacheConfigs struct {
	// TTL bounds the staleness window of cached listing pages. Cached pages
	// are never invalidated by entity mutations, only by the explicit clear
	// hook or expiry.
	TTL time.Duration
}
