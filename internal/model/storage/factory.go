package storage

import (
	"context"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/redis"
	"max.ks1230/expense-tracker/internal/config"
)

// SessionStorage holds the logged-in username of every client profile.
type SessionStorage interface {
	Username(ctx context.Context, userID int64) (string, error)
	SetUsername(ctx context.Context, userID int64, username string) error
}

type backendConfig interface {
	Session() *config.SessionConfig
	Memcached() *config.MemcachedConfig
	Redis() *config.RedisConfig
}

// NewSessionStorage builds the backend selected by the session config.
func NewSessionStorage(ctx context.Context, conf backendConfig) (SessionStorage, error) {
	switch backend := conf.Session().Backend(); backend {
	case config.SessionBackendMemory:
		return NewInMemStorage(), nil
	case config.SessionBackendFile, "":
		return NewFileStorage(conf.Session().File())
	case config.SessionBackendMemcached:
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			return nil, errors.Wrap(err, "cannot init memcached session storage")
		}
		return mc, nil
	case config.SessionBackendRedis:
		rs, err := redis.NewSessionStore(ctx, conf.Redis())
		if err != nil {
			return nil, errors.Wrap(err, "cannot init redis session storage")
		}
		return rs, nil
	default:
		return nil, errors.Errorf("unknown session backend %q", backend)
	}
}
