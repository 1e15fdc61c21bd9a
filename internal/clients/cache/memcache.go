package cache

import (
	"context"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	defaultBase = 10
	usernameKey = "username"
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID int64, option string) string {
	return strconv.FormatInt(userID, defaultBase) + ":" + option
}

// Username returns an empty string when nobody has logged in from userID.
func (mc *MemcacheClient) Username(_ context.Context, userID int64) (string, error) {
	item, err := mc.client.Get(formatKey(userID, usernameKey))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get session")
	}
	return string(item.Value), nil
}

// SetUsername stores the session without expiration.
func (mc *MemcacheClient) SetUsername(_ context.Context, userID int64, username string) error {
	logger.Info("save session", zap.Int64("userID", userID))
	err := mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, usernameKey),
		Value: []byte(username),
	})
	return errors.Wrap(err, "save session")
}
