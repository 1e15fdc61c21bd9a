package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	pingTimeout = 5 * time.Second
	usernameKey = "username"
)

type config interface {
	Addr() string
	DB() int
}

// SessionStore keeps usernames under session:<userID>:username.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(ctx context.Context, cfg config) (*SessionStore, error) {
	logger.Info("redis addr", zap.String("addr", cfg.Addr()), zap.Int("db", cfg.DB()))
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
		DB:   cfg.DB(),
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return &SessionStore{client: client}, nil
}

func (s *SessionStore) Username(ctx context.Context, userID int64) (string, error) {
	username, err := s.client.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get session")
	}
	return username, nil
}

func (s *SessionStore) SetUsername(ctx context.Context, userID int64, username string) error {
	logger.Info("save session", zap.Int64("userID", userID))
	return errors.Wrap(s.client.Set(ctx, key(userID), username, 0).Err(), "save session")
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}

func key(userID int64) string {
	return fmt.Sprintf("session:%d:%s", userID, usernameKey)
}
