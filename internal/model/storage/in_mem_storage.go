package storage

import (
	"context"
	"sync"
)

type InMemStorage struct {
	mu        sync.RWMutex
	usernames map[int64]string
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{usernames: make(map[int64]string)}
}

func (s *InMemStorage) Username(_ context.Context, userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usernames[userID], nil
}

func (s *InMemStorage) SetUsername(_ context.Context, userID int64, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usernames[userID] = username
	return nil
}
