package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const usernameKey = "username"

// profiles maps a client profile to its named session values.
type profiles map[int64]map[string]string

// FileStorage persists sessions in a YAML file so they survive restarts.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("session file path is empty")
	}
	return &FileStorage{path: path}, nil
}

func (s *FileStorage) Username(_ context.Context, userID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", errors.Wrap(err, "get session")
	}
	return data[userID][usernameKey], nil
}

func (s *FileStorage) SetUsername(_ context.Context, userID int64, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return errors.Wrap(err, "save session")
	}
	if data[userID] == nil {
		data[userID] = make(map[string]string)
	}
	data[userID][usernameKey] = username

	return errors.Wrap(s.write(data), "save session")
}

func (s *FileStorage) read() (profiles, error) {
	data := make(profiles)

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading session file")
	}
	if err = yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "parsing session file")
	}
	if data == nil {
		data = make(profiles)
	}
	return data, nil
}

func (s *FileStorage) write(data profiles) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "marshalling sessions")
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing session file")
	}
	return errors.Wrap(os.Rename(tmp, s.path), "replacing session file")
}
