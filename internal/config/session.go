package config

const (
	SessionBackendMemory    = "memory"
	SessionBackendFile      = "file"
	SessionBackendMemcached = "memcached"
	SessionBackendRedis     = "redis"
)

type SessionConfig struct {
	BackendName string `yaml:"backend" env:"SESSION_BACKEND, overwrite"`
	FilePath    string `yaml:"file" env:"SESSION_FILE, overwrite"`
}

func (s *SessionConfig) Backend() string {
	return s.BackendName
}

func (s *SessionConfig) File() string {
	return s.FilePath
}
