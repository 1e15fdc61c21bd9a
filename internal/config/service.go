package config

import "time"

// ServiceConfig points at one of the remote HTTP services.
type ServiceConfig struct {
	URL            string `yaml:"url" env:"URL, overwrite"`
	TimeoutSeconds int64  `yaml:"timeout-seconds" env:"TIMEOUT_SECONDS, overwrite"`
}

func (s *ServiceConfig) BaseURL() string {
	return s.URL
}

func (s *ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}
