package config

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "data/config.yaml"
	configFileEnvKey  = "CONFIG_FILE"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Auth      ServiceConfig   `yaml:"auth" env:", prefix=AUTH_"`
	Expenses  ServiceConfig   `yaml:"expenses" env:", prefix=EXPENSES_"`
	Session   SessionConfig   `yaml:"session"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Redis     RedisConfig     `yaml:"redis"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML file named by CONFIG_FILE (data/config.yaml by default)
// and applies environment overrides on top of it.
func New(ctx context.Context) (*Service, error) {
	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(ctx, rawYAML, envconfig.OsLookuper())
}

// Parse decodes rawYAML and overlays values found by lookuper.
func Parse(ctx context.Context, rawYAML []byte, lookuper envconfig.Lookuper) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	err = envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s.config,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, errors.Wrap(err, "processing env")
	}

	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			CurrencyName: defaultCurrency,
		},
		Auth: ServiceConfig{
			URL: "http://localhost:8080",
		},
		Expenses: ServiceConfig{
			URL: "http://localhost:8081",
		},
		Session: SessionConfig{
			BackendName: SessionBackendFile,
			FilePath:    "data/session.yaml",
		},
		Metrics: MetricsConfig{
			ListenAddr: ":9090",
		},
		Tracing: TracingConfig{
			Service: "expense-tracker",
		},
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Auth() *ServiceConfig {
	return &s.config.Auth
}

func (s *Service) Expenses() *ServiceConfig {
	return &s.config.Expenses
}

func (s *Service) Session() *SessionConfig {
	return &s.config.Session
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Redis() *RedisConfig {
	return &s.config.Redis
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
