package config

type TracingConfig struct {
	Service       string `yaml:"service-name" env:"TRACING_SERVICE_NAME, overwrite"`
	AgentHostPort string `yaml:"agent" env:"TRACING_AGENT, overwrite"`
	Disabled      bool   `yaml:"disabled" env:"TRACING_DISABLED, overwrite"`
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}

func (s *TracingConfig) LocalAgentHostPort() string {
	return s.AgentHostPort
}

func (s *TracingConfig) Enabled() bool {
	return !s.Disabled
}
