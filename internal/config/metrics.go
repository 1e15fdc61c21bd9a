package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr" env:"METRICS_ADDR, overwrite"`
}

func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}
