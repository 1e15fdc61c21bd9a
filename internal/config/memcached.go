package config

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts" env:"MEMCACHED_HOSTS, overwrite"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}
