package config

type RedisConfig struct {
	Address  string `yaml:"addr" env:"REDIS_ADDR, overwrite"`
	Database int    `yaml:"db" env:"REDIS_DB, overwrite"`
}

func (s *RedisConfig) Addr() string {
	return s.Address
}

func (s *RedisConfig) DB() int {
	return s.Database
}
